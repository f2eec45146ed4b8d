package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/propertyhub/marketplace/docs"
	"github.com/propertyhub/marketplace/internal/api/handler"
	"github.com/propertyhub/marketplace/internal/api/middleware"
	"github.com/propertyhub/marketplace/internal/core/policy"
	"github.com/propertyhub/marketplace/internal/core/ports"
	"github.com/propertyhub/marketplace/internal/infrastructure/http/handlers"
	"github.com/propertyhub/marketplace/internal/pkg/config"
)

// Services is the set of use cases the HTTP layer exposes.
type Services struct {
	Tokens   ports.TokenVerifier
	Auth     ports.AuthService
	Users    ports.UserService
	Listings ports.ListingService
	Wishlist ports.WishlistService
	Visits   ports.VisitService
	Alerts   ports.AlertService
	Contacts ports.ContactService
	Insights ports.InsightsService
	Admin    ports.AdminService
}

// Options carries the operational wiring of the router.
type Options struct {
	// Checks are run by the readiness probe.
	Checks []handlers.DependencyCheck
	// Registry receives the HTTP metrics and backs /metrics. Defaults to
	// the global prometheus registry.
	Registry *prometheus.Registry
}

// Auth endpoints accept this many requests per minute per client IP.
const (
	authRatePerMinute = 30
	authRateBurst     = 10
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, svc Services, opts Options, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Pre(echomiddleware.RemoveTrailingSlash())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(log))
	promMiddleware := echoprometheus.MiddlewareConfig{Subsystem: "marketplace"}
	promHandler := echoprometheus.HandlerConfig{}
	if opts.Registry != nil {
		promMiddleware.Registerer = opts.Registry
		promHandler.Gatherer = opts.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(promMiddleware))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowCredentials: true,
	}))
	e.Use(echomiddleware.BodyLimit("2M"))

	authn := middleware.Authenticate(svc.Tokens, cfg.Cookie.Name)
	adminOnly := middleware.Require(policy.IsAdminOrSuperadmin)
	superadminOnly := middleware.Require(policy.IsSuperadmin)

	api := e.Group("/api")

	// --- Auth ---
	authHandler := handler.NewAuthHandler(svc.Auth, cfg.Cookie)
	auth := api.Group("/auth", middleware.NewIPRateLimiter(authRatePerMinute, authRateBurst).Middleware())
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/signin", authHandler.Signin)
	auth.POST("/google", authHandler.Google)
	auth.POST("/logout", authHandler.Logout)

	// --- Users ---
	userHandler := handler.NewUserHandler(svc.Users, svc.Listings, cfg.Cookie.Name)
	users := api.Group("/user", authn)
	users.GET("/:id", userHandler.Get)
	users.POST("/update/:id", userHandler.Update)
	users.DELETE("/delete/:id", userHandler.Delete)
	users.GET("/listings/:id", userHandler.Listings)

	// --- Listings (reads are public) ---
	listingHandler := handler.NewListingHandler(svc.Listings)
	listings := api.Group("/listing")
	listings.GET("/get", listingHandler.Search)
	listings.GET("/get/:id", listingHandler.Get)
	listings.POST("/create", listingHandler.Create, authn)
	listings.POST("/update/:id", listingHandler.Update, authn)
	listings.DELETE("/delete/:id", listingHandler.Delete, authn)
	listings.GET("/user/:id", listingHandler.ByUser, authn)

	// --- Wishlist ---
	wishlistHandler := handler.NewWishlistHandler(svc.Wishlist)
	wishlist := api.Group("/wishlist", authn)
	wishlist.GET("", wishlistHandler.List)
	wishlist.PUT("/:id", wishlistHandler.Toggle)

	// --- Visit requests ---
	visitHandler := handler.NewVisitHandler(svc.Visits)
	visits := api.Group("/visit", authn)
	visits.POST("/create", visitHandler.Create)
	visits.GET("", visitHandler.List)
	visits.PUT("/:id", visitHandler.Decide, adminOnly)

	// --- Alerts ---
	alertHandler := handler.NewAlertHandler(svc.Alerts)
	alerts := api.Group("/alerts", authn)
	alerts.GET("", alertHandler.List)
	alerts.PUT("/:alertId/read", alertHandler.MarkRead)

	// --- Contact ---
	contactHandler := handler.NewContactHandler(svc.Contacts)
	contact := api.Group("/contact", authn)
	contact.POST("/send", contactHandler.Send)
	contact.GET("/my", contactHandler.Mine)
	contact.GET("/all", contactHandler.All, adminOnly)

	// --- Insights (public) ---
	insightsHandler := handler.NewInsightsHandler(svc.Insights)
	api.GET("/insights", insightsHandler.Get)

	// --- Admin ---
	adminHandler := handler.NewAdminHandler(svc.Admin)
	admin := api.Group("/admin", authn)
	admin.GET("/users", adminHandler.Users)
	admin.GET("/listings", adminHandler.Listings)
	admin.DELETE("/delete/:id", adminHandler.DeleteUser, adminOnly)
	admin.PUT("/role/:id", adminHandler.ChangeRole, superadminOnly)
	admin.GET("/logs", adminHandler.Logs, adminOnly)

	// --- Operational (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(opts.Checks...)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(promHandler))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
