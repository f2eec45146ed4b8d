// Command api serves the marketplace HTTP API.
//
//	@title			PropertyHub Marketplace API
//	@version		1.0
//	@description	Listings, visits, alerts and the admin moderation log.
//	@BasePath		/
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/multierr"

	"github.com/propertyhub/marketplace/internal/api"
	"github.com/propertyhub/marketplace/internal/core/ports"
	"github.com/propertyhub/marketplace/internal/core/service"
	"github.com/propertyhub/marketplace/internal/infrastructure/cache"
	mongodb "github.com/propertyhub/marketplace/internal/infrastructure/db/mongo"
	redisdb "github.com/propertyhub/marketplace/internal/infrastructure/db/redis"
	"github.com/propertyhub/marketplace/internal/infrastructure/http/handlers"
	"github.com/propertyhub/marketplace/internal/infrastructure/queue"
	"github.com/propertyhub/marketplace/internal/infrastructure/scheduler"
	"github.com/propertyhub/marketplace/internal/pkg/config"
	"github.com/propertyhub/marketplace/pkg/logger"
)

const (
	serviceName     = "marketplace-api"
	shutdownTimeout = 15 * time.Second
	insightsLockKey = "lock:insights-refresh"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load(context.Background())
	if err != nil {
		boot := zerolog.New(os.Stderr)
		boot.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: serviceName,
	})
	if envErr != nil {
		log.Warn().Msg(".env file not found, relying on environment")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("api stopped unexpectedly")
	}
	log.Info().Msg("api shut down gracefully")
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) (err error) {
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err = multierr.Append(err, mongoClient.Disconnect(closeCtx))
	}()

	users := mongodb.NewUserRepository(db)
	listings := mongodb.NewListingRepository(db)
	audit := mongodb.NewAuditLogRepository(db)
	visits := mongodb.NewVisitRequestRepository(db)
	alerts := mongodb.NewAlertRepository(db)
	contacts := mongodb.NewContactRepository(db)

	if err := mongodb.EnsureIndexes(ctx, users, listings, audit, visits, alerts, contacts); err != nil {
		return err
	}

	checks := []handlers.DependencyCheck{handlers.MongoCheck(db)}

	var (
		insightsCache ports.InsightsCache = cache.NewMemoryInsightsCache(cfg.Insights.CacheTTL)
		refreshLock   scheduler.Locker
	)
	if cfg.Redis.Addr != "" {
		rdb, redisErr := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if redisErr != nil {
			log.Warn().Err(redisErr).Msg("redis unavailable, caching insights in memory")
		} else {
			defer func() { err = multierr.Append(err, rdb.Close()) }()

			insightsCache = redisdb.NewInsightsCache(rdb, cfg.Insights.CacheTTL)
			checks = append(checks, handlers.RedisCheck(rdb))
			lock, lockErr := redisdb.NewLock(rdb, insightsLockKey, cfg.Insights.CacheTTL)
			if lockErr != nil {
				return lockErr
			}
			refreshLock = lock
		}
	}

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	var alertSink ports.AlertSink = service.NewAlertWriter(alerts, log)
	if cfg.Alerts.Workers > 0 {
		dispatcher := queue.NewAlertDispatcher(cfg.Alerts.Workers, cfg.Alerts.Buffer, alertSink, log)
		dispatcher.Start(workerCtx)
		defer func() {
			cancelWorkers()
			dispatcher.Wait()
		}()
		alertSink = dispatcher
	}

	tokens, err := service.NewTokenService(cfg.Token)
	if err != nil {
		return err
	}
	insights := service.NewInsightsService(listings, visits, insightsCache, log)

	svc := api.Services{
		Tokens:   tokens,
		Auth:     service.NewAuthService(users, tokens, log),
		Users:    service.NewUserService(users, log),
		Listings: service.NewListingService(listings, users, alertSink, log),
		Wishlist: service.NewWishlistService(users, listings, log),
		Visits:   service.NewVisitService(visits, listings, users, alertSink, log),
		Alerts:   service.NewAlertService(alerts, log),
		Contacts: service.NewContactService(contacts, log),
		Insights: insights,
		Admin:    service.NewAdminService(users, listings, audit, log),
	}

	sched := scheduler.New(log)
	if cfg.Insights.RefreshSchedule != "" {
		if err := sched.Add(scheduler.Job{
			Name: "insights-refresh",
			Spec: cfg.Insights.RefreshSchedule,
			Lock: refreshLock,
			Run: func(ctx context.Context) error {
				_, err := insights.Refresh(ctx)
				return err
			},
		}); err != nil {
			return err
		}
	}
	sched.Start(workerCtx)
	defer sched.Stop()

	e := api.NewRouter(cfg, svc, api.Options{Checks: checks}, log)

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting api")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- fmt.Errorf("http server: %w", err)
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-serveErr:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
