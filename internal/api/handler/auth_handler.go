package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/propertyhub/marketplace/internal/core/domain"
	"github.com/propertyhub/marketplace/internal/core/ports"
	"github.com/propertyhub/marketplace/internal/pkg/config"
)

type AuthHandler struct {
	authService ports.AuthService
	cookie      config.CookieConfig
}

func NewAuthHandler(authService ports.AuthService, cookie config.CookieConfig) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie}
}

type signupRequest struct {
	Username    string `json:"username"    validate:"required,min=3,max=50"`
	Email       string `json:"email"       validate:"omitempty,email"`
	Phone       string `json:"phone"`
	Password    string `json:"password"    validate:"required,min=6"`
	AccountType string `json:"accountType" validate:"omitempty,oneof=buyer seller both"`
}

type signinRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type googleRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"  validate:"required"`
	Photo string `json:"photo"`
}

// authResponse is the signed-in user plus the session token for clients
// that cannot rely on the cookie.
type authResponse struct {
	*domain.User
	Token string `json:"token"`
}

// Signup creates a new user account.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorBody
// @Failure      409   {object}  errorBody
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	res, err := h.authService.Signup(c.Request().Context(), ports.SignupInput{
		Username:    req.Username,
		Email:       req.Email,
		Phone:       req.Phone,
		Password:    req.Password,
		AccountType: req.AccountType,
	})
	if err != nil {
		return err
	}

	return h.respond(c, http.StatusCreated, res)
}

// Signin authenticates a user by email and password.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signinRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  errorBody
// @Failure      404   {object}  errorBody
// @Router       /api/auth/signin [post]
func (h *AuthHandler) Signin(c echo.Context) error {
	var req signinRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	res, err := h.authService.Signin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return h.respond(c, http.StatusOK, res)
}

// Google signs in with a Google profile, registering it on first use.
//
// @Summary      Google sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      googleRequest  true  "Google profile"
// @Success      200   {object}  authResponse
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorBody
// @Router       /api/auth/google [post]
func (h *AuthHandler) Google(c echo.Context) error {
	var req googleRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	res, err := h.authService.Google(c.Request().Context(), ports.GoogleInput{
		Email: req.Email,
		Name:  req.Name,
		Photo: req.Photo,
	})
	if err != nil {
		return err
	}

	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}
	return h.respond(c, status, res)
}

// Logout clears the session cookie. The token itself stays valid.
//
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	cookie := h.newCookie("")
	cookie.MaxAge = -1
	cookie.Expires = time.Unix(0, 0)
	c.SetCookie(cookie)

	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "User has been logged out"})
}

func (h *AuthHandler) respond(c echo.Context, status int, res *ports.AuthResult) error {
	c.SetCookie(h.newCookie(res.Token))
	return c.JSON(status, authResponse{User: res.User, Token: res.Token})
}

func (h *AuthHandler) newCookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		Domain:   h.cookie.Domain,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: h.cookie.SameSiteMode(),
	}
}
