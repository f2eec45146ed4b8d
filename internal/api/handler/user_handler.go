package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propertyhub/marketplace/internal/core/ports"
)

type UserHandler struct {
	users      ports.UserService
	listings   ports.ListingService
	cookieName string
}

func NewUserHandler(users ports.UserService, listings ports.ListingService, cookieName string) *UserHandler {
	return &UserHandler{users: users, listings: listings, cookieName: cookieName}
}

type updateUserRequest struct {
	Username    string `json:"username"    validate:"omitempty,min=3,max=50"`
	Email       string `json:"email"       validate:"omitempty,email"`
	Phone       string `json:"phone"`
	Avatar      string `json:"avatar"      validate:"omitempty,url"`
	AccountType string `json:"accountType" validate:"omitempty,oneof=buyer seller both"`
	Password    string `json:"password"    validate:"omitempty,min=6"`
}

// Get returns a user profile.
//
// @Summary      Get user
// @Tags         user
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorBody
// @Failure      404  {object}  errorBody
// @Router       /api/user/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.users.GetUser(c.Request().Context(), identity(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update edits the caller's own profile. Role is not editable here.
//
// @Summary      Update own profile
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User ID"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorBody
// @Failure      403   {object}  errorBody
// @Router       /api/user/update/{id} [post]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.users.UpdateUser(c.Request().Context(), identity(c), c.Param("id"), ports.UpdateUserInput{
		Username:    req.Username,
		Email:       req.Email,
		Phone:       req.Phone,
		Avatar:      req.Avatar,
		AccountType: req.AccountType,
		Password:    req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete removes the caller's own account and clears the session cookie.
//
// @Summary      Delete own account
// @Tags         user
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorBody
// @Router       /api/user/delete/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.users.DeleteSelf(c.Request().Context(), identity(c), c.Param("id")); err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{Name: h.cookieName, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "User has been deleted"})
}

// Listings returns every listing owned by the caller.
//
// @Summary      List own listings
// @Tags         user
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {array}   domain.Listing
// @Failure      403  {object}  errorBody
// @Router       /api/user/listings/{id} [get]
func (h *UserHandler) Listings(c echo.Context) error {
	listings, err := h.listings.ListByOwner(c.Request().Context(), identity(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listings)
}
