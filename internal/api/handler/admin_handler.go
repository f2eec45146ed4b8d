package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propertyhub/marketplace/internal/core/domain"
	"github.com/propertyhub/marketplace/internal/core/ports"
)

// AdminHandler exposes the moderation operations. Authorization is decided
// by the admin service; route guards only fail fast.
type AdminHandler struct {
	admin ports.AdminService
}

func NewAdminHandler(admin ports.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

type changeRoleRequest struct {
	Role string `json:"role"`
}

type deleteUserResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	*ports.DeleteUserResult
}

type changeRoleResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

// Users lists every account.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      401  {object}  errorBody
// @Router       /api/admin/users [get]
func (h *AdminHandler) Users(c echo.Context) error {
	users, err := h.admin.ListUsers(c.Request().Context(), identity(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Listings lists every listing.
//
// @Summary      List listings
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.Listing
// @Failure      401  {object}  errorBody
// @Router       /api/admin/listings [get]
func (h *AdminHandler) Listings(c echo.Context) error {
	listings, err := h.admin.ListListings(c.Request().Context(), identity(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listings)
}

// DeleteUser removes a non-privileged account and records the action.
//
// @Summary      Delete user
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  deleteUserResponse
// @Failure      403  {object}  errorBody
// @Failure      404  {object}  errorBody
// @Router       /api/admin/delete/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	res, err := h.admin.DeleteUser(c.Request().Context(), identity(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteUserResponse{
		Success:          true,
		Message:          "User deleted successfully",
		DeleteUserResult: res,
	})
}

// ChangeRole sets a user's role. Superadmin only.
//
// @Summary      Change user role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User ID"
// @Param        body  body      changeRoleRequest  true  "user or admin"
// @Success      200   {object}  changeRoleResponse
// @Failure      400   {object}  errorBody
// @Failure      403   {object}  errorBody
// @Failure      404   {object}  errorBody
// @Router       /api/admin/role/{id} [put]
func (h *AdminHandler) ChangeRole(c echo.Context) error {
	var req changeRoleRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.admin.ChangeUserRole(c.Request().Context(), identity(c), c.Param("id"), domain.Role(req.Role))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, changeRoleResponse{
		Success: true,
		Message: "User role updated successfully",
		User:    user,
	})
}

// Logs returns the moderation audit log, newest first.
//
// @Summary      Audit log
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.AuditLogView
// @Failure      403  {object}  errorBody
// @Router       /api/admin/logs [get]
func (h *AdminHandler) Logs(c echo.Context) error {
	logs, err := h.admin.ListLogs(c.Request().Context(), identity(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logs)
}
