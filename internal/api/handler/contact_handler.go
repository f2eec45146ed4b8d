package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propertyhub/marketplace/internal/core/ports"
)

type ContactHandler struct {
	contacts ports.ContactService
}

func NewContactHandler(contacts ports.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

type sendContactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Message string `json:"message" validate:"required,max=5000"`
	Staff   string `json:"staff"`
}

// Send stores a message addressed to staff.
//
// @Summary      Contact staff
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      sendContactRequest  true  "Message"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorBody
// @Failure      401   {object}  errorBody
// @Router       /api/contact/send [post]
func (h *ContactHandler) Send(c echo.Context) error {
	var req sendContactRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	_, err := h.contacts.Send(c.Request().Context(), identity(c), ports.SendContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Staff:   req.Staff,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, messageResponse{Success: true, Message: "Message sent successfully"})
}

// Mine returns the messages the caller sent.
//
// @Summary      My messages
// @Tags         contact
// @Produce      json
// @Success      200  {array}   domain.ContactMessage
// @Failure      401  {object}  errorBody
// @Router       /api/contact/my [get]
func (h *ContactHandler) Mine(c echo.Context) error {
	messages, err := h.contacts.ListMine(c.Request().Context(), identity(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messages)
}

// All returns every message. Admin only.
//
// @Summary      All messages
// @Tags         contact
// @Produce      json
// @Success      200  {array}   domain.ContactMessage
// @Failure      403  {object}  errorBody
// @Router       /api/contact/all [get]
func (h *ContactHandler) All(c echo.Context) error {
	messages, err := h.contacts.ListAll(c.Request().Context(), identity(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messages)
}
