package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propertyhub/marketplace/internal/core/domain"
	"github.com/propertyhub/marketplace/internal/core/ports"
)

type VisitHandler struct {
	visits ports.VisitService
}

func NewVisitHandler(visits ports.VisitService) *VisitHandler {
	return &VisitHandler{visits: visits}
}

type createVisitRequest struct {
	ListingID string `json:"listingId" validate:"required"`
	VisitDate string `json:"visitDate" validate:"required"`
	VisitTime string `json:"visitTime" validate:"required"`
	Message   string `json:"message"   validate:"max=1000"`
}

type decideVisitRequest struct {
	Status string `json:"status" validate:"required"`
}

type visitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// Create sends a visit request for a listing.
//
// @Summary      Request a visit
// @Tags         visit
// @Accept       json
// @Produce      json
// @Param        body  body      createVisitRequest  true  "Visit request"
// @Success      201   {object}  visitResponse
// @Failure      400   {object}  errorBody
// @Failure      404   {object}  errorBody
// @Router       /api/visit/create [post]
func (h *VisitHandler) Create(c echo.Context) error {
	var req createVisitRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	visit, err := h.visits.Create(c.Request().Context(), identity(c), ports.CreateVisitInput{
		ListingID: req.ListingID,
		VisitDate: req.VisitDate,
		VisitTime: req.VisitTime,
		Message:   req.Message,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, visitResponse{Success: true, Message: "Visit request sent successfully", Data: visit})
}

// List returns the visit requests visible to the caller.
//
// @Summary      List visit requests
// @Tags         visit
// @Produce      json
// @Success      200  {array}   domain.VisitRequestView
// @Failure      401  {object}  errorBody
// @Router       /api/visit [get]
func (h *VisitHandler) List(c echo.Context) error {
	visits, err := h.visits.List(c.Request().Context(), identity(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, visits)
}

// Decide approves or rejects a pending visit request.
//
// @Summary      Decide visit request
// @Tags         visit
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Visit request ID"
// @Param        body  body      decideVisitRequest  true  "approved or rejected"
// @Success      200   {object}  visitResponse
// @Failure      400   {object}  errorBody
// @Failure      403   {object}  errorBody
// @Failure      409   {object}  errorBody
// @Router       /api/visit/{id} [put]
func (h *VisitHandler) Decide(c echo.Context) error {
	var req decideVisitRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	view, err := h.visits.Decide(c.Request().Context(), identity(c), c.Param("id"), domain.VisitStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, visitResponse{Success: true, Message: "Status updated", Data: view})
}
