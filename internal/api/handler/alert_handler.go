package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propertyhub/marketplace/internal/core/ports"
)

type AlertHandler struct {
	alerts ports.AlertService
}

func NewAlertHandler(alerts ports.AlertService) *AlertHandler {
	return &AlertHandler{alerts: alerts}
}

// List returns the caller's alerts, newest first.
//
// @Summary      List alerts
// @Tags         alerts
// @Produce      json
// @Success      200  {array}   domain.Alert
// @Failure      401  {object}  errorBody
// @Router       /api/alerts [get]
func (h *AlertHandler) List(c echo.Context) error {
	alerts, err := h.alerts.List(c.Request().Context(), identity(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, alerts)
}

// MarkRead flags one of the caller's alerts as read.
//
// @Summary      Mark alert read
// @Tags         alerts
// @Produce      json
// @Param        alertId  path      string  true  "Alert ID"
// @Success      200      {object}  domain.Alert
// @Failure      403      {object}  errorBody
// @Failure      404      {object}  errorBody
// @Router       /api/alerts/{alertId}/read [put]
func (h *AlertHandler) MarkRead(c echo.Context) error {
	alert, err := h.alerts.MarkRead(c.Request().Context(), identity(c), c.Param("alertId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, alert)
}
