package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propertyhub/marketplace/internal/core/ports"
)

type InsightsHandler struct {
	insights ports.InsightsService
}

func NewInsightsHandler(insights ports.InsightsService) *InsightsHandler {
	return &InsightsHandler{insights: insights}
}

// Get returns the market summary.
//
// @Summary      Market insights
// @Tags         insights
// @Produce      json
// @Success      200  {object}  domain.Insights
// @Failure      500  {object}  errorBody
// @Router       /api/insights [get]
func (h *InsightsHandler) Get(c echo.Context) error {
	insights, err := h.insights.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, insights)
}
