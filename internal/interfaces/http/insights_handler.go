package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/voyagetech/voyagecrm-api/internal/application/insights"
)

// InsightsHandler serves the deterministic account-health heuristics.
type InsightsHandler struct {
	uc *insights.InsightsUseCase
}

// NewInsightsHandler builds the handler.
func NewInsightsHandler(uc *insights.InsightsUseCase) *InsightsHandler {
	return &InsightsHandler{uc: uc}
}

// Get GET /api/insights
func (h *InsightsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetInsights(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
