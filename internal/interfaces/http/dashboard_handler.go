package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cloudcollect/cobranza-api/internal/application/usecase"
)

// DashboardHandler expone los KPIs de la cartera.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats godoc
// @Summary      Indicadores del tablero
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.GetStats(c.UserContext(), GetCompanyID(c))
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(out)
}
