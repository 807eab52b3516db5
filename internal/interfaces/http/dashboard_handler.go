package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/crudpark-api/internal/application/analytics"
)

// DashboardHandler maneja el endpoint del tablero.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen del parqueadero
// @Description  Ocupación, ingresos del día/semana/mes, estado de mensualidades y tarifa activa. Fechas en UTC.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardDTO
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(summary)
}
