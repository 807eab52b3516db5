package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crudpark-api/internal/application/usecase"
)

// NotificationHandler historial y envío de notificaciones.
type NotificationHandler struct {
	uc *usecase.NotificationUseCase
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(uc *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List GET /api/notificaciones
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageFromQuery(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// SendCreation godoc
// @Summary      Notificar creación de mensualidad
// @Tags         notificaciones
// @Security     Bearer
// @Produce      json
// @Param        idMensualidad  path  string  true  "ID de la mensualidad"
// @Success      201  {object}  dto.NotificationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/notificaciones/enviar-creacion/{idMensualidad} [post]
func (h *NotificationHandler) SendCreation(c *fiber.Ctx) error {
	out, err := h.uc.SendCreation(c.UserContext(), c.Params("idMensualidad"))
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SendExpiry godoc
// @Summary      Notificar vencimientos
// @Description  Una sola notificación de vencimiento por mensualidad.
// @Tags         notificaciones
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ExpiryNotificationResult
// @Router       /api/notificaciones/enviar-vencimientos [post]
func (h *NotificationHandler) SendExpiry(c *fiber.Ctx) error {
	out, err := h.uc.SendExpiry(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
