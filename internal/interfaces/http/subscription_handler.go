package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crudpark-api/internal/application/dto"
	"github.com/jhoicas/crudpark-api/internal/application/usecase"
)

// SubscriptionHandler CRUD de mensualidades y recordatorios.
type SubscriptionHandler struct {
	uc *usecase.SubscriptionUseCase
}

// NewSubscriptionHandler construye el handler.
func NewSubscriptionHandler(uc *usecase.SubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{uc: uc}
}

func validateSubscription(in dto.SubscriptionRequest) string {
	switch {
	case strings.TrimSpace(in.CustomerName) == "":
		return "nombre_cliente es requerido"
	case strings.TrimSpace(in.Plate) == "":
		return "placa es requerida"
	case in.StartDate == "" || in.EndDate == "":
		return "fecha_inicio y fecha_fin son requeridas"
	}
	return ""
}

// List GET /api/mensualidades
func (h *SubscriptionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageFromQuery(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /api/mensualidades/:id
func (h *SubscriptionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear mensualidad
// @Description  Falla con 409 si la placa ya tiene una mensualidad vigente. Envía correo de confirmación.
// @Tags         mensualidades
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubscriptionRequest  true  "Mensualidad"
// @Success      201   {object}  dto.SubscriptionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/mensualidades [post]
func (h *SubscriptionHandler) Create(c *fiber.Ctx) error {
	var in dto.SubscriptionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if msg := validateSubscription(in); msg != "" {
		return validation(c, msg)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PUT /api/mensualidades/:id
func (h *SubscriptionHandler) Update(c *fiber.Ctx) error {
	var in dto.SubscriptionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if msg := validateSubscription(in); msg != "" {
		return validation(c, msg)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/mensualidades/:id (desactiva).
func (h *SubscriptionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(c.UserContext(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SendReminders godoc
// @Summary      Enviar recordatorios de vencimiento
// @Description  Correo a cada mensualidad que vence en los próximos 3 días. No deja registro.
// @Tags         mensualidades
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReminderResult
// @Router       /api/mensualidades/enviar-recordatorios [post]
func (h *SubscriptionHandler) SendReminders(c *fiber.Ctx) error {
	out, err := h.uc.SendReminders(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
