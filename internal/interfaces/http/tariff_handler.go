package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crudpark-api/internal/application/dto"
	"github.com/jhoicas/crudpark-api/internal/application/usecase"
)

// TariffHandler CRUD de tarifas. Las escrituras son solo para admin.
type TariffHandler struct {
	uc *usecase.TariffUseCase
}

// NewTariffHandler construye el handler.
func NewTariffHandler(uc *usecase.TariffUseCase) *TariffHandler {
	return &TariffHandler{uc: uc}
}

// List godoc
// @Summary      Listar tarifas
// @Tags         tarifas
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TariffResponse
// @Router       /api/tarifas [get]
func (h *TariffHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetActive godoc
// @Summary      Tarifa activa
// @Tags         tarifas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TariffResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tarifas/activa [get]
func (h *TariffHandler) GetActive(c *fiber.Ctx) error {
	out, err := h.uc.GetActive(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener tarifa
// @Tags         tarifas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la tarifa"
// @Success      200  {object}  dto.TariffResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tarifas/{id} [get]
func (h *TariffHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear tarifa
// @Description  El tiempo de gracia mínimo es 30 minutos. Si activa=true, desactiva las demás.
// @Tags         tarifas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TariffRequest  true  "Tarifa"
// @Success      201   {object}  dto.TariffResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tarifas [post]
func (h *TariffHandler) Create(c *fiber.Ctx) error {
	var in dto.TariffRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar tarifa
// @Tags         tarifas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la tarifa"
// @Param        body  body  dto.TariffRequest  true  "Tarifa"
// @Success      200   {object}  dto.TariffResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tarifas/{id} [put]
func (h *TariffHandler) Update(c *fiber.Ctx) error {
	var in dto.TariffRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Activate POST /api/tarifas/:id/activar
func (h *TariffHandler) Activate(c *fiber.Ctx) error {
	out, err := h.uc.Activate(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/tarifas/:id (desactiva, no borra).
func (h *TariffHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(c.UserContext(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
