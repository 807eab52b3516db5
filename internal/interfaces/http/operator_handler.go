package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crudpark-api/internal/application/dto"
	"github.com/jhoicas/crudpark-api/internal/application/usecase"
)

// OperatorHandler administración de operadores (solo admin).
type OperatorHandler struct {
	uc *usecase.OperatorUseCase
}

// NewOperatorHandler construye el handler.
func NewOperatorHandler(uc *usecase.OperatorUseCase) *OperatorHandler {
	return &OperatorHandler{uc: uc}
}

// List GET /api/operadores
func (h *OperatorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /api/operadores/:id
func (h *OperatorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear operador
// @Tags         operadores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OperatorRequest  true  "Operador"
// @Success      201   {object}  dto.OperatorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/operadores [post]
func (h *OperatorHandler) Create(c *fiber.Ctx) error {
	var in dto.OperatorRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if strings.TrimSpace(in.Name) == "" {
		return validation(c, "nombre es requerido")
	}
	if in.Password != "" && len(in.Password) < 8 {
		return validation(c, "password debe tener al menos 8 caracteres")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PUT /api/operadores/:id
func (h *OperatorHandler) Update(c *fiber.Ctx) error {
	var in dto.OperatorRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Password != "" && len(in.Password) < 8 {
		return validation(c, "password debe tener al menos 8 caracteres")
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/operadores/:id
func (h *OperatorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
