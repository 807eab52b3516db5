package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crudpark-api/internal/application/usecase"
)

// PaymentHandler consulta de pagos. Los pagos solo se crean al registrar salida.
type PaymentHandler struct {
	uc *usecase.PaymentUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// List GET /api/pagos?ticket_id=
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("ticket_id"), pageFromQuery(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /api/pagos/:id
func (h *PaymentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
