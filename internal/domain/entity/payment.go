package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados en portería.
const (
	PaymentMethodCash     = "efectivo"
	PaymentMethodCard     = "tarjeta"
	PaymentMethodTransfer = "transferencia"
)

// Payment registro de auditoría de un cobro. Se crea al cerrar un ticket con valor.
type Payment struct {
	ID       string
	TicketID *string
	Method   string
	Amount   decimal.Decimal
	PaidAt   time.Time
}
