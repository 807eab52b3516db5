package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentResponse salida de un pago.
type PaymentResponse struct {
	ID       string          `json:"id"`
	TicketID *string         `json:"id_ticket"`
	Method   string          `json:"metodo_pago"`
	Amount   decimal.Decimal `json:"monto"`
	PaidAt   time.Time       `json:"fecha_pago"`
}
