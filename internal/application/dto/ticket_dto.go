package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryRequest registro de ingreso. Kind vacío = se detecta por mensualidad vigente.
type EntryRequest struct {
	Plate string `json:"placa" validate:"required,max=20"`
	Kind  string `json:"tipo" validate:"omitempty,max=50"`
}

// ExitRequest registro de salida. Method vacío = efectivo.
type ExitRequest struct {
	PaymentMethod string `json:"metodo_pago" validate:"omitempty,oneof=efectivo tarjeta transferencia"`
}

// TicketResponse salida de un ticket.
type TicketResponse struct {
	ID         string          `json:"id"`
	Plate      string          `json:"placa"`
	Kind       string          `json:"tipo"`
	EntryTime  time.Time       `json:"fecha_ingreso"`
	ExitTime   *time.Time      `json:"fecha_salida"`
	AmountDue  decimal.Decimal `json:"total_pagar"`
	Paid       bool            `json:"pagado"`
	OperatorID *string         `json:"id_operador"`
	QRCode     *string         `json:"codigo_qr"`
}

// ExitResponse ticket cerrado más el pago generado (nil si el valor fue 0).
type ExitResponse struct {
	Ticket        TicketResponse   `json:"ticket"`
	DurationMin   int64            `json:"duracion_minutos"`
	Payment       *PaymentResponse `json:"pago,omitempty"`
	AmountPrinted string           `json:"total_formateado"`
}

// TicketExportRow proyección plana para CSV/Excel.
type TicketExportRow struct {
	ID        string
	Plate     string
	Kind      string
	EntryTime time.Time
	ExitTime  *time.Time
	AmountDue decimal.Decimal
	Paid      bool
}
