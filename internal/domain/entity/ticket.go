package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de ticket conocidos. El campo es texto libre; estos son los que usa el dashboard.
const (
	TicketKindMensual  = "mensual"
	TicketKindInvitado = "invitado"
)

// Ticket representa una estadía de un vehículo: abierta (sin salida) o cerrada (salida + valor).
type Ticket struct {
	ID         string
	Plate      string
	Kind       string
	EntryTime  time.Time
	ExitTime   *time.Time // nil = el vehículo sigue dentro
	AmountDue  decimal.Decimal
	Paid       bool
	OperatorID *string
	QRCode     *string
	TariffID   *string // tarifa aplicada en la salida; nil si no hubo cobro por tarifa
}

// IsInside informa si el vehículo no ha registrado salida.
func (t *Ticket) IsInside() bool {
	return t.ExitTime == nil
}
