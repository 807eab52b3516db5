package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MinGraceMinutes tiempo de gracia mínimo permitido al guardar una tarifa.
const MinGraceMinutes = 30

// Tariff representa la política de cobro del parqueadero.
// Solo una tarifa puede estar activa a la vez.
type Tariff struct {
	ID             string
	Description    string
	BaseHourlyRate decimal.Decimal // valor por hora completa
	FractionRate   decimal.Decimal // valor por fracción de hora iniciada
	DailyCap       decimal.Decimal // tope diario; 0 = sin tope
	GraceMinutes   int
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ClampGrace aplica el mínimo de gracia. Se invoca al escribir, nunca al leer.
func (t *Tariff) ClampGrace() {
	if t.GraceMinutes < MinGraceMinutes {
		t.GraceMinutes = MinGraceMinutes
	}
}
