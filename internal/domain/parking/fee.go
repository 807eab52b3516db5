// Package parking contiene el motor de cobro y agregación del parqueadero:
// cálculo de tarifa por estadía, ocupación, ingresos por período y
// clasificación de mensualidades. Todo es función pura de sus entradas.
package parking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crudpark-api/internal/domain"
	"github.com/jhoicas/crudpark-api/internal/domain/entity"
)

const currencyPlaces = 2

var sixty = decimal.NewFromInt(60)

// DurationMinutes minutos completos entre ingreso y salida (los segundos se truncan).
func DurationMinutes(entry, exit time.Time) (int64, error) {
	d := NormalizeUTC(exit).Sub(NormalizeUTC(entry))
	if d < 0 {
		return 0, domain.ErrNegativeDuration
	}
	return int64(d / time.Minute), nil
}

// ComputeFee calcula el valor a pagar por una estadía con la tarifa dada.
//
//	minutos <= gracia           → 0
//	H = minutos / 60, R = minutos % 60
//	valor = H*valor_hora + (R > 0 ? valor_fraccion : 0)
//	valor = min(valor, tope_diario) si tope_diario > 0
//
// El resultado se redondea a 2 decimales, mitad hacia arriba.
// La gracia de la tarifa se usa tal cual está guardada.
func ComputeFee(entry, exit time.Time, t entity.Tariff) (decimal.Decimal, error) {
	minutes, err := DurationMinutes(entry, exit)
	if err != nil {
		return decimal.Zero, err
	}
	if t.BaseHourlyRate.IsZero() {
		return decimal.Zero, nil
	}
	if minutes <= int64(t.GraceMinutes) {
		return decimal.Zero, nil
	}

	hours := decimal.NewFromInt(minutes / 60)
	fee := hours.Mul(t.BaseHourlyRate)
	if minutes%60 > 0 {
		fee = fee.Add(t.FractionRate)
	}
	if t.DailyCap.IsPositive() && fee.GreaterThan(t.DailyCap) {
		fee = t.DailyCap
	}
	if fee.IsNegative() {
		fee = decimal.Zero
	}
	return fee.Round(currencyPlaces), nil
}

// BillableHours horas (con fracción) de la estadía, útil para el recibo.
func BillableHours(entry, exit time.Time) (decimal.Decimal, error) {
	minutes, err := DurationMinutes(entry, exit)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromInt(minutes).Div(sixty).Round(currencyPlaces), nil
}
