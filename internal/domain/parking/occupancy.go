package parking

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crudpark-api/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// OccupancyRatio porcentaje de ocupación: dentro / capacidad * 100, a 2 decimales.
// La capacidad es un valor de configuración y debe ser positiva.
func OccupancyRatio(inside, capacity int) (decimal.Decimal, error) {
	if capacity <= 0 {
		return decimal.Zero, fmt.Errorf("%w: capacidad debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if inside < 0 {
		return decimal.Zero, fmt.Errorf("%w: vehículos dentro no puede ser negativo", domain.ErrInvalidInput)
	}
	return decimal.NewFromInt(int64(inside)).
		Div(decimal.NewFromInt(int64(capacity))).
		Mul(hundred).
		Round(currencyPlaces), nil
}
