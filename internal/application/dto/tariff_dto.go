package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TariffRequest entrada para crear o actualizar una tarifa.
// En update, ID debe coincidir con el de la ruta.
type TariffRequest struct {
	ID             string          `json:"id,omitempty"`
	Description    string          `json:"descripcion" validate:"max=200"`
	BaseHourlyRate decimal.Decimal `json:"valor_base_hora"`
	FractionRate   decimal.Decimal `json:"valor_fraccion"`
	DailyCap       decimal.Decimal `json:"tope_diario"`
	GraceMinutes   int             `json:"tiempo_gracia_min"`
	Active         bool            `json:"activa"`
}

// TariffResponse salida de una tarifa.
type TariffResponse struct {
	ID             string          `json:"id"`
	Description    string          `json:"descripcion"`
	BaseHourlyRate decimal.Decimal `json:"valor_base_hora"`
	FractionRate   decimal.Decimal `json:"valor_fraccion"`
	DailyCap       decimal.Decimal `json:"tope_diario"`
	GraceMinutes   int             `json:"tiempo_gracia_min"`
	Active         bool            `json:"activa"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
