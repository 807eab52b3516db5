package repository

import (
	"context"

	"github.com/jhoicas/crudpark-api/internal/domain/entity"
)

// TariffRepository define el puerto de persistencia para tarifas.
// GetByID y GetActive devuelven (nil, nil) cuando no hay fila.
type TariffRepository interface {
	Create(ctx context.Context, t *entity.Tariff) error
	Update(ctx context.Context, t *entity.Tariff) error
	GetByID(ctx context.Context, id string) (*entity.Tariff, error)
	List(ctx context.Context) ([]*entity.Tariff, error)

	// GetActive devuelve la única tarifa con active = true.
	GetActive(ctx context.Context) (*entity.Tariff, error)

	// DeactivateAll desactiva todas las tarifas excepto exceptID (vacío = todas).
	// Debe ejecutarse en la misma transacción que la activación.
	DeactivateAll(ctx context.Context, exceptID string) error

	SetActive(ctx context.Context, id string, active bool) error
}
