package repository

import (
	"context"
	"time"

	"github.com/jhoicas/crudpark-api/internal/domain/entity"
)

// SubscriptionRepository define el puerto de persistencia para mensualidades.
type SubscriptionRepository interface {
	Create(ctx context.Context, s *entity.Subscription) error
	Update(ctx context.Context, s *entity.Subscription) error
	GetByID(ctx context.Context, id string) (*entity.Subscription, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Subscription, error)
	ListAll(ctx context.Context) ([]entity.Subscription, error)

	// LockPlate toma un advisory lock transaccional sobre la placa normalizada.
	// Solo tiene efecto dentro de una transacción.
	LockPlate(ctx context.Context, plate string) error

	// ExistsCurrentForPlate informa si hay una mensualidad activa con fecha fin >= today
	// para la placa (insensible a mayúsculas), ignorando excludeID.
	ExistsCurrentForPlate(ctx context.Context, plate string, today time.Time, excludeID string) (bool, error)

	// FindCurrentByPlate mensualidad vigente de la placa, o nil.
	FindCurrentByPlate(ctx context.Context, plate string, today time.Time) (*entity.Subscription, error)

	// ListDue activas con today <= fecha fin <= until.
	ListDue(ctx context.Context, today, until time.Time) ([]entity.Subscription, error)
}
