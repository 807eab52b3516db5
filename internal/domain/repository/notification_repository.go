package repository

import (
	"context"

	"github.com/jhoicas/crudpark-api/internal/domain/entity"
)

// NotificationRepository bitácora append-only de correos enviados.
type NotificationRepository interface {
	// Create devuelve domain.ErrAlreadyNotified si ya existe (subscription_id, kind).
	Create(ctx context.Context, n *entity.Notification) error
	Exists(ctx context.Context, subscriptionID, kind string) (bool, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Notification, error)
}
