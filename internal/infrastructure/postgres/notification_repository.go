package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/crudpark-api/internal/domain/entity"
	"github.com/jhoicas/crudpark-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación de NotificationRepository sobre PostgreSQL.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador de notificaciones.
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create agrega una notificación a la bitácora.
func (r *NotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, subscription_id, kind, sent_at, sent)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, n.ID, n.SubscriptionID, n.Kind, n.SentAt.UTC(), n.Sent)
	if err != nil {
		if isUniqueViolation(err) {
			return mapUniqueViolation(err)
		}
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// Exists informa si ya hay una notificación del tipo para la mensualidad.
func (r *NotificationRepo) Exists(ctx context.Context, subscriptionID, kind string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM notifications WHERE subscription_id = $1 AND kind = $2)`,
		subscriptionID, kind,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists notification: %w", err)
	}
	return exists, nil
}

// List lista notificaciones, más recientes primero.
func (r *NotificationRepo) List(ctx context.Context, limit, offset int) ([]*entity.Notification, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, subscription_id, kind, sent_at, sent
		FROM notifications ORDER BY sent_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.SubscriptionID, &n.Kind, &n.SentAt, &n.Sent); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		n.SentAt = n.SentAt.UTC()
		list = append(list, &n)
	}
	return list, rows.Err()
}
