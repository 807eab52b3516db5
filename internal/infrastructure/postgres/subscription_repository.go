package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/crudpark-api/internal/domain/entity"
	"github.com/jhoicas/crudpark-api/internal/domain/repository"
)

var _ repository.SubscriptionRepository = (*SubscriptionRepo)(nil)

const subscriptionColumns = `id, customer_name, email, plate, start_date, end_date, active, created_at, updated_at`

// SubscriptionRepo implementación de SubscriptionRepository sobre PostgreSQL (usable con pool o tx).
type SubscriptionRepo struct {
	q Querier
}

// NewSubscriptionRepository construye el adaptador de mensualidades. Pasar pool o tx (Querier).
func NewSubscriptionRepository(q Querier) *SubscriptionRepo {
	return &SubscriptionRepo{q: q}
}

// Create persiste una mensualidad.
func (r *SubscriptionRepo) Create(ctx context.Context, s *entity.Subscription) error {
	query := `
		INSERT INTO subscriptions (` + subscriptionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.CustomerName, s.Email, s.Plate, dateUTC(s.StartDate), dateUTC(s.EndDate), s.Active,
		s.CreatedAt.UTC(), s.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert subscription: %w", err)
	}
	return nil
}

// Update actualiza una mensualidad.
func (r *SubscriptionRepo) Update(ctx context.Context, s *entity.Subscription) error {
	query := `
		UPDATE subscriptions SET customer_name = $2, email = $3, plate = $4, start_date = $5, end_date = $6,
			active = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.CustomerName, s.Email, s.Plate, dateUTC(s.StartDate), dateUTC(s.EndDate), s.Active, s.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("update subscription: %w", err)
	}
	return nil
}

// GetByID obtiene una mensualidad por ID.
func (r *SubscriptionRepo) GetByID(ctx context.Context, id string) (*entity.Subscription, error) {
	s, err := scanSubscription(r.q.QueryRow(ctx, `SELECT `+subscriptionColumns+` FROM subscriptions WHERE id = $1`, id))
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return s, nil
}

// List lista mensualidades paginadas por fecha fin descendente.
func (r *SubscriptionRepo) List(ctx context.Context, limit, offset int) ([]*entity.Subscription, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+subscriptionColumns+` FROM subscriptions ORDER BY end_date DESC, created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Subscription
	for rows.Next() {
		s, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// ListAll todas las mensualidades (dashboard).
func (r *SubscriptionRepo) ListAll(ctx context.Context) ([]entity.Subscription, error) {
	return r.listValues(ctx, "list all subscriptions", `SELECT `+subscriptionColumns+` FROM subscriptions`)
}

// LockPlate advisory lock transaccional por placa; se libera con el commit o rollback.
func (r *SubscriptionRepo) LockPlate(ctx context.Context, plate string) error {
	_, err := r.q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, "subscription:"+strings.ToLower(plate))
	if err != nil {
		return fmt.Errorf("lock plate: %w", err)
	}
	return nil
}

// ExistsCurrentForPlate mensualidad activa con fecha fin >= today para la placa.
func (r *SubscriptionRepo) ExistsCurrentForPlate(ctx context.Context, plate string, today time.Time, excludeID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM subscriptions
			WHERE lower(plate) = lower($1) AND active AND end_date >= $2
				AND ($3 = '' OR id::text <> $3)
		)`
	var exists bool
	if err := r.q.QueryRow(ctx, query, plate, dateUTC(today.UTC()), excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists current subscription: %w", err)
	}
	return exists, nil
}

// FindCurrentByPlate mensualidad vigente de la placa, la de fecha fin más lejana.
func (r *SubscriptionRepo) FindCurrentByPlate(ctx context.Context, plate string, today time.Time) (*entity.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions
		WHERE lower(plate) = lower($1) AND active AND start_date <= $2 AND end_date >= $2
		ORDER BY end_date DESC LIMIT 1`
	s, err := scanSubscription(r.q.QueryRow(ctx, query, plate, dateUTC(today.UTC())))
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find current subscription: %w", err)
	}
	return s, nil
}

// ListDue activas con today <= fecha fin <= until.
func (r *SubscriptionRepo) ListDue(ctx context.Context, today, until time.Time) ([]entity.Subscription, error) {
	return r.listValues(ctx, "list due subscriptions",
		`SELECT `+subscriptionColumns+` FROM subscriptions
		WHERE active AND end_date >= $1 AND end_date <= $2 ORDER BY end_date`,
		dateUTC(today.UTC()), dateUTC(until.UTC()))
}

func (r *SubscriptionRepo) listValues(ctx context.Context, op, query string, args ...any) ([]entity.Subscription, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []entity.Subscription
	for rows.Next() {
		s, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		list = append(list, *s)
	}
	return list, rows.Err()
}

func scanSubscription(row pgx.Row) (*entity.Subscription, error) {
	var s entity.Subscription
	if err := row.Scan(
		&s.ID, &s.CustomerName, &s.Email, &s.Plate, &s.StartDate, &s.EndDate, &s.Active, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	s.StartDate = dateUTC(s.StartDate)
	s.EndDate = dateUTC(s.EndDate)
	s.CreatedAt = s.CreatedAt.UTC()
	s.UpdatedAt = s.UpdatedAt.UTC()
	return &s, nil
}
