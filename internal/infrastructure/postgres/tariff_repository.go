package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/crudpark-api/internal/domain/entity"
	"github.com/jhoicas/crudpark-api/internal/domain/repository"
)

var _ repository.TariffRepository = (*TariffRepo)(nil)

const tariffColumns = `id, description, base_hourly_rate, fraction_rate, daily_cap, grace_minutes, active, created_at, updated_at`

// TariffRepo implementación de TariffRepository sobre PostgreSQL (usable con pool o tx).
type TariffRepo struct {
	q Querier
}

// NewTariffRepository construye el adaptador de tarifas. Pasar pool o tx (Querier).
func NewTariffRepository(q Querier) *TariffRepo {
	return &TariffRepo{q: q}
}

// Create persiste una tarifa.
func (r *TariffRepo) Create(ctx context.Context, t *entity.Tariff) error {
	query := `
		INSERT INTO tariffs (` + tariffColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.Description, t.BaseHourlyRate, t.FractionRate, t.DailyCap, t.GraceMinutes, t.Active,
		t.CreatedAt.UTC(), t.UpdatedAt.UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return mapUniqueViolation(err)
		}
		return fmt.Errorf("insert tariff: %w", err)
	}
	return nil
}

// Update actualiza todos los campos editables.
func (r *TariffRepo) Update(ctx context.Context, t *entity.Tariff) error {
	query := `
		UPDATE tariffs SET description = $2, base_hourly_rate = $3, fraction_rate = $4, daily_cap = $5,
			grace_minutes = $6, active = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.Description, t.BaseHourlyRate, t.FractionRate, t.DailyCap, t.GraceMinutes, t.Active, t.UpdatedAt.UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return mapUniqueViolation(err)
		}
		return fmt.Errorf("update tariff: %w", err)
	}
	return nil
}

// GetByID obtiene una tarifa por ID.
func (r *TariffRepo) GetByID(ctx context.Context, id string) (*entity.Tariff, error) {
	row := r.q.QueryRow(ctx, `SELECT `+tariffColumns+` FROM tariffs WHERE id = $1`, id)
	t, err := scanTariff(row)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tariff: %w", err)
	}
	return t, nil
}

// GetActive obtiene la tarifa activa.
func (r *TariffRepo) GetActive(ctx context.Context) (*entity.Tariff, error) {
	row := r.q.QueryRow(ctx, `SELECT `+tariffColumns+` FROM tariffs WHERE active LIMIT 1`)
	t, err := scanTariff(row)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active tariff: %w", err)
	}
	return t, nil
}

// List lista todas las tarifas, la activa primero.
func (r *TariffRepo) List(ctx context.Context) ([]*entity.Tariff, error) {
	rows, err := r.q.Query(ctx, `SELECT `+tariffColumns+` FROM tariffs ORDER BY active DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list tariffs: %w", err)
	}
	defer rows.Close()
	var list []*entity.Tariff
	for rows.Next() {
		t, err := scanTariff(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tariff: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// DeactivateAll desactiva todas las tarifas activas salvo exceptID.
func (r *TariffRepo) DeactivateAll(ctx context.Context, exceptID string) error {
	var err error
	if exceptID == "" {
		_, err = r.q.Exec(ctx, `UPDATE tariffs SET active = FALSE, updated_at = now() WHERE active`)
	} else {
		_, err = r.q.Exec(ctx, `UPDATE tariffs SET active = FALSE, updated_at = now() WHERE active AND id <> $1`, exceptID)
	}
	if err != nil {
		return fmt.Errorf("deactivate tariffs: %w", err)
	}
	return nil
}

// SetActive cambia el flag activo de una tarifa.
func (r *TariffRepo) SetActive(ctx context.Context, id string, active bool) error {
	_, err := r.q.Exec(ctx, `UPDATE tariffs SET active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		if isUniqueViolation(err) {
			return mapUniqueViolation(err)
		}
		return fmt.Errorf("set tariff active: %w", err)
	}
	return nil
}

func scanTariff(row pgx.Row) (*entity.Tariff, error) {
	var t entity.Tariff
	if err := row.Scan(
		&t.ID, &t.Description, &t.BaseHourlyRate, &t.FractionRate, &t.DailyCap, &t.GraceMinutes, &t.Active,
		&t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return &t, nil
}
