package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/crudpark-api/internal/domain"
	"github.com/jhoicas/crudpark-api/internal/domain/entity"
	"github.com/jhoicas/crudpark-api/internal/domain/repository"
)

var _ repository.OperatorRepository = (*OperatorRepo)(nil)

const operatorColumns = `id, name, email, password_hash, role, active, created_at, updated_at`

// OperatorRepo implementación del puerto OperatorRepository sobre PostgreSQL.
type OperatorRepo struct {
	q Querier
}

// NewOperatorRepository construye el adaptador de persistencia para operadores.
func NewOperatorRepository(q Querier) *OperatorRepo {
	return &OperatorRepo{q: q}
}

// Create persiste un nuevo operador.
func (r *OperatorRepo) Create(ctx context.Context, op *entity.Operator) error {
	query := `
		INSERT INTO operators (` + operatorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		op.ID, op.Name, op.Email, op.PasswordHash, op.Role, op.Active, op.CreatedAt.UTC(), op.UpdatedAt.UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return mapUniqueViolation(err)
		}
		return fmt.Errorf("insert operator: %w", err)
	}
	return nil
}

// Update actualiza un operador.
func (r *OperatorRepo) Update(ctx context.Context, op *entity.Operator) error {
	query := `
		UPDATE operators SET name = $2, email = $3, password_hash = $4, role = $5, active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		op.ID, op.Name, op.Email, op.PasswordHash, op.Role, op.Active, op.UpdatedAt.UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return mapUniqueViolation(err)
		}
		return fmt.Errorf("update operator: %w", err)
	}
	return nil
}

// GetByID obtiene un operador por ID.
func (r *OperatorRepo) GetByID(ctx context.Context, id string) (*entity.Operator, error) {
	return r.getOne(ctx, "get operator by id", `SELECT `+operatorColumns+` FROM operators WHERE id = $1`, id)
}

// GetByEmail obtiene un operador por email (insensible a mayúsculas).
func (r *OperatorRepo) GetByEmail(ctx context.Context, email string) (*entity.Operator, error) {
	return r.getOne(ctx, "get operator by email",
		`SELECT `+operatorColumns+` FROM operators WHERE lower(email) = lower($1) LIMIT 1`, email)
}

// List lista todos los operadores por nombre.
func (r *OperatorRepo) List(ctx context.Context) ([]*entity.Operator, error) {
	rows, err := r.q.Query(ctx, `SELECT `+operatorColumns+` FROM operators ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list operators: %w", err)
	}
	defer rows.Close()
	var list []*entity.Operator
	for rows.Next() {
		op, err := scanOperator(rows)
		if err != nil {
			return nil, fmt.Errorf("scan operator: %w", err)
		}
		list = append(list, op)
	}
	return list, rows.Err()
}

// Delete elimina un operador por ID.
func (r *OperatorRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM operators WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete operator: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountAdmins cuenta los administradores activos.
func (r *OperatorRepo) CountAdmins(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM operators WHERE role = $1 AND active`, entity.RoleAdmin).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}
	return n, nil
}

func (r *OperatorRepo) getOne(ctx context.Context, op, query string, args ...any) (*entity.Operator, error) {
	o, err := scanOperator(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return o, nil
}

func scanOperator(row pgx.Row) (*entity.Operator, error) {
	var o entity.Operator
	if err := row.Scan(&o.ID, &o.Name, &o.Email, &o.PasswordHash, &o.Role, &o.Active, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	o.CreatedAt = o.CreatedAt.UTC()
	o.UpdatedAt = o.UpdatedAt.UTC()
	return &o, nil
}
