package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/crudpark-api/internal/domain/entity"
	"github.com/jhoicas/crudpark-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository sobre PostgreSQL (usable con pool o tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador de pagos. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create registra un pago.
func (r *PaymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO payments (id, ticket_id, method, amount, paid_at)
		VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.TicketID, p.Method, p.Amount, p.PaidAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID obtiene un pago por ID.
func (r *PaymentRepo) GetByID(ctx context.Context, id string) (*entity.Payment, error) {
	var p entity.Payment
	err := r.q.QueryRow(ctx,
		`SELECT id, ticket_id, method, amount, paid_at FROM payments WHERE id = $1`, id,
	).Scan(&p.ID, &p.TicketID, &p.Method, &p.Amount, &p.PaidAt)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	p.PaidAt = p.PaidAt.UTC()
	return &p, nil
}

// List lista pagos paginados, más recientes primero.
func (r *PaymentRepo) List(ctx context.Context, limit, offset int) ([]*entity.Payment, error) {
	return r.list(ctx, `SELECT id, ticket_id, method, amount, paid_at FROM payments
		ORDER BY paid_at DESC LIMIT $1 OFFSET $2`, limit, offset)
}

// ListByTicket pagos de un ticket.
// Un id que no es UUID no puede tener pagos.
func (r *PaymentRepo) ListByTicket(ctx context.Context, ticketID string) ([]*entity.Payment, error) {
	if _, err := uuid.Parse(ticketID); err != nil {
		return nil, nil
	}
	return r.list(ctx, `SELECT id, ticket_id, method, amount, paid_at FROM payments
		WHERE ticket_id = $1 ORDER BY paid_at DESC`, ticketID)
}

func (r *PaymentRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Payment, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.TicketID, &p.Method, &p.Amount, &p.PaidAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		p.PaidAt = p.PaidAt.UTC()
		list = append(list, &p)
	}
	return list, rows.Err()
}
