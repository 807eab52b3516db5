package repository

import (
	"context"

	"github.com/jhoicas/crudpark-api/internal/domain/entity"
)

// PaymentRepository define el puerto de persistencia para pagos.
type PaymentRepository interface {
	Create(ctx context.Context, p *entity.Payment) error
	GetByID(ctx context.Context, id string) (*entity.Payment, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Payment, error)
	ListByTicket(ctx context.Context, ticketID string) ([]*entity.Payment, error)
}
