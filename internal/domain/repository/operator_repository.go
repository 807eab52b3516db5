package repository

import (
	"context"

	"github.com/jhoicas/crudpark-api/internal/domain/entity"
)

// OperatorRepository define el puerto de persistencia para operadores (DIP).
type OperatorRepository interface {
	Create(ctx context.Context, op *entity.Operator) error
	Update(ctx context.Context, op *entity.Operator) error
	GetByID(ctx context.Context, id string) (*entity.Operator, error)
	GetByEmail(ctx context.Context, email string) (*entity.Operator, error)
	List(ctx context.Context) ([]*entity.Operator, error)
	Delete(ctx context.Context, id string) error
	CountAdmins(ctx context.Context) (int, error)
}
