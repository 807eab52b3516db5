package usecase

import (
	"context"

	"github.com/jhoicas/crudpark-api/internal/application/dto"
	"github.com/jhoicas/crudpark-api/internal/domain"
	"github.com/jhoicas/crudpark-api/internal/domain/entity"
	"github.com/jhoicas/crudpark-api/internal/domain/repository"
)

// PaymentUseCase consulta de pagos. Los pagos solo se crean al registrar una salida.
type PaymentUseCase struct {
	repo repository.PaymentRepository
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(repo repository.PaymentRepository) *PaymentUseCase {
	return &PaymentUseCase{repo: repo}
}

// List lista pagos; con ticketID filtra por ticket (sin paginación).
func (uc *PaymentUseCase) List(ctx context.Context, ticketID string, page dto.PageRequest) ([]dto.PaymentResponse, error) {
	var (
		list []*entity.Payment
		err  error
	)
	if ticketID != "" {
		list, err = uc.repo.ListByTicket(ctx, ticketID)
	} else {
		page.DefaultPage()
		list, err = uc.repo.List(ctx, page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPaymentResponse(p))
	}
	return items, nil
}

// GetByID obtiene un pago por ID.
func (uc *PaymentUseCase) GetByID(ctx context.Context, id string) (*dto.PaymentResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toPaymentResponse(p), nil
}
