package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/crudpark-api/internal/application/dto"
	"github.com/jhoicas/crudpark-api/internal/application/ports"
	"github.com/jhoicas/crudpark-api/internal/domain"
	"github.com/jhoicas/crudpark-api/internal/domain/entity"
	"github.com/jhoicas/crudpark-api/internal/domain/repository"
)

// TariffUseCase administración de tarifas y selección de la tarifa activa.
type TariffUseCase struct {
	repo  repository.TariffRepository
	tx    TariffTxRunner
	clock ports.Clock
}

// NewTariffUseCase construye el caso de uso.
func NewTariffUseCase(repo repository.TariffRepository, tx TariffTxRunner, clock ports.Clock) *TariffUseCase {
	return &TariffUseCase{repo: repo, tx: tx, clock: clock}
}

// GetActive devuelve la tarifa activa o domain.ErrNoActiveTariff.
func (uc *TariffUseCase) GetActive(ctx context.Context) (*dto.TariffResponse, error) {
	t, err := uc.repo.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNoActiveTariff
	}
	return dto.NewTariffResponse(t), nil
}

// List lista todas las tarifas.
func (uc *TariffUseCase) List(ctx context.Context) ([]dto.TariffResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TariffResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *dto.NewTariffResponse(t))
	}
	return items, nil
}

// GetByID obtiene una tarifa por ID.
func (uc *TariffUseCase) GetByID(ctx context.Context, id string) (*dto.TariffResponse, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewTariffResponse(t), nil
}

// Create crea una tarifa. Si llega activa, la anterior se desactiva en la misma transacción.
func (uc *TariffUseCase) Create(ctx context.Context, in dto.TariffRequest) (*dto.TariffResponse, error) {
	if err := validateTariff(in); err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	t := &entity.Tariff{
		ID:             uuid.New().String(),
		Description:    in.Description,
		BaseHourlyRate: in.BaseHourlyRate,
		FractionRate:   in.FractionRate,
		DailyCap:       in.DailyCap,
		GraceMinutes:   in.GraceMinutes,
		Active:         in.Active,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	t.ClampGrace()

	if !t.Active {
		if err := uc.repo.Create(ctx, t); err != nil {
			return nil, err
		}
		return dto.NewTariffResponse(t), nil
	}
	err := uc.tx.RunTariff(ctx, func(tariffs repository.TariffRepository) error {
		if err := tariffs.DeactivateAll(ctx, ""); err != nil {
			return err
		}
		return tariffs.Create(ctx, t)
	})
	if err != nil {
		return nil, err
	}
	return dto.NewTariffResponse(t), nil
}

// Update reemplaza los valores de una tarifa. El id del cuerpo, si viene, debe coincidir con el de la ruta.
func (uc *TariffUseCase) Update(ctx context.Context, id string, in dto.TariffRequest) (*dto.TariffResponse, error) {
	if in.ID != "" && in.ID != id {
		return nil, domain.ErrIDMismatch
	}
	if err := validateTariff(in); err != nil {
		return nil, err
	}

	var out *entity.Tariff
	err := uc.tx.RunTariff(ctx, func(tariffs repository.TariffRepository) error {
		t, err := tariffs.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if t == nil {
			return domain.ErrNotFound
		}
		t.Description = in.Description
		t.BaseHourlyRate = in.BaseHourlyRate
		t.FractionRate = in.FractionRate
		t.DailyCap = in.DailyCap
		t.GraceMinutes = in.GraceMinutes
		t.Active = in.Active
		t.UpdatedAt = uc.clock.Now()
		t.ClampGrace()

		if t.Active {
			if err := tariffs.DeactivateAll(ctx, t.ID); err != nil {
				return err
			}
		}
		if err := tariffs.Update(ctx, t); err != nil {
			return err
		}
		out = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.NewTariffResponse(out), nil
}

// Activate convierte la tarifa indicada en la única activa.
func (uc *TariffUseCase) Activate(ctx context.Context, id string) (*dto.TariffResponse, error) {
	var out *entity.Tariff
	err := uc.tx.RunTariff(ctx, func(tariffs repository.TariffRepository) error {
		t, err := tariffs.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if t == nil {
			return domain.ErrNotFound
		}
		if err := tariffs.DeactivateAll(ctx, t.ID); err != nil {
			return err
		}
		if err := tariffs.SetActive(ctx, t.ID, true); err != nil {
			return err
		}
		t.Active = true
		out = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.NewTariffResponse(out), nil
}

// Deactivate desactiva una tarifa. DELETE nunca borra filas de tarifas.
func (uc *TariffUseCase) Deactivate(ctx context.Context, id string) error {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SetActive(ctx, id, false)
}

func validateTariff(in dto.TariffRequest) error {
	if in.BaseHourlyRate.IsNegative() || in.FractionRate.IsNegative() || in.DailyCap.IsNegative() {
		return fmt.Errorf("%w: los valores de la tarifa no pueden ser negativos", domain.ErrInvalidInput)
	}
	if in.GraceMinutes < 0 {
		return fmt.Errorf("%w: el tiempo de gracia no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}
