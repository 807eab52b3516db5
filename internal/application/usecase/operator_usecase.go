package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/crudpark-api/internal/application/dto"
	"github.com/jhoicas/crudpark-api/internal/application/ports"
	"github.com/jhoicas/crudpark-api/internal/domain"
	"github.com/jhoicas/crudpark-api/internal/domain/entity"
	"github.com/jhoicas/crudpark-api/internal/domain/repository"
)

// OperatorUseCase CRUD de operadores de portería.
type OperatorUseCase struct {
	repo  repository.OperatorRepository
	clock ports.Clock
}

// NewOperatorUseCase construye el caso de uso.
func NewOperatorUseCase(repo repository.OperatorRepository, clock ports.Clock) *OperatorUseCase {
	return &OperatorUseCase{repo: repo, clock: clock}
}

// Create crea un operador; el password se guarda como hash bcrypt.
func (uc *OperatorUseCase) Create(ctx context.Context, in dto.OperatorRequest) (*dto.OperatorResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	role, err := normalizeRole(in.Role)
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	op := &entity.Operator{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     normalizeEmail(in.Email),
		Role:      role,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Active != nil {
		op.Active = *in.Active
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		op.PasswordHash = string(hash)
	}
	if err := uc.repo.Create(ctx, op); err != nil {
		return nil, err
	}
	return toOperatorResponse(op), nil
}

// Update actualiza un operador. Password vacío conserva el actual.
func (uc *OperatorUseCase) Update(ctx context.Context, id string, in dto.OperatorRequest) (*dto.OperatorResponse, error) {
	if in.ID != "" && in.ID != id {
		return nil, domain.ErrIDMismatch
	}
	op, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, domain.ErrNotFound
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		op.Name = name
	}
	op.Email = normalizeEmail(in.Email)
	if in.Role != "" {
		role, err := normalizeRole(in.Role)
		if err != nil {
			return nil, err
		}
		op.Role = role
	}
	if in.Active != nil {
		op.Active = *in.Active
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		op.PasswordHash = string(hash)
	}
	op.UpdatedAt = uc.clock.Now()
	if err := uc.repo.Update(ctx, op); err != nil {
		return nil, err
	}
	return toOperatorResponse(op), nil
}

// GetByID obtiene un operador por ID.
func (uc *OperatorUseCase) GetByID(ctx context.Context, id string) (*dto.OperatorResponse, error) {
	op, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, domain.ErrNotFound
	}
	return toOperatorResponse(op), nil
}

// List lista todos los operadores.
func (uc *OperatorUseCase) List(ctx context.Context) ([]dto.OperatorResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OperatorResponse, 0, len(list))
	for _, op := range list {
		items = append(items, *toOperatorResponse(op))
	}
	return items, nil
}

// Delete borra el operador. No permite dejar el sistema sin administradores.
func (uc *OperatorUseCase) Delete(ctx context.Context, id string) error {
	op, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if op == nil {
		return domain.ErrNotFound
	}
	if op.Role == entity.RoleAdmin {
		n, err := uc.repo.CountAdmins(ctx)
		if err != nil {
			return err
		}
		if n <= 1 {
			return fmt.Errorf("%w: no se puede eliminar el último administrador", domain.ErrConflict)
		}
	}
	return uc.repo.Delete(ctx, id)
}

func normalizeRole(role string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "", entity.RoleOperador:
		return entity.RoleOperador, nil
	case entity.RoleAdmin:
		return entity.RoleAdmin, nil
	}
	return "", fmt.Errorf("%w: rol %q no válido", domain.ErrInvalidInput, role)
}

func normalizeEmail(email *string) *string {
	if email == nil {
		return nil
	}
	e := strings.ToLower(strings.TrimSpace(*email))
	if e == "" {
		return nil
	}
	return &e
}
