package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/crudpark-api/internal/application/dto"
	"github.com/jhoicas/crudpark-api/internal/domain"
	"github.com/jhoicas/crudpark-api/internal/domain/entity"
	"github.com/jhoicas/crudpark-api/internal/domain/repository"
	"github.com/jhoicas/crudpark-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación de operadores.
type AuthUseCase struct {
	operatorRepo repository.OperatorRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(operatorRepo repository.OperatorRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{operatorRepo: operatorRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password, genera JWT y retorna token + operador.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	op, err := uc.operatorRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	// Mismo error para email inexistente y password incorrecto.
	if op == nil || op.PasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !op.Active {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, op.ID, op.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:    token,
		Operator: *toOperatorResponse(op),
	}, nil
}

// EnsureAdmin crea el administrador inicial si no existe ninguno. Devuelve true si lo creó.
// Sin email o password configurados no hace nada.
func (uc *AuthUseCase) EnsureAdmin(ctx context.Context, email, password, name string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return false, nil
	}
	n, err := uc.operatorRepo.CountAdmins(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	if name == "" {
		name = "Administrador"
	}
	now := time.Now().UTC()
	op := &entity.Operator{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        &email,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.operatorRepo.Create(ctx, op); err != nil {
		return false, err
	}
	return true, nil
}

func toOperatorResponse(o *entity.Operator) *dto.OperatorResponse {
	if o == nil {
		return nil
	}
	return &dto.OperatorResponse{
		ID:        o.ID,
		Name:      o.Name,
		Email:     o.Email,
		Role:      o.Role,
		Active:    o.Active,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
