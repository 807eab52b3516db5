package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/crudpark-api/internal/application/dto"
	"github.com/jhoicas/crudpark-api/internal/application/ports"
	"github.com/jhoicas/crudpark-api/internal/application/usecase"
	"github.com/jhoicas/crudpark-api/internal/domain"
	"github.com/jhoicas/crudpark-api/internal/domain/entity"
)

func newOperatorUC(repo *memOperators) *usecase.OperatorUseCase {
	return usecase.NewOperatorUseCase(repo, ports.FixedClock{T: time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)})
}

func TestOperatorCreate_HashYRolPorDefecto(t *testing.T) {
	repo := newMemOperators()
	uc := newOperatorUC(repo)

	out, err := uc.Create(context.Background(), dto.OperatorRequest{Name: " Luis ", Email: strPtr(" Luis@Park.CO "), Password: "secreto123"})
	require.NoError(t, err)

	assert.Equal(t, "Luis", out.Name)
	assert.Equal(t, "luis@park.co", *out.Email)
	assert.Equal(t, entity.RoleOperador, out.Role)
	assert.True(t, out.Active)

	stored := repo.items[out.ID]
	assert.NotEqual(t, "secreto123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto123")))
}

func TestOperatorCreate_RolInvalidoYDuplicado(t *testing.T) {
	uc := newOperatorUC(newMemOperators())

	_, err := uc.Create(context.Background(), dto.OperatorRequest{Name: "X", Role: "root"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.OperatorRequest{Name: "A", Email: strPtr("a@x.co")})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), dto.OperatorRequest{Name: "B", Email: strPtr("A@X.CO")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestOperatorUpdate_ConservaPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("original1"), bcrypt.MinCost)
	repo := newMemOperators(entity.Operator{ID: "o-1", Name: "Ana", Role: entity.RoleOperador, Active: true, PasswordHash: string(hash)})
	uc := newOperatorUC(repo)

	out, err := uc.Update(context.Background(), "o-1", dto.OperatorRequest{Name: "Ana M", Role: "ADMIN"})
	require.NoError(t, err)
	assert.Equal(t, "Ana M", out.Name)
	assert.Equal(t, entity.RoleAdmin, out.Role)
	assert.Equal(t, string(hash), repo.items["o-1"].PasswordHash)

	_, err = uc.Update(context.Background(), "o-1", dto.OperatorRequest{ID: "o-2", Name: "x"})
	assert.ErrorIs(t, err, domain.ErrIDMismatch)
	_, err = uc.Update(context.Background(), "zzz", dto.OperatorRequest{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOperatorDelete_UltimoAdmin(t *testing.T) {
	repo := newMemOperators(
		entity.Operator{ID: "adm", Name: "Admin", Role: entity.RoleAdmin, Active: true},
		entity.Operator{ID: "op", Name: "Op", Role: entity.RoleOperador, Active: true},
	)
	uc := newOperatorUC(repo)

	err := uc.Delete(context.Background(), "adm")
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Len(t, repo.items, 2)

	require.NoError(t, uc.Delete(context.Background(), "op"))
	assert.ErrorIs(t, uc.Delete(context.Background(), "op"), domain.ErrNotFound)

	repo.items["adm2"] = &entity.Operator{ID: "adm2", Role: entity.RoleAdmin, Active: true}
	assert.NoError(t, uc.Delete(context.Background(), "adm"))
}
