package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crudpark-api/internal/application/dto"
	"github.com/jhoicas/crudpark-api/internal/application/ports"
	"github.com/jhoicas/crudpark-api/internal/application/usecase"
	"github.com/jhoicas/crudpark-api/internal/domain"
)

func newTariffUC(repo *memTariffs) (*usecase.TariffUseCase, *memTx) {
	tx := &memTx{tariffs: repo}
	return usecase.NewTariffUseCase(repo, tx, ports.FixedClock{T: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)}), tx
}

func tariffReq(active bool, grace int) dto.TariffRequest {
	return dto.TariffRequest{
		Description:    "Nueva",
		BaseHourlyRate: decimal.NewFromInt(3000),
		FractionRate:   decimal.NewFromInt(1500),
		DailyCap:       decimal.NewFromInt(20000),
		GraceMinutes:   grace,
		Active:         active,
	}
}

func TestTariffGetActive_SinTarifa(t *testing.T) {
	uc, _ := newTariffUC(newMemTariffs(stdTariff("a", false)))
	_, err := uc.GetActive(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoActiveTariff)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTariffCreate_ActivaDesactivaLaAnterior(t *testing.T) {
	repo := newMemTariffs(stdTariff("vieja", true))
	uc, tx := newTariffUC(repo)

	out, err := uc.Create(context.Background(), tariffReq(true, 10))
	require.NoError(t, err)

	assert.Equal(t, 1, tx.runs, "la activación va en una transacción")
	assert.Equal(t, []string{out.ID}, repo.activeIDs())
	assert.Equal(t, 30, out.GraceMinutes, "la gracia se ajusta al mínimo")
}

func TestTariffCreate_InactivaSinTransaccion(t *testing.T) {
	repo := newMemTariffs(stdTariff("vieja", true))
	uc, tx := newTariffUC(repo)

	out, err := uc.Create(context.Background(), tariffReq(false, 45))
	require.NoError(t, err)
	assert.Equal(t, 0, tx.runs)
	assert.Equal(t, 45, out.GraceMinutes)
	assert.Equal(t, []string{"vieja"}, repo.activeIDs())
}

func TestTariffCreate_ValoresNegativos(t *testing.T) {
	uc, _ := newTariffUC(newMemTariffs())
	in := tariffReq(false, 30)
	in.FractionRate = decimal.NewFromInt(-1)
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTariffUpdate_IDDistinto(t *testing.T) {
	uc, _ := newTariffUC(newMemTariffs(stdTariff("a", true)))
	in := tariffReq(true, 30)
	in.ID = "b"
	_, err := uc.Update(context.Background(), "a", in)
	assert.ErrorIs(t, err, domain.ErrIDMismatch)
}

func TestTariffUpdate_ActivarDejaUnaSola(t *testing.T) {
	repo := newMemTariffs(stdTariff("a", true), stdTariff("b", false))
	uc, _ := newTariffUC(repo)

	in := tariffReq(true, 0)
	in.ID = "b"
	out, err := uc.Update(context.Background(), "b", in)
	require.NoError(t, err)
	assert.True(t, out.Active)
	assert.Equal(t, 30, out.GraceMinutes)
	assert.Equal(t, []string{"b"}, repo.activeIDs())
}

func TestTariffUpdate_NoExiste(t *testing.T) {
	uc, _ := newTariffUC(newMemTariffs())
	_, err := uc.Update(context.Background(), "x", tariffReq(false, 30))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTariffActivate(t *testing.T) {
	repo := newMemTariffs(stdTariff("a", true), stdTariff("b", false))
	uc, _ := newTariffUC(repo)

	out, err := uc.Activate(context.Background(), "b")
	require.NoError(t, err)
	assert.True(t, out.Active)
	assert.Equal(t, []string{"b"}, repo.activeIDs())

	_, err = uc.Activate(context.Background(), "zzz")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTariffDeactivate(t *testing.T) {
	repo := newMemTariffs(stdTariff("a", true))
	uc, _ := newTariffUC(repo)

	require.NoError(t, uc.Deactivate(context.Background(), "a"))
	assert.Empty(t, repo.activeIDs())
	assert.Len(t, repo.items, 1, "desactivar no borra")
	assert.ErrorIs(t, uc.Deactivate(context.Background(), "zzz"), domain.ErrNotFound)
}
