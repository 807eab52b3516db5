package parking_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crudpark-api/internal/domain"
	"github.com/jhoicas/crudpark-api/internal/domain/entity"
	"github.com/jhoicas/crudpark-api/internal/domain/parking"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tarifa de referencia: 2000/hora, 1000/fracción, tope 15000, gracia 30 min.
// ──────────────────────────────────────────────────────────────────────────────

func testTariff() entity.Tariff {
	return entity.Tariff{
		ID:             "t-1",
		BaseHourlyRate: decimal.NewFromInt(2000),
		FractionRate:   decimal.NewFromInt(1000),
		DailyCap:       decimal.NewFromInt(15000),
		GraceMinutes:   30,
		Active:         true,
	}
}

var nueveAM = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func TestComputeFee_EjemplosDeReferencia(t *testing.T) {
	cases := []struct {
		name string
		exit time.Time
		want int64
	}{
		{"dentro de la gracia", nueveAM.Add(20 * time.Minute), 0},
		{"justo en el límite de gracia", nueveAM.Add(30 * time.Minute), 0},
		{"2 horas y 45 minutos", nueveAM.Add(165 * time.Minute), 5000},
		{"24 horas topadas", nueveAM.Add(24 * time.Hour), 15000},
		{"una hora exacta", nueveAM.Add(60 * time.Minute), 2000},
		{"31 minutos cobra fracción", nueveAM.Add(31 * time.Minute), 1000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fee, err := parking.ComputeFee(nueveAM, tc.exit, testTariff())
			require.NoError(t, err)
			assert.True(t, decimal.NewFromInt(tc.want).Equal(fee),
				"esperado %d, obtenido %s", tc.want, fee.String())
		})
	}
}

func TestComputeFee_DuracionNegativaEsErrorDeValidacion(t *testing.T) {
	_, err := parking.ComputeFee(nueveAM, nueveAM.Add(-time.Minute), testTariff())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNegativeDuration))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestComputeFee_ValorHoraCeroSiempreCero(t *testing.T) {
	tar := testTariff()
	tar.BaseHourlyRate = decimal.Zero
	fee, err := parking.ComputeFee(nueveAM, nueveAM.Add(10*time.Hour+5*time.Minute), tar)
	require.NoError(t, err)
	assert.True(t, fee.IsZero())
}

func TestComputeFee_SinTopeNoLimita(t *testing.T) {
	tar := testTariff()
	tar.DailyCap = decimal.Zero
	fee, err := parking.ComputeFee(nueveAM, nueveAM.Add(24*time.Hour), tar)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(48000).Equal(fee))
}

// La calculadora confía en la gracia guardada: no vuelve a aplicar el mínimo de 30.
func TestComputeFee_NoAjustaGraciaAlLeer(t *testing.T) {
	tar := testTariff()
	tar.GraceMinutes = 10
	fee, err := parking.ComputeFee(nueveAM, nueveAM.Add(15*time.Minute), tar)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1000).Equal(fee))
}

func TestComputeFee_RedondeaMitadHaciaArriba(t *testing.T) {
	tar := testTariff()
	tar.BaseHourlyRate = decimal.RequireFromString("1000.005")
	tar.FractionRate = decimal.Zero
	tar.DailyCap = decimal.Zero
	fee, err := parking.ComputeFee(nueveAM, nueveAM.Add(60*time.Minute), tar)
	require.NoError(t, err)
	assert.Equal(t, "1000.01", fee.StringFixed(2))
}

func TestComputeFee_ZonasHorariasMixtas(t *testing.T) {
	bogota := time.FixedZone("COT", -5*3600)
	entry := time.Date(2025, 3, 10, 4, 0, 0, 0, bogota) // 09:00 UTC
	exit := nueveAM.Add(165 * time.Minute)
	fee, err := parking.ComputeFee(entry, exit, testTariff())
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(5000).Equal(fee))
}

// Propiedades: gracia ⇒ 0 y nunca supera el tope.
func TestComputeFee_Propiedades(t *testing.T) {
	tar := testTariff()
	for minutes := 0; minutes <= 3*24*60; minutes += 7 {
		fee, err := parking.ComputeFee(nueveAM, nueveAM.Add(time.Duration(minutes)*time.Minute), tar)
		require.NoError(t, err)
		if minutes <= tar.GraceMinutes {
			assert.True(t, fee.IsZero(), "minutos=%d", minutes)
		}
		assert.True(t, fee.LessThanOrEqual(tar.DailyCap), "minutos=%d fee=%s", minutes, fee)
		assert.False(t, fee.IsNegative())
	}
}

func TestDurationMinutes_TruncaSegundos(t *testing.T) {
	m, err := parking.DurationMinutes(nueveAM, nueveAM.Add(30*time.Minute+59*time.Second))
	require.NoError(t, err)
	assert.Equal(t, int64(30), m)
}

func TestTariffClampGrace(t *testing.T) {
	tar := entity.Tariff{GraceMinutes: 5}
	tar.ClampGrace()
	assert.Equal(t, entity.MinGraceMinutes, tar.GraceMinutes)

	tar.GraceMinutes = 45
	tar.ClampGrace()
	assert.Equal(t, 45, tar.GraceMinutes)
}
