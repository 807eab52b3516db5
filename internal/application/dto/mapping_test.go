package dto_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crudpark-api/internal/application/dto"
	"github.com/jhoicas/crudpark-api/internal/domain/entity"
	"github.com/jhoicas/crudpark-api/internal/domain/parking"
)

func TestNewTariffResponse(t *testing.T) {
	assert.Nil(t, dto.NewTariffResponse(nil))

	created := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	got := dto.NewTariffResponse(&entity.Tariff{
		ID:             "tar-1",
		Description:    "General",
		BaseHourlyRate: decimal.NewFromInt(2000),
		FractionRate:   decimal.NewFromInt(500),
		DailyCap:       decimal.NewFromInt(15000),
		GraceMinutes:   30,
		Active:         true,
		CreatedAt:      created,
		UpdatedAt:      created,
	})
	require.NotNil(t, got)
	assert.Equal(t, "tar-1", got.ID)
	assert.Equal(t, "General", got.Description)
	assert.True(t, got.BaseHourlyRate.Equal(decimal.NewFromInt(2000)))
	assert.True(t, got.FractionRate.Equal(decimal.NewFromInt(500)))
	assert.True(t, got.DailyCap.Equal(decimal.NewFromInt(15000)))
	assert.Equal(t, 30, got.GraceMinutes)
	assert.True(t, got.Active)
	assert.Equal(t, created, got.CreatedAt)
}

func TestNewRevenueBuckets(t *testing.T) {
	assert.NotNil(t, dto.NewRevenueBuckets(nil))
	assert.Empty(t, dto.NewRevenueBuckets(nil))

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	got := dto.NewRevenueBuckets([]parking.RevenueBucket{
		{Key: "2025-06", Year: 2025, Period: 6, Start: start, Total: decimal.NewFromInt(9000), Count: 3},
	})
	require.Len(t, got, 1)
	assert.Equal(t, "2025-06", got[0].Key)
	assert.Equal(t, 2025, got[0].Year)
	assert.Equal(t, 6, got[0].Period)
	assert.Equal(t, start, got[0].Start)
	assert.True(t, got[0].Total.Equal(decimal.NewFromInt(9000)))
	assert.Equal(t, 3, got[0].Count)
}
