package parking_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crudpark-api/internal/domain"
	"github.com/jhoicas/crudpark-api/internal/domain/parking"
)

func TestOccupancyRatio(t *testing.T) {
	ratio, err := parking.OccupancyRatio(37, 100)
	require.NoError(t, err)
	assert.Equal(t, "37.00", ratio.StringFixed(2))

	ratio, err = parking.OccupancyRatio(1, 3)
	require.NoError(t, err)
	assert.Equal(t, "33.33", ratio.StringFixed(2))

	ratio, err = parking.OccupancyRatio(0, 50)
	require.NoError(t, err)
	assert.True(t, ratio.IsZero())
}

func TestOccupancyRatio_CapacidadInvalida(t *testing.T) {
	_, err := parking.OccupancyRatio(3, 0)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = parking.OccupancyRatio(-1, 10)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
