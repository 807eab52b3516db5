package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crudpark-api/internal/application/dto"
	"github.com/jhoicas/crudpark-api/internal/domain"
)

func TestHandleError_Mapeo(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"no encontrado", domain.ErrNotFound, 404, "NOT_FOUND"},
		{"sin tarifa activa", domain.ErrNoActiveTariff, 404, "NOT_FOUND"},
		{"id distinto", domain.ErrIDMismatch, 400, "VALIDATION"},
		{"placa con mensualidad", domain.ErrPlateHasActive, 409, "CONFLICT"},
		{"vehículo dentro", domain.ErrVehicleInside, 409, "CONFLICT"},
		{"ya notificado", domain.ErrAlreadyNotified, 409, "DUPLICATE"},
		{"envuelto", fmt.Errorf("repo: %w", domain.ErrTicketClosed), 409, "CONFLICT"},
		{"no autorizado", domain.ErrUnauthorized, 401, "UNAUTHORIZED"},
		{"prohibido", domain.ErrForbidden, 403, "FORBIDDEN"},
		{"desconocido", errors.New("pool cerrado"), 500, "INTERNAL"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return handleError(c, tc.err) })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tc.status, resp.StatusCode)

			var body dto.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.code, body.Code)
			if tc.status == 500 {
				assert.NotContains(t, body.Message, "pool cerrado")
			}
		})
	}
}

func TestPageFromQuery_Limites(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error { return c.JSON(pageFromQuery(c)) })

	resp, err := app.Test(httptest.NewRequest("GET", "/?limit=500&offset=-3", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var p struct{ Limit, Offset int }
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	assert.Equal(t, 100, p.Limit)
	assert.Equal(t, 0, p.Offset)
}
