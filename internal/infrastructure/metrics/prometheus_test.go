package metrics

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSender struct{ err error }

func (s stubSender) Send(context.Context, string, string, string) error { return s.err }

func TestObserver_IngresoYSalida(t *testing.T) {
	m := New()
	m.InsideObserved(3)
	m.VehicleEntered("Invitado")
	m.VehicleExited("Invitado", decimal.NewFromInt(4500))
	m.VehicleExited("Mensual", decimal.Zero)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.vehiclesIn))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.entries.WithLabelValues("invitado")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ticketsClosed.WithLabelValues("mensual")))
	assert.Equal(t, float64(4500), testutil.ToFloat64(m.revenue.WithLabelValues("invitado")))
}

func TestObserver_TiposLibresSeAgrupan(t *testing.T) {
	m := New()
	for _, kind := range []string{"moto", "Bicicleta", "VIP-123", " INVITADO ", ""} {
		m.VehicleEntered(kind)
	}

	assert.Equal(t, 3, testutil.CollectAndCount(m.entries))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.entries.WithLabelValues("otro")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.entries.WithLabelValues("invitado")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.entries.WithLabelValues("sin_tipo")))
}

func TestWrapMailSender_CuentaResultados(t *testing.T) {
	m := New()
	ok := m.WrapMailSender(stubSender{})
	bad := m.WrapMailSender(stubSender{err: errors.New("smtp caído")})

	require.NoError(t, ok.Send(context.Background(), "a@b.co", "s", "b"))
	require.Error(t, bad.Send(context.Background(), "a@b.co", "s", "b"))
	require.Error(t, bad.Send(context.Background(), "a@b.co", "s", "b"))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.mailSent.WithLabelValues("ok")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.mailSent.WithLabelValues("error")))
}

func TestMiddleware_UsaRutaRegistrada(t *testing.T) {
	m := New()
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/tickets/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest("GET", "/tickets/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/tickets/:id", "204")))
}

func TestHandler_Expone(t *testing.T) {
	m := New()
	m.VehicleEntered("Invitado")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	assert.True(t, strings.Contains(string(body), "crudpark_tickets_opened_total"))
}
