// Package metrics expone contadores Prometheus de la API y de la portería.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/crudpark-api/internal/application/ports"
	"github.com/jhoicas/crudpark-api/internal/domain/entity"
)

const namespace = "crudpark"

var _ ports.ParkingObserver = (*Metrics)(nil)

// Metrics agrupa los colectores sobre un registro propio (no el global).
type Metrics struct {
	registry *prometheus.Registry

	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	mailSent      *prometheus.CounterVec
	vehiclesIn    prometheus.Gauge
	entries       *prometheus.CounterVec
	ticketsClosed *prometheus.CounterVec
	revenue       *prometheus.CounterVec
}

// New registra todos los colectores. Incluye los de proceso y runtime de Go.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Peticiones HTTP atendidas.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latencia de las peticiones HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		mailSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mail_sent_total",
			Help:      "Correos intentados por resultado.",
		}, []string{"result"}),
		vehiclesIn: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "vehicles_inside",
			Help:      "Vehículos dentro en la última observación.",
		}),
		entries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tickets_opened_total",
			Help:      "Ingresos registrados por tipo.",
		}, []string{"kind"}),
		ticketsClosed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tickets_closed_total",
			Help:      "Salidas registradas por tipo.",
		}, []string{"kind"}),
		revenue: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "revenue_cop_total",
			Help:      "Valor cobrado en salidas, en pesos.",
		}, []string{"kind"}),
	}
	m.registry.MustRegister(
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
		m.httpRequests, m.httpDuration, m.mailSent,
		m.vehiclesIn, m.entries, m.ticketsClosed, m.revenue,
	)
	return m
}

// Registry registro subyacente (para pruebas).
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler http.Handler de exposición en formato Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ── ParkingObserver ─────────────────────────────────────────────────────────

func (m *Metrics) VehicleEntered(kind string) {
	m.entries.WithLabelValues(kindLabel(kind)).Inc()
	m.vehiclesIn.Inc()
}

func (m *Metrics) VehicleExited(kind string, amount decimal.Decimal) {
	k := kindLabel(kind)
	m.ticketsClosed.WithLabelValues(k).Inc()
	if amount.IsPositive() {
		f, _ := amount.Float64()
		m.revenue.WithLabelValues(k).Add(f)
	}
	m.vehiclesIn.Dec()
}

func (m *Metrics) InsideObserved(n int) { m.vehiclesIn.Set(float64(n)) }

// kindLabel acota la etiqueta: el tipo de ticket es texto libre, solo los conocidos
// tienen serie propia.
func kindLabel(kind string) string {
	switch k := strings.ToLower(strings.TrimSpace(kind)); k {
	case entity.TicketKindMensual, entity.TicketKindInvitado:
		return k
	case "":
		return "sin_tipo"
	}
	return "otro"
}

// ── HTTP ────────────────────────────────────────────────────────────────────

// Middleware cuenta peticiones y latencia usando la ruta registrada (no la URL cruda).
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		m.httpRequests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.httpDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

// ── Correo ──────────────────────────────────────────────────────────────────

// InstrumentedMailSender cuenta los envíos ok/error del sender envuelto.
type InstrumentedMailSender struct {
	next    ports.MailSender
	counter *prometheus.CounterVec
}

var _ ports.MailSender = (*InstrumentedMailSender)(nil)

// WrapMailSender decora next con el contador mail_sent_total.
func (m *Metrics) WrapMailSender(next ports.MailSender) *InstrumentedMailSender {
	return &InstrumentedMailSender{next: next, counter: m.mailSent}
}

func (s *InstrumentedMailSender) Send(ctx context.Context, to, subject, body string) error {
	err := s.next.Send(ctx, to, subject, body)
	if err != nil {
		s.counter.WithLabelValues("error").Inc()
		return err
	}
	s.counter.WithLabelValues("ok").Inc()
	return nil
}
