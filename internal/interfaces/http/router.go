package http

import (
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	appanalytics "github.com/jhoicas/crudpark-api/internal/application/analytics"
	"github.com/jhoicas/crudpark-api/internal/application/auth"
	"github.com/jhoicas/crudpark-api/internal/application/ports"
	"github.com/jhoicas/crudpark-api/internal/application/usecase"
	"github.com/jhoicas/crudpark-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	TariffUC       *usecase.TariffUseCase
	TicketUC       *usecase.TicketUseCase
	ReportUC       *usecase.ReportUseCase
	SubscriptionUC *usecase.SubscriptionUseCase
	NotificationUC *usecase.NotificationUseCase
	OperatorUC     *usecase.OperatorUseCase
	PaymentUC      *usecase.PaymentUseCase
	DashboardUC    *appanalytics.DashboardUseCase
	CSVExporter    ports.TicketExporter
	ExcelExporter  ports.TicketExporter
	MetricsHandler nethttp.Handler // nil = /metrics deshabilitado
	JWTSecret      string
	ServiceName    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})
	if deps.MetricsHandler != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.MetricsHandler))
	}

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Todo lo demás requiere Bearer Token
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Tarifas: lectura para todos, escritura solo admin
	tariffs := protected.Group("/tarifas")
	tariffHandler := NewTariffHandler(deps.TariffUC)
	tariffs.Get("/", tariffHandler.List)
	tariffs.Get("/activa", tariffHandler.GetActive)
	tariffs.Get("/:id", tariffHandler.GetByID)
	tariffs.Post("/", adminOnly, tariffHandler.Create)
	tariffs.Put("/:id", adminOnly, tariffHandler.Update)
	tariffs.Post("/:id/activar", adminOnly, tariffHandler.Activate)
	tariffs.Delete("/:id", adminOnly, tariffHandler.Delete)

	// Tickets y reportes (las rutas fijas van antes de /:id)
	tickets := protected.Group("/tickets")
	ticketHandler := NewTicketHandler(deps.TicketUC, deps.ReportUC, deps.CSVExporter, deps.ExcelExporter)
	tickets.Post("/ingreso", ticketHandler.RegisterEntry)
	tickets.Get("/ingresos", ticketHandler.Revenue)
	tickets.Get("/ocupacion", ticketHandler.Occupancy)
	tickets.Get("/comparativa", ticketHandler.Comparison)
	tickets.Get("/export/csv", ticketHandler.ExportCSV)
	tickets.Get("/export/excel", ticketHandler.ExportExcel)
	tickets.Get("/", ticketHandler.List)
	tickets.Get("/:id", ticketHandler.GetByID)
	tickets.Get("/:id/recibo", ticketHandler.Receipt)
	tickets.Post("/:id/salida", ticketHandler.RegisterExit)

	// Mensualidades
	subs := protected.Group("/mensualidades")
	subHandler := NewSubscriptionHandler(deps.SubscriptionUC)
	subs.Post("/enviar-recordatorios", subHandler.SendReminders)
	subs.Get("/", subHandler.List)
	subs.Post("/", subHandler.Create)
	subs.Get("/:id", subHandler.GetByID)
	subs.Put("/:id", subHandler.Update)
	subs.Delete("/:id", subHandler.Delete)

	// Notificaciones
	notifs := protected.Group("/notificaciones")
	notifHandler := NewNotificationHandler(deps.NotificationUC)
	notifs.Get("/", notifHandler.List)
	notifs.Post("/enviar-creacion/:idMensualidad", notifHandler.SendCreation)
	notifs.Post("/enviar-vencimientos", notifHandler.SendExpiry)

	// Operadores (solo admin)
	ops := protected.Group("/operadores", adminOnly)
	opHandler := NewOperatorHandler(deps.OperatorUC)
	ops.Get("/", opHandler.List)
	ops.Post("/", opHandler.Create)
	ops.Get("/:id", opHandler.GetByID)
	ops.Put("/:id", opHandler.Update)
	ops.Delete("/:id", opHandler.Delete)

	// Pagos (solo lectura)
	payments := protected.Group("/pagos")
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Get("/", paymentHandler.List)
	payments.Get("/:id", paymentHandler.GetByID)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.GetSummary)
}
