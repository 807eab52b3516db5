package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/crudpark-api/docs"
	appanalytics "github.com/jhoicas/crudpark-api/internal/application/analytics"
	"github.com/jhoicas/crudpark-api/internal/application/auth"
	"github.com/jhoicas/crudpark-api/internal/application/ports"
	"github.com/jhoicas/crudpark-api/internal/application/usecase"
	infraexport "github.com/jhoicas/crudpark-api/internal/infrastructure/export"
	inframail "github.com/jhoicas/crudpark-api/internal/infrastructure/mail"
	inframetrics "github.com/jhoicas/crudpark-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/crudpark-api/internal/infrastructure/pdf"
	"github.com/jhoicas/crudpark-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/crudpark-api/internal/interfaces/http"
	"github.com/jhoicas/crudpark-api/pkg/config"
	"github.com/jhoicas/crudpark-api/pkg/logger"
)

// @title                       CrudPark API
// @version                     1.0
// @description                 Tarifas, tickets, mensualidades y reportes del parqueadero.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Int("capacidad", cfg.Parking.Capacity).
		Msg("iniciando aplicación")

	loc, err := time.LoadLocation(cfg.Parking.Timezone)
	if err != nil {
		log.Warn().Err(err).Str("tz", cfg.Parking.Timezone).Msg("zona horaria inválida, se usa UTC")
		loc = time.UTC
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	tariffRepo := postgres.NewTariffRepository(pool)
	ticketRepo := postgres.NewTicketRepository(pool)
	subRepo := postgres.NewSubscriptionRepository(pool)
	notifRepo := postgres.NewNotificationRepository(pool)
	operatorRepo := postgres.NewOperatorRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	clock := ports.SystemClock{}

	// Métricas: el observer es no-op cuando están deshabilitadas.
	var observer ports.ParkingObserver = ports.NopObserver{}
	var metrics *inframetrics.Metrics
	if cfg.Metrics.Enabled {
		metrics = inframetrics.New()
		observer = metrics
	}

	// Correo: sin SMTP configurado solo se registra en el log.
	var sender ports.MailSender
	if cfg.Mail.Enabled {
		sender = inframail.NewSMTPSender(cfg.Mail)
	} else {
		sender = inframail.NewLogSender(log)
	}
	if metrics != nil {
		sender = metrics.WrapMailSender(sender)
	}

	receipts := infrapdf.NewMarotoReceiptGenerator(cfg.Parking.Name, loc)

	tariffUC := usecase.NewTariffUseCase(tariffRepo, txRunner, clock)
	ticketUC := usecase.NewTicketUseCase(usecase.TicketDeps{
		Tickets:  ticketRepo,
		Subs:     subRepo,
		Payments: paymentRepo,
		Tariffs:  tariffRepo,
		Tx:       txRunner,
		Receipts: receipts,
		Clock:    clock,
		Observer: observer,
	})
	reportUC := usecase.NewReportUseCase(ticketRepo, cfg.Parking.Capacity, observer)
	subUC := usecase.NewSubscriptionUseCase(subRepo, txRunner, sender, clock, log)
	notifUC := usecase.NewNotificationUseCase(notifRepo, subRepo, sender, clock, log)
	operatorUC := usecase.NewOperatorUseCase(operatorRepo, clock)
	paymentUC := usecase.NewPaymentUseCase(paymentRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(ticketRepo, subRepo, tariffRepo, cfg.Parking.Capacity, clock, observer)
	authUC := auth.NewAuthUseCase(operatorRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	if cfg.Admin.Email != "" && cfg.Admin.Password != "" {
		created, err := authUC.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password, cfg.Admin.Name)
		if err != nil {
			log.Fatal().Err(err).Msg("crear administrador inicial")
		}
		if created {
			log.Info().Str("email", cfg.Admin.Email).Msg("administrador inicial creado")
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.AccessLog(log))
	if metrics != nil {
		app.Use(metrics.Middleware())
	}

	// Swagger UI en local: http://localhost:<port>/docs (solo si se generó swagger.json)
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "CrudPark API",
		}))
	}

	deps := httpRouter.RouterDeps{
		AuthUC:         authUC,
		TariffUC:       tariffUC,
		TicketUC:       ticketUC,
		ReportUC:       reportUC,
		SubscriptionUC: subUC,
		NotificationUC: notifUC,
		OperatorUC:     operatorUC,
		PaymentUC:      paymentUC,
		DashboardUC:    dashboardUC,
		CSVExporter:    infraexport.NewCSVExporter(),
		ExcelExporter:  infraexport.NewExcelExporter(loc),
		JWTSecret:      cfg.JWT.Secret,
		ServiceName:    cfg.App.Name,
	}
	if metrics != nil {
		deps.MetricsHandler = metrics.Handler()
	}
	httpRouter.Router(app, deps)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
