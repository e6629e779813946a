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

	appanalytics "github.com/voyagetech/voyagecrm-api/internal/application/analytics"
	"github.com/voyagetech/voyagecrm-api/internal/application/auth"
	"github.com/voyagetech/voyagecrm-api/internal/application/importer"
	"github.com/voyagetech/voyagecrm-api/internal/application/insights"
	"github.com/voyagetech/voyagecrm-api/internal/application/usecase"
	inframail "github.com/voyagetech/voyagecrm-api/internal/infrastructure/mail"
	infrapdf "github.com/voyagetech/voyagecrm-api/internal/infrastructure/pdf"
	"github.com/voyagetech/voyagecrm-api/internal/infrastructure/postgres"
	httpRouter "github.com/voyagetech/voyagecrm-api/internal/interfaces/http"
	"github.com/voyagetech/voyagecrm-api/pkg/config"
	"github.com/voyagetech/voyagecrm-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	clientRepo := postgres.NewClientRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	agreementRepo := postgres.NewAgreementRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	crInvoiceRepo := postgres.NewCrInvoiceRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	var mailSender usecase.MailSender = inframail.NopSender{}
	if cfg.SMTP.Enabled() {
		mailSender = inframail.NewGomailSender(cfg.SMTP)
	} else {
		log.Warn().Msg("SMTP not configured, agreement emails disabled")
	}

	clientUC := usecase.NewClientUseCase(clientRepo)
	serviceUC := usecase.NewServiceUseCase(serviceRepo, clientRepo)
	agreementUC := usecase.NewAgreementUseCase(agreementRepo, clientRepo, userRepo, txRunner, mailSender, log)
	invoiceUC := usecase.NewInvoiceUseCase(invoiceRepo, clientRepo)
	crInvoiceUC := usecase.NewCrInvoiceUseCase(crInvoiceRepo, clientRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)
	insightsUC := insights.NewInsightsUseCase(analyticsRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	crInvoicePDFUC := usecase.NewCrInvoicePDFUseCase(crInvoiceRepo, clientRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	importCreator := importer.NewUseCaseCreator(
		clientUC, serviceUC, agreementUC, userUC, crInvoiceUC,
		clientRepo, userRepo,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    10 * 1024 * 1024, // spreadsheet uploads
	})
	app.Use(recover.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "VoyageCRM API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClientUC:       clientUC,
		ServiceUC:      serviceUC,
		AgreementUC:    agreementUC,
		InvoiceUC:      invoiceUC,
		CrInvoiceUC:    crInvoiceUC,
		CrInvoicePDFUC: crInvoicePDFUC,
		UserUC:         userUC,
		NotificationUC: notificationUC,
		DashboardUC:    dashboardUC,
		InsightsUC:     insightsUC,
		AuthUC:         authUC,
		ImportCreator:  importCreator,
		JWTSecret:      cfg.JWT.Secret,
		Log:            log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
