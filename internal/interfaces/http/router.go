package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/voyagetech/voyagecrm-api/internal/application/analytics"
	"github.com/voyagetech/voyagecrm-api/internal/application/auth"
	"github.com/voyagetech/voyagecrm-api/internal/application/importer"
	"github.com/voyagetech/voyagecrm-api/internal/application/insights"
	"github.com/voyagetech/voyagecrm-api/internal/application/usecase"
	"github.com/voyagetech/voyagecrm-api/internal/domain/entity"
	"github.com/voyagetech/voyagecrm-api/pkg/logger"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	ClientUC       *usecase.ClientUseCase
	ServiceUC      *usecase.ServiceUseCase
	AgreementUC    *usecase.AgreementUseCase
	InvoiceUC      *usecase.InvoiceUseCase
	CrInvoiceUC    *usecase.CrInvoiceUseCase
	CrInvoicePDFUC *usecase.CrInvoicePDFUseCase
	UserUC         *usecase.UserUseCase
	NotificationUC *usecase.NotificationUseCase
	DashboardUC    *appanalytics.DashboardUseCase
	InsightsUC     *insights.InsightsUseCase
	AuthUC         *auth.AuthUseCase
	ImportCreator  *importer.UseCaseCreator
	JWTSecret      string
	Log            *logger.Logger
}

// Router registers the API routes.
//
// Role policy: client-facing records (clients, services, agreements) are
// written by admin and csm; billing records (invoices, CR invoices, imports)
// by admin and finance; user management is admin only. Every authenticated
// role can read.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/bootstrap", authHandler.Bootstrap)

	// Everything else requires a Bearer token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	accountWriters := RequireRole(entity.RoleAdmin, entity.RoleCSM)
	billingWriters := RequireRole(entity.RoleAdmin, entity.RoleFinance)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Clients
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", accountWriters, clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", accountWriters, clientHandler.Update)
	clients.Delete("/:id", accountWriters, clientHandler.Delete)

	// Services
	services := protected.Group("/services")
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	services.Post("/", accountWriters, serviceHandler.Create)
	services.Get("/", serviceHandler.List)
	services.Get("/:id", serviceHandler.GetByID)
	services.Put("/:id", accountWriters, serviceHandler.Update)
	services.Delete("/:id", accountWriters, serviceHandler.Delete)

	// Agreements
	agreements := protected.Group("/agreements")
	agreementHandler := NewAgreementHandler(deps.AgreementUC)
	agreements.Post("/", accountWriters, agreementHandler.Create)
	agreements.Get("/", agreementHandler.List)
	agreements.Get("/:id", agreementHandler.GetByID)
	agreements.Put("/:id", accountWriters, agreementHandler.Update)
	agreements.Delete("/:id", accountWriters, agreementHandler.Delete)

	// Invoices
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Post("/", billingWriters, invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", billingWriters, invoiceHandler.Update)
	invoices.Delete("/:id", billingWriters, invoiceHandler.Delete)

	// CR invoices
	crInvoices := protected.Group("/cr-invoices")
	crInvoiceHandler := NewCrInvoiceHandler(deps.CrInvoiceUC, deps.CrInvoicePDFUC)
	crInvoices.Post("/", billingWriters, crInvoiceHandler.Create)
	crInvoices.Get("/", crInvoiceHandler.List)
	crInvoices.Get("/:id", crInvoiceHandler.GetByID)
	crInvoices.Get("/:id/pdf", crInvoiceHandler.PDF)
	crInvoices.Put("/:id", billingWriters, crInvoiceHandler.Update)
	crInvoices.Delete("/:id", billingWriters, crInvoiceHandler.Delete)

	// Users (admin only)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Notifications (own feed)
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Put("/:id/read", notificationHandler.MarkRead)

	// Dashboard and insights
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)
	insightsHandler := NewInsightsHandler(deps.InsightsUC)
	protected.Get("/insights", insightsHandler.Get)

	// Bulk imports
	imports := protected.Group("/imports")
	importHandler := NewImportHandler(deps.ImportCreator, deps.Log)
	imports.Post("/:kind", billingWriters, importHandler.Run)
	imports.Get("/:kind/sample", importHandler.Sample)
}
