// seed populates a development database with a demo dataset: an admin user,
// a CSM, a few clients with services and one agreement each. It goes through
// the use case layer so seeded data obeys the same rules as the API.
//
// Usage: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"

	appauth "github.com/voyagetech/voyagecrm-api/internal/application/auth"
	"github.com/voyagetech/voyagecrm-api/internal/application/dto"
	"github.com/voyagetech/voyagecrm-api/internal/application/usecase"
	inframail "github.com/voyagetech/voyagecrm-api/internal/infrastructure/mail"
	"github.com/voyagetech/voyagecrm-api/internal/infrastructure/postgres"
	"github.com/voyagetech/voyagecrm-api/pkg/config"
	"github.com/voyagetech/voyagecrm-api/pkg/logger"

	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("load configuration: %v", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("PostgreSQL connection: %v", err)
	}
	defer pool.Close()

	clientRepo := postgres.NewClientRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	agreementRepo := postgres.NewAgreementRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := appauth.NewAuthUseCase(userRepo, appauth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	serviceUC := usecase.NewServiceUseCase(serviceRepo, clientRepo)
	agreementUC := usecase.NewAgreementUseCase(agreementRepo, clientRepo, userRepo, txRunner, inframail.NopSender{}, log)

	admin, err := authUC.Bootstrap(dto.CreateUserRequest{
		Email:    "admin@voyagetech.example",
		Username: "admin",
		Password: "ChangeMe!2025",
		Name:     "Administrator",
		Role:     "admin",
	})
	if err != nil {
		fail("bootstrap admin (database already seeded?): %v", err)
	}
	log.Info().Str("email", admin.Email).Msg("admin created")

	csm, err := userUC.Create(dto.CreateUserRequest{
		Email:    "priya@voyagetech.example",
		Username: "priya.n",
		Password: "ChangeMe!2025",
		Name:     "Priya Narayan",
		Role:     "csm",
	})
	if err != nil {
		fail("create csm: %v", err)
	}

	clients := []dto.CreateClientRequest{
		{Name: "Skyline Airways", Industry: "airlines", Email: "ops@skylineairways.example", GSTTaxID: "29AABCS1429B1Z1", AssignedCSMID: csm.ID},
		{Name: "Globetrot Travels", Industry: "travel_agency", Email: "contact@globetrot.example"},
		{Name: "AeroLink GDS", Industry: "gds", Email: "partners@aerolink.example", AssignedCSMID: csm.ID},
	}
	for _, in := range clients {
		client, err := clientUC.Create(in)
		if err != nil {
			fail("create client %s: %v", in.Name, err)
		}
		if _, err := serviceUC.Create(dto.CreateServiceRequest{
			ClientID:    client.ID,
			ServiceType: "subscription",
			Amount:      decimal.NewFromInt(4500),
			Currency:    "USD",
			Recurring:   true,
			BillingCycle: "monthly",
			StartDate:   "2025-01-01",
		}); err != nil {
			fail("create service for %s: %v", in.Name, err)
		}
		if _, err := agreementUC.Create(ctx, dto.CreateAgreementRequest{
			ClientID:  client.ID,
			Name:      client.Name + " MSA",
			StartDate: "2025-01-01",
			EndDate:   "2026-12-31",
			Value:     decimal.NewFromInt(500000),
			Currency:  "INR",
		}); err != nil {
			fail("create agreement for %s: %v", in.Name, err)
		}
		log.Info().Str("client", client.Name).Msg("client seeded")
	}

	log.Info().Msg("demo dataset seeded")
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
