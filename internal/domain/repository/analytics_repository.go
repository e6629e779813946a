package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// ClientCounts total and active client counts.
type ClientCounts struct {
	Total  int64
	Active int64
}

// StatusAgg count plus summed amount for invoices in a given status.
type StatusAgg struct {
	Count  int64
	Amount decimal.Decimal
}

// ChurnRiskClient is an active client with no active services or with an
// expired agreement (raw query result for the insights heuristics).
type ChurnRiskClient struct {
	ClientID           string
	Name               string
	ActiveServices     int64
	ExpiredAgreements  int64
}

// UpsellCandidate is a client whose whole portfolio is a single service type.
type UpsellCandidate struct {
	ClientID    string
	Name        string
	ServiceType string
}

// AnalyticsRepository read-only aggregate queries for the dashboard and the
// insight heuristics. Never mutates state.
type AnalyticsRepository interface {
	GetClientCounts(ctx context.Context) (ClientCounts, error)
	CountServices(ctx context.Context) (int64, error)
	SumActiveServiceAmounts(ctx context.Context) (decimal.Decimal, error)
	CountAgreementsExpiringWithin(ctx context.Context, days int) (int64, error)
	GetInvoiceAggByStatus(ctx context.Context, status string) (StatusAgg, error)
	GetCrInvoiceAggByStatus(ctx context.Context, status string) (StatusAgg, error)
	CountUnreadNotifications(ctx context.Context, userID string) (int64, error)
	ListChurnRiskClients(ctx context.Context, limit int) ([]ChurnRiskClient, error)
	ListUpsellCandidates(ctx context.Context, limit int) ([]UpsellCandidate, error)
}
