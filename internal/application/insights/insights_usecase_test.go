package insights_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyagetech/voyagecrm-api/internal/application/insights"
	"github.com/voyagetech/voyagecrm-api/internal/domain/repository"
)

type stubAnalyticsRepo struct {
	revenue decimal.Decimal
	churn   []repository.ChurnRiskClient
	upsell  []repository.UpsellCandidate
}

func (s *stubAnalyticsRepo) GetClientCounts(context.Context) (repository.ClientCounts, error) {
	return repository.ClientCounts{}, nil
}
func (s *stubAnalyticsRepo) CountServices(context.Context) (int64, error) { return 0, nil }
func (s *stubAnalyticsRepo) SumActiveServiceAmounts(context.Context) (decimal.Decimal, error) {
	return s.revenue, nil
}
func (s *stubAnalyticsRepo) CountAgreementsExpiringWithin(context.Context, int) (int64, error) {
	return 0, nil
}
func (s *stubAnalyticsRepo) GetInvoiceAggByStatus(context.Context, string) (repository.StatusAgg, error) {
	return repository.StatusAgg{}, nil
}
func (s *stubAnalyticsRepo) GetCrInvoiceAggByStatus(context.Context, string) (repository.StatusAgg, error) {
	return repository.StatusAgg{}, nil
}
func (s *stubAnalyticsRepo) CountUnreadNotifications(context.Context, string) (int64, error) {
	return 0, nil
}
func (s *stubAnalyticsRepo) ListChurnRiskClients(context.Context, int) ([]repository.ChurnRiskClient, error) {
	return s.churn, nil
}
func (s *stubAnalyticsRepo) ListUpsellCandidates(context.Context, int) ([]repository.UpsellCandidate, error) {
	return s.upsell, nil
}

func TestInsightsRevenueForecast(t *testing.T) {
	repo := &stubAnalyticsRepo{revenue: decimal.NewFromInt(1000)}
	uc := insights.NewInsightsUseCase(repo)

	out, err := uc.GetInsights(context.Background())
	require.NoError(t, err)

	assert.True(t, out.RevenueForecast.CurrentRevenue.Equal(decimal.NewFromInt(1000)))
	assert.True(t, out.RevenueForecast.ProjectedRevenue.Equal(decimal.NewFromInt(1150)),
		"projection is current revenue times 1.15, got %s", out.RevenueForecast.ProjectedRevenue)
	assert.Equal(t, "linear_growth", out.RevenueForecast.Method)
}

func TestInsightsForecastRounding(t *testing.T) {
	repo := &stubAnalyticsRepo{revenue: decimal.RequireFromString("333.33")}
	uc := insights.NewInsightsUseCase(repo)

	out, err := uc.GetInsights(context.Background())
	require.NoError(t, err)

	// 333.33 * 1.15 = 383.3295, rounded to cents.
	assert.Equal(t, "383.33", out.RevenueForecast.ProjectedRevenue.StringFixed(2))
}

func TestInsightsChurnReasons(t *testing.T) {
	repo := &stubAnalyticsRepo{
		churn: []repository.ChurnRiskClient{
			{ClientID: "c-1", Name: "Skyline Airways", ActiveServices: 0, ExpiredAgreements: 2},
			{ClientID: "c-2", Name: "Globetrot Travels", ActiveServices: 0, ExpiredAgreements: 0},
			{ClientID: "c-3", Name: "AeroLink GDS", ActiveServices: 3, ExpiredAgreements: 1},
		},
	}
	uc := insights.NewInsightsUseCase(repo)

	out, err := uc.GetInsights(context.Background())
	require.NoError(t, err)
	require.Len(t, out.ChurnRisks, 3)

	assert.Equal(t, "no active services and expired agreements", out.ChurnRisks[0].Reason)
	assert.Equal(t, "no active services", out.ChurnRisks[1].Reason)
	assert.Equal(t, "expired agreements on file", out.ChurnRisks[2].Reason)
}

func TestInsightsUpsellSuggestions(t *testing.T) {
	repo := &stubAnalyticsRepo{
		upsell: []repository.UpsellCandidate{
			{ClientID: "c-1", Name: "Skyline Airways", ServiceType: "implementation"},
			{ClientID: "c-2", Name: "Globetrot Travels", ServiceType: "subscription"},
		},
	}
	uc := insights.NewInsightsUseCase(repo)

	out, err := uc.GetInsights(context.Background())
	require.NoError(t, err)
	require.Len(t, out.UpsellCandidates, 2)

	assert.Equal(t, "implementation", out.UpsellCandidates[0].OnlyService)
	assert.Equal(t, "offer a hosting or subscription plan", out.UpsellCandidates[0].Suggestion)
	assert.Equal(t, "offer hosting or change-request support", out.UpsellCandidates[1].Suggestion)
}

func TestInsightsEmptySectionsAreSlices(t *testing.T) {
	uc := insights.NewInsightsUseCase(&stubAnalyticsRepo{})

	out, err := uc.GetInsights(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, out.ChurnRisks)
	assert.NotNil(t, out.UpsellCandidates)
	assert.Empty(t, out.ChurnRisks)
	assert.Empty(t, out.UpsellCandidates)
}
