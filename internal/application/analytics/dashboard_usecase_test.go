package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyagetech/voyagecrm-api/internal/application/analytics"
	"github.com/voyagetech/voyagecrm-api/internal/domain/repository"
)

// stubAnalyticsRepo returns canned aggregates and records which user the
// unread-notification count was requested for.
type stubAnalyticsRepo struct {
	unreadUserID string
	servicesErr  error
}

func (s *stubAnalyticsRepo) GetClientCounts(context.Context) (repository.ClientCounts, error) {
	return repository.ClientCounts{Total: 12, Active: 9}, nil
}
func (s *stubAnalyticsRepo) CountServices(context.Context) (int64, error) {
	return 20, s.servicesErr
}
func (s *stubAnalyticsRepo) SumActiveServiceAmounts(context.Context) (decimal.Decimal, error) {
	return decimal.RequireFromString("125000.505"), nil
}
func (s *stubAnalyticsRepo) CountAgreementsExpiringWithin(_ context.Context, days int) (int64, error) {
	if days != 30 {
		return 0, errors.New("unexpected expiry window")
	}
	return 3, nil
}
func (s *stubAnalyticsRepo) GetInvoiceAggByStatus(_ context.Context, status string) (repository.StatusAgg, error) {
	switch status {
	case "pending":
		return repository.StatusAgg{Count: 4, Amount: decimal.NewFromInt(8000)}, nil
	case "overdue":
		return repository.StatusAgg{Count: 2, Amount: decimal.NewFromInt(3000)}, nil
	}
	return repository.StatusAgg{}, errors.New("unexpected invoice status " + status)
}
func (s *stubAnalyticsRepo) GetCrInvoiceAggByStatus(_ context.Context, status string) (repository.StatusAgg, error) {
	if status != "pending" {
		return repository.StatusAgg{}, errors.New("unexpected cr invoice status " + status)
	}
	return repository.StatusAgg{Count: 1, Amount: decimal.NewFromInt(500)}, nil
}
func (s *stubAnalyticsRepo) CountUnreadNotifications(_ context.Context, userID string) (int64, error) {
	s.unreadUserID = userID
	return 5, nil
}
func (s *stubAnalyticsRepo) ListChurnRiskClients(context.Context, int) ([]repository.ChurnRiskClient, error) {
	return nil, nil
}
func (s *stubAnalyticsRepo) ListUpsellCandidates(context.Context, int) ([]repository.UpsellCandidate, error) {
	return nil, nil
}

func TestDashboardSummaryAggregates(t *testing.T) {
	repo := &stubAnalyticsRepo{}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetSummary(context.Background(), "u-1")
	require.NoError(t, err)

	assert.Equal(t, int64(12), out.TotalClients)
	assert.Equal(t, int64(9), out.ActiveClients)
	assert.Equal(t, int64(20), out.TotalServices)
	assert.Equal(t, "125000.51", out.TotalRevenue.StringFixed(2))
	assert.Equal(t, int64(3), out.AgreementsExpiring)
	assert.Equal(t, int64(4), out.PendingInvoices.Count)
	assert.Equal(t, int64(2), out.OverdueInvoices.Count)
	assert.Equal(t, int64(1), out.PendingCrInvoices.Count)
	assert.Equal(t, int64(5), out.UnreadNotifications)
	assert.Equal(t, "u-1", repo.unreadUserID, "unread count scoped to the requesting user")
}

func TestDashboardSummaryPropagatesQueryError(t *testing.T) {
	repo := &stubAnalyticsRepo{servicesErr: errors.New("relation missing")}
	uc := analytics.NewDashboardUseCase(repo)

	_, err := uc.GetSummary(context.Background(), "u-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service count")
}
