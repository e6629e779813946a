// Package analytics contains the dashboard aggregate use case.
package analytics

import (
	"context"
	"fmt"

	"github.com/voyagetech/voyagecrm-api/internal/application/dto"
	"github.com/voyagetech/voyagecrm-api/internal/domain/entity"
	"github.com/voyagetech/voyagecrm-api/internal/domain/repository"
)

const expiryWindowDays = 30 // agreements ending within this window count as "expiring"

// DashboardUseCase builds the summary widget data.
//
// Data source: AnalyticsRepository (read-only queries). It never touches the
// entity tables directly; everything is delegated to the repository.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary assembles the DashboardSummaryDTO for the requesting user.
//
// The independent aggregate queries run in parallel; the goroutines fan in
// before any error is inspected so none is leaked.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, userID string) (*dto.DashboardSummaryDTO, error) {
	type clientsResult struct {
		counts repository.ClientCounts
		err    error
	}
	type countResult struct {
		n   int64
		err error
	}
	type aggResult struct {
		agg repository.StatusAgg
		err error
	}

	clientsCh := make(chan clientsResult, 1)
	servicesCh := make(chan countResult, 1)
	expiringCh := make(chan countResult, 1)
	unreadCh := make(chan countResult, 1)
	pendingCh := make(chan aggResult, 1)
	overdueCh := make(chan aggResult, 1)
	crPendingCh := make(chan aggResult, 1)

	go func() {
		counts, err := uc.analyticsRepo.GetClientCounts(ctx)
		clientsCh <- clientsResult{counts, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountServices(ctx)
		servicesCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountAgreementsExpiringWithin(ctx, expiryWindowDays)
		expiringCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountUnreadNotifications(ctx, userID)
		unreadCh <- countResult{n, err}
	}()
	go func() {
		agg, err := uc.analyticsRepo.GetInvoiceAggByStatus(ctx, entity.InvoiceStatusPending)
		pendingCh <- aggResult{agg, err}
	}()
	go func() {
		agg, err := uc.analyticsRepo.GetInvoiceAggByStatus(ctx, entity.InvoiceStatusOverdue)
		overdueCh <- aggResult{agg, err}
	}()
	go func() {
		agg, err := uc.analyticsRepo.GetCrInvoiceAggByStatus(ctx, entity.CrInvoiceStatusPending)
		crPendingCh <- aggResult{agg, err}
	}()

	revenue, revenueErr := uc.analyticsRepo.SumActiveServiceAmounts(ctx)

	clients := <-clientsCh
	services := <-servicesCh
	expiring := <-expiringCh
	unread := <-unreadCh
	pending := <-pendingCh
	overdue := <-overdueCh
	crPending := <-crPendingCh

	if clients.err != nil {
		return nil, fmt.Errorf("dashboard: client counts: %w", clients.err)
	}
	if services.err != nil {
		return nil, fmt.Errorf("dashboard: service count: %w", services.err)
	}
	if revenueErr != nil {
		return nil, fmt.Errorf("dashboard: revenue: %w", revenueErr)
	}
	if expiring.err != nil {
		return nil, fmt.Errorf("dashboard: expiring agreements: %w", expiring.err)
	}
	if unread.err != nil {
		return nil, fmt.Errorf("dashboard: unread notifications: %w", unread.err)
	}
	if pending.err != nil {
		return nil, fmt.Errorf("dashboard: pending invoices: %w", pending.err)
	}
	if overdue.err != nil {
		return nil, fmt.Errorf("dashboard: overdue invoices: %w", overdue.err)
	}
	if crPending.err != nil {
		return nil, fmt.Errorf("dashboard: pending cr invoices: %w", crPending.err)
	}

	return &dto.DashboardSummaryDTO{
		TotalClients:        clients.counts.Total,
		ActiveClients:       clients.counts.Active,
		TotalServices:       services.n,
		TotalRevenue:        revenue.Round(2),
		AgreementsExpiring:  expiring.n,
		PendingInvoices:     dto.StatusAggDTO{Count: pending.agg.Count, Amount: pending.agg.Amount.Round(2)},
		OverdueInvoices:     dto.StatusAggDTO{Count: overdue.agg.Count, Amount: overdue.agg.Amount.Round(2)},
		PendingCrInvoices:   dto.StatusAggDTO{Count: crPending.agg.Count, Amount: crPending.agg.Amount.Round(2)},
		UnreadNotifications: unread.n,
	}, nil
}
