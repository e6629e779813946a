package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/voyagetech/voyagecrm-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo read-only aggregate queries for the dashboard and the
// insight heuristics.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository builds the analytics adapter. Pass a pool or a tx.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetClientCounts returns total and active client counts.
func (r *AnalyticsRepo) GetClientCounts(ctx context.Context) (repository.ClientCounts, error) {
	const query = `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'active')
		FROM clients`
	var counts repository.ClientCounts
	if err := r.q.QueryRow(ctx, query).Scan(&counts.Total, &counts.Active); err != nil {
		return counts, fmt.Errorf("analytics.GetClientCounts: %w", err)
	}
	return counts, nil
}

// CountServices returns the total number of services.
func (r *AnalyticsRepo) CountServices(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM services`).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics.CountServices: %w", err)
	}
	return n, nil
}

// SumActiveServiceAmounts sums service amounts for active clients.
// Amounts are summed as-is across currencies (no FX normalisation).
func (r *AnalyticsRepo) SumActiveServiceAmounts(ctx context.Context) (decimal.Decimal, error) {
	const query = `
		SELECT COALESCE(SUM(s.amount), 0)
		FROM services s
		JOIN clients c ON c.id = s.client_id
		WHERE c.status = 'active'`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("analytics.SumActiveServiceAmounts: %w", err)
	}
	return total, nil
}

// CountAgreementsExpiringWithin counts agreements whose end date falls within
// the next `days` days and are not already expired or renewed.
func (r *AnalyticsRepo) CountAgreementsExpiringWithin(ctx context.Context, days int) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM agreements
		WHERE status IN ('active', 'expiring_soon')
		  AND end_date BETWEEN NOW() AND NOW() + $1 * INTERVAL '1 day'`
	var n int64
	if err := r.q.QueryRow(ctx, query, days).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics.CountAgreementsExpiringWithin: %w", err)
	}
	return n, nil
}

// GetInvoiceAggByStatus returns count and summed amount of standard invoices
// in the given status.
func (r *AnalyticsRepo) GetInvoiceAggByStatus(ctx context.Context, status string) (repository.StatusAgg, error) {
	const query = `SELECT COUNT(*), COALESCE(SUM(amount), 0) FROM invoices WHERE status = $1`
	var agg repository.StatusAgg
	if err := r.q.QueryRow(ctx, query, status).Scan(&agg.Count, &agg.Amount); err != nil {
		return agg, fmt.Errorf("analytics.GetInvoiceAggByStatus: %w", err)
	}
	return agg, nil
}

// GetCrInvoiceAggByStatus returns count and summed amount of CR invoices in
// the given status.
func (r *AnalyticsRepo) GetCrInvoiceAggByStatus(ctx context.Context, status string) (repository.StatusAgg, error) {
	const query = `SELECT COUNT(*), COALESCE(SUM(amount), 0) FROM cr_invoices WHERE status = $1`
	var agg repository.StatusAgg
	if err := r.q.QueryRow(ctx, query, status).Scan(&agg.Count, &agg.Amount); err != nil {
		return agg, fmt.Errorf("analytics.GetCrInvoiceAggByStatus: %w", err)
	}
	return agg, nil
}

// CountUnreadNotifications counts a user's unread notifications.
func (r *AnalyticsRepo) CountUnreadNotifications(ctx context.Context, userID string) (int64, error) {
	const query = `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read = FALSE`
	var n int64
	if err := r.q.QueryRow(ctx, query, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics.CountUnreadNotifications: %w", err)
	}
	return n, nil
}

// ListChurnRiskClients returns active clients with zero active services or at
// least one expired agreement, ordered by the weakest portfolio first.
// The two LEFT JOINs fan out per service x agreement pair, so both counts
// must dedupe on row id.
func (r *AnalyticsRepo) ListChurnRiskClients(ctx context.Context, limit int) ([]repository.ChurnRiskClient, error) {
	const query = `
		SELECT
		    c.id,
		    c.name,
		    COUNT(DISTINCT s.id)                                           AS active_services,
		    COUNT(DISTINCT a.id) FILTER (WHERE a.status = 'expired')       AS expired_agreements
		FROM clients c
		LEFT JOIN services   s ON s.client_id = c.id
		LEFT JOIN agreements a ON a.client_id = c.id
		WHERE c.status = 'active'
		GROUP BY c.id, c.name
		HAVING COUNT(DISTINCT s.id) = 0
		    OR COUNT(DISTINCT a.id) FILTER (WHERE a.status = 'expired') > 0
		ORDER BY active_services ASC, expired_agreements DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.ListChurnRiskClients: %w", err)
	}
	defer rows.Close()
	var results []repository.ChurnRiskClient
	for rows.Next() {
		var row repository.ChurnRiskClient
		if err := rows.Scan(&row.ClientID, &row.Name, &row.ActiveServices, &row.ExpiredAgreements); err != nil {
			return nil, fmt.Errorf("analytics.ListChurnRiskClients: scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// ListUpsellCandidates returns active clients whose services all share a
// single service type.
func (r *AnalyticsRepo) ListUpsellCandidates(ctx context.Context, limit int) ([]repository.UpsellCandidate, error) {
	const query = `
		SELECT c.id, c.name, MIN(s.service_type)
		FROM clients c
		JOIN services s ON s.client_id = c.id
		WHERE c.status = 'active'
		GROUP BY c.id, c.name
		HAVING COUNT(DISTINCT s.service_type) = 1
		ORDER BY c.name
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.ListUpsellCandidates: %w", err)
	}
	defer rows.Close()
	var results []repository.UpsellCandidate
	for rows.Next() {
		var row repository.UpsellCandidate
		if err := rows.Scan(&row.ClientID, &row.Name, &row.ServiceType); err != nil {
			return nil, fmt.Errorf("analytics.ListUpsellCandidates: scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
