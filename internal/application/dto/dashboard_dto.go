package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO aggregate metrics for GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	TotalClients        int64           `json:"total_clients"`
	ActiveClients       int64           `json:"active_clients"`
	TotalServices       int64           `json:"total_services"`
	TotalRevenue        decimal.Decimal `json:"total_revenue"` // summed as-is across currencies
	AgreementsExpiring  int64           `json:"agreements_expiring"`
	PendingInvoices     StatusAggDTO    `json:"pending_invoices"`
	OverdueInvoices     StatusAggDTO    `json:"overdue_invoices"`
	PendingCrInvoices   StatusAggDTO    `json:"pending_cr_invoices"`
	UnreadNotifications int64           `json:"unread_notifications"`
}

// StatusAggDTO count plus amount for one invoice status.
type StatusAggDTO struct {
	Count  int64           `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}
