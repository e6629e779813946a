package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateServiceRequest body for POST /api/services. Optional dates are
// RFC 3339 strings; empty means unset.
type CreateServiceRequest struct {
	ClientID      string          `json:"client_id"`
	ServiceType   string          `json:"service_type"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Recurring     bool            `json:"recurring,omitempty"`
	BillingCycle  string          `json:"billing_cycle,omitempty"`
	AssignedCSMID string          `json:"assigned_csm_id,omitempty"`
	StartDate     string          `json:"start_date,omitempty"`
	GoLiveDate    string          `json:"go_live_date,omitempty"`
	InvoiceDate   string          `json:"invoice_date,omitempty"`
}

// UpdateServiceRequest body for PUT /api/services/:id.
type UpdateServiceRequest = CreateServiceRequest

// ServiceResponse service in responses.
type ServiceResponse struct {
	ID            string          `json:"id"`
	ClientID      string          `json:"client_id"`
	ServiceType   string          `json:"service_type"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Recurring     bool            `json:"recurring"`
	BillingCycle  string          `json:"billing_cycle,omitempty"`
	AssignedCSMID string          `json:"assigned_csm_id,omitempty"`
	StartDate     *time.Time      `json:"start_date,omitempty"`
	GoLiveDate    *time.Time      `json:"go_live_date,omitempty"`
	InvoiceDate   *time.Time      `json:"invoice_date,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
