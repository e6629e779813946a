package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAgreementRequest body for POST /api/agreements. Dates are RFC 3339
// or plain YYYY-MM-DD strings.
type CreateAgreementRequest struct {
	ClientID    string          `json:"client_id"`
	Name        string          `json:"name"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	Value       decimal.Decimal `json:"value"`
	Currency    string          `json:"currency"`
	Status      string          `json:"status,omitempty"` // defaults to active
	AutoRenewal bool            `json:"auto_renewal,omitempty"`
}

// UpdateAgreementRequest body for PUT /api/agreements/:id.
type UpdateAgreementRequest = CreateAgreementRequest

// AgreementResponse agreement in responses.
type AgreementResponse struct {
	ID          string          `json:"id"`
	ClientID    string          `json:"client_id"`
	Name        string          `json:"name"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	Value       decimal.Decimal `json:"value"`
	Currency    string          `json:"currency"`
	Status      string          `json:"status"`
	AutoRenewal bool            `json:"auto_renewal"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
