package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest body for POST /api/invoices.
type CreateInvoiceRequest struct {
	ClientID  string          `json:"client_id"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Status    string          `json:"status,omitempty"` // defaults to pending
	IssueDate string          `json:"issue_date,omitempty"`
	DueDate   string          `json:"due_date"`
}

// UpdateInvoiceRequest body for PUT /api/invoices/:id.
type UpdateInvoiceRequest = CreateInvoiceRequest

// InvoiceResponse standard invoice in responses.
type InvoiceResponse struct {
	ID        string          `json:"id"`
	ClientID  string          `json:"client_id"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Status    string          `json:"status"`
	IssueDate time.Time       `json:"issue_date"`
	DueDate   time.Time       `json:"due_date"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CreateCrInvoiceRequest body for POST /api/cr-invoices. CrNumber is unique
// system-wide; duplicates are rejected with 409.
type CreateCrInvoiceRequest struct {
	ClientID    string          `json:"client_id"`
	CrNumber    string          `json:"cr_number"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Status      string          `json:"status,omitempty"` // defaults to initiated
	IssueDate   string          `json:"issue_date,omitempty"`
	DueDate     string          `json:"due_date"`
}

// UpdateCrInvoiceRequest body for PUT /api/cr-invoices/:id.
type UpdateCrInvoiceRequest = CreateCrInvoiceRequest

// CrInvoiceResponse CR invoice in responses.
type CrInvoiceResponse struct {
	ID          string          `json:"id"`
	ClientID    string          `json:"client_id"`
	CrNumber    string          `json:"cr_number"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Status      string          `json:"status"`
	IssueDate   time.Time       `json:"issue_date"`
	DueDate     time.Time       `json:"due_date"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
