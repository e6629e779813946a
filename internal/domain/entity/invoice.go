package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Standard invoice statuses.
const (
	InvoiceStatusPending   = "pending"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusOverdue   = "overdue"
	InvoiceStatusCancelled = "cancelled"
)

// CR invoice statuses (Change Request billing lifecycle).
const (
	CrInvoiceStatusInitiated = "initiated"
	CrInvoiceStatusPending   = "pending"
	CrInvoiceStatusApproved  = "approved"
)

// InvoiceStatuses lists the valid values for Invoice.Status.
var InvoiceStatuses = []string{
	InvoiceStatusPending,
	InvoiceStatusPaid,
	InvoiceStatusOverdue,
	InvoiceStatusCancelled,
}

// CrInvoiceStatuses lists the valid values for CrInvoice.Status.
var CrInvoiceStatuses = []string{
	CrInvoiceStatusInitiated,
	CrInvoiceStatusPending,
	CrInvoiceStatusApproved,
}

// Invoice is a standard service billing record for a client.
type Invoice struct {
	ID        string
	ClientID  string
	Amount    decimal.Decimal
	Currency  string // INR, USD, EUR
	Status    string // pending, paid, overdue, cancelled
	IssueDate time.Time
	DueDate   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CrInvoice is a Change Request invoice: a separate billing record for a
// scoped or expedited piece of client work. CrNumber is unique system-wide.
type CrInvoice struct {
	ID          string
	ClientID    string
	CrNumber    string
	Description string
	Amount      decimal.Decimal
	Currency    string // INR, USD, EUR
	Status      string // initiated, pending, approved
	IssueDate   time.Time
	DueDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
