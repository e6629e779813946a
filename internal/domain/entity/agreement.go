package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Agreement statuses.
const (
	AgreementStatusActive       = "active"
	AgreementStatusExpiringSoon = "expiring_soon"
	AgreementStatusExpired      = "expired"
	AgreementStatusRenewed      = "renewed"
)

// AgreementStatuses lists the valid values for Agreement.Status.
var AgreementStatuses = []string{
	AgreementStatusActive,
	AgreementStatusExpiringSoon,
	AgreementStatusExpired,
	AgreementStatusRenewed,
}

// Agreement is the contractual envelope for a client: a dated contract with a
// monetary value and a renewal/expiry lifecycle. Distinct from a Service,
// which is a billing-line item.
//
// Invariant: EndDate must be strictly after StartDate. The create/update use
// cases enforce it.
type Agreement struct {
	ID          string
	ClientID    string
	Name        string
	StartDate   time.Time
	EndDate     time.Time
	Value       decimal.Decimal
	Currency    string // INR, USD, EUR
	Status      string // active, expiring_soon, expired, renewed
	AutoRenewal bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
