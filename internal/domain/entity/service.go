package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service types.
const (
	ServiceTypeImplementation = "implementation"
	ServiceTypeCR             = "cr"
	ServiceTypeSubscription   = "subscription"
	ServiceTypeHosting        = "hosting"
	ServiceTypeOthers         = "others"
)

// Billing currencies.
const (
	CurrencyINR = "INR"
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
)

// Billing cycles for recurring services.
const (
	BillingCycleMonthly   = "monthly"
	BillingCycleQuarterly = "quarterly"
	BillingCycleYearly    = "yearly"
)

// ServiceTypes lists the valid values for Service.ServiceType.
var ServiceTypes = []string{
	ServiceTypeImplementation,
	ServiceTypeCR,
	ServiceTypeSubscription,
	ServiceTypeHosting,
	ServiceTypeOthers,
}

// Currencies lists the valid billing currencies.
var Currencies = []string{CurrencyINR, CurrencyUSD, CurrencyEUR}

// BillingCycles lists the valid values for Service.BillingCycle.
var BillingCycles = []string{BillingCycleMonthly, BillingCycleQuarterly, BillingCycleYearly}

// Service is a billing-line item belonging to exactly one Client.
type Service struct {
	ID            string
	ClientID      string
	ServiceType   string // implementation, cr, subscription, hosting, others
	Amount        decimal.Decimal
	Currency      string // INR, USD, EUR
	Recurring     bool
	BillingCycle  string // monthly, quarterly, yearly; empty when not recurring
	AssignedCSMID string
	StartDate     *time.Time
	GoLiveDate    *time.Time
	InvoiceDate   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
