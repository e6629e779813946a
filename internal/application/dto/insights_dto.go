package dto

import "github.com/shopspring/decimal"

// InsightsDTO canned insight heuristics for GET /api/insights.
// Values are deterministic arithmetic over repository aggregates, not model
// predictions; Method names the formula so the UI can label them honestly.
type InsightsDTO struct {
	RevenueForecast  RevenueForecastDTO  `json:"revenue_forecast"`
	ChurnRisks       []ChurnRiskDTO      `json:"churn_risks"`
	UpsellCandidates []UpsellCandidateDTO `json:"upsell_candidates"`
}

// RevenueForecastDTO projected revenue = current revenue * growth factor.
type RevenueForecastDTO struct {
	CurrentRevenue   decimal.Decimal `json:"current_revenue"`
	ProjectedRevenue decimal.Decimal `json:"projected_revenue"`
	GrowthFactor     decimal.Decimal `json:"growth_factor"`
	Method           string          `json:"method"`
}

// ChurnRiskDTO a client flagged by the churn heuristic.
type ChurnRiskDTO struct {
	ClientID          string `json:"client_id"`
	ClientName        string `json:"client_name"`
	Reason            string `json:"reason"`
	ActiveServices    int64  `json:"active_services"`
	ExpiredAgreements int64  `json:"expired_agreements"`
}

// UpsellCandidateDTO a client flagged by the upsell heuristic.
type UpsellCandidateDTO struct {
	ClientID    string `json:"client_id"`
	ClientName  string `json:"client_name"`
	OnlyService string `json:"only_service"`
	Suggestion  string `json:"suggestion"`
}
