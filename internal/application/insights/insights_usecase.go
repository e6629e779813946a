// Package insights computes the deterministic account-health heuristics:
// a revenue projection, churn-risk flags and upsell candidates. All three
// are plain arithmetic over repository aggregates so the endpoint is cheap
// and reproducible.
package insights

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/voyagetech/voyagecrm-api/internal/application/dto"
	"github.com/voyagetech/voyagecrm-api/internal/domain/repository"
)

const heuristicLimit = 10 // max churn / upsell rows returned per section

// growthFactor is the flat projection multiplier applied to current active
// service revenue. 1.15 mirrors the product's historical YoY growth target.
var growthFactor = decimal.NewFromFloat(1.15)

// InsightsUseCase assembles GET /api/insights.
type InsightsUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewInsightsUseCase builds the use case.
func NewInsightsUseCase(analyticsRepo repository.AnalyticsRepository) *InsightsUseCase {
	return &InsightsUseCase{analyticsRepo: analyticsRepo}
}

// GetInsights returns the three heuristic sections. Empty sections come back
// as empty slices, never nil, so the JSON always carries arrays.
func (uc *InsightsUseCase) GetInsights(ctx context.Context) (*dto.InsightsDTO, error) {
	revenue, err := uc.analyticsRepo.SumActiveServiceAmounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("insights: revenue: %w", err)
	}
	churn, err := uc.analyticsRepo.ListChurnRiskClients(ctx, heuristicLimit)
	if err != nil {
		return nil, fmt.Errorf("insights: churn risks: %w", err)
	}
	upsell, err := uc.analyticsRepo.ListUpsellCandidates(ctx, heuristicLimit)
	if err != nil {
		return nil, fmt.Errorf("insights: upsell candidates: %w", err)
	}

	out := &dto.InsightsDTO{
		RevenueForecast: dto.RevenueForecastDTO{
			CurrentRevenue:   revenue.Round(2),
			ProjectedRevenue: revenue.Mul(growthFactor).Round(2),
			GrowthFactor:     growthFactor,
			Method:           "linear_growth",
		},
		ChurnRisks:       make([]dto.ChurnRiskDTO, 0, len(churn)),
		UpsellCandidates: make([]dto.UpsellCandidateDTO, 0, len(upsell)),
	}

	for _, c := range churn {
		out.ChurnRisks = append(out.ChurnRisks, dto.ChurnRiskDTO{
			ClientID:          c.ClientID,
			ClientName:        c.Name,
			Reason:            churnReason(c),
			ActiveServices:    c.ActiveServices,
			ExpiredAgreements: c.ExpiredAgreements,
		})
	}
	for _, u := range upsell {
		out.UpsellCandidates = append(out.UpsellCandidates, dto.UpsellCandidateDTO{
			ClientID:    u.ClientID,
			ClientName:  u.Name,
			OnlyService: u.ServiceType,
			Suggestion:  upsellSuggestion(u.ServiceType),
		})
	}
	return out, nil
}

func churnReason(c repository.ChurnRiskClient) string {
	switch {
	case c.ActiveServices == 0 && c.ExpiredAgreements > 0:
		return "no active services and expired agreements"
	case c.ActiveServices == 0:
		return "no active services"
	default:
		return "expired agreements on file"
	}
}

// upsellSuggestion maps the single service a client holds to the most common
// companion sale seen in the book of business.
func upsellSuggestion(serviceType string) string {
	switch serviceType {
	case "implementation":
		return "offer a hosting or subscription plan"
	case "hosting":
		return "offer a subscription plan"
	case "subscription":
		return "offer hosting or change-request support"
	case "cr":
		return "offer a recurring subscription"
	default:
		return "review the account for cross-sell options"
	}
}
