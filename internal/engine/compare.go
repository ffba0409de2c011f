package engine

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/orbitware/orbit-backend/internal/types"
)

// ErrDegeneratePricing marks a comparison where the personalized premium
// resolved to zero, which would make coverage-per-dollar undefined.
var ErrDegeneratePricing = errors.New("plan priced to a zero premium")

// Comparison is one side-by-side entry for a requested plan id.
type Comparison struct {
	Plan              *types.InsurancePlan `json:"plan"`
	EstimatedPremium  float64              `json:"estimated_premium"`
	MonthlyPremium    float64              `json:"monthly_premium"`
	CoveragePerDollar float64              `json:"coverage_per_dollar"`
}

// Compare prices the requested plans for the profile, preserving the
// caller's id order. Ids missing from the catalog are skipped without error
// (intentionally lenient: the caller may hold stale ids). Eligibility is
// not applied here, so users can compare plans they do not qualify for.
func Compare(planIDs []uuid.UUID, catalog []*types.InsurancePlan, profile Profile) ([]Comparison, error) {
	byID := make(map[uuid.UUID]*types.InsurancePlan, len(catalog))
	for _, plan := range catalog {
		if plan == nil {
			continue
		}
		if _, seen := byID[plan.ID]; !seen {
			byID[plan.ID] = plan
		}
	}

	comparison := make([]Comparison, 0, len(planIDs))
	for _, id := range planIDs {
		plan, ok := byID[id]
		if !ok {
			continue
		}
		premium := ComputePremium(plan.BasePremium, profile.Age, profile.Salary, plan.CoverageAmount, plan.Category)
		if premium == 0 {
			return nil, fmt.Errorf("plan %s: %w", plan.ID, ErrDegeneratePricing)
		}
		comparison = append(comparison, Comparison{
			Plan:              plan,
			EstimatedPremium:  premium,
			MonthlyPremium:    round2(premium / 12),
			CoveragePerDollar: round2(plan.CoverageAmount / premium),
		})
	}
	return comparison, nil
}
