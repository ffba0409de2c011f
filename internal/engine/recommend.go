package engine

import (
	"sort"

	"github.com/orbitware/orbit-backend/internal/types"
)

const DefaultTopN = 5

// Affordability tiers compare the personalized premium with the profile's
// budget: strictly under budget is High, under 1.5x budget is Medium,
// everything else (including exactly 1.5x) is Low.
const (
	AffordabilityHigh   = "High"
	AffordabilityMedium = "Medium"
	AffordabilityLow    = "Low"
)

// Recommendation is computed fresh on every call and never persisted.
type Recommendation struct {
	Plan             *types.InsurancePlan `json:"plan"`
	EstimatedPremium float64              `json:"estimated_premium"`
	MonthlyPremium   float64              `json:"monthly_premium"`
	MatchScore       float64              `json:"match_score"`
	Affordability    string               `json:"affordability"`
}

// Recommend filters the catalog by eligibility, prices and scores every
// surviving plan, and returns the topN best matches sorted by descending
// match score. Ties keep catalog order (stable sort), which makes the
// ranking reproducible. An empty eligible set yields an empty slice, not an
// error.
func Recommend(profile Profile, catalog []*types.InsurancePlan, topN int) []Recommendation {
	profile = profile.ResolveBudget()
	if topN <= 0 {
		topN = DefaultTopN
	}

	recommendations := make([]Recommendation, 0, len(catalog))
	for _, plan := range catalog {
		if plan == nil || !Eligible(profile, plan) {
			continue
		}
		premium := ComputePremium(plan.BasePremium, profile.Age, profile.Salary, plan.CoverageAmount, plan.Category)
		recommendations = append(recommendations, Recommendation{
			Plan:             plan,
			EstimatedPremium: premium,
			MonthlyPremium:   round2(premium / 12),
			MatchScore:       MatchScore(profile, premium, plan),
			Affordability:    affordability(premium, profile.Budget),
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].MatchScore > recommendations[j].MatchScore
	})

	if len(recommendations) > topN {
		recommendations = recommendations[:topN]
	}
	return recommendations
}

func affordability(premium, budget float64) string {
	switch {
	case premium < budget:
		return AffordabilityHigh
	case premium < budget*1.5:
		return AffordabilityMedium
	default:
		return AffordabilityLow
	}
}
