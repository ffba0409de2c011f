package engine

import (
	"math"

	"github.com/orbitware/orbit-backend/internal/types"
)

// MatchScore rates how well a priced plan fits the profile on a nominal
// 0-100 scale. Weighted sum of budget fit (0.4), coverage fit against an
// ideal of 10x salary (0.3), catalog popularity (0.2) and an age-bracket
// heuristic (0.1). The range is not hard-clamped; extreme popularity values
// can push the total past 100. Used for ordering only.
func MatchScore(profile Profile, estimatedPremium float64, plan *types.InsurancePlan) float64 {
	budgetScore := math.Max(0, 100-math.Abs(estimatedPremium-profile.Budget)/profile.Budget*100) * 0.4

	idealCoverage := profile.Salary * 10
	coverageScore := math.Max(0, 100-math.Abs(plan.CoverageAmount-idealCoverage)/idealCoverage*100) * 0.3

	popularityScore := plan.PopularityScore * 0.2

	ageScore := ageAppropriateness(profile.Age, profile.Salary, plan.CoverageAmount) * 0.1

	return round2(budgetScore + coverageScore + popularityScore + ageScore)
}

// ageAppropriateness awards 10 when the coverage matches what the age
// bracket typically needs, 5 otherwise. Under 30 wants coverage above 5x
// salary, 30-49 wants it between 5x and 15x, 50+ above 8x.
func ageAppropriateness(age int, salary, coverage float64) float64 {
	switch {
	case age < 30:
		if coverage > salary*5 {
			return 10
		}
	case age < 50:
		if salary*5 <= coverage && coverage <= salary*15 {
			return 10
		}
	default:
		if coverage > salary*8 {
			return 10
		}
	}
	return 5
}
