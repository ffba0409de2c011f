package engine

import (
	"math"

	"github.com/orbitware/orbit-backend/internal/types"
)

// ComputePremium derives a personalized annual premium from a plan's base
// premium and the applicant's age and salary. Pure and deterministic: the
// same inputs always round to the same result.
//
// Age is priced against a baseline of 25. Health and Life plans move 1.5%
// per year away from the baseline, everything else 0.5%. The age and
// coverage factors are intentionally unclamped (only salary is floored at
// 0.7x and capped at 1.5x), so pathological inputs can produce zero or
// negative premiums; callers that divide by the result must guard for that.
func ComputePremium(basePremium float64, age int, salary, coverageAmount float64, category string) float64 {
	var ageFactor float64
	if category == types.CategoryHealth || category == types.CategoryLife {
		ageFactor = 1 + float64(age-25)*0.015
	} else {
		ageFactor = 1 + float64(age-25)*0.005
	}

	salaryFactor := salary / 100000
	if salaryFactor < 0.7 {
		salaryFactor = 0.7
	}
	if salaryFactor > 1.5 {
		salaryFactor = 1.5
	}

	coverageFactor := coverageAmount / 1000000

	premium := basePremium * ageFactor * salaryFactor * (0.8 + coverageFactor*0.2)
	return round2(premium)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
