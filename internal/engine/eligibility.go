package engine

import (
	"github.com/orbitware/orbit-backend/internal/types"
)

// Eligible reports whether a plan can be recommended to the profile. All
// rules must pass: inclusive age bounds, minimum qualifying salary, and the
// category filter when the profile declares a preference. Comparison
// deliberately bypasses this check.
func Eligible(profile Profile, plan *types.InsurancePlan) bool {
	if profile.Age < plan.AgeMin || profile.Age > plan.AgeMax {
		return false
	}
	if profile.Salary < plan.SalaryMin {
		return false
	}
	if profile.PreferredType != "" && plan.Category != profile.PreferredType {
		return false
	}
	return true
}
