package engine

import (
	"testing"

	"github.com/orbitware/orbit-backend/internal/types"
)

func TestEligible(t *testing.T) {
	plan := &types.InsurancePlan{
		Category:  types.CategoryHealth,
		AgeMin:    18,
		AgeMax:    65,
		SalaryMin: 20000,
	}

	cases := []struct {
		name    string
		profile Profile
		want    bool
	}{
		{name: "inside_all_bounds", profile: Profile{Age: 30, Salary: 50000}, want: true},
		{name: "age_lower_boundary", profile: Profile{Age: 18, Salary: 50000}, want: true},
		{name: "age_upper_boundary", profile: Profile{Age: 65, Salary: 50000}, want: true},
		{name: "age_one_below", profile: Profile{Age: 17, Salary: 50000}, want: false},
		{name: "age_one_above", profile: Profile{Age: 66, Salary: 50000}, want: false},
		{name: "salary_exact_minimum", profile: Profile{Age: 30, Salary: 20000}, want: true},
		{name: "salary_below_minimum", profile: Profile{Age: 30, Salary: 19999.99}, want: false},
		{name: "matching_preferred_type", profile: Profile{Age: 30, Salary: 50000, PreferredType: types.CategoryHealth}, want: true},
		{name: "mismatched_preferred_type", profile: Profile{Age: 30, Salary: 50000, PreferredType: types.CategoryTravel}, want: false},
		{name: "no_preferred_type", profile: Profile{Age: 30, Salary: 50000, PreferredType: ""}, want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Eligible(tc.profile, plan); got != tc.want {
				t.Fatalf("Eligible(%+v)=%v, want %v", tc.profile, got, tc.want)
			}
		})
	}
}
