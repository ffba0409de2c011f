package engine

import (
	"testing"

	"github.com/orbitware/orbit-backend/internal/types"
)

func TestMatchScorePerfectBudgetFit(t *testing.T) {
	// Premium equal to budget contributes the full 40 points; coverage equal
	// to 10x salary the full 30; popularity 100 the full 20; the age bracket
	// at most 1. A perfect plan lands on 91.
	profile := Profile{Age: 35, Salary: 100000, Budget: 5000}
	plan := &types.InsurancePlan{
		Category:        types.CategoryHealth,
		CoverageAmount:  1000000,
		PopularityScore: 100,
	}
	got := MatchScore(profile, 5000, plan)
	if got != 91.00 {
		t.Fatalf("perfect-fit score = %v, want 91.00", got)
	}
}

func TestMatchScoreBudgetDivergence(t *testing.T) {
	profile := Profile{Age: 35, Salary: 100000, Budget: 5000}
	plan := &types.InsurancePlan{Category: types.CategoryHealth, CoverageAmount: 1000000, PopularityScore: 0}

	// 100% over budget zeroes the budget component, and it stays at zero
	// (never negative) beyond that.
	atDouble := MatchScore(profile, 10000, plan)
	atTriple := MatchScore(profile, 15000, plan)
	if atDouble != atTriple {
		t.Fatalf("budget component went negative: %v vs %v", atDouble, atTriple)
	}
	// 50% deviation halves the component: 20 instead of 40.
	atHalf := MatchScore(profile, 7500, plan)
	if atHalf-atDouble != 20.00 {
		t.Fatalf("50%% deviation delta = %v, want 20.00", atHalf-atDouble)
	}
}

func TestAgeAppropriateness(t *testing.T) {
	cases := []struct {
		name     string
		age      int
		salary   float64
		coverage float64
		want     float64
	}{
		{name: "young_high_coverage", age: 25, salary: 50000, coverage: 300000, want: 10},
		{name: "young_low_coverage", age: 25, salary: 50000, coverage: 250000, want: 5}, // 5x exactly is not > 5x
		{name: "middle_in_band", age: 40, salary: 50000, coverage: 250000, want: 10},    // 5x inclusive
		{name: "middle_upper_band", age: 40, salary: 50000, coverage: 750000, want: 10}, // 15x inclusive
		{name: "middle_above_band", age: 40, salary: 50000, coverage: 750001, want: 5},
		{name: "bracket_boundary_at_30", age: 30, salary: 50000, coverage: 300000, want: 10},
		{name: "bracket_boundary_at_50", age: 50, salary: 50000, coverage: 300000, want: 5}, // 6x not > 8x
		{name: "older_high_coverage", age: 60, salary: 50000, coverage: 500000, want: 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ageAppropriateness(tc.age, tc.salary, tc.coverage); got != tc.want {
				t.Fatalf("ageAppropriateness(%d, %v, %v)=%v, want %v", tc.age, tc.salary, tc.coverage, got, tc.want)
			}
		})
	}
}

func TestMatchScorePopularityPassThrough(t *testing.T) {
	profile := Profile{Age: 35, Salary: 100000, Budget: 5000}
	base := &types.InsurancePlan{Category: types.CategoryHealth, CoverageAmount: 1000000, PopularityScore: 0}
	popular := &types.InsurancePlan{Category: types.CategoryHealth, CoverageAmount: 1000000, PopularityScore: 85}
	delta := MatchScore(profile, 5000, popular) - MatchScore(profile, 5000, base)
	if delta != 17.00 {
		t.Fatalf("popularity 85 contributes %v, want 17.00", delta)
	}
}
