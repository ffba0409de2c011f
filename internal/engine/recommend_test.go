package engine

import (
	"testing"

	"github.com/google/uuid"

	"github.com/orbitware/orbit-backend/internal/types"
)

func testCatalog() []*types.InsurancePlan {
	return []*types.InsurancePlan{
		{
			ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"),
			Name: "Basic Health Shield", Category: types.CategoryHealth,
			CoverageAmount: 100000, BasePremium: 5000,
			AgeMin: 18, AgeMax: 65, SalaryMin: 20000, PopularityScore: 85,
		},
		{
			ID: uuid.MustParse("00000000-0000-0000-0000-000000000002"),
			Name: "Term Life 20", Category: types.CategoryLife,
			CoverageAmount: 1000000, BasePremium: 8000,
			AgeMin: 18, AgeMax: 60, SalaryMin: 30000, PopularityScore: 88,
		},
		{
			ID: uuid.MustParse("00000000-0000-0000-0000-000000000003"),
			Name: "Travel Safe", Category: types.CategoryTravel,
			CoverageAmount: 50000, BasePremium: 500,
			AgeMin: 1, AgeMax: 85, SalaryMin: 10000, PopularityScore: 91,
		},
		{
			ID: uuid.MustParse("00000000-0000-0000-0000-000000000004"),
			Name: "Executive Life", Category: types.CategoryLife,
			CoverageAmount: 2000000, BasePremium: 18000,
			AgeMin: 18, AgeMax: 75, SalaryMin: 75000, PopularityScore: 78,
		},
	}
}

func TestRecommendEmptyEligibleSet(t *testing.T) {
	profile := Profile{Age: 90, Salary: 5000}
	got := Recommend(profile, testCatalog(), 5)
	if len(got) != 0 {
		t.Fatalf("expected empty recommendations, got %d", len(got))
	}
}

func TestRecommendFewerThanTopN(t *testing.T) {
	// Salary 40000 excludes Executive Life (min 75000); age 30 keeps the
	// rest. Three plans survive for topN=5.
	profile := Profile{Age: 30, Salary: 40000}
	got := Recommend(profile, testCatalog(), 5)
	if len(got) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].MatchScore > got[i-1].MatchScore {
			t.Fatalf("recommendations not sorted descending: %v before %v", got[i-1].MatchScore, got[i].MatchScore)
		}
	}
}

func TestRecommendTruncatesToTopN(t *testing.T) {
	profile := Profile{Age: 30, Salary: 80000}
	got := Recommend(profile, testCatalog(), 2)
	if len(got) != 2 {
		t.Fatalf("expected topN=2 recommendations, got %d", len(got))
	}
}

func TestRecommendPreferredTypeFilter(t *testing.T) {
	profile := Profile{Age: 30, Salary: 80000, PreferredType: types.CategoryLife}
	got := Recommend(profile, testCatalog(), 5)
	if len(got) != 2 {
		t.Fatalf("expected 2 Life recommendations, got %d", len(got))
	}
	for _, r := range got {
		if r.Plan.Category != types.CategoryLife {
			t.Fatalf("non-Life plan %q in filtered recommendations", r.Plan.Name)
		}
	}
}

func TestRecommendBudgetDefault(t *testing.T) {
	// Budget left at zero defaults to 5% of salary; the tiers must reflect
	// the resolved budget, not zero.
	profile := Profile{Age: 30, Salary: 80000}
	got := Recommend(profile, testCatalog(), 5)
	if len(got) == 0 {
		t.Fatalf("expected recommendations")
	}
	for _, r := range got {
		if r.Affordability == "" {
			t.Fatalf("missing affordability tier for %q", r.Plan.Name)
		}
	}
}

func TestRecommendTieBreakKeepsCatalogOrder(t *testing.T) {
	// Two identical plans produce identical scores; the stable sort must
	// keep their catalog order.
	a := &types.InsurancePlan{
		ID: uuid.MustParse("00000000-0000-0000-0000-00000000000a"),
		Name: "Twin A", Category: types.CategoryHome,
		CoverageAmount: 300000, BasePremium: 4500,
		AgeMin: 21, AgeMax: 100, SalaryMin: 25000, PopularityScore: 86,
	}
	b := &types.InsurancePlan{}
	*b = *a
	b.ID = uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	b.Name = "Twin B"

	got := Recommend(Profile{Age: 40, Salary: 60000}, []*types.InsurancePlan{a, b}, 5)
	if len(got) != 2 {
		t.Fatalf("expected both twins, got %d", len(got))
	}
	if got[0].Plan.Name != "Twin A" || got[1].Plan.Name != "Twin B" {
		t.Fatalf("tie-break broke catalog order: %s, %s", got[0].Plan.Name, got[1].Plan.Name)
	}
}

func TestAffordabilityTiers(t *testing.T) {
	cases := []struct {
		name    string
		premium float64
		budget  float64
		want    string
	}{
		{name: "under_budget", premium: 4999.99, budget: 5000, want: AffordabilityHigh},
		{name: "exactly_budget", premium: 5000, budget: 5000, want: AffordabilityMedium},
		{name: "under_one_and_a_half", premium: 7499.99, budget: 5000, want: AffordabilityMedium},
		{name: "exactly_one_and_a_half", premium: 7500, budget: 5000, want: AffordabilityLow},
		{name: "above", premium: 9000, budget: 5000, want: AffordabilityLow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := affordability(tc.premium, tc.budget); got != tc.want {
				t.Fatalf("affordability(%v, %v)=%s, want %s", tc.premium, tc.budget, got, tc.want)
			}
		})
	}
}
