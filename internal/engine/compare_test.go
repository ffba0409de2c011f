package engine

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/orbitware/orbit-backend/internal/types"
)

func TestComparePreservesRequestOrder(t *testing.T) {
	catalog := testCatalog()
	profile := Profile{Age: 30, Salary: 80000}

	// Request in the reverse of catalog storage order.
	ids := []uuid.UUID{catalog[2].ID, catalog[0].ID, catalog[1].ID}
	got, err := Compare(ids, catalog, profile)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 comparison entries, got %d", len(got))
	}
	for i, id := range ids {
		if got[i].Plan.ID != id {
			t.Fatalf("entry %d is plan %s, want %s", i, got[i].Plan.ID, id)
		}
	}
}

func TestCompareSkipsUnknownIDs(t *testing.T) {
	catalog := testCatalog()
	unknown := uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff")
	got, err := Compare([]uuid.UUID{catalog[0].ID, unknown}, catalog, Profile{Age: 30, Salary: 80000})
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	// Unknown ids are dropped silently, by design.
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got[0].Plan.ID != catalog[0].ID {
		t.Fatalf("surviving entry is %s, want %s", got[0].Plan.ID, catalog[0].ID)
	}
}

func TestCompareIgnoresEligibility(t *testing.T) {
	catalog := testCatalog()
	// Age 90 is outside every plan's age range, but comparison still prices.
	got, err := Compare([]uuid.UUID{catalog[0].ID}, catalog, Profile{Age: 90, Salary: 5000})
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 entry despite ineligibility, got %d", len(got))
	}
	if got[0].CoveragePerDollar <= 0 {
		t.Fatalf("coverage per dollar = %v, want positive", got[0].CoveragePerDollar)
	}
}

func TestCompareZeroPremiumGuard(t *testing.T) {
	degenerate := &types.InsurancePlan{
		ID:          uuid.MustParse("00000000-0000-0000-0000-0000000000dd"),
		Name:        "Zero Base",
		Category:    types.CategoryHome,
		BasePremium: 0,
	}
	_, err := Compare([]uuid.UUID{degenerate.ID}, []*types.InsurancePlan{degenerate}, Profile{Age: 30, Salary: 80000})
	if !errors.Is(err, ErrDegeneratePricing) {
		t.Fatalf("expected ErrDegeneratePricing, got %v", err)
	}
}

func TestCompareCoveragePerDollar(t *testing.T) {
	plan := &types.InsurancePlan{
		ID:             uuid.MustParse("00000000-0000-0000-0000-0000000000cc"),
		Name:           "Ratio Check",
		Category:       types.CategoryHome,
		CoverageAmount: 100000,
		BasePremium:    5000,
	}
	// age 25, salary 100000 -> premium 5000 * 1.0 * 1.0 * 0.82 = 4100.00
	got, err := Compare([]uuid.UUID{plan.ID}, []*types.InsurancePlan{plan}, Profile{Age: 25, Salary: 100000})
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if got[0].EstimatedPremium != 4100.00 {
		t.Fatalf("estimated premium = %v, want 4100.00", got[0].EstimatedPremium)
	}
	if got[0].CoveragePerDollar != 24.39 {
		t.Fatalf("coverage per dollar = %v, want 24.39", got[0].CoveragePerDollar)
	}
	if got[0].MonthlyPremium != 341.67 {
		t.Fatalf("monthly premium = %v, want 341.67", got[0].MonthlyPremium)
	}
}
