package services

import (
	"strings"
	"testing"
	"time"

	"github.com/orbitware/orbit-backend/internal/types"
	"gorm.io/datatypes"
)

func TestRenderPolicyText(t *testing.T) {
	age := 34
	user := &types.User{
		Email:    "holder@example.com",
		FullName: "Jordan Vale",
		Phone:    "555-0134",
		Age:      &age,
	}
	plan := &types.InsurancePlan{
		Name:     "Basic Health Shield",
		Provider: "HealthFirst Insurance",
		Category: types.CategoryHealth,
		Features: datatypes.JSON([]byte(`["Hospitalization","Doctor Visits"]`)),
	}
	policy := &types.Policy{
		PolicyNumber:   "POL-20260901-DEADBEEF",
		Premium:        4100,
		CoverageAmount: 100000,
		StartDate:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2027, 9, 1, 0, 0, 0, 0, time.UTC),
		Status:         "active",
	}

	got := renderPolicyText(policy, user, plan, time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC))

	for _, want := range []string{
		"ORBIT INSURANCE",
		"Insurance Policy Certificate",
		"POL-20260901-DEADBEEF",
		"ACTIVE",
		"Jordan Vale",
		"holder@example.com",
		"Basic Health Shield",
		"HealthFirst Insurance",
		"$100000.00",
		"$4100.00",
		"$341.67",
		"* Hospitalization",
		"* Doctor Visits",
		"TERMS AND CONDITIONS",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("rendered document missing %q:\n%s", want, got)
		}
	}
}

func TestRenderPolicyTextMissingFields(t *testing.T) {
	user := &types.User{Email: "holder@example.com"}
	plan := &types.InsurancePlan{Name: "Travel Safe", Category: types.CategoryTravel}
	policy := &types.Policy{PolicyNumber: "POL-20260901-00000000", Status: "active"}

	got := renderPolicyText(policy, user, plan, time.Now())
	if !strings.Contains(got, "N/A") {
		t.Fatalf("expected N/A placeholders for missing fields")
	}
	if strings.Contains(got, "PLAN FEATURES") {
		t.Fatalf("feature section rendered for plan without features")
	}
}
