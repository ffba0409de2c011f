package engine

import (
	"testing"

	"github.com/orbitware/orbit-backend/internal/types"
)

func TestComputePremiumBaselineAge(t *testing.T) {
	// At age 25 the age factor is exactly 1.0 for every category.
	for _, category := range []string{
		types.CategoryHealth, types.CategoryLife, types.CategoryVehicle,
		types.CategoryHome, types.CategoryTravel,
	} {
		t.Run(category, func(t *testing.T) {
			got := ComputePremium(1000, 25, 100000, 0, category)
			if got != 800.00 {
				t.Fatalf("premium at age baseline = %v, want 800.00", got)
			}
		})
	}
}

func TestComputePremiumReferenceScenario(t *testing.T) {
	// base 5000, age 25, salary 100000, coverage 100000, Health:
	// 5000 * 1.0 * 1.0 * (0.8 + 0.1*0.2) = 4100.00
	got := ComputePremium(5000, 25, 100000, 100000, types.CategoryHealth)
	if got != 4100.00 {
		t.Fatalf("reference scenario premium = %v, want 4100.00", got)
	}
}

func TestComputePremiumSalaryClamp(t *testing.T) {
	cases := []struct {
		name   string
		salary float64
		want   float64
	}{
		{name: "floor", salary: 0, want: 560.00},         // 1000 * 0.7 * 0.8
		{name: "below_floor", salary: 30000, want: 560.00},
		{name: "linear", salary: 100000, want: 800.00},
		{name: "cap", salary: 150000, want: 1200.00},
		{name: "above_cap", salary: 10000000, want: 1200.00},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputePremium(1000, 25, tc.salary, 0, types.CategoryVehicle)
			if got != tc.want {
				t.Fatalf("premium with salary %v = %v, want %v", tc.salary, got, tc.want)
			}
		})
	}
}

func TestComputePremiumCategoryBranch(t *testing.T) {
	// At age 45 Health/Life carry a 1.3 age factor, other categories 1.1.
	health := ComputePremium(1000, 45, 100000, 0, types.CategoryHealth)
	life := ComputePremium(1000, 45, 100000, 0, types.CategoryLife)
	home := ComputePremium(1000, 45, 100000, 0, types.CategoryHome)
	if health != 1040.00 || life != 1040.00 {
		t.Fatalf("Health/Life premium at 45 = %v/%v, want 1040.00", health, life)
	}
	if home != 880.00 {
		t.Fatalf("Home premium at 45 = %v, want 880.00", home)
	}
}

func TestComputePremiumUnclampedAgeFactor(t *testing.T) {
	// The age factor has no floor or cap, unlike the salary factor.
	// Age 1 on Life: 1 + (1-25)*0.015 = 0.64 -> 1000 * 0.64 * 0.8 = 512.
	young := ComputePremium(1000, 1, 100000, 0, types.CategoryLife)
	if young != 512.00 {
		t.Fatalf("premium at age 1 for Life = %v, want 512.00", young)
	}
	// Extreme ages inflate it arbitrarily: age 125 -> factor 2.5.
	old := ComputePremium(1000, 125, 100000, 0, types.CategoryLife)
	if old != 2000.00 {
		t.Fatalf("premium at age 125 for Life = %v, want 2000.00", old)
	}
}

func TestComputePremiumDeterministic(t *testing.T) {
	first := ComputePremium(7321.55, 41, 83250, 421000, types.CategoryHealth)
	for i := 0; i < 100; i++ {
		if got := ComputePremium(7321.55, 41, 83250, 421000, types.CategoryHealth); got != first {
			t.Fatalf("premium not deterministic: %v != %v", got, first)
		}
	}
}
