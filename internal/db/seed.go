package db

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"

	"github.com/orbitware/orbit-backend/internal/types"
	"github.com/orbitware/orbit-backend/internal/utils"
)

type seedPlan struct {
	Name            string   `yaml:"name"`
	Provider        string   `yaml:"provider"`
	Category        string   `yaml:"category"`
	CoverageAmount  float64  `yaml:"coverage_amount"`
	BasePremium     float64  `yaml:"base_premium"`
	Description     string   `yaml:"description"`
	Features        []string `yaml:"features"`
	AgeMin          int      `yaml:"age_min"`
	AgeMax          int      `yaml:"age_max"`
	SalaryMin       float64  `yaml:"salary_min"`
	PopularityScore float64  `yaml:"popularity_score"`
	Rating          float64  `yaml:"rating"`
}

// SeedInsurancePlans inserts the default catalog when the plan table is
// empty. PLAN_SEED_FILE points at an optional YAML catalog that replaces
// the built-in one.
func (s *DatabaseService) SeedInsurancePlans() error {
	var count int64
	if err := s.db.Model(&types.InsurancePlan{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count insurance plans: %w", err)
	}
	if count > 0 {
		s.log.Info("Plan catalog already present, skipping seed", "count", count)
		return nil
	}

	seeds := defaultPlans()
	if path := utils.GetEnv("PLAN_SEED_FILE", "", s.log); path != "" {
		loaded, err := loadSeedFile(path)
		if err != nil {
			return fmt.Errorf("load plan seed file: %w", err)
		}
		seeds = loaded
	}

	plans := make([]*types.InsurancePlan, 0, len(seeds))
	for _, seed := range seeds {
		if !types.ValidCategory(seed.Category) {
			return fmt.Errorf("seed plan %q has unknown category %q", seed.Name, seed.Category)
		}
		features, err := json.Marshal(seed.Features)
		if err != nil {
			return fmt.Errorf("marshal features for %q: %w", seed.Name, err)
		}
		plans = append(plans, &types.InsurancePlan{
			ID:              uuid.New(),
			Name:            seed.Name,
			Provider:        seed.Provider,
			Category:        seed.Category,
			CoverageAmount:  seed.CoverageAmount,
			BasePremium:     seed.BasePremium,
			Description:     seed.Description,
			Features:        datatypes.JSON(features),
			AgeMin:          seed.AgeMin,
			AgeMax:          seed.AgeMax,
			SalaryMin:       seed.SalaryMin,
			PopularityScore: seed.PopularityScore,
			Rating:          seed.Rating,
		})
	}

	if err := s.db.Create(&plans).Error; err != nil {
		return fmt.Errorf("insert seed plans: %w", err)
	}
	s.log.Info("Seeded insurance plan catalog", "count", len(plans))
	return nil
}

func loadSeedFile(path string) ([]seedPlan, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc struct {
		Plans []seedPlan `yaml:"plans"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if len(doc.Plans) == 0 {
		return nil, fmt.Errorf("seed file %s contains no plans", path)
	}
	return doc.Plans, nil
}

func defaultPlans() []seedPlan {
	return []seedPlan{
		{
			Name: "Basic Health Shield", Provider: "HealthFirst Insurance", Category: types.CategoryHealth,
			CoverageAmount: 100000, BasePremium: 5000,
			Description: "Comprehensive health coverage for individuals and families",
			Features:    []string{"Hospitalization", "Doctor Visits", "Prescription Drugs", "Preventive Care", "Emergency Services"},
			AgeMin:      18, AgeMax: 65, SalaryMin: 20000, PopularityScore: 85, Rating: 4.2,
		},
		{
			Name: "Premium Health Plus", Provider: "HealthFirst Insurance", Category: types.CategoryHealth,
			CoverageAmount: 500000, BasePremium: 12000,
			Description: "Premium health coverage with worldwide emergency assistance",
			Features:    []string{"All Basic Features", "Dental & Vision", "Mental Health", "International Coverage", "No Waiting Period"},
			AgeMin:      18, AgeMax: 70, SalaryMin: 50000, PopularityScore: 92, Rating: 4.7,
		},
		{
			Name: "Term Life 20", Provider: "LifeSecure Corp", Category: types.CategoryLife,
			CoverageAmount: 1000000, BasePremium: 8000,
			Description: "20-year term life insurance for financial security",
			Features:    []string{"Death Benefit", "Terminal Illness Rider", "Accidental Death Benefit", "Convertible to Whole Life"},
			AgeMin:      18, AgeMax: 60, SalaryMin: 30000, PopularityScore: 88, Rating: 4.5,
		},
		{
			Name: "Whole Life Guardian", Provider: "LifeSecure Corp", Category: types.CategoryLife,
			CoverageAmount: 2000000, BasePremium: 18000,
			Description: "Permanent life insurance with cash value accumulation",
			Features:    []string{"Lifetime Coverage", "Cash Value Growth", "Loan Options", "Dividend Payments", "Estate Planning"},
			AgeMin:      18, AgeMax: 75, SalaryMin: 75000, PopularityScore: 78, Rating: 4.3,
		},
		{
			Name: "Auto Essential", Provider: "DriveGuard Insurance", Category: types.CategoryVehicle,
			CoverageAmount: 50000, BasePremium: 3000,
			Description: "Essential auto insurance coverage",
			Features:    []string{"Liability Coverage", "Collision", "Comprehensive", "Roadside Assistance", "Rental Reimbursement"},
			AgeMin:      21, AgeMax: 80, SalaryMin: 15000, PopularityScore: 90, Rating: 4.4,
		},
		{
			Name: "Auto Premium Elite", Provider: "DriveGuard Insurance", Category: types.CategoryVehicle,
			CoverageAmount: 150000, BasePremium: 6000,
			Description: "Premium auto coverage with full protection",
			Features:    []string{"All Essential Features", "Gap Coverage", "Custom Parts", "Accident Forgiveness", "New Car Replacement"},
			AgeMin:      25, AgeMax: 75, SalaryMin: 40000, PopularityScore: 82, Rating: 4.6,
		},
		{
			Name: "Home Protection Basic", Provider: "HomeShield Inc", Category: types.CategoryHome,
			CoverageAmount: 300000, BasePremium: 4500,
			Description: "Basic home insurance for property protection",
			Features:    []string{"Dwelling Coverage", "Personal Property", "Liability Protection", "Medical Payments", "Loss of Use"},
			AgeMin:      21, AgeMax: 100, SalaryMin: 25000, PopularityScore: 86, Rating: 4.3,
		},
		{
			Name: "Home Premium Fortress", Provider: "HomeShield Inc", Category: types.CategoryHome,
			CoverageAmount: 750000, BasePremium: 9000,
			Description: "Comprehensive home protection with enhanced coverage",
			Features:    []string{"All Basic Features", "Flood Coverage", "Earthquake Coverage", "Valuable Items", "Identity Theft Protection"},
			AgeMin:      25, AgeMax: 100, SalaryMin: 60000, PopularityScore: 79, Rating: 4.5,
		},
		{
			Name: "Travel Safe", Provider: "GlobalTravel Insurance", Category: types.CategoryTravel,
			CoverageAmount: 50000, BasePremium: 500,
			Description: "Essential travel insurance for domestic and international trips",
			Features:    []string{"Trip Cancellation", "Medical Emergency", "Baggage Loss", "Flight Delay", "24/7 Assistance"},
			AgeMin:      1, AgeMax: 85, SalaryMin: 10000, PopularityScore: 91, Rating: 4.6,
		},
		{
			Name: "Travel Elite Worldwide", Provider: "GlobalTravel Insurance", Category: types.CategoryTravel,
			CoverageAmount: 200000, BasePremium: 1200,
			Description: "Premium travel insurance with comprehensive worldwide coverage",
			Features:    []string{"All Basic Features", "Adventure Sports", "Cruise Coverage", "Rental Car", "Pre-existing Conditions"},
			AgeMin:      1, AgeMax: 80, SalaryMin: 30000, PopularityScore: 84, Rating: 4.8,
		},
	}
}
