package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/orbitware/orbit-backend/internal/engine"
	"github.com/orbitware/orbit-backend/internal/logger"
	"github.com/orbitware/orbit-backend/internal/repos"
	"github.com/orbitware/orbit-backend/internal/types"
)

// Fallback profile values when neither the request nor the stored user
// carries them.
const (
	DefaultAge    = 30
	DefaultSalary = 50000
)

// RecommendationRequest carries the per-request overrides; nil fields fall
// back to the stored profile, then to the defaults.
type RecommendationRequest struct {
	Age           *int
	Salary        *float64
	Budget        *float64
	InsuranceType string
	TopN          int
}

type RecommendationResult struct {
	Recommendations []engine.Recommendation `json:"recommendations"`
	UserProfile     ResolvedProfile         `json:"user_profile"`
}

// ResolvedProfile echoes back the exact inputs the ranking ran against.
type ResolvedProfile struct {
	Age           int     `json:"age"`
	Salary        float64 `json:"salary"`
	Budget        float64 `json:"budget"`
	InsuranceType string  `json:"insurance_type,omitempty"`
}

type PremiumEstimate struct {
	Plan             *types.InsurancePlan `json:"plan"`
	EstimatedPremium float64              `json:"estimated_premium"`
	MonthlyPremium   float64              `json:"monthly_premium"`
}

type RecommendationService interface {
	Recommend(ctx context.Context, req RecommendationRequest) (*RecommendationResult, error)
	EstimatePremium(ctx context.Context, planID uuid.UUID, age int, salary float64) (*PremiumEstimate, error)
	Compare(ctx context.Context, planIDs []uuid.UUID) ([]engine.Comparison, error)
}

type recommendationService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
	planRepo repos.InsurancePlanRepo
}

func NewRecommendationService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, planRepo repos.InsurancePlanRepo) RecommendationService {
	serviceLog := log.With("service", "RecommendationService")
	return &recommendationService{db: db, log: serviceLog, userRepo: userRepo, planRepo: planRepo}
}

func (rs *recommendationService) Recommend(ctx context.Context, req RecommendationRequest) (*RecommendationResult, error) {
	profile, err := rs.resolveProfile(ctx, req.Age, req.Salary)
	if err != nil {
		return nil, err
	}
	if req.Budget != nil {
		profile.Budget = *req.Budget
	}
	if req.InsuranceType != "" {
		if !types.ValidCategory(req.InsuranceType) {
			return nil, fmt.Errorf("unknown insurance type %q", req.InsuranceType)
		}
		profile.PreferredType = req.InsuranceType
	}
	profile = profile.ResolveBudget()

	catalog, err := rs.planRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("load plan catalog: %w", err)
	}

	recommendations := engine.Recommend(profile, catalog, req.TopN)
	rs.log.Debug("Computed recommendations",
		"eligible", len(recommendations), "catalog", len(catalog), "top_n", req.TopN)

	return &RecommendationResult{
		Recommendations: recommendations,
		UserProfile: ResolvedProfile{
			Age:           profile.Age,
			Salary:        profile.Salary,
			Budget:        profile.Budget,
			InsuranceType: profile.PreferredType,
		},
	}, nil
}

// EstimatePremium prices one plan for explicit age/salary inputs. Unlike
// Recommend it needs no authenticated user.
func (rs *recommendationService) EstimatePremium(ctx context.Context, planID uuid.UUID, age int, salary float64) (*PremiumEstimate, error) {
	plan, err := rs.planRepo.GetByID(ctx, nil, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load plan: %w", err)
	}
	premium := engine.ComputePremium(plan.BasePremium, age, salary, plan.CoverageAmount, plan.Category)
	return &PremiumEstimate{
		Plan:             plan,
		EstimatedPremium: premium,
		MonthlyPremium:   math.Round(premium/12*100) / 100,
	}, nil
}

func (rs *recommendationService) Compare(ctx context.Context, planIDs []uuid.UUID) ([]engine.Comparison, error) {
	if len(planIDs) < 2 {
		return nil, fmt.Errorf("at least 2 plans required for comparison")
	}
	profile, err := rs.resolveProfile(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	catalog, err := rs.planRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("load plan catalog: %w", err)
	}
	return engine.Compare(planIDs, catalog, profile)
}

// resolveProfile applies the override -> stored -> default chain for age
// and salary.
func (rs *recommendationService) resolveProfile(ctx context.Context, age *int, salary *float64) (engine.Profile, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return engine.Profile{}, err
	}
	user, err := rs.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		return engine.Profile{}, fmt.Errorf("load user: %w", err)
	}

	profile := engine.Profile{Age: DefaultAge, Salary: DefaultSalary}
	if user.Age != nil {
		profile.Age = *user.Age
	}
	if user.Salary != nil {
		profile.Salary = *user.Salary
	}
	if age != nil {
		profile.Age = *age
	}
	if salary != nil {
		profile.Salary = *salary
	}
	return profile, nil
}
