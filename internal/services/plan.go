package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/orbitware/orbit-backend/internal/clients/redis"
	"github.com/orbitware/orbit-backend/internal/logger"
	"github.com/orbitware/orbit-backend/internal/repos"
	"github.com/orbitware/orbit-backend/internal/types"
)

const planCacheTTL = 5 * time.Minute

type PlanService interface {
	ListPlans(ctx context.Context, category string) ([]*types.InsurancePlan, error)
	GetPlan(ctx context.Context, planID uuid.UUID) (*types.InsurancePlan, error)
}

type planService struct {
	db       *gorm.DB
	log      *logger.Logger
	planRepo repos.InsurancePlanRepo
	cache    redis.Cache
}

// NewPlanService serves the catalog, fronted by an optional redis cache
// (pass nil to read straight from the database).
func NewPlanService(db *gorm.DB, log *logger.Logger, planRepo repos.InsurancePlanRepo, cache redis.Cache) PlanService {
	serviceLog := log.With("service", "PlanService")
	return &planService{db: db, log: serviceLog, planRepo: planRepo, cache: cache}
}

func (ps *planService) ListPlans(ctx context.Context, category string) ([]*types.InsurancePlan, error) {
	if category != "" && !types.ValidCategory(category) {
		return nil, fmt.Errorf("unknown plan category %q", category)
	}

	cacheKey := "plans:all"
	if category != "" {
		cacheKey = "plans:category:" + category
	}
	if ps.cache != nil {
		var cached []*types.InsurancePlan
		err := ps.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, redis.ErrCacheMiss) {
			ps.log.Warn("Plan cache read failed, falling back to database", "error", err)
		}
	}

	var plans []*types.InsurancePlan
	var err error
	if category != "" {
		plans, err = ps.planRepo.GetByCategory(ctx, nil, category)
	} else {
		plans, err = ps.planRepo.GetAll(ctx, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("load plans: %w", err)
	}

	if ps.cache != nil {
		if err := ps.cache.SetJSON(ctx, cacheKey, plans, planCacheTTL); err != nil {
			ps.log.Warn("Plan cache write failed", "error", err)
		}
	}
	return plans, nil
}

func (ps *planService) GetPlan(ctx context.Context, planID uuid.UUID) (*types.InsurancePlan, error) {
	plan, err := ps.planRepo.GetByID(ctx, nil, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load plan: %w", err)
	}
	return plan, nil
}
