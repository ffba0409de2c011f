package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/orbitware/orbit-backend/internal/engine"
	"github.com/orbitware/orbit-backend/internal/logger"
	"github.com/orbitware/orbit-backend/internal/repos"
	"github.com/orbitware/orbit-backend/internal/types"
)

type QuoteService interface {
	SaveQuote(ctx context.Context, planID uuid.UUID) (*types.Quote, error)
	ListQuotes(ctx context.Context) ([]*types.Quote, error)
}

type quoteService struct {
	db        *gorm.DB
	log       *logger.Logger
	userRepo  repos.UserRepo
	planRepo  repos.InsurancePlanRepo
	quoteRepo repos.QuoteRepo
}

func NewQuoteService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, planRepo repos.InsurancePlanRepo, quoteRepo repos.QuoteRepo) QuoteService {
	serviceLog := log.With("service", "QuoteService")
	return &quoteService{db: db, log: serviceLog, userRepo: userRepo, planRepo: planRepo, quoteRepo: quoteRepo}
}

// SaveQuote snapshots a personalized premium alongside the profile inputs
// that produced it, so the quote stays meaningful after the profile changes.
func (qs *quoteService) SaveQuote(ctx context.Context, planID uuid.UUID) (*types.Quote, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	user, err := qs.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	plan, err := qs.planRepo.GetByID(ctx, nil, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load plan: %w", err)
	}

	age := DefaultAge
	if user.Age != nil {
		age = *user.Age
	}
	salary := float64(DefaultSalary)
	if user.Salary != nil {
		salary = *user.Salary
	}
	premium := engine.ComputePremium(plan.BasePremium, age, salary, plan.CoverageAmount, plan.Category)

	quote := &types.Quote{
		ID:               uuid.New(),
		UserID:           userID,
		PlanID:           plan.ID,
		EstimatedPremium: premium,
		UserAge:          user.Age,
		UserSalary:       user.Salary,
	}
	if _, err := qs.quoteRepo.Create(ctx, nil, quote); err != nil {
		return nil, fmt.Errorf("create quote: %w", err)
	}
	quote.Plan = plan
	return quote, nil
}

func (qs *quoteService) ListQuotes(ctx context.Context) ([]*types.Quote, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	quotes, err := qs.quoteRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("load quotes: %w", err)
	}
	return quotes, nil
}
