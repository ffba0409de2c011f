package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/orbitware/orbit-backend/internal/engine"
	"github.com/orbitware/orbit-backend/internal/logger"
	"github.com/orbitware/orbit-backend/internal/repos"
	"github.com/orbitware/orbit-backend/internal/types"
	"github.com/orbitware/orbit-backend/internal/utils"
)

type PolicyService interface {
	PurchasePolicy(ctx context.Context, planID uuid.UUID) (*types.Policy, error)
	ListPolicies(ctx context.Context) ([]*types.Policy, error)
	GetDocumentPath(ctx context.Context, policyID uuid.UUID) (string, error)
}

type policyService struct {
	db              *gorm.DB
	log             *logger.Logger
	userRepo        repos.UserRepo
	planRepo        repos.InsurancePlanRepo
	policyRepo      repos.PolicyRepo
	documentService DocumentService
}

func NewPolicyService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	planRepo repos.InsurancePlanRepo,
	policyRepo repos.PolicyRepo,
	documentService DocumentService,
) PolicyService {
	serviceLog := log.With("service", "PolicyService")
	return &policyService{
		db:              db,
		log:             serviceLog,
		userRepo:        userRepo,
		planRepo:        planRepo,
		policyRepo:      policyRepo,
		documentService: documentService,
	}
}

// PurchasePolicy prices the plan for the stored profile (defaults applied),
// creates a one-year active policy and renders its certificate. Document
// rendering failures are logged, not fatal: the policy stands without it.
func (ps *policyService) PurchasePolicy(ctx context.Context, planID uuid.UUID) (*types.Policy, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	user, err := ps.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	plan, err := ps.planRepo.GetByID(ctx, nil, planID)
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

	now := time.Now()
	policy := &types.Policy{
		ID:             uuid.New(),
		UserID:         userID,
		PlanID:         plan.ID,
		PolicyNumber:   utils.GeneratePolicyNumber(),
		Premium:        premium,
		CoverageAmount: plan.CoverageAmount,
		StartDate:      now,
		EndDate:        now.AddDate(1, 0, 0),
		Status:         "active",
	}
	if _, err := ps.policyRepo.Create(ctx, nil, policy); err != nil {
		return nil, fmt.Errorf("create policy: %w", err)
	}

	path, err := ps.documentService.RenderPolicyDocument(policy, user, plan)
	if err != nil {
		ps.log.Warn("Policy document rendering failed", "policy_number", policy.PolicyNumber, "error", err)
	} else {
		policy.DocumentPath = path
		if err := ps.policyRepo.Update(ctx, nil, policy); err != nil {
			ps.log.Warn("Failed to store document path", "policy_number", policy.PolicyNumber, "error", err)
		}
	}

	policy.Plan = plan
	return policy, nil
}

func (ps *policyService) ListPolicies(ctx context.Context) ([]*types.Policy, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	policies, err := ps.policyRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("load policies: %w", err)
	}
	return policies, nil
}

func (ps *policyService) GetDocumentPath(ctx context.Context, policyID uuid.UUID) (string, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return "", err
	}
	policy, err := ps.policyRepo.GetByIDForUser(ctx, nil, policyID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("load policy: %w", err)
	}
	if policy.DocumentPath == "" {
		return "", ErrNotFound
	}
	return policy.DocumentPath, nil
}
