package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/orbitware/orbit-backend/internal/logger"
	"github.com/orbitware/orbit-backend/internal/types"
)

type PolicyRepo interface {
	Create(ctx context.Context, tx *gorm.DB, policy *types.Policy) (*types.Policy, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Policy, error)
	GetByIDForUser(ctx context.Context, tx *gorm.DB, policyID, userID uuid.UUID) (*types.Policy, error)
	Update(ctx context.Context, tx *gorm.DB, policy *types.Policy) error
	CountActiveByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
	SumActiveByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, column string) (float64, error)
}

type policyRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPolicyRepo(db *gorm.DB, baseLog *logger.Logger) PolicyRepo {
	repoLog := baseLog.With("repo", "PolicyRepo")
	return &policyRepo{db: db, log: repoLog}
}

func (pr *policyRepo) Create(ctx context.Context, tx *gorm.DB, policy *types.Policy) (*types.Policy, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if err := transaction.WithContext(ctx).Create(policy).Error; err != nil {
		return nil, err
	}
	return policy, nil
}

func (pr *policyRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Policy, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var results []*types.Policy
	if err := transaction.WithContext(ctx).
		Preload("Plan").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *policyRepo) GetByIDForUser(ctx context.Context, tx *gorm.DB, policyID, userID uuid.UUID) (*types.Policy, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var result types.Policy
	if err := transaction.WithContext(ctx).
		Preload("Plan").
		Where("id = ? AND user_id = ?", policyID, userID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (pr *policyRepo) Update(ctx context.Context, tx *gorm.DB, policy *types.Policy) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return transaction.WithContext(ctx).Save(policy).Error
}

func (pr *policyRepo) CountActiveByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Policy{}).
		Where("user_id = ? AND status = ?", userID, "active").
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SumActiveByUserID totals one numeric column (premium or coverage_amount)
// across the user's active policies.
func (pr *policyRepo) SumActiveByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, column string) (float64, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var total *float64
	if err := transaction.WithContext(ctx).
		Model(&types.Policy{}).
		Select("SUM(" + column + ")").
		Where("user_id = ? AND status = ?", userID, "active").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}
