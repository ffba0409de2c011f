package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/orbitware/orbit-backend/internal/logger"
	"github.com/orbitware/orbit-backend/internal/types"
)

type InsurancePlanRepo interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.InsurancePlan, error)
	GetByCategory(ctx context.Context, tx *gorm.DB, category string) ([]*types.InsurancePlan, error)
	GetByID(ctx context.Context, tx *gorm.DB, planID uuid.UUID) (*types.InsurancePlan, error)
}

type insurancePlanRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewInsurancePlanRepo(db *gorm.DB, baseLog *logger.Logger) InsurancePlanRepo {
	repoLog := baseLog.With("repo", "InsurancePlanRepo")
	return &insurancePlanRepo{db: db, log: repoLog}
}

func (pr *insurancePlanRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.InsurancePlan, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var results []*types.InsurancePlan
	if err := transaction.WithContext(ctx).
		Order("created_at asc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *insurancePlanRepo) GetByCategory(ctx context.Context, tx *gorm.DB, category string) ([]*types.InsurancePlan, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var results []*types.InsurancePlan
	if err := transaction.WithContext(ctx).
		Where("category = ?", category).
		Order("created_at asc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *insurancePlanRepo) GetByID(ctx context.Context, tx *gorm.DB, planID uuid.UUID) (*types.InsurancePlan, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var result types.InsurancePlan
	if err := transaction.WithContext(ctx).
		Where("id = ?", planID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}
