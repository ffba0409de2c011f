package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/orbitware/orbit-backend/internal/logger"
	"github.com/orbitware/orbit-backend/internal/types"
)

type QuoteRepo interface {
	Create(ctx context.Context, tx *gorm.DB, quote *types.Quote) (*types.Quote, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Quote, error)
	CountByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
}

type quoteRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuoteRepo(db *gorm.DB, baseLog *logger.Logger) QuoteRepo {
	repoLog := baseLog.With("repo", "QuoteRepo")
	return &quoteRepo{db: db, log: repoLog}
}

func (qr *quoteRepo) Create(ctx context.Context, tx *gorm.DB, quote *types.Quote) (*types.Quote, error) {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}
	if err := transaction.WithContext(ctx).Create(quote).Error; err != nil {
		return nil, err
	}
	return quote, nil
}

func (qr *quoteRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Quote, error) {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}
	var results []*types.Quote
	if err := transaction.WithContext(ctx).
		Preload("Plan").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (qr *quoteRepo) CountByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Quote{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
