package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/orbitware/orbit-backend/internal/logger"
	"github.com/orbitware/orbit-backend/internal/repos"
)

type DashboardStats struct {
	ActivePolicies     int64   `json:"active_policies"`
	TotalCoverage      float64 `json:"total_coverage"`
	TotalAnnualPremium float64 `json:"total_annual_premium"`
	SavedQuotes        int64   `json:"saved_quotes"`
}

type DashboardService interface {
	GetStats(ctx context.Context) (*DashboardStats, error)
}

type dashboardService struct {
	db         *gorm.DB
	log        *logger.Logger
	policyRepo repos.PolicyRepo
	quoteRepo  repos.QuoteRepo
}

func NewDashboardService(db *gorm.DB, log *logger.Logger, policyRepo repos.PolicyRepo, quoteRepo repos.QuoteRepo) DashboardService {
	serviceLog := log.With("service", "DashboardService")
	return &dashboardService{db: db, log: serviceLog, policyRepo: policyRepo, quoteRepo: quoteRepo}
}

// GetStats aggregates the four dashboard figures; the queries are
// independent, so they run concurrently.
func (ds *dashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	var stats DashboardStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := ds.policyRepo.CountActiveByUserID(gctx, nil, userID)
		if err != nil {
			return fmt.Errorf("count active policies: %w", err)
		}
		stats.ActivePolicies = count
		return nil
	})
	g.Go(func() error {
		total, err := ds.policyRepo.SumActiveByUserID(gctx, nil, userID, "coverage_amount")
		if err != nil {
			return fmt.Errorf("sum coverage: %w", err)
		}
		stats.TotalCoverage = total
		return nil
	})
	g.Go(func() error {
		total, err := ds.policyRepo.SumActiveByUserID(gctx, nil, userID, "premium")
		if err != nil {
			return fmt.Errorf("sum premium: %w", err)
		}
		stats.TotalAnnualPremium = total
		return nil
	})
	g.Go(func() error {
		count, err := ds.quoteRepo.CountByUserID(gctx, nil, userID)
		if err != nil {
			return fmt.Errorf("count quotes: %w", err)
		}
		stats.SavedQuotes = count
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}
