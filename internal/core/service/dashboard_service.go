package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/timekeeper/inventory-system/internal/core/domain"
	"github.com/timekeeper/inventory-system/internal/core/ports"
)

const (
	lowStockThreshold = 20
	dashboardTake     = 5
)

// DashboardService aggregates catalog and account statistics. Results are
// served from the cache when fresh; cache failures degrade to a direct
// aggregation rather than failing the request.
type DashboardService struct {
	products   ports.ProductRepository
	categories ports.CategoryRepository
	brands     ports.BrandRepository
	users      ports.UserRepository
	cache      ports.StatsCache
	log        zerolog.Logger
}

func NewDashboardService(
	products ports.ProductRepository,
	categories ports.CategoryRepository,
	brands ports.BrandRepository,
	users ports.UserRepository,
	cache ports.StatsCache,
	log zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		products:   products,
		categories: categories,
		brands:     brands,
		users:      users,
		cache:      cache,
		log:        log,
	}
}

func (s *DashboardService) Stats(ctx context.Context) (*ports.DashboardStats, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("stats cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	stats, err := s.aggregate(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, stats); err != nil {
			s.log.Warn().Err(err).Msg("stats cache write failed")
		}
	}
	return stats, nil
}

func (s *DashboardService) aggregate(ctx context.Context) (*ports.DashboardStats, error) {
	productCount, err := s.products.Count(ctx)
	if err != nil {
		return nil, err
	}
	categoryCount, err := s.categories.Count(ctx)
	if err != nil {
		return nil, err
	}
	brandCount, err := s.brands.Count(ctx)
	if err != nil {
		return nil, err
	}
	userCount, err := s.users.CountByStatus(ctx, domain.StatusActive)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.products.FindLowStock(ctx, lowStockThreshold, dashboardTake)
	if err != nil {
		return nil, err
	}
	latest, err := s.products.FindLatest(ctx, dashboardTake)
	if err != nil {
		return nil, err
	}

	return &ports.DashboardStats{
		Counts: ports.DashboardCounts{
			Products:   productCount,
			Categories: categoryCount,
			Brands:     brandCount,
			Users:      userCount,
		},
		LowStockProducts: lowStock,
		LatestProducts:   latest,
	}, nil
}
