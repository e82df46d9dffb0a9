package ports

import (
	"context"

	"github.com/timekeeper/inventory-system/internal/core/domain"
)

// DashboardCounts holds the headline totals shown on the dashboard. The user
// count covers ACTIVE accounts only.
type DashboardCounts struct {
	Products   int64 `json:"products"`
	Categories int64 `json:"categories"`
	Brands     int64 `json:"brands"`
	Users      int64 `json:"users"`
}

// DashboardStats is the aggregated dashboard payload.
type DashboardStats struct {
	Counts           DashboardCounts  `json:"counts"`
	LowStockProducts []domain.Product `json:"low_stock_products"`
	LatestProducts   []domain.Product `json:"latest_products"`
}

// DashboardService aggregates catalog and account statistics.
type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}

// StatsCache is a read-through cache for the aggregated dashboard payload.
// A miss is reported as (nil, nil).
type StatsCache interface {
	Get(ctx context.Context) (*DashboardStats, error)
	Set(ctx context.Context, stats *DashboardStats) error
}
