package ports

import (
	"context"

	"github.com/timekeeper/inventory-system/internal/core/domain"
)

// CategoryRepository defines the persistence contract for categories.
// Create allocates the next friendly identifier (CAT001, CAT002, ...)
// atomically.
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, name string) (*domain.Category, error)
	Update(ctx context.Context, id, name string) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// BrandRepository defines the persistence contract for brands. Create
// allocates the next friendly identifier (BRN001, BRN002, ...) atomically.
type BrandRepository interface {
	FindAll(ctx context.Context) ([]domain.Brand, error)
	FindByID(ctx context.Context, id string) (*domain.Brand, error)
	Create(ctx context.Context, name string) (*domain.Brand, error)
	Update(ctx context.Context, id, name string) (*domain.Brand, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
