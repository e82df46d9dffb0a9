package ports

import (
	"context"

	"github.com/timekeeper/inventory-system/internal/core/domain"
)

// CategoryService exposes category CRUD. Deletion is refused while products
// still reference the category.
type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, actor, name string) (*domain.Category, error)
	Update(ctx context.Context, actor, id, name string) (*domain.Category, error)
	Delete(ctx context.Context, actor, id string) error
}

// BrandService exposes brand CRUD. Deletion is refused while products still
// reference the brand.
type BrandService interface {
	List(ctx context.Context) ([]domain.Brand, error)
	Get(ctx context.Context, id string) (*domain.Brand, error)
	Create(ctx context.Context, actor, name string) (*domain.Brand, error)
	Update(ctx context.Context, actor, id, name string) (*domain.Brand, error)
	Delete(ctx context.Context, actor, id string) error
}
