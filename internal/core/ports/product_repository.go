package ports

import (
	"context"

	"github.com/timekeeper/inventory-system/internal/core/domain"
)

// ProductPatch carries the optional fields of a product update. Nil fields
// are left untouched.
type ProductPatch struct {
	Name          *string
	SKU           *string
	Barcode       *string
	Description   *string
	Status        *bool
	MRP           *float64
	SellingPrice  *float64
	GSTPercentage *float64
	HSNCode       *string
	Unit          *string
	OpeningStock  *int
	MinStockLevel *int
	CategoryID    *string
	BrandID       *string
}

// ProductRepository defines the persistence contract for products.
// Create and Update must surface a unique-SKU violation as
// domain.ErrDuplicateSKU.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id string, patch ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountByCategory(ctx context.Context, categoryID string) (int64, error)
	CountByBrand(ctx context.Context, brandID string) (int64, error)
	FindLowStock(ctx context.Context, threshold, limit int) ([]domain.Product, error)
	FindLatest(ctx context.Context, limit int) ([]domain.Product, error)
}
