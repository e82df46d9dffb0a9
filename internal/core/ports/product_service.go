package ports

import (
	"context"

	"github.com/timekeeper/inventory-system/internal/core/domain"
)

// CreateProductInput carries a validated product creation request.
type CreateProductInput struct {
	Name          string
	SKU           string
	Barcode       string
	Description   string
	Status        *bool
	MRP           float64
	SellingPrice  float64
	GSTPercentage float64
	HSNCode       string
	Unit          string
	OpeningStock  int
	MinStockLevel int
	CategoryID    string
	BrandID       string
}

// ProductService exposes product catalog operations.
type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, actor string, in CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, actor, id string, patch ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, actor, id string) error
}
