package service

import (
	"context"
	"errors"
	"time"

	"github.com/timekeeper/inventory-system/internal/core/domain"
	"github.com/timekeeper/inventory-system/internal/core/ports"
)

// ProductService implements product catalog operations. Category and brand
// references are checked before writes; mutations feed the audit trail.
type ProductService struct {
	products   ports.ProductRepository
	categories ports.CategoryRepository
	brands     ports.BrandRepository
	audit      ports.AuditSink
}

func NewProductService(products ports.ProductRepository, categories ports.CategoryRepository, brands ports.BrandRepository, audit ports.AuditSink) *ProductService {
	return &ProductService{products: products, categories: categories, brands: brands, audit: audit}
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.products.FindAll(ctx)
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, actor string, in ports.CreateProductInput) (*domain.Product, error) {
	if err := s.checkReferences(ctx, in.CategoryID, in.BrandID); err != nil {
		return nil, err
	}

	status := true
	if in.Status != nil {
		status = *in.Status
	}

	now := time.Now().UTC()
	created, err := s.products.Create(ctx, &domain.Product{
		Name:          in.Name,
		SKU:           in.SKU,
		Barcode:       in.Barcode,
		Description:   in.Description,
		Status:        status,
		MRP:           in.MRP,
		SellingPrice:  in.SellingPrice,
		GSTPercentage: in.GSTPercentage,
		HSNCode:       in.HSNCode,
		Unit:          in.Unit,
		OpeningStock:  in.OpeningStock,
		MinStockLevel: in.MinStockLevel,
		CategoryID:    in.CategoryID,
		BrandID:       in.BrandID,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return nil, err
	}

	recordAudit(s.audit, actor, "product", created.ID, domain.AuditCreate)
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, actor, id string, patch ports.ProductPatch) (*domain.Product, error) {
	var categoryID, brandID string
	if patch.CategoryID != nil {
		categoryID = *patch.CategoryID
	}
	if patch.BrandID != nil {
		brandID = *patch.BrandID
	}
	if err := s.checkReferences(ctx, categoryID, brandID); err != nil {
		return nil, err
	}

	updated, err := s.products.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	recordAudit(s.audit, actor, "product", id, domain.AuditUpdate)
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, actor, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	recordAudit(s.audit, actor, "product", id, domain.AuditDelete)
	return nil
}

// checkReferences verifies category and brand existence. Empty IDs are
// skipped so Update patches can omit either field.
func (s *ProductService) checkReferences(ctx context.Context, categoryID, brandID string) error {
	if categoryID != "" {
		if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
			if errors.Is(err, domain.ErrCategoryNotFound) {
				return domain.ErrInvalidReference
			}
			return err
		}
	}
	if brandID != "" {
		if _, err := s.brands.FindByID(ctx, brandID); err != nil {
			if errors.Is(err, domain.ErrBrandNotFound) {
				return domain.ErrInvalidReference
			}
			return err
		}
	}
	return nil
}
