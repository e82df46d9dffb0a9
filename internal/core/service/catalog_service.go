package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/timekeeper/inventory-system/internal/core/domain"
	"github.com/timekeeper/inventory-system/internal/core/ports"
)

// CategoryService implements category CRUD. Names are trimmed and must be at
// least two characters; deletion is blocked while products reference the
// category.
type CategoryService struct {
	categories ports.CategoryRepository
	products   ports.ProductRepository
	audit      ports.AuditSink
}

func NewCategoryService(categories ports.CategoryRepository, products ports.ProductRepository, audit ports.AuditSink) *CategoryService {
	return &CategoryService{categories: categories, products: products, audit: audit}
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.categories.FindAll(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.categories.FindByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, actor, name string) (*domain.Category, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	created, err := s.categories.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	recordAudit(s.audit, actor, "category", created.ID, domain.AuditCreate)
	return created, nil
}

func (s *CategoryService) Update(ctx context.Context, actor, id, name string) (*domain.Category, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	updated, err := s.categories.Update(ctx, id, name)
	if err != nil {
		return nil, err
	}
	recordAudit(s.audit, actor, "category", id, domain.AuditUpdate)
	return updated, nil
}

func (s *CategoryService) Delete(ctx context.Context, actor, id string) error {
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		return err
	}
	n, err := s.products.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrHasProducts
	}
	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}
	recordAudit(s.audit, actor, "category", id, domain.AuditDelete)
	return nil
}

// BrandService mirrors CategoryService for brands.
type BrandService struct {
	brands   ports.BrandRepository
	products ports.ProductRepository
	audit    ports.AuditSink
}

func NewBrandService(brands ports.BrandRepository, products ports.ProductRepository, audit ports.AuditSink) *BrandService {
	return &BrandService{brands: brands, products: products, audit: audit}
}

func (s *BrandService) List(ctx context.Context) ([]domain.Brand, error) {
	return s.brands.FindAll(ctx)
}

func (s *BrandService) Get(ctx context.Context, id string) (*domain.Brand, error) {
	return s.brands.FindByID(ctx, id)
}

func (s *BrandService) Create(ctx context.Context, actor, name string) (*domain.Brand, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	created, err := s.brands.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	recordAudit(s.audit, actor, "brand", created.ID, domain.AuditCreate)
	return created, nil
}

func (s *BrandService) Update(ctx context.Context, actor, id, name string) (*domain.Brand, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	updated, err := s.brands.Update(ctx, id, name)
	if err != nil {
		return nil, err
	}
	recordAudit(s.audit, actor, "brand", id, domain.AuditUpdate)
	return updated, nil
}

func (s *BrandService) Delete(ctx context.Context, actor, id string) error {
	if _, err := s.brands.FindByID(ctx, id); err != nil {
		return err
	}
	n, err := s.products.CountByBrand(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrHasProducts
	}
	if err := s.brands.Delete(ctx, id); err != nil {
		return err
	}
	recordAudit(s.audit, actor, "brand", id, domain.AuditDelete)
	return nil
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return "", fmt.Errorf("%w: name is required (min 2 characters)", domain.ErrInvalidInput)
	}
	return name, nil
}

func recordAudit(sink ports.AuditSink, actor, entityType, entityID string, action domain.AuditAction) {
	if sink == nil {
		return
	}
	sink.Enqueue(domain.AuditEvent{
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		Actor:      actor,
		Timestamp:  time.Now().UTC(),
	})
}
