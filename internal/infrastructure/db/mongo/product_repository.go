package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/timekeeper/inventory-system/internal/core/domain"
	"github.com/timekeeper/inventory-system/internal/core/ports"
)

const productsCollection = "products"

type productDoc struct {
	ID            string    `bson:"_id"`
	Name          string    `bson:"name"`
	SKU           string    `bson:"sku"`
	Barcode       string    `bson:"barcode,omitempty"`
	Description   string    `bson:"description,omitempty"`
	Status        bool      `bson:"status"`
	MRP           float64   `bson:"mrp"`
	SellingPrice  float64   `bson:"selling_price"`
	GSTPercentage float64   `bson:"gst_percentage"`
	HSNCode       string    `bson:"hsn_code,omitempty"`
	Unit          string    `bson:"unit"`
	OpeningStock  int       `bson:"opening_stock"`
	MinStockLevel int       `bson:"min_stock_level"`
	CategoryID    string    `bson:"category_id"`
	BrandID       string    `bson:"brand_id"`
	CreatedAt     time.Time `bson:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at"`
}

func newProductDoc(p *domain.Product) productDoc {
	return productDoc{
		ID:            p.ID,
		Name:          p.Name,
		SKU:           p.SKU,
		Barcode:       p.Barcode,
		Description:   p.Description,
		Status:        p.Status,
		MRP:           p.MRP,
		SellingPrice:  p.SellingPrice,
		GSTPercentage: p.GSTPercentage,
		HSNCode:       p.HSNCode,
		Unit:          p.Unit,
		OpeningStock:  p.OpeningStock,
		MinStockLevel: p.MinStockLevel,
		CategoryID:    p.CategoryID,
		BrandID:       p.BrandID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (d productDoc) toDomain() *domain.Product {
	return &domain.Product{
		ID:            d.ID,
		Name:          d.Name,
		SKU:           d.SKU,
		Barcode:       d.Barcode,
		Description:   d.Description,
		Status:        d.Status,
		MRP:           d.MRP,
		SellingPrice:  d.SellingPrice,
		GSTPercentage: d.GSTPercentage,
		HSNCode:       d.HSNCode,
		Unit:          d.Unit,
		OpeningStock:  d.OpeningStock,
		MinStockLevel: d.MinStockLevel,
		CategoryID:    d.CategoryID,
		BrandID:       d.BrandID,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// ProductRepository persists products in MongoDB. The unique index on sku
// (see EnsureIndexes) surfaces duplicates as domain.ErrDuplicateSKU.
type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection(productsCollection)}
}

// FindAll returns every product, newest first.
func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.findMany(ctx, bson.M{}, opts)
}

// FindByID retrieves a product by identifier.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc productDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// Create inserts a new product. A unique-index violation on sku is reported
// as domain.ErrDuplicateSKU.
func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := newProductDoc(product)
	doc.ID = primitive.NewObjectID().Hex()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateSKU
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// Update applies the non-nil fields of the patch and returns the updated
// product. A sku collision is reported as domain.ErrDuplicateSKU.
func (r *ProductRepository) Update(ctx context.Context, id string, patch ports.ProductPatch) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.SKU != nil {
		set["sku"] = *patch.SKU
	}
	if patch.Barcode != nil {
		set["barcode"] = *patch.Barcode
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.MRP != nil {
		set["mrp"] = *patch.MRP
	}
	if patch.SellingPrice != nil {
		set["selling_price"] = *patch.SellingPrice
	}
	if patch.GSTPercentage != nil {
		set["gst_percentage"] = *patch.GSTPercentage
	}
	if patch.HSNCode != nil {
		set["hsn_code"] = *patch.HSNCode
	}
	if patch.Unit != nil {
		set["unit"] = *patch.Unit
	}
	if patch.OpeningStock != nil {
		set["opening_stock"] = *patch.OpeningStock
	}
	if patch.MinStockLevel != nil {
		set["min_stock_level"] = *patch.MinStockLevel
	}
	if patch.CategoryID != nil {
		set["category_id"] = *patch.CategoryID
	}
	if patch.BrandID != nil {
		set["brand_id"] = *patch.BrandID
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc productDoc
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateSKU
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// Delete removes a product by identifier.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// Count returns the total number of products.
func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{})
}

// CountByCategory counts products referencing the given category.
func (r *ProductRepository) CountByCategory(ctx context.Context, categoryID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{"category_id": categoryID})
}

// CountByBrand counts products referencing the given brand.
func (r *ProductRepository) CountByBrand(ctx context.Context, brandID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{"brand_id": brandID})
}

// FindLowStock returns active products with opening stock below the
// threshold, lowest stock first, capped at limit. Inactive products are
// excluded; a disabled listing running low is not actionable.
func (r *ProductRepository) FindLowStock(ctx context.Context, threshold, limit int) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "opening_stock", Value: 1}}).
		SetLimit(int64(limit))
	return r.findMany(ctx, lowStockFilter(threshold), opts)
}

func lowStockFilter(threshold int) bson.M {
	return bson.M{
		"status":        true,
		"opening_stock": bson.M{"$lt": threshold},
	}
}

// FindLatest returns the most recently created products, capped at limit.
func (r *ProductRepository) FindLatest(ctx context.Context, limit int) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	return r.findMany(ctx, bson.M{}, opts)
}

func (r *ProductRepository) findMany(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.Product, error) {
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var products []domain.Product
	for cur.Next(ctx) {
		var doc productDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		products = append(products, *doc.toDomain())
	}
	return products, cur.Err()
}
