package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/timekeeper/inventory-system/internal/core/domain"
)

const brandsCollection = "brands"

type brandDoc struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func (d brandDoc) toDomain() *domain.Brand {
	return &domain.Brand{
		ID:        d.ID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// BrandRepository persists brands in MongoDB. Identifiers follow the BRN001
// scheme, allocated from the shared counters collection.
type BrandRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewBrandRepository(db *mongo.Database) *BrandRepository {
	return &BrandRepository{db: db, col: db.Collection(brandsCollection)}
}

// FindAll returns every brand sorted by identifier.
func (r *BrandRepository) FindAll(ctx context.Context) ([]domain.Brand, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var brands []domain.Brand
	for cur.Next(ctx) {
		var doc brandDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		brands = append(brands, *doc.toDomain())
	}
	return brands, cur.Err()
}

// FindByID retrieves a brand by identifier.
func (r *BrandRepository) FindByID(ctx context.Context, id string) (*domain.Brand, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc brandDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBrandNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// Create allocates the next friendly identifier and inserts the brand.
func (r *BrandRepository) Create(ctx context.Context, name string) (*domain.Brand, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextFriendlyID(ctx, r.db, "brand", "BRN")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := brandDoc{ID: id, Name: name, CreatedAt: now, UpdatedAt: now}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

// Update renames a brand and returns the updated document.
func (r *BrandRepository) Update(ctx context.Context, id, name string) (*domain.Brand, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"name": name, "updated_at": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc brandDoc
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBrandNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// Delete removes a brand by identifier.
func (r *BrandRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrBrandNotFound
	}
	return nil
}

// Count returns the total number of brands.
func (r *BrandRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{})
}
