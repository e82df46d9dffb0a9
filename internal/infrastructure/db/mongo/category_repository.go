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

const categoriesCollection = "categories"

type categoryDoc struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func (d categoryDoc) toDomain() *domain.Category {
	return &domain.Category{
		ID:        d.ID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// CategoryRepository persists categories in MongoDB. Identifiers follow the
// CAT001 scheme, allocated from the shared counters collection.
type CategoryRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{db: db, col: db.Collection(categoriesCollection)}
}

// FindAll returns every category sorted by identifier.
func (r *CategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var categories []domain.Category
	for cur.Next(ctx) {
		var doc categoryDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		categories = append(categories, *doc.toDomain())
	}
	return categories, cur.Err()
}

// FindByID retrieves a category by identifier.
func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc categoryDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// Create allocates the next friendly identifier and inserts the category.
func (r *CategoryRepository) Create(ctx context.Context, name string) (*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextFriendlyID(ctx, r.db, "category", "CAT")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := categoryDoc{ID: id, Name: name, CreatedAt: now, UpdatedAt: now}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

// Update renames a category and returns the updated document.
func (r *CategoryRepository) Update(ctx context.Context, id, name string) (*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"name": name, "updated_at": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc categoryDoc
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// Delete removes a category by identifier.
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// Count returns the total number of categories.
func (r *CategoryRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{})
}
