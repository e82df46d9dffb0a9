package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const countersCollection = "counters"

// nextFriendlyID atomically increments the named sequence and formats the
// result with the given prefix (CAT001, BRN002, ...). The upsert creates the
// counter document on first use, so concurrent callers never observe the
// same value.
func nextFriendlyID(ctx context.Context, db *mongo.Database, name, prefix string) (string, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := db.Collection(countersCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return "", fmt.Errorf("next %s id: %w", name, err)
	}

	return fmt.Sprintf("%s%03d", prefix, counter.Seq), nil
}
