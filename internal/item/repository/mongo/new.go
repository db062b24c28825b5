package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"inventory-management/internal/item/repository"
	"inventory-management/pkg/log"
)

const (
	collectionName   = "items"
	codeIndexName    = "code_unique"
	nameIndexName    = "name_unique"
	duplicateKeyCode = 11000
)

type implRepository struct {
	col *mongo.Collection
	l   log.Logger
}

// New creates a MongoDB-backed Repository for the item domain.
func New(db *mongo.Database, l log.Logger) repository.Repository {
	if db == nil {
		panic("item/repository/mongo: db is required")
	}
	return &implRepository{col: db.Collection(collectionName), l: l}
}

// EnsureIndexes creates the unique and sort indexes on the items collection.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	models := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "code", Value: 1}},
			Options: options.Index().
				SetName(codeIndexName).
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"code": bson.M{"$gt": ""}}),
		},
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetName(nameIndexName).SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}},
			Options: options.Index().SetName("created_at_desc"),
		},
	}
	if _, err := db.Collection(collectionName).Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("creating item indexes: %w", err)
	}
	return nil
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("item/repository/mongo.%s", method)
}
