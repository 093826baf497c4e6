package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/Luuchoh/Propiedades-premium/internal/config"
)

// EnsureIndexes creates the lookup indexes. DNI stays non-unique so existing
// data with duplicates still loads; uniqueness is checked by the owner use case.
func EnsureIndexes(ctx context.Context, db *mongo.Database, collections config.Collections, log *zap.Logger) error {
	plan := []struct {
		collection string
		models     []mongo.IndexModel
	}{
		{
			collection: collections.Owner,
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "DNI", Value: 1}}, Options: options.Index().SetName("dni")},
			},
		},
		{
			collection: collections.Property,
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "IdOwner", Value: 1}}, Options: options.Index().SetName("id_owner")},
				{Keys: bson.D{{Key: "Status", Value: 1}}, Options: options.Index().SetName("status")},
				{Keys: bson.D{{Key: "Price", Value: 1}}, Options: options.Index().SetName("price")},
				{Keys: bson.D{{Key: "CreatedAt", Value: -1}}, Options: options.Index().SetName("created_at")},
			},
		},
		{
			collection: collections.PropertyImage,
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "IdProperty", Value: 1}}, Options: options.Index().SetName("id_property")},
			},
		},
	}

	for _, p := range plan {
		names, err := db.Collection(p.collection).Indexes().CreateMany(ctx, p.models)
		if err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", p.collection, err)
		}
		log.Debug("Indexes ensured", zap.String("collection", p.collection), zap.Strings("indexes", names))
	}

	return nil
}
