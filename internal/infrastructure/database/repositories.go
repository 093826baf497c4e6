package database

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/Luuchoh/Propiedades-premium/internal/adapter/repository/mongodb"
	"github.com/Luuchoh/Propiedades-premium/internal/config"
	"github.com/Luuchoh/Propiedades-premium/internal/domain/repository"
)

// NewRepositories creates the MongoDB-backed repositories over db.
func NewRepositories(db *mongo.Database, collections config.Collections, logger *zap.Logger) *repository.Repositories {
	repos := repository.NewRepositories(
		mongodb.NewOwnerRepository(db, collections.Owner, logger),
		mongodb.NewPropertyRepository(db, collections.Property, logger),
		mongodb.NewPropertyImageRepository(db, collections.PropertyImage, logger),
	)
	repos.Ping = func(ctx context.Context) error {
		return db.Client().Ping(ctx, readpref.Primary())
	}
	return repos
}
