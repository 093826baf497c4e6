package init

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	eventadapter "github.com/Luuchoh/Propiedades-premium/internal/adapter/event"
	"github.com/Luuchoh/Propiedades-premium/internal/adapter/repository/memory"
	"github.com/Luuchoh/Propiedades-premium/internal/config"
	"github.com/Luuchoh/Propiedades-premium/internal/domain/event"
	"github.com/Luuchoh/Propiedades-premium/internal/domain/repository"
	"github.com/Luuchoh/Propiedades-premium/internal/infrastructure/database"
	"github.com/Luuchoh/Propiedades-premium/pkg/messaging"
)

// Infrastructure owns the store and broker connections of the process.
type Infrastructure struct {
	Repositories *repository.Repositories
	Publisher    event.Publisher

	mongoClient *mongo.Client
	redis       messaging.RedisClient
	logger      *zap.Logger
}

// NewInfrastructure opens the configured store and, when enabled, the event broker.
func NewInfrastructure(ctx context.Context, cfg *config.Config) (*Infrastructure, error) {
	infra := &Infrastructure{
		Publisher: eventadapter.NewNoopPublisher(),
		logger:    cfg.Logger,
	}

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		cfg.Logger.Warn("Using in-memory storage; data is lost on restart")
		infra.Repositories = memory.NewRepositories(memory.NewStore())

	default:
		client, err := database.NewConnection(ctx, &cfg.MongoDB, cfg.Logger)
		if err != nil {
			return nil, err
		}
		infra.mongoClient = client

		db := client.Database(cfg.MongoDB.Database)
		if err := database.EnsureIndexes(ctx, db, cfg.MongoDB.Collections, cfg.Logger); err != nil {
			infra.Close(context.Background())
			return nil, err
		}
		infra.Repositories = database.NewRepositories(db, cfg.MongoDB.Collections, cfg.Logger)
	}

	if cfg.Messaging.Enabled {
		client, err := messaging.NewRedisClient(messaging.Options{
			Addr:     cfg.Messaging.Redis.Addr,
			Password: cfg.Messaging.Redis.Password,
			DB:       cfg.Messaging.Redis.DB,
		})
		if err != nil {
			infra.Close(context.Background())
			return nil, fmt.Errorf("failed to initialize event publisher: %w", err)
		}
		infra.redis = client
		infra.Publisher = eventadapter.NewRedisPublisher(client, cfg.Messaging.Channel, cfg.Logger)
		cfg.Logger.Info("Publishing change events", zap.String("channel", cfg.Messaging.Channel))
	}

	return infra, nil
}

// Close releases every connection, logging failures.
func (i *Infrastructure) Close(ctx context.Context) {
	if i.redis != nil {
		if err := i.redis.Close(); err != nil {
			i.logger.Error("Failed to close redis connection", zap.Error(err))
		}
	}
	if i.mongoClient != nil {
		if err := database.Close(ctx, i.mongoClient, i.logger); err != nil {
			i.logger.Error("Failed to close database connection", zap.Error(err))
		}
	}
}
