// Command events prints the change events published by the service.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Luuchoh/Propiedades-premium/internal/config"
	"github.com/Luuchoh/Propiedades-premium/internal/domain/event"
	pkglogger "github.com/Luuchoh/Propiedades-premium/pkg/logger"
	"github.com/Luuchoh/Propiedades-premium/pkg/messaging"
)

func main() {
	channel := flag.String("channel", "", "channel to follow, defaults to messaging.channel")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		pkglogger.DefaultZapLogger().Fatal("Failed to load config", zap.Error(err))
	}

	logger := cfg.Logger
	defer logger.Sync()

	if *channel == "" {
		*channel = cfg.Messaging.Channel
	}

	client, err := messaging.NewRedisClient(messaging.Options{
		Addr:     cfg.Messaging.Redis.Addr,
		Password: cfg.Messaging.Redis.Password,
		DB:       cfg.Messaging.Redis.DB,
	})
	if err != nil {
		logger.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	messages, err := client.Subscribe(ctx, *channel)
	if err != nil {
		logger.Fatal("Failed to subscribe", zap.Error(err))
	}

	logger.Info("Following change events", zap.String("channel", *channel))
	for msg := range messages {
		var e event.Event
		if err := msg.Decode(&e); err != nil {
			logger.Warn("Skipping undecodable message", zap.ByteString("payload", msg.Payload), zap.Error(err))
			continue
		}
		logger.Info("Event",
			zap.String("id", e.ID),
			zap.String("type", string(e.Type)),
			zap.String("aggregate_id", e.AggregateID),
			zap.Time("occurred_at", e.OccurredAt),
		)
	}
}
