package main

import (
	"context"
	"flag"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Luuchoh/Propiedades-premium/internal/config"
	appinit "github.com/Luuchoh/Propiedades-premium/internal/init"
	"github.com/Luuchoh/Propiedades-premium/internal/seed"
	pkglogger "github.com/Luuchoh/Propiedades-premium/pkg/logger"
)

func main() {
	path := flag.String("f", "configs/seed/sample.yaml", "seed file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		pkglogger.DefaultZapLogger().Fatal("Failed to load config", zap.Error(err))
	}

	logger := cfg.Logger
	defer logger.Sync()

	if cfg.Storage.Driver == config.DriverMemory {
		logger.Warn("Seeding in-memory storage has no lasting effect")
	}

	file, err := seed.LoadFile(*path)
	if err != nil {
		logger.Fatal("Failed to load seed file", zap.String("path", *path), zap.Error(err))
	}

	ctx := context.Background()

	infra, err := appinit.NewInfrastructure(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize infrastructure", zap.Error(err))
	}
	defer infra.Close(context.Background())

	useCases := appinit.NewUseCases(infra.Repositories, infra.Publisher, logger)

	if _, err := seed.NewSeeder(useCases.Owner, useCases.Property, logger).Run(ctx, file); err != nil {
		logger.Error("Seed failed", zap.Error(err))
		return
	}
}
