package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Luuchoh/Propiedades-premium/internal/config"
	httpServer "github.com/Luuchoh/Propiedades-premium/internal/infrastructure/http"
	appinit "github.com/Luuchoh/Propiedades-premium/internal/init"
	pkglogger "github.com/Luuchoh/Propiedades-premium/pkg/logger"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		pkglogger.DefaultZapLogger().Fatal("Failed to load config", zap.Error(err))
	}

	logger := cfg.Logger
	defer logger.Sync()

	logger.Info("Starting service",
		zap.String("service", cfg.Service.Name),
		zap.String("version", cfg.Service.Version),
		zap.String("environment", cfg.Service.Environment),
		zap.String("storage", cfg.Storage.Driver),
	)

	ctx := context.Background()

	infra, err := appinit.NewInfrastructure(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize infrastructure", zap.Error(err))
	}

	useCases := appinit.NewUseCases(infra.Repositories, infra.Publisher, logger)

	srv := httpServer.NewServer(
		httpServer.WithConfig(cfg.Server.HTTP),
		httpServer.WithLogger(logger),
		httpServer.WithServiceName(cfg.Service.Name),
		httpServer.WithHealthCheck(infra.Repositories.Ping),
	)
	srv.RegisterRoutes(useCases.RegisterRoutes(logger))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		logger.Info("Shutting down...")
	case err := <-errCh:
		if err != nil {
			logger.Error("HTTP server stopped", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shutdown HTTP server", zap.Error(err))
	}
	infra.Close(shutdownCtx)

	logger.Info("Server stopped")
}
