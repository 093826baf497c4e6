package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"

	handler "github.com/Luuchoh/Propiedades-premium/internal/adapter/handler/http"
	"github.com/Luuchoh/Propiedades-premium/internal/config"
	"github.com/Luuchoh/Propiedades-premium/pkg/logger"
)

// Server is the HTTP front of the service.
type Server struct {
	echo        *echo.Echo
	logger      *zap.Logger
	config      config.HTTP
	serviceName string
	healthCheck func(ctx context.Context) error
}

// ServerOption configures a Server.
type ServerOption func(*Server)

func WithConfig(cfg config.HTTP) ServerOption {
	return func(s *Server) {
		s.config = cfg
	}
}

func WithLogger(logger *zap.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

func WithServiceName(name string) ServerOption {
	return func(s *Server) {
		s.serviceName = name
	}
}

// WithHealthCheck sets the store probe behind /health.
func WithHealthCheck(check func(ctx context.Context) error) ServerOption {
	return func(s *Server) {
		s.healthCheck = check
	}
}

// NewServer builds the echo instance with the middleware chain and /health.
func NewServer(opts ...ServerOption) *Server {
	s := &Server{
		echo:        echo.New(),
		logger:      zap.NewNop(),
		serviceName: "propiedades",
		config: config.HTTP{
			Port:           8080,
			RequestTimeout: 10 * time.Second,
			AllowOrigins:   []string{"*"},
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	e := s.echo
	e.HideBanner = true
	e.HidePort = true
	e.Debug = s.config.Debug
	e.Validator = handler.NewRequestValidator()

	logger.WithEchoLogger(e, s.logger)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: newRequestID,
	}))
	e.Use(logger.NewEchoRequestLogger(s.logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: s.config.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	if s.config.RequestTimeout > 0 {
		e.Use(middleware.ContextTimeout(s.config.RequestTimeout))
	}

	e.GET("/health", s.health)

	return s
}

func newRequestID() string {
	id, err := gonanoid.New()
	if err != nil {
		return ""
	}
	return id
}

func (s *Server) health(c echo.Context) error {
	if s.healthCheck != nil {
		if err := s.healthCheck(c.Request().Context()); err != nil {
			s.logger.Warn("Health check failed", zap.Error(err))
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status":  "unhealthy",
				"service": s.serviceName,
			})
		}
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": s.serviceName,
	})
}

// RegisterRoutes hands the echo instance to a handler's route registration.
func (s *Server) RegisterRoutes(registerFunc func(e *echo.Echo)) {
	registerFunc(s.echo)
}

// Start blocks serving HTTP. It returns nil after a graceful Shutdown.
func (s *Server) Start() error {
	addr := s.config.Address()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}
