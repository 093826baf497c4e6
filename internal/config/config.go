package config

import (
	"fmt"
	"time"

	pkgconfig "github.com/Luuchoh/Propiedades-premium/pkg/config"
	"github.com/Luuchoh/Propiedades-premium/pkg/logger"
	"go.uber.org/zap"
)

const serviceName = "propiedades"

// Storage drivers.
const (
	DriverMongoDB = "mongodb"
	DriverMemory  = "memory"
)

// Config is the service configuration.
type Config struct {
	Service   Service
	Server    Server
	Storage   Storage
	MongoDB   MongoDB
	Messaging Messaging
	Log       Log
	Logger    *zap.Logger
}

type Service struct {
	Name        string
	Version     string
	Environment string
}

type Server struct {
	HTTP HTTP
}

type HTTP struct {
	Host            string
	Port            int
	Debug           bool
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	AllowOrigins    []string
}

// Address is host:port for the listener.
func (h HTTP) Address() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}

type Storage struct {
	// Driver is mongodb or memory.
	Driver string
}

type MongoDB struct {
	URI            string
	Username       string
	Password       string
	Database       string
	ConnectTimeout time.Duration
	Collections    Collections
}

type Collections struct {
	Owner         string
	Property      string
	PropertyImage string
}

type Messaging struct {
	Enabled bool
	Channel string
	Redis   Redis
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type Log struct {
	Level    string
	Format   string
	Output   string
	FilePath string
}

// Load reads the propiedades configuration and builds its logger.
func Load() (*Config, error) {
	cfg, err := pkgconfig.Load(serviceName)
	if err != nil {
		return nil, err
	}

	appConfig, err := FromSource(cfg)
	if err != nil {
		return nil, err
	}

	appConfig.Logger, err = logger.NewZapLogger(logger.Config{
		Level:       appConfig.Log.Level,
		Format:      appConfig.Log.Format,
		Output:      appConfig.Log.Output,
		FilePath:    appConfig.Log.FilePath,
		Development: appConfig.Server.HTTP.Debug,
	})
	if err != nil {
		return nil, err
	}

	return appConfig, nil
}

// FromSource maps cfg onto Config, filling defaults for unset keys.
func FromSource(cfg pkgconfig.Config) (*Config, error) {
	appConfig := &Config{}

	appConfig.Service.Name = stringOr(cfg, "service.name", serviceName)
	appConfig.Service.Version = stringOr(cfg, "service.version", "dev")
	appConfig.Service.Environment = stringOr(cfg, "service.environment", "development")

	appConfig.Server.HTTP.Host = cfg.GetString("server.http.host")
	appConfig.Server.HTTP.Port = intOr(cfg, "server.http.port", 8080)
	appConfig.Server.HTTP.Debug = cfg.GetBool("server.http.debug")
	appConfig.Server.HTTP.RequestTimeout = durationOr(cfg, "server.http.request_timeout", 10*time.Second)
	appConfig.Server.HTTP.ShutdownTimeout = durationOr(cfg, "server.http.shutdown_timeout", 15*time.Second)
	appConfig.Server.HTTP.AllowOrigins = cfg.GetStringSlice("server.http.allow_origins")
	if len(appConfig.Server.HTTP.AllowOrigins) == 0 {
		appConfig.Server.HTTP.AllowOrigins = []string{"*"}
	}

	appConfig.Storage.Driver = stringOr(cfg, "storage.driver", DriverMongoDB)
	switch appConfig.Storage.Driver {
	case DriverMongoDB, DriverMemory:
	default:
		return nil, fmt.Errorf("unknown storage driver %q", appConfig.Storage.Driver)
	}

	appConfig.MongoDB.URI = stringOr(cfg, "mongodb.uri", "mongodb://localhost:27017")
	appConfig.MongoDB.Username = cfg.GetString("mongodb.username")
	appConfig.MongoDB.Password = cfg.GetString("mongodb.password")
	appConfig.MongoDB.Database = stringOr(cfg, "mongodb.database", "PropiedadesPremium")
	appConfig.MongoDB.ConnectTimeout = durationOr(cfg, "mongodb.connect_timeout", 10*time.Second)
	appConfig.MongoDB.Collections.Owner = stringOr(cfg, "mongodb.collections.owner", "Owner")
	appConfig.MongoDB.Collections.Property = stringOr(cfg, "mongodb.collections.property", "Property")
	appConfig.MongoDB.Collections.PropertyImage = stringOr(cfg, "mongodb.collections.property_image", "PropertyImage")

	appConfig.Messaging.Enabled = cfg.GetBool("messaging.enabled")
	appConfig.Messaging.Channel = stringOr(cfg, "messaging.channel", "propiedades:events")
	appConfig.Messaging.Redis.Addr = stringOr(cfg, "messaging.redis.addr", "localhost:6379")
	appConfig.Messaging.Redis.Password = cfg.GetString("messaging.redis.password")
	appConfig.Messaging.Redis.DB = cfg.GetInt("messaging.redis.db")

	appConfig.Log.Level = stringOr(cfg, "log.level", "info")
	appConfig.Log.Format = stringOr(cfg, "log.format", "json")
	appConfig.Log.Output = stringOr(cfg, "log.output", "stdout")
	appConfig.Log.FilePath = cfg.GetString("log.file_path")

	return appConfig, nil
}

func stringOr(cfg pkgconfig.Config, key, def string) string {
	if v := cfg.GetString(key); v != "" {
		return v
	}
	return def
}

func intOr(cfg pkgconfig.Config, key string, def int) int {
	if !cfg.IsSet(key) {
		return def
	}
	return cfg.GetInt(key)
}

func durationOr(cfg pkgconfig.Config, key string, def time.Duration) time.Duration {
	if d := cfg.GetDuration(key); d > 0 {
		return d
	}
	return def
}
