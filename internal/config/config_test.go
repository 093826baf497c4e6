package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, serviceName+".yaml"), []byte(body), 0o644))
	t.Setenv("CONFIG_PATH", dir)
}

func TestLoad_Defaults(t *testing.T) {
	writeConfig(t, "service:\n  name: propiedades\n")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTP.Port)
	assert.Equal(t, ":8080", cfg.Server.HTTP.Address())
	assert.Equal(t, 10*time.Second, cfg.Server.HTTP.RequestTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.HTTP.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.HTTP.AllowOrigins)
	assert.Equal(t, DriverMongoDB, cfg.Storage.Driver)
	assert.Equal(t, "PropiedadesPremium", cfg.MongoDB.Database)
	assert.Equal(t, Collections{Owner: "Owner", Property: "Property", PropertyImage: "PropertyImage"}, cfg.MongoDB.Collections)
	assert.False(t, cfg.Messaging.Enabled)
	assert.Equal(t, "propiedades:events", cfg.Messaging.Channel)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NotNil(t, cfg.Logger)
}

func TestLoad_FileAndEnv(t *testing.T) {
	writeConfig(t, `
server:
  http:
    host: 127.0.0.1
    port: 9000
    request_timeout: 3s
    allow_origins: ["http://localhost:3000"]
storage:
  driver: memory
mongodb:
  username: admin
  collections:
    owner: owners
messaging:
  enabled: true
  redis:
    addr: redis:6379
    db: 2
log:
  level: debug
  format: console
`)
	t.Setenv("PROPIEDADES_MONGODB_DATABASE", "fromenv")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTP.Address())
	assert.Equal(t, 3*time.Second, cfg.Server.HTTP.RequestTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.HTTP.AllowOrigins)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "admin", cfg.MongoDB.Username)
	assert.Equal(t, "fromenv", cfg.MongoDB.Database)
	assert.Equal(t, "owners", cfg.MongoDB.Collections.Owner)
	assert.Equal(t, "Property", cfg.MongoDB.Collections.Property)
	assert.True(t, cfg.Messaging.Enabled)
	assert.Equal(t, Redis{Addr: "redis:6379", DB: 2}, cfg.Messaging.Redis)
	assert.Equal(t, Log{Level: "debug", Format: "console", Output: "stdout"}, cfg.Log)
}

func TestLoad_UnknownDriver(t *testing.T) {
	writeConfig(t, "storage:\n  driver: postgres\n")

	_, err := Load()
	assert.ErrorContains(t, err, "unknown storage driver")
}
