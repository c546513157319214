package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gooficina/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "segredo")
	t.Setenv("STORAGE_DRIVER", "memory")

	cfg := config.LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, config.StorageMemory, cfg.StorageDriver)
	assert.Equal(t, 5*time.Second, cfg.DBTimeout)
	assert.True(t, cfg.CacheEnabled)
	assert.Equal(t, 300*time.Second, cfg.CacheTTL)
	assert.Equal(t, 60*time.Minute, cfg.TokenExpiry)
	assert.Equal(t, config.RateLimitRedis, cfg.RateLimitBackend)
	assert.Equal(t, 100, cfg.RateLimitMaxRequests)
	assert.Equal(t, time.Minute, cfg.RateLimitPeriod)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "segredo")
	t.Setenv("STORAGE_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://oficina@localhost/oficina?sslmode=disable")
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("CACHE_TTL_SEC", "30")
	t.Setenv("DB_TIMEOUT_SEC", "abc")
	t.Setenv("RATE_LIMIT_BACKEND", "bogus")

	cfg := config.LoadConfig()

	assert.Equal(t, config.StoragePostgres, cfg.StorageDriver)
	assert.Equal(t, "postgres://oficina@localhost/oficina?sslmode=disable", cfg.DatabaseURL)
	assert.False(t, cfg.CacheEnabled)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, 5*time.Second, cfg.DBTimeout)
	assert.Equal(t, config.RateLimitLocal, cfg.RateLimitBackend)
}
