package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"obsapp/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 500*time.Millisecond, cfg.App.ProcessDelay)
	assert.Equal(t, 15, cfg.App.SeedCount)
	assert.Equal(t, 500, cfg.App.MaxDataLength)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 0.75, 1, 2.5, 5, 10}, cfg.Metrics.Buckets)
	assert.True(t, cfg.Metrics.RuntimeCollectors)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("PROCESS_DELAY", "50ms")
	t.Setenv("SEED_COUNT", "3")
	t.Setenv("METRICS_BUCKETS", "0.1,1")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 50*time.Millisecond, cfg.App.ProcessDelay)
	assert.Equal(t, 3, cfg.App.SeedCount)
	assert.Equal(t, []float64{0.1, 1}, cfg.Metrics.Buckets)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "app",
		Password: "secret",
		DBName:   "messages",
		SSLMode:  "disable",
	}
	assert.Equal(t, "host=db port=5432 user=app password=secret dbname=messages sslmode=disable", cfg.DSN())

	cfg.URL = "postgres://app:secret@db:5432/messages"
	assert.Equal(t, "postgres://app:secret@db:5432/messages", cfg.DSN())
}
