package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5*time.Minute, cfg.Server.Timeout)
	assert.Equal(t, "-shuttlejaguarmodel-generate-api.modal.run", cfg.Jaguar.GenerateSuffix)
	assert.Equal(t, "-shuttlejaguarmodel-info.modal.run", cfg.Jaguar.InfoSuffix)
	assert.Equal(t, "-shuttlejaguarmodel-reload-model.modal.run", cfg.Jaguar.ReloadSuffix)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 10*time.Minute, cfg.RedisConfig.TTL)
	assert.False(t, cfg.CacheEnable)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JAGUAR_BASE_URL", "https://someone--shuttle-jaguar")
	t.Setenv("CACHE_ENABLE", "true")
	t.Setenv("REDIS_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "https://someone--shuttle-jaguar", cfg.Jaguar.BaseURL)
	assert.True(t, cfg.CacheEnable)
	assert.Equal(t, 30*time.Second, cfg.RedisConfig.TTL)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("SERVER_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}
