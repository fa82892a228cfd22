package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/codecraft/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("should load config with defaults", func(t *testing.T) {
		// Clear environment
		os.Clearenv()

		cfg := config.Load()

		require.NotNil(t, cfg)

		require.Equal(t, "127.0.0.1", cfg.Server.Host)
		require.Equal(t, 8080, cfg.Server.Port)
		require.Equal(t, 30, cfg.Server.ReadTimeout)
		require.Equal(t, 300, cfg.Server.WriteTimeout)
		require.Equal(t, []string{"http://127.0.0.1:8080", "http://localhost:8080"}, cfg.CORS.AllowedOrigins)
		require.False(t, cfg.CORS.AllowCredentials)
		require.Equal(t, "https://openrouter.ai/api/v1", cfg.OpenRouter.BaseURL)
		require.Equal(t, "http://localhost:8080", cfg.OpenRouter.Referer)
		require.Equal(t, "CodeCraft Generator", cfg.OpenRouter.Title)
		require.Equal(t, "llama-3-70b", cfg.Generation.Model)
		require.InDelta(t, 0.3, cfg.Generation.Temperature, 0.0001)
		require.Equal(t, 8000, cfg.Generation.MaxTokens)
		require.Equal(t, config.StorageFile, cfg.Storage.Backend)
		require.Empty(t, cfg.Storage.Path)
		require.Equal(t, "openrouter-api-key", cfg.Storage.Key)
		require.Equal(t, "localhost:6379", cfg.Redis.Addr)
		require.Equal(t, "codecraft", cfg.Redis.Namespace)
		require.Equal(t, "info", cfg.Log.Level)
		require.False(t, cfg.Log.Development)
	})

	t.Run("should load config from environment variables", func(t *testing.T) {
		t.Setenv("SERVER_HOST", "0.0.0.0")
		t.Setenv("SERVER_PORT", "9000")
		t.Setenv("SERVER_WRITE_TIMEOUT", "60")
		t.Setenv("OPENROUTER_BASE_URL", "http://127.0.0.1:4000/api/v1")
		t.Setenv("GENERATION_MODEL", "qwen-coder")
		t.Setenv("GENERATION_TEMPERATURE", "0.7")
		t.Setenv("GENERATION_MAX_TOKENS", "2000")
		t.Setenv("STORAGE_BACKEND", "redis")
		t.Setenv("STORAGE_PATH", "/tmp/codecraft.yaml")
		t.Setenv("REDIS_ADDR", "redis:6379")
		t.Setenv("REDIS_DB", "2")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_DEVELOPMENT", "true")

		cfg := config.Load()

		require.NotNil(t, cfg)

		require.Equal(t, "0.0.0.0", cfg.Server.Host)
		require.Equal(t, 9000, cfg.Server.Port)
		require.Equal(t, 60, cfg.Server.WriteTimeout)
		require.Equal(t, "http://127.0.0.1:4000/api/v1", cfg.OpenRouter.BaseURL)
		require.Equal(t, "qwen-coder", cfg.Generation.Model)
		require.InDelta(t, 0.7, cfg.Generation.Temperature, 0.0001)
		require.Equal(t, 2000, cfg.Generation.MaxTokens)
		require.Equal(t, config.StorageRedis, cfg.Storage.Backend)
		require.Equal(t, "/tmp/codecraft.yaml", cfg.Storage.Path)
		require.Equal(t, "redis:6379", cfg.Redis.Addr)
		require.Equal(t, 2, cfg.Redis.DB)
		require.Equal(t, "debug", cfg.Log.Level)
		require.True(t, cfg.Log.Development)
	})

	t.Run("should panic on invalid values", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "not-a-number")

		require.Panics(t, func() { config.Load() })
	})
}

func TestParseDependenciesConfig(t *testing.T) {
	os.Clearenv()
	cfg := config.Load()

	deps := config.ParseDependenciesConfig(cfg)

	require.Same(t, &cfg.Server, deps.Server)
	require.Same(t, &cfg.CORS, deps.CORS)
	require.Same(t, &cfg.OpenRouter, deps.OpenRouter)
	require.Same(t, &cfg.Generation, deps.Generation)
	require.Same(t, &cfg.Storage, deps.Storage)
	require.Same(t, &cfg.Redis, deps.Redis)
	require.Same(t, &cfg.Log, deps.Log)
}
