package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/davidbz/codecraft/internal/observability"
	"github.com/davidbz/codecraft/internal/provider/openrouter"
	"github.com/davidbz/codecraft/internal/storage/redis"
)

// Storage backends.
const (
	StorageFile   = "file"
	StorageRedis  = "redis"
	StorageMemory = "memory"
)

// Config represents the generator configuration.
type Config struct {
	Server     ServerConfig
	CORS       CORSConfig
	OpenRouter openrouter.Config
	Generation GenerationConfig
	Storage    StorageConfig
	Redis      redis.Config
	Log        observability.Config
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host         string `env:"SERVER_HOST"          envDefault:"127.0.0.1"`
	Port         int    `env:"SERVER_PORT"          envDefault:"8080"`
	ReadTimeout  int    `env:"SERVER_READ_TIMEOUT"  envDefault:"30"`
	WriteTimeout int    `env:"SERVER_WRITE_TIMEOUT" envDefault:"300"`
}

// CORSConfig contains CORS policy settings. The defaults admit only the
// local server's own origins since the API can read and replace the key.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"http://127.0.0.1:8080,http://localhost:8080"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"false"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// GenerationConfig contains defaults applied when a caller omits them.
type GenerationConfig struct {
	Model       string  `env:"GENERATION_MODEL"       envDefault:"llama-3-70b"`
	Temperature float64 `env:"GENERATION_TEMPERATURE" envDefault:"0.3"`
	MaxTokens   int     `env:"GENERATION_MAX_TOKENS"  envDefault:"8000"`
}

// StorageConfig selects where the API key is persisted.
// An empty Path means the per-user default location.
type StorageConfig struct {
	Backend string `env:"STORAGE_BACKEND" envDefault:"file"`
	Path    string `env:"STORAGE_PATH"`
	Key     string `env:"STORAGE_KEY"     envDefault:"openrouter-api-key"`
}

// DepConfig is used for dependency injection with dig.
// Sub-configs whose type is named Config need explicit field names.
type DepConfig struct {
	dig.Out
	Server     *ServerConfig
	CORS       *CORSConfig
	OpenRouter *openrouter.Config
	Generation *GenerationConfig
	Storage    *StorageConfig
	Redis      *redis.Config
	Log        *observability.Config
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return &cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		Out:        dig.Out{},
		Server:     &cfg.Server,
		CORS:       &cfg.CORS,
		OpenRouter: &cfg.OpenRouter,
		Generation: &cfg.Generation,
		Storage:    &cfg.Storage,
		Redis:      &cfg.Redis,
		Log:        &cfg.Log,
	}
}
