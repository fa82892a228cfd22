package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/davidbz/codecraft/internal/config"
	"github.com/davidbz/codecraft/internal/domain"
	"github.com/davidbz/codecraft/internal/http"
	"github.com/davidbz/codecraft/internal/http/middleware"
	"github.com/davidbz/codecraft/internal/observability"
	"github.com/davidbz/codecraft/internal/provider/openrouter"
	"github.com/davidbz/codecraft/internal/storage/file"
	"github.com/davidbz/codecraft/internal/storage/memory"
	"github.com/davidbz/codecraft/internal/storage/redis"
)

const (
	appName            = "codecraft"
	redisPingTimeout   = 5 * time.Second
	serverStopDeadline = 10 * time.Second
)

// ErrUnknownStorageBackend indicates STORAGE_BACKEND names no supported store.
var ErrUnknownStorageBackend = errors.New("unknown storage backend")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", errorMessage(err))
		return 1
	}
	return 0
}

// errorMessage prefers the user-facing text and falls back to the full error
// for failures that have none.
func errorMessage(err error) string {
	if domain.ErrorKind(err) == domain.KindInternal {
		return err.Error()
	}
	return domain.UserMessage(err)
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}
	if err := container.Provide(func(logger *zap.Logger) domain.EventPublisher {
		return observability.NewEventBus(logger)
	}); err != nil {
		log.Fatalf("Failed to provide event bus: %v", err)
	}

	// Storage
	if err := container.Provide(newKeyValueStore); err != nil {
		log.Fatalf("Failed to provide key-value store: %v", err)
	}
	if err := container.Provide(func(kv domain.KeyValueStore, cfg *config.StorageConfig) (*domain.CredentialStore, error) {
		return domain.NewCredentialStore(kv, cfg.Key)
	}); err != nil {
		log.Fatalf("Failed to provide credential store: %v", err)
	}
	if err := container.Provide(func(credentials *domain.CredentialStore) domain.CredentialReader {
		return credentials
	}); err != nil {
		log.Fatalf("Failed to provide credential reader: %v", err)
	}

	// OpenRouter Provider
	if err := container.Provide(func(cfg *openrouter.Config) (domain.Provider, error) {
		return openrouter.NewProvider(*cfg)
	}); err != nil {
		log.Fatalf("Failed to provide OpenRouter provider: %v", err)
	}

	// Domain Services
	if err := container.Provide(func(
		credentials domain.CredentialReader,
		provider domain.Provider,
		events domain.EventPublisher,
		cfg *config.GenerationConfig,
	) *domain.Generator {
		return domain.NewGenerator(credentials, provider, events, cfg.MaxTokens)
	}); err != nil {
		log.Fatalf("Failed to provide generator: %v", err)
	}
	if err := container.Provide(domain.NewWorkspace); err != nil {
		log.Fatalf("Failed to provide workspace: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(http.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(http.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}

// newKeyValueStore opens the backend selected by STORAGE_BACKEND.
func newKeyValueStore(cfg *config.StorageConfig, redisCfg *redis.Config) (domain.KeyValueStore, error) {
	switch cfg.Backend {
	case config.StorageFile, "":
		path := cfg.Path
		if path == "" {
			defaultPath, err := file.DefaultPath(appName)
			if err != nil {
				return nil, err
			}
			path = defaultPath
		}
		return file.NewStore(path)

	case config.StorageRedis:
		store, err := redis.NewStore(redis.NewClient(*redisCfg), redisCfg.Namespace)
		if err != nil {
			return nil, err
		}

		ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			return nil, err
		}
		return store, nil

	case config.StorageMemory:
		return memory.NewStore(), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorageBackend, cfg.Backend)
	}
}
