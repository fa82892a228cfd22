// Package redis provides a key-value store on Redis, for setups where the
// credential should be shared by several local tools pointed at the same
// instance.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/davidbz/codecraft/internal/observability"
)

// Config contains Redis connection settings.
type Config struct {
	Addr      string `env:"REDIS_ADDR"      envDefault:"localhost:6379"`
	Password  string `env:"REDIS_PASSWORD"`
	DB        int    `env:"REDIS_DB"        envDefault:"0"`
	Namespace string `env:"REDIS_NAMESPACE" envDefault:"codecraft"`
}

// Store implements a namespaced key-value store using Redis strings.
type Store struct {
	client    *redis.Client
	namespace string
}

// NewClient creates a Redis client from config.
func NewClient(cfg Config) *redis.Client {
	//nolint:exhaustruct // go-redis options have many optional fields
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// NewStore creates a store over client. Keys are prefixed with namespace.
func NewStore(client *redis.Client, namespace string) (*Store, error) {
	if client == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	return &Store{
		client:    client,
		namespace: namespace,
	}, nil
}

func (s *Store) key(key string) string {
	if s.namespace == "" {
		return key
	}
	return s.namespace + ":" + key
}

// Get returns the value for key.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		observability.FromContext(ctx).Error("redis get failed", observability.Error(err))
		return "", false, fmt.Errorf("redis get failed: %w", err)
	}
	return value, true, nil
}

// Set stores value under key without expiry.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		observability.FromContext(ctx).Error("redis set failed", observability.Error(err))
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Delete removes key.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		observability.FromContext(ctx).Error("redis delete failed", observability.Error(err))
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

// Ping verifies the connection.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}
