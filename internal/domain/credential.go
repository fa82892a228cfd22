package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// DefaultCredentialKey is the store entry holding the API key.
const DefaultCredentialKey = "openrouter-api-key"

// CredentialStore owns the provider API key.
type CredentialStore struct {
	store KeyValueStore
	key   string
}

// NewCredentialStore creates a credential store over kv (DI constructor).
func NewCredentialStore(kv KeyValueStore, entry string) (*CredentialStore, error) {
	if kv == nil {
		return nil, errors.New("key-value store cannot be nil")
	}

	if entry == "" {
		entry = DefaultCredentialKey
	}

	return &CredentialStore{
		store: kv,
		key:   entry,
	}, nil
}

// Get returns the stored key. A blank stored value is reported as absent.
func (c *CredentialStore) Get(ctx context.Context) (string, bool, error) {
	value, ok, err := c.store.Get(ctx, c.key)
	if err != nil {
		return "", false, fmt.Errorf("failed to read credential: %w", err)
	}

	if !ok || strings.TrimSpace(value) == "" {
		return "", false, nil
	}

	return value, true, nil
}

// Set stores the trimmed key, replacing any prior value.
func (c *CredentialStore) Set(ctx context.Context, apiKey string) error {
	trimmed := strings.TrimSpace(apiKey)
	if trimmed == "" {
		return ErrInvalidCredential
	}

	if err := c.store.Set(ctx, c.key, trimmed); err != nil {
		return fmt.Errorf("failed to store credential: %w", err)
	}

	return nil
}

// Clear removes the stored key. Clearing an absent key is not an error.
func (c *CredentialStore) Clear(ctx context.Context) error {
	if err := c.store.Delete(ctx, c.key); err != nil {
		return fmt.Errorf("failed to clear credential: %w", err)
	}

	return nil
}
