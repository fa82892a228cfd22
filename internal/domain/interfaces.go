package domain

import "context"

// Provider represents the chat-completion service that generates pages.
type Provider interface {
	// Complete sends one chat completion authorized by apiKey and returns the
	// first choice's content.
	Complete(ctx context.Context, apiKey string, req *ChatRequest) (string, error)

	// Name returns the provider identifier.
	Name() string
}

// KeyValueStore is a durable string-keyed, string-valued store.
type KeyValueStore interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any prior value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// CredentialReader provides read access to the stored API key.
type CredentialReader interface {
	// Get returns the stored key and whether one is present.
	Get(ctx context.Context) (string, bool, error)
}

// EventPublisher publishes events for observability.
type EventPublisher interface {
	// Publish publishes an event with the given type and data.
	Publish(ctx context.Context, eventType string, data map[string]interface{})
}
