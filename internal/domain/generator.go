package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/davidbz/codecraft/internal/observability"
)

// Event types published by the generator.
const (
	EventGenerationSucceeded = "generation.succeeded"
	EventGenerationFailed    = "generation.failed"
)

// DefaultMaxTokens is used when no limit is configured.
const DefaultMaxTokens = 8000

// Generator orchestrates a single page generation.
type Generator struct {
	credentials CredentialReader
	provider    Provider
	events      EventPublisher
	maxTokens   int
}

// NewGenerator creates a new generator (DI constructor).
func NewGenerator(
	credentials CredentialReader,
	provider Provider,
	events EventPublisher,
	maxTokens int,
) *Generator {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	return &Generator{
		credentials: credentials,
		provider:    provider,
		events:      events,
		maxTokens:   maxTokens,
	}
}

// Generate runs one provider call for req and returns the raw document.
func (g *Generator) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	if req.maxTokens <= 0 {
		return "", fmt.Errorf("%w: request was not built with NewGenerationRequest", ErrInvalidRequest)
	}

	apiKey, ok, err := g.credentials.Get(ctx)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrMissingCredential
	}

	providerModel, err := Resolve(req.model)
	if err != nil {
		return "", err
	}

	ctx = observability.WithModel(ctx, providerModel)
	ctx = observability.WithProvider(ctx, g.provider.Name())
	logger := observability.FromContext(ctx)

	chatReq := &ChatRequest{
		Model:       providerModel,
		Messages:    BuildMessages(req.prompt),
		Temperature: req.temperature,
		MaxTokens:   req.maxTokens,
	}

	logger.Info("generation started",
		observability.String("model_id", string(req.model)),
		observability.Float64("temperature", req.temperature),
		observability.Int("max_tokens", req.maxTokens),
	)

	started := time.Now()
	content, err := g.provider.Complete(ctx, apiKey, chatReq)
	elapsed := time.Since(started)
	if err != nil {
		logger.Warn("generation failed",
			observability.String("kind", ErrorKind(err)),
			observability.Error(err),
		)
		g.publish(ctx, EventGenerationFailed, map[string]interface{}{
			"model":       string(req.model),
			"kind":        ErrorKind(err),
			"duration_ms": elapsed.Milliseconds(),
		})
		return "", err
	}

	logger.Info("generation succeeded",
		observability.Int("document_bytes", len(content)),
		observability.Duration("duration", elapsed),
	)
	g.publish(ctx, EventGenerationSucceeded, map[string]interface{}{
		"model":          string(req.model),
		"document_bytes": len(content),
		"duration_ms":    elapsed.Milliseconds(),
	})

	return content, nil
}

// GenerateArtifacts is the entry point for UI callers: it validates the
// inputs, generates a document and splits it into artifacts.
func (g *Generator) GenerateArtifacts(
	ctx context.Context,
	prompt string,
	model ModelID,
	temperature float64,
) (ParsedArtifact, error) {
	req, err := NewGenerationRequest(prompt, model, temperature, g.maxTokens)
	if err != nil {
		return ParsedArtifact{}, err
	}

	document, err := g.Generate(ctx, req)
	if err != nil {
		return ParsedArtifact{}, err
	}

	return ParseArtifact(document), nil
}

// MaxTokens returns the completion limit applied by GenerateArtifacts.
func (g *Generator) MaxTokens() int {
	return g.maxTokens
}

func (g *Generator) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if g.events == nil {
		return
	}
	g.events.Publish(ctx, eventType, data)
}

