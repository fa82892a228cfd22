package domain

import (
	"fmt"
	"strings"
)

// Message roles sent to the provider.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message represents a chat message.
type Message struct {
	Role    string `json:"role"` // system, user
	Content string `json:"content"`
}

// ChatRequest is the provider-facing chat completion request.
type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

// GenerationRequest is a validated request to generate one page.
// Build it with NewGenerationRequest; the zero value is not valid.
type GenerationRequest struct {
	prompt      string
	model       ModelID
	temperature float64
	maxTokens   int
}

// NewGenerationRequest validates the inputs and builds a GenerationRequest.
func NewGenerationRequest(prompt string, model ModelID, temperature float64, maxTokens int) (GenerationRequest, error) {
	if strings.TrimSpace(prompt) == "" {
		return GenerationRequest{}, fmt.Errorf("%w: prompt cannot be empty", ErrInvalidRequest)
	}

	if temperature < 0 || temperature > 1 {
		return GenerationRequest{}, fmt.Errorf("%w: temperature %.2f outside [0,1]", ErrInvalidRequest, temperature)
	}

	if maxTokens <= 0 {
		return GenerationRequest{}, fmt.Errorf("%w: max tokens must be positive", ErrInvalidRequest)
	}

	if _, err := Resolve(model); err != nil {
		return GenerationRequest{}, err
	}

	return GenerationRequest{
		prompt:      prompt,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}, nil
}

// Prompt returns the user-supplied page description.
func (r GenerationRequest) Prompt() string { return r.prompt }

// Model returns the logical model identifier.
func (r GenerationRequest) Model() ModelID { return r.model }

// Temperature returns the sampling temperature.
func (r GenerationRequest) Temperature() float64 { return r.temperature }

// MaxTokens returns the completion token limit.
func (r GenerationRequest) MaxTokens() int { return r.maxTokens }

// ParsedArtifact holds the three code views of a generated document.
type ParsedArtifact struct {
	HTML string `json:"html"`
	CSS  string `json:"css"`
	JS   string `json:"js"`
}
