// Package openrouter provides an adapter for the OpenRouter chat-completion
// API using the OpenAI SDK. It implements the domain.Provider interface and
// maps SDK failures onto the domain error taxonomy.
package openrouter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/davidbz/codecraft/internal/domain"
	"github.com/davidbz/codecraft/internal/observability"
)

const providerName = "openrouter"

// Provider implements the domain.Provider interface for OpenRouter.
type Provider struct {
	client openai.Client
	name   string
}

// NewProvider creates a new OpenRouter provider.
func NewProvider(config Config) (*Provider, error) {
	if config.BaseURL == "" {
		return nil, errors.New("OpenRouter base URL is required")
	}

	opts := []option.RequestOption{
		option.WithBaseURL(config.BaseURL),
		// One request per generation: never retry.
		option.WithMaxRetries(0),
	}

	if config.Referer != "" {
		opts = append(opts, option.WithHeader("HTTP-Referer", config.Referer))
	}

	if config.Title != "" {
		opts = append(opts, option.WithHeader("X-Title", config.Title))
	}

	return &Provider{
		client: openai.NewClient(opts...),
		name:   providerName,
	}, nil
}

// Complete sends a completion request and returns the first choice's content.
func (p *Provider) Complete(ctx context.Context, apiKey string, req *domain.ChatRequest) (string, error) {
	if req == nil {
		return "", errors.New("request cannot be nil")
	}

	if apiKey == "" {
		return "", domain.ErrMissingCredential
	}

	logger := observability.FromContext(ctx)
	logger.Debug("calling OpenRouter API")

	var (
		httpResp *http.Response
		body     []byte
	)
	// The body is captured raw so a JSON payload is accepted whatever its
	// content type; error statuses still surface as *openai.Error.
	_, err := p.client.Chat.Completions.New(ctx, p.toSDKParams(req),
		option.WithAPIKey(apiKey),
		option.WithResponseInto(&httpResp),
		option.WithResponseBodyInto(&body),
	)
	if err != nil {
		classified := classifyError(err, httpResp)
		logger.Error("OpenRouter API call failed", observability.Error(err))
		return "", classified
	}

	if httpResp != nil && !isSuccess(httpResp.StatusCode) {
		logger.Error("OpenRouter API returned non-success status", observability.Int("status", httpResp.StatusCode))
		return "", domain.NewProviderError(httpResp.StatusCode, "")
	}

	var resp openai.ChatCompletion
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", domain.ErrMalformedResponse)
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("%w: first choice has no content", domain.ErrMalformedResponse)
	}

	logger.Debug("OpenRouter API call succeeded",
		observability.Int("prompt_tokens", int(resp.Usage.PromptTokens)),
		observability.Int("completion_tokens", int(resp.Usage.CompletionTokens)),
	)

	return content, nil
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return p.name
}

// classifyError maps an SDK error onto the domain taxonomy. httpResp is the
// raw response when one was received.
func classifyError(err error, httpResp *http.Response) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return domain.NewProviderError(apiErr.StatusCode, apiErr.Message)
	}

	if httpResp == nil {
		return fmt.Errorf("%w: %w", domain.ErrRequestFailed, err)
	}

	// The SDK could not decode the error body.
	if !isSuccess(httpResp.StatusCode) {
		return domain.NewProviderError(httpResp.StatusCode, "")
	}

	return fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

// toSDKParams converts domain request to SDK ChatCompletionNewParams
func (p *Provider) toSDKParams(req *domain.ChatRequest) openai.ChatCompletionNewParams {
	messages := make([]openai.ChatCompletionMessageParamUnion, len(req.Messages))
	for i, msg := range req.Messages {
		switch msg.Role {
		case domain.RoleSystem:
			messages[i] = openai.SystemMessage(msg.Content)
		default:
			messages[i] = openai.UserMessage(msg.Content)
		}
	}

	//nolint:exhaustruct // OpenAI SDK struct has many optional fields
	return openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(req.Model),
		Messages:    messages,
		Temperature: openai.Float(req.Temperature),
		MaxTokens:   openai.Int(int64(req.MaxTokens)),
	}
}
