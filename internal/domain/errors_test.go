package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/codecraft/internal/domain"
)

func TestErrorKind(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil", err: nil, expected: ""},
		{name: "invalid credential", err: domain.ErrInvalidCredential, expected: domain.KindInvalidCredential},
		{name: "missing credential", err: domain.ErrMissingCredential, expected: domain.KindMissingCredential},
		{name: "provider error", err: domain.NewProviderError(401, "invalid key"), expected: domain.KindProviderError},
		{name: "wrapped provider error", err: fmt.Errorf("call: %w", domain.NewProviderError(500, "")), expected: domain.KindProviderError},
		{name: "malformed", err: fmt.Errorf("%w: no choices", domain.ErrMalformedResponse), expected: domain.KindMalformedResponse},
		{name: "unknown model", err: domain.ErrUnknownModel, expected: domain.KindUnknownModel},
		{name: "invalid request", err: domain.ErrInvalidRequest, expected: domain.KindInvalidRequest},
		{name: "request failed", err: domain.ErrRequestFailed, expected: domain.KindRequestFailed},
		{name: "busy", err: domain.ErrGenerationInProgress, expected: domain.KindBusy},
		{name: "other", err: errors.New("boom"), expected: domain.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, domain.ErrorKind(tt.err))
		})
	}
}

func TestUserMessage(t *testing.T) {
	t.Run("should ask for a valid key", func(t *testing.T) {
		require.Equal(t, "Please enter a valid API key", domain.UserMessage(domain.ErrInvalidCredential))
	})

	t.Run("should ask for a key when missing", func(t *testing.T) {
		require.Equal(t,
			"API key is required. Please set your OpenRouter API key.",
			domain.UserMessage(domain.ErrMissingCredential),
		)
	})

	t.Run("should show the provider message verbatim", func(t *testing.T) {
		require.Equal(t, "invalid key", domain.UserMessage(domain.NewProviderError(401, "invalid key")))
	})

	t.Run("should fall back when the provider gave no message", func(t *testing.T) {
		err := domain.NewProviderError(500, "")

		require.Equal(t, domain.UnknownProviderMessage, err.Message)
		require.Equal(t, "Failed to generate code", domain.UserMessage(err))
	})

	t.Run("should use the generic message for malformed responses", func(t *testing.T) {
		require.Equal(t, "Failed to generate code", domain.UserMessage(domain.ErrMalformedResponse))
	})

	t.Run("should be empty for nil", func(t *testing.T) {
		require.Empty(t, domain.UserMessage(nil))
	})
}

func TestProviderError_Error(t *testing.T) {
	require.Equal(t, "provider error (status 401): invalid key", domain.NewProviderError(401, "invalid key").Error())
	require.Equal(t, "provider error: unknown", domain.NewProviderError(0, "").Error())
}
