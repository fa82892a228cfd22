package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredential indicates an empty or whitespace-only API key was submitted.
	ErrInvalidCredential = errors.New("invalid credential")

	// ErrMissingCredential indicates a generation was attempted with no stored API key.
	ErrMissingCredential = errors.New("missing credential")

	// ErrMalformedResponse indicates the provider answered 2xx without a usable choice.
	ErrMalformedResponse = errors.New("malformed provider response")

	// ErrUnknownModel indicates a model identifier outside the catalog.
	ErrUnknownModel = errors.New("unknown model")

	// ErrInvalidRequest indicates a generation request failed validation.
	ErrInvalidRequest = errors.New("invalid generation request")

	// ErrRequestFailed indicates the provider could not be reached at all.
	ErrRequestFailed = errors.New("provider request failed")

	// ErrGenerationInProgress indicates a generation is already outstanding.
	ErrGenerationInProgress = errors.New("generation already in progress")
)

// UnknownProviderMessage is used when the provider error body carries no message.
const UnknownProviderMessage = "unknown"

// ProviderError is returned when the provider rejects a request.
type ProviderError struct {
	Message    string
	StatusCode int
}

// NewProviderError creates a provider error, falling back to UnknownProviderMessage.
func NewProviderError(statusCode int, message string) *ProviderError {
	if message == "" {
		message = UnknownProviderMessage
	}
	return &ProviderError{
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *ProviderError) Error() string {
	if e.StatusCode == 0 {
		return "provider error: " + e.Message
	}
	return fmt.Sprintf("provider error (status %d): %s", e.StatusCode, e.Message)
}

// Error kinds exposed to callers.
const (
	KindInvalidCredential = "invalid_credential"
	KindMissingCredential = "missing_credential"
	KindProviderError     = "provider_error"
	KindMalformedResponse = "malformed_response"
	KindUnknownModel      = "unknown_model"
	KindInvalidRequest    = "invalid_request"
	KindRequestFailed     = "request_failed"
	KindBusy              = "busy"
	KindInternal          = "internal"
)

// ErrorKind classifies err into one of the Kind constants.
func ErrorKind(err error) string {
	var providerErr *ProviderError

	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidCredential):
		return KindInvalidCredential
	case errors.Is(err, ErrMissingCredential):
		return KindMissingCredential
	case errors.As(err, &providerErr):
		return KindProviderError
	case errors.Is(err, ErrMalformedResponse):
		return KindMalformedResponse
	case errors.Is(err, ErrUnknownModel):
		return KindUnknownModel
	case errors.Is(err, ErrInvalidRequest):
		return KindInvalidRequest
	case errors.Is(err, ErrRequestFailed):
		return KindRequestFailed
	case errors.Is(err, ErrGenerationInProgress):
		return KindBusy
	default:
		return KindInternal
	}
}

// UserMessage returns the notification text shown to the user for err.
func UserMessage(err error) string {
	var providerErr *ProviderError

	switch ErrorKind(err) {
	case "":
		return ""
	case KindInvalidCredential:
		return "Please enter a valid API key"
	case KindMissingCredential:
		return "API key is required. Please set your OpenRouter API key."
	case KindProviderError:
		errors.As(err, &providerErr)
		if providerErr.Message == UnknownProviderMessage {
			return "Failed to generate code"
		}
		return providerErr.Message
	case KindBusy:
		return "A generation is already running"
	case KindInvalidRequest, KindUnknownModel:
		return err.Error()
	default:
		return "Failed to generate code"
	}
}
