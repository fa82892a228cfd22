package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"mime"
	"net/http"
	"strings"

	"github.com/davidbz/codecraft/internal/config"
	"github.com/davidbz/codecraft/internal/domain"
	"github.com/davidbz/codecraft/internal/observability"
)

const maxRequestBytes = 1 << 20

// errUnsupportedMediaType rejects bodies not declared as JSON. Form-encodable
// content types skip the browser's CORS preflight.
var errUnsupportedMediaType = fmt.Errorf("%w: content type must be application/json", domain.ErrInvalidRequest)

// GenerateRequest is the body of POST /v1/generate. Omitted fields fall back
// to the configured generation defaults.
type GenerateRequest struct {
	Prompt      string   `json:"prompt"`
	Model       string   `json:"model,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
}

// KeyRequest is the body of PUT /v1/key.
type KeyRequest struct {
	APIKey string `json:"api_key"`
}

// KeyStatus reports whether a key is stored, never the key itself.
type KeyStatus struct {
	Configured bool   `json:"configured"`
	Masked     string `json:"masked,omitempty"`
}

// ArtifactsResponse is the workspace state.
type ArtifactsResponse struct {
	domain.ParsedArtifact
	Generating bool `json:"generating"`
}

// ModelsResponse lists the catalog.
type ModelsResponse struct {
	Models  []domain.ModelInfo `json:"models"`
	Default domain.ModelID     `json:"default"`
}

// ErrorBody is the JSON error envelope.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the error kind and the user-facing message.
type ErrorDetail struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

var previewPage = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>CodeCraft Preview ({{.Device}})</title>
  <style>
    body { margin: 0; background: #e2e8f0; }
    iframe { display: block; width: 100%; height: 100vh; margin: 0 auto; border: 0; background: white;{{if .MaxWidth}} max-width: {{.MaxWidth}}px;{{end}} }
  </style>
</head>
<body>
  <iframe src="/preview/frame" title="Preview" sandbox="allow-scripts allow-forms allow-modals"></iframe>
</body>
</html>
`))

// Handler handles HTTP requests.
type Handler struct {
	generator   *domain.Generator
	credentials *domain.CredentialStore
	workspace   *domain.Workspace
	defaults    *config.GenerationConfig
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(
	generator *domain.Generator,
	credentials *domain.CredentialStore,
	workspace *domain.Workspace,
	defaults *config.GenerationConfig,
) *Handler {
	return &Handler{
		generator:   generator,
		credentials: credentials,
		workspace:   workspace,
		defaults:    defaults,
	}
}

// HandleGenerate runs one generation and replaces the workspace artifacts on
// success.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.FromContext(ctx)

	if !isJSON(r) {
		writeError(w, errUnsupportedMediaType)
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body: %w", domain.ErrInvalidRequest, err))
		return
	}

	modelName := req.Model
	if modelName == "" {
		modelName = h.defaults.Model
	}
	model, err := domain.ParseModelID(modelName)
	if err != nil {
		writeError(w, err)
		return
	}

	temperature := h.defaults.Temperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	if err := h.workspace.Begin(); err != nil {
		writeError(w, err)
		return
	}

	// Finish runs even if generation panics; nil keeps the prior artifacts.
	var result *domain.ParsedArtifact
	defer func() { h.workspace.Finish(result) }()

	artifact, err := h.generator.GenerateArtifacts(ctx, req.Prompt, model, temperature)
	if err != nil {
		logger.Warn("generate request failed", observability.String("kind", domain.ErrorKind(err)))
		writeError(w, err)
		return
	}
	result = &artifact

	writeJSON(w, http.StatusOK, artifact)
}

// HandleGetKey reports whether a key is stored.
func (h *Handler) HandleGetKey(w http.ResponseWriter, r *http.Request) {
	key, ok, err := h.credentials.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, KeyStatus{
		Configured: ok,
		Masked:     MaskKey(key),
	})
}

// HandlePutKey saves the submitted key.
func (h *Handler) HandlePutKey(w http.ResponseWriter, r *http.Request) {
	if !isJSON(r) {
		writeError(w, errUnsupportedMediaType)
		return
	}

	var req KeyRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body: %w", domain.ErrInvalidRequest, err))
		return
	}

	if err := h.credentials.Set(r.Context(), req.APIKey); err != nil {
		writeError(w, err)
		return
	}

	observability.FromContext(r.Context()).Info("api key saved")
	w.WriteHeader(http.StatusNoContent)
}

// HandleDeleteKey clears the stored key.
func (h *Handler) HandleDeleteKey(w http.ResponseWriter, r *http.Request) {
	if err := h.credentials.Clear(r.Context()); err != nil {
		writeError(w, err)
		return
	}

	observability.FromContext(r.Context()).Info("api key cleared")
	w.WriteHeader(http.StatusNoContent)
}

// HandleModels lists the model catalog.
func (h *Handler) HandleModels(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, ModelsResponse{
		Models:  domain.Models(),
		Default: domain.ConfiguredModel(h.defaults.Model),
	})
}

// HandleArtifacts returns the artifacts currently in the workspace.
func (h *Handler) HandleArtifacts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, ArtifactsResponse{
		ParsedArtifact: h.workspace.Current(),
		Generating:     h.workspace.Generating(),
	})
}

// HandlePreview renders the device frame around the current document.
func (h *Handler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	device, err := domain.ParseDevice(r.URL.Query().Get("device"))
	if err != nil {
		writeError(w, fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := previewPage.Execute(w, struct {
		Device   domain.Device
		MaxWidth int
	}{
		Device:   device,
		MaxWidth: device.MaxWidth(),
	}); err != nil {
		observability.FromContext(r.Context()).Error("failed to render preview", observability.Error(err))
	}
}

// HandlePreviewFrame serves the raw generated document.
func (h *Handler) HandlePreviewFrame(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(h.workspace.Current().HTML)); err != nil {
		observability.FromContext(r.Context()).Debug("failed to write preview frame", observability.Error(err))
	}
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// MaskKey hides all but the last four characters of key.
func MaskKey(key string) string {
	if key == "" {
		return ""
	}

	const visible = 4
	runes := []rune(key)
	if len(runes) <= visible*2 {
		return strings.Repeat("*", len(runes))
	}

	return strings.Repeat("*", len(runes)-visible) + string(runes[len(runes)-visible:])
}

// StatusCode maps an error to its HTTP status.
func StatusCode(err error) int {
	switch domain.ErrorKind(err) {
	case domain.KindInvalidCredential, domain.KindInvalidRequest, domain.KindUnknownModel:
		return http.StatusBadRequest
	case domain.KindMissingCredential:
		return http.StatusUnauthorized
	case domain.KindBusy:
		return http.StatusConflict
	case domain.KindProviderError, domain.KindMalformedResponse, domain.KindRequestFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// isJSON reports whether the request body is declared as JSON.
func isJSON(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

func writeError(w http.ResponseWriter, err error) {
	var maxBytesErr *http.MaxBytesError
	status := StatusCode(err)
	switch {
	case errors.As(err, &maxBytesErr):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(err, errUnsupportedMediaType):
		status = http.StatusUnsupportedMediaType
	}

	writeJSON(w, status, ErrorBody{
		Error: ErrorDetail{
			Kind:    domain.ErrorKind(err),
			Message: domain.UserMessage(err),
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Status is already written; an encode failure can only be dropped.
	_ = json.NewEncoder(w).Encode(body)
}
