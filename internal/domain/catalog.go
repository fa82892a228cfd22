package domain

import (
	"fmt"
	"strings"
)

// ModelID is the application's stable name for a model.
type ModelID string

// Supported models.
const (
	ModelLlama3_70B     ModelID = "llama-3-70b"
	ModelQwenCoder      ModelID = "qwen-coder"
	ModelNvidiaNemotron ModelID = "nvidia-nemotron"
	ModelLlama3_8B      ModelID = "llama-3-8b"
	ModelMistralNemo    ModelID = "mistral-nemo"
	ModelGeminiFlash    ModelID = "gemini-flash"
	ModelLlama3Vision   ModelID = "llama-3-vision"
	ModelDeepseekCoder  ModelID = "deepseek-coder"
	ModelClaude35Sonnet ModelID = "claude-3-5-sonnet"
)

// DefaultModel is used when the caller does not pick one.
const DefaultModel = ModelLlama3_70B

// ModelInfo is one row of the model catalog.
type ModelInfo struct {
	ID            ModelID `json:"id"`
	ProviderModel string  `json:"provider_model"`
	DisplayName   string  `json:"display_name"`
}

// modelTable is the single source of truth for the catalog.
// Adding a model means adding a constant above and a row here.
//
//nolint:gochecknoglobals // Static lookup table
var modelTable = []ModelInfo{
	{ID: ModelLlama3_70B, ProviderModel: "meta-llama/llama-3.3-70b-instruct", DisplayName: "Llama 3.3 70B"},
	{ID: ModelQwenCoder, ProviderModel: "qwen/qwen2.5-coder-32b-instruct", DisplayName: "Qwen 2.5 Coder 32B"},
	{ID: ModelNvidiaNemotron, ProviderModel: "nvidia/llama-3.1-nemotron-70b-instruct", DisplayName: "Nvidia Nemotron 70B"},
	{ID: ModelLlama3_8B, ProviderModel: "meta-llama/llama-3.1-8b-instruct", DisplayName: "Llama 3.1 8B"},
	{ID: ModelMistralNemo, ProviderModel: "mistralai/mistral-nemo", DisplayName: "Mistral Nemo"},
	{ID: ModelGeminiFlash, ProviderModel: "google/gemini-flash-1.5-experimental", DisplayName: "Gemini Flash 1.5"},
	{ID: ModelLlama3Vision, ProviderModel: "meta-llama/llama-3.2-11b-vision-instruct", DisplayName: "Llama 3.2 11B Vision"},
	{ID: ModelDeepseekCoder, ProviderModel: "deepseek-ai/deepseek-coder-33b-instruct", DisplayName: "DeepSeek Coder 33B"},
	{ID: ModelClaude35Sonnet, ProviderModel: "anthropic/claude-3-5-sonnet", DisplayName: "Claude 3.5 Sonnet"},
}

//nolint:gochecknoglobals // Built once from modelTable
var modelIndex = buildModelIndex(modelTable)

// buildModelIndex creates a map for O(1) lookup and panics on a broken table.
func buildModelIndex(rows []ModelInfo) map[ModelID]ModelInfo {
	index := make(map[ModelID]ModelInfo, len(rows))
	for _, row := range rows {
		if row.ID == "" || row.ProviderModel == "" {
			panic(fmt.Sprintf("model catalog: incomplete row %+v", row))
		}
		if _, exists := index[row.ID]; exists {
			panic(fmt.Sprintf("model catalog: duplicate model %s", row.ID))
		}
		index[row.ID] = row
	}
	return index
}

// Resolve returns the provider model string for id.
func Resolve(id ModelID) (string, error) {
	row, exists := modelIndex[id]
	if !exists {
		return "", fmt.Errorf("%w: %q", ErrUnknownModel, string(id))
	}
	return row.ProviderModel, nil
}

// ParseModelID validates caller input against the catalog.
func ParseModelID(s string) (ModelID, error) {
	id := ModelID(strings.TrimSpace(s))
	if _, exists := modelIndex[id]; !exists {
		return "", fmt.Errorf("%w: %q", ErrUnknownModel, s)
	}
	return id, nil
}

// ConfiguredModel resolves a configured model name, falling back to
// DefaultModel when it is not in the catalog.
func ConfiguredModel(s string) ModelID {
	id, err := ParseModelID(s)
	if err != nil {
		return DefaultModel
	}
	return id
}

// Models returns the catalog rows in declaration order.
func Models() []ModelInfo {
	out := make([]ModelInfo, len(modelTable))
	copy(out, modelTable)
	return out
}
