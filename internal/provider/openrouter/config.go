package openrouter

// Config contains OpenRouter provider configuration.
// All fields map to OpenAI SDK options:
//   - BaseURL: Maps to option.WithBaseURL()
//   - Referer: Sent as the HTTP-Referer header OpenRouter uses to attribute traffic
//   - Title: Sent as the X-Title header
//
// The API key is not part of the configuration; it is read from the
// credential store for every request.
type Config struct {
	BaseURL string `env:"OPENROUTER_BASE_URL" envDefault:"https://openrouter.ai/api/v1"`
	Referer string `env:"OPENROUTER_REFERER"  envDefault:"http://localhost:8080"`
	Title   string `env:"OPENROUTER_TITLE"    envDefault:"CodeCraft Generator"`
}
