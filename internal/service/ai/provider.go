package ai

import (
	"context"
	"errors"
)

//go:generate mockgen -destination=mock/mock_provider.go -package=mock vetpost/backend/internal/service/ai Provider

// Provider defines the interface for generative-text providers.
type Provider interface {
	// Name returns the provider name.
	Name() string
	// GenerateJSON sends prompt and returns the raw response text, which
	// the provider is asked to shape according to schema.
	GenerateJSON(ctx context.Context, prompt string, schema Schema) (string, error)
}

// Config holds the configuration for a text provider.
type Config struct {
	Provider string // gemini, openai, anthropic, compatible
	APIKey   string
	BaseURL  string // optional except for compatible
	Model    string
}

// ProviderType constants
const (
	ProviderGemini     = "gemini"
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderCompatible = "compatible"
)

// maxOutputTokens bounds every completion; a caption with hashtags and an
// image prompt fits comfortably.
const maxOutputTokens = 1024

var (
	ErrInvalidProvider = errors.New("invalid provider")
	ErrMissingAPIKey   = errors.New("API key is required")
	ErrMissingBaseURL  = errors.New("base URL is required for compatible provider")
	ErrMissingModel    = errors.New("model is required")
	ErrEmptyResponse   = errors.New("empty response")
)

// NewProvider creates a new text provider based on the config.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		return nil, ErrMissingModel
	}

	switch cfg.Provider {
	case ProviderGemini, "":
		return NewGeminiProvider(ctx, cfg.APIKey, cfg.BaseURL, cfg.Model)
	case ProviderOpenAI:
		return NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, cfg.Model)
	case ProviderAnthropic:
		return NewAnthropicProvider(cfg.APIKey, cfg.BaseURL, cfg.Model)
	case ProviderCompatible:
		if cfg.BaseURL == "" {
			return nil, ErrMissingBaseURL
		}
		return NewCompatibleProvider(cfg.APIKey, cfg.BaseURL, cfg.Model)
	default:
		return nil, ErrInvalidProvider
	}
}
