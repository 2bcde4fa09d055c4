package ai

// NewCompatibleProvider creates a provider for OpenAI-compatible APIs such as
// OpenRouter, Azure OpenAI or Ollama. It shares the OpenAI request path and
// only differs in the mandatory base URL and reported name.
func NewCompatibleProvider(apiKey, baseURL, model string) (*OpenAIProvider, error) {
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}
	p, err := NewOpenAIProvider(apiKey, baseURL, model)
	if err != nil {
		return nil, err
	}
	p.name = ProviderCompatible
	return p, nil
}
