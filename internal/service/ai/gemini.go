package ai

import (
	"context"
	"strings"

	"google.golang.org/genai"
)

// GeminiProvider implements Provider for the Gemini API.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a new Gemini provider. baseURL is only set in
// tests or behind a gateway.
func NewGeminiProvider(ctx context.Context, apiKey, baseURL, model string) (*GeminiProvider, error) {
	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cc.HTTPOptions.BaseURL = baseURL
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, err
	}
	return &GeminiProvider{client: client, model: model}, nil
}

// Name returns the provider name.
func (p *GeminiProvider) Name() string {
	return ProviderGemini
}

// GenerateJSON requests a schema-constrained JSON response.
func (p *GeminiProvider) GenerateJSON(ctx context.Context, prompt string, schema Schema) (string, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   geminiSchema(schema),
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", err
	}

	text := geminiText(resp)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// geminiText joins the text parts of the first candidate, skipping thoughts.
func geminiText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		b.WriteString(part.Text)
	}
	return strings.TrimSpace(b.String())
}

func geminiSchema(s Schema) *genai.Schema {
	props := make(map[string]*genai.Schema, len(s.Fields))
	for _, f := range s.Fields {
		switch f.Type {
		case FieldStringArray:
			props[f.Name] = &genai.Schema{
				Type:        genai.TypeArray,
				Description: f.Description,
				Items:       &genai.Schema{Type: genai.TypeString},
			}
		default:
			props[f.Name] = &genai.Schema{Type: genai.TypeString, Description: f.Description}
		}
	}
	return &genai.Schema{
		Type:             genai.TypeObject,
		Properties:       props,
		Required:         s.FieldNames(),
		PropertyOrdering: s.FieldNames(),
	}
}
