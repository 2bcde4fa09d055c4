package ai_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"vetpost/backend/internal/service/ai"
)

func TestNewProvider_Validation(t *testing.T) {
	ctx := context.Background()

	_, err := ai.NewProvider(ctx, ai.Config{Provider: ai.ProviderOpenAI, Model: "m"})
	require.ErrorIs(t, err, ai.ErrMissingAPIKey)

	_, err = ai.NewProvider(ctx, ai.Config{Provider: ai.ProviderOpenAI, APIKey: "key"})
	require.ErrorIs(t, err, ai.ErrMissingModel)

	_, err = ai.NewProvider(ctx, ai.Config{Provider: ai.ProviderCompatible, APIKey: "key", Model: "m"})
	require.ErrorIs(t, err, ai.ErrMissingBaseURL)

	_, err = ai.NewProvider(ctx, ai.Config{Provider: "palm", APIKey: "key", Model: "m"})
	require.ErrorIs(t, err, ai.ErrInvalidProvider)
}

func TestNewProvider_Names(t *testing.T) {
	ctx := context.Background()
	cases := map[string]ai.Config{
		ai.ProviderGemini:     {Provider: ai.ProviderGemini, APIKey: "key", Model: "gemini-2.5-flash"},
		ai.ProviderOpenAI:     {Provider: ai.ProviderOpenAI, APIKey: "key", Model: "gpt-4o-mini"},
		ai.ProviderAnthropic:  {Provider: ai.ProviderAnthropic, APIKey: "key", Model: "claude-3-5-haiku-latest"},
		ai.ProviderCompatible: {Provider: ai.ProviderCompatible, APIKey: "key", Model: "llama3", BaseURL: "http://localhost:11434/v1"},
	}
	for name, cfg := range cases {
		provider, err := ai.NewProvider(ctx, cfg)
		require.NoError(t, err, name)
		require.Equal(t, name, provider.Name())
	}
}

func TestGeminiProvider_GenerateJSON(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"imagePrompt\":\"gato dormindo\"}"}]}}]}`)
	}))
	defer server.Close()

	provider, err := ai.NewGeminiProvider(context.Background(), "test-key", server.URL+"/", "gemini-2.5-flash")
	require.NoError(t, err)

	text, err := provider.GenerateJSON(context.Background(), "prompt", ai.ImagePromptSchema)
	require.NoError(t, err)
	require.Equal(t, `{"imagePrompt":"gato dormindo"}`, text)

	require.True(t, strings.HasSuffix(gotPath, "/models/gemini-2.5-flash:generateContent"), gotPath)
	require.Equal(t, "test-key", gotKey)
	genCfg, ok := gotBody["generationConfig"].(map[string]any)
	require.True(t, ok, "generationConfig missing: %v", gotBody)
	require.Equal(t, "application/json", genCfg["responseMimeType"])
	require.NotNil(t, genCfg["responseSchema"])
}

func TestGeminiProvider_EmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[]}`)
	}))
	defer server.Close()

	provider, err := ai.NewGeminiProvider(context.Background(), "test-key", server.URL+"/", "gemini-2.5-flash")
	require.NoError(t, err)

	_, err = provider.GenerateJSON(context.Background(), "prompt", ai.PostSchema)
	require.ErrorIs(t, err, ai.ErrEmptyResponse)
}

func TestGeminiProvider_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`)
	}))
	defer server.Close()

	provider, err := ai.NewGeminiProvider(context.Background(), "bad-key", server.URL+"/", "gemini-2.5-flash")
	require.NoError(t, err)

	_, err = provider.GenerateJSON(context.Background(), "prompt", ai.PostSchema)
	require.Error(t, err)
}

func TestOpenAIProvider_GenerateJSON(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"), r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"chatcmpl-1","object":"chat.completion","created":1,"model":"gpt-4o-mini",`+
			`"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"{\"caption\":\"Oi\",\"hashtags\":[\"#pet\"]}"}}]}`)
	}))
	defer server.Close()

	provider, err := ai.NewOpenAIProvider("key", server.URL+"/v1/", "gpt-4o-mini")
	require.NoError(t, err)

	text, err := provider.GenerateJSON(context.Background(), "prompt", ai.CaptionSchema)
	require.NoError(t, err)
	require.JSONEq(t, `{"caption":"Oi","hashtags":["#pet"]}`, text)

	format, ok := gotBody["response_format"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "json_object", format["type"])
	require.Equal(t, "gpt-4o-mini", gotBody["model"])
}

func TestAnthropicProvider_StripsCodeFence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, "/v1/messages"), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"msg_1","type":"message","role":"assistant","model":"claude-3-5-haiku-latest",`+
			`"content":[{"type":"text","text":"`+"```json\\n{\\\"imagePrompt\\\":\\\"cão feliz\\\"}\\n```"+`"}],`+
			`"stop_reason":"end_turn","usage":{"input_tokens":10,"output_tokens":10}}`)
	}))
	defer server.Close()

	provider, err := ai.NewAnthropicProvider("key", server.URL+"/", "claude-3-5-haiku-latest")
	require.NoError(t, err)

	text, err := provider.GenerateJSON(context.Background(), "prompt", ai.ImagePromptSchema)
	require.NoError(t, err)
	require.Equal(t, `{"imagePrompt":"cão feliz"}`, text)
}
