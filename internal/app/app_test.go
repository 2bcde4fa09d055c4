package app

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"vetpost/backend/internal/config"
	"vetpost/backend/internal/service"
)

func TestBuild_WithoutCredentials(t *testing.T) {
	cfg := config.Config{
		Location:        time.UTC,
		UpstreamTimeout: time.Second,
		Text:            config.TextConfig{Provider: config.ProviderGemini, APIKeyEnv: config.EnvTextAPIKey, Model: "gemini-2.5-flash"},
		Stock:           config.StockConfig{BaseURL: config.DefaultUnsplashBaseURL, Limit: 9},
	}

	svcs, err := Build(context.Background(), cfg, prometheus.NewRegistry())
	require.NoError(t, err)
	require.NotNil(t, svcs.Metrics)

	err = svcs.Posts.Ready()
	require.ErrorIs(t, err, service.ErrMisconfigured)
	require.Contains(t, err.Error(), config.EnvTextAPIKey)

	err = svcs.Images.Ready()
	require.ErrorIs(t, err, service.ErrMisconfigured)
	require.Contains(t, err.Error(), config.EnvUnsplashAccessKey)
}

func TestBuild_WithCredentials(t *testing.T) {
	cfg := config.Config{
		UpstreamTimeout: time.Second,
		Text:            config.TextConfig{Provider: config.ProviderOpenAI, APIKey: "sk-test", APIKeyEnv: config.EnvTextAPIKey, Model: "gpt-4o-mini"},
		Stock:           config.StockConfig{AccessKey: "access", BaseURL: config.DefaultUnsplashBaseURL, Limit: 9},
	}

	svcs, err := Build(context.Background(), cfg, nil)
	require.NoError(t, err)
	require.Nil(t, svcs.Metrics)
	require.NoError(t, svcs.Posts.Ready())
	require.NoError(t, svcs.Images.Ready())
}

func TestBuild_InvalidProvider(t *testing.T) {
	cfg := config.Config{
		Text: config.TextConfig{Provider: "bard", APIKey: "key", Model: "m"},
	}
	_, err := Build(context.Background(), cfg, nil)
	require.Error(t, err)
}
