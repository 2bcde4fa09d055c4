// Package app wires configuration into the services shared by the server
// and the command-line tool.
package app

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"vetpost/backend/internal/config"
	"vetpost/backend/internal/logger"
	"vetpost/backend/internal/metrics"
	"vetpost/backend/internal/network"
	"vetpost/backend/internal/service"
	"vetpost/backend/internal/service/ai"
	"vetpost/backend/internal/service/stock"
)

type Services struct {
	Posts   service.PostService
	Images  service.ImageService
	Metrics *metrics.Collector
}

// Build creates the services for cfg. Missing credentials are not an error
// here; the affected action fails when it is invoked. reg may be nil.
func Build(ctx context.Context, cfg config.Config, reg prometheus.Registerer) (*Services, error) {
	var collector *metrics.Collector
	if reg != nil {
		collector = metrics.New(reg)
	}

	var provider ai.Provider
	if cfg.Text.APIKey != "" {
		p, err := ai.NewProvider(ctx, ai.Config{
			Provider: cfg.Text.Provider,
			APIKey:   cfg.Text.APIKey,
			BaseURL:  cfg.Text.BaseURL,
			Model:    cfg.Text.Model,
		})
		if err != nil {
			return nil, fmt.Errorf("text provider %q: %w", cfg.Text.Provider, err)
		}
		provider = p
		logger.Info("text provider ready", "module", "app", "action", "init", "resource", "ai", "result", "ok", "provider", p.Name(), "model", cfg.Text.Model, "split", cfg.Text.Split)
	} else {
		logger.Warn("text provider disabled", "module", "app", "action", "init", "resource", "ai", "result", "skipped", "missing", cfg.Text.APIKeyEnv)
	}

	var searcher stock.Searcher
	if cfg.Stock.AccessKey != "" {
		factory := network.NewClientFactory(cfg.Stock.ProxyURL)
		searcher = stock.NewUnsplashClient(factory.NewHTTPClient(cfg.UpstreamTimeout), cfg.Stock.BaseURL, cfg.Stock.AccessKey)
		logger.Info("photo provider ready", "module", "app", "action", "init", "resource", "image", "result", "ok", "provider", searcher.Name(), "proxy", factory.ProxyURL())
	} else {
		logger.Warn("photo provider disabled", "module", "app", "action", "init", "resource", "image", "result", "skipped", "missing", config.EnvUnsplashAccessKey)
	}

	return &Services{
		Posts: service.NewPostService(provider, service.PostServiceOptions{
			Timeout:   cfg.UpstreamTimeout,
			Split:     cfg.Text.Split,
			APIKeyEnv: cfg.Text.APIKeyEnv,
			Metrics:   collector,
		}),
		Images: service.NewImageService(searcher, service.ImageServiceOptions{
			Timeout:      cfg.UpstreamTimeout,
			Limit:        cfg.Stock.Limit,
			AccessKeyEnv: config.EnvUnsplashAccessKey,
			Metrics:      collector,
		}),
		Metrics: collector,
	}, nil
}
