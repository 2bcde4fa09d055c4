package service

import (
	"context"
	"strings"
	"time"

	"vetpost/backend/internal/logger"
	"vetpost/backend/internal/metrics"
	"vetpost/backend/internal/model"
	"vetpost/backend/internal/service/stock"
)

const (
	// searchQualifiers are appended to every term to bias results to pets.
	searchQualifiers = "pet animal"
	// searchPageSize is larger than the returned limit to absorb filtering.
	searchPageSize      = 30
	searchOrientation   = "squarish"
	searchContentFilter = "high"

	DefaultImageLimit = 9
)

// ImageService finds stock photos for a post.
type ImageService interface {
	// Ready returns a ConfigError when the photo credential is absent.
	Ready() error
	// Search returns pet-related photos for term. An empty result is not an error.
	Search(ctx context.Context, term string) (model.ImageSearchResult, error)
}

// ImageServiceOptions tune an ImageService.
type ImageServiceOptions struct {
	Timeout time.Duration
	Limit   int
	// AccessKeyEnv names the credential reported when searcher is nil.
	AccessKeyEnv string
	Metrics      *metrics.Collector
}

type imageService struct {
	searcher     stock.Searcher
	timeout      time.Duration
	limit        int
	accessKeyEnv string
	metrics      *metrics.Collector
}

// NewImageService creates a new image service. searcher may be nil when the
// photo credential is not configured; Search then fails with a ConfigError.
func NewImageService(searcher stock.Searcher, opts ImageServiceOptions) ImageService {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultUpstreamTimeout
	}
	if opts.Limit <= 0 {
		opts.Limit = DefaultImageLimit
	}
	if opts.AccessKeyEnv == "" {
		opts.AccessKeyEnv = "UNSPLASH_ACCESS_KEY"
	}
	return &imageService{
		searcher:     searcher,
		timeout:      opts.Timeout,
		limit:        opts.Limit,
		accessKeyEnv: opts.AccessKeyEnv,
		metrics:      opts.Metrics,
	}
}

// BuildSearchQuery appends the pet qualifiers to term.
func BuildSearchQuery(term string) string {
	term = strings.Join(strings.Fields(term), " ")
	if term == "" {
		return searchQualifiers
	}
	return term + " " + searchQualifiers
}

// SearchTermForTopic derives a photo search term from a calendar topic: the
// headline before the first colon, or the whole topic.
func SearchTermForTopic(topic string) string {
	headline := topic
	if i := strings.Index(headline, ":"); i > 0 {
		headline = headline[:i]
	}
	return strings.Trim(strings.TrimSpace(headline), `"'`)
}

func (s *imageService) Ready() error {
	if s.searcher == nil {
		return &ConfigError{
			Setting: s.accessKeyEnv,
			Message: "Chave da API Unsplash não configurada no servidor.",
		}
	}
	return nil
}

func (s *imageService) Search(ctx context.Context, term string) (model.ImageSearchResult, error) {
	if err := s.Ready(); err != nil {
		return model.ImageSearchResult{}, err
	}
	if strings.TrimSpace(term) == "" {
		return model.ImageSearchResult{}, &ValidationError{Message: "O campo 'searchTerm' é obrigatório."}
	}

	query := stock.Query{
		Term:          BuildSearchQuery(term),
		PerPage:       searchPageSize,
		Orientation:   searchOrientation,
		ContentFilter: searchContentFilter,
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	page, err := s.searcher.Search(ctx, query)
	s.metrics.ObserveUpstream(s.searcher.Name(), start, err)
	if err != nil {
		logger.Warn("image search failed", "module", "service", "action", "fetch", "resource", "image", "result", "failed", "provider", s.searcher.Name(), "query", query.Term, "error", err)
		return model.ImageSearchResult{}, &UpstreamError{Upstream: s.searcher.Name(), Op: "search", Err: err}
	}

	kept := stock.FilterPets(page.Photos)
	if len(kept) > s.limit {
		kept = kept[:s.limit]
	}

	result := model.ImageSearchResult{
		Results:    make([]model.StockImage, 0, len(kept)),
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}
	for _, p := range kept {
		result.Results = append(result.Results, model.StockImage{
			ID:             p.ID,
			AltDescription: p.AltDescription,
			ThumbnailURL:   p.ThumbnailURL,
			PageURL:        p.PageURL,
			AuthorName:     p.AuthorName,
		})
	}

	logger.Info("image search done", "module", "service", "action", "fetch", "resource", "image", "result", "ok", "provider", s.searcher.Name(), "query", query.Term, "received", len(page.Photos), "kept", len(result.Results))
	return result, nil
}
