package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"vetpost/backend/internal/calendar"
	"vetpost/backend/internal/logger"
	"vetpost/backend/internal/metrics"
	"vetpost/backend/internal/model"
	"vetpost/backend/internal/service/ai"
)

//go:generate mockgen -destination=mock/mock_services.go -package=mock vetpost/backend/internal/service PostService,ImageService

// DefaultUpstreamTimeout bounds a provider call when no timeout is configured.
const DefaultUpstreamTimeout = 30 * time.Second

// ErrShapeMismatch is wrapped in an UpstreamError when the provider returns
// valid JSON that lacks a required field.
var ErrShapeMismatch = errors.New("response does not match expected shape")

// GenerateParams are the inputs of a post generation.
type GenerateParams struct {
	Date time.Time
	Tone string
}

// PostService generates post ideas for a calendar day.
type PostService interface {
	// Ready returns a ConfigError when the text credential is absent.
	Ready() error
	// Generate looks up the topic for params.Date and asks the text provider
	// for a caption, hashtags and image prompt in the requested tone.
	Generate(ctx context.Context, params GenerateParams) (model.GeneratedPost, error)
}

// PostServiceOptions tune a PostService.
type PostServiceOptions struct {
	Timeout time.Duration
	// Split issues caption and image prompt as two concurrent calls.
	Split bool
	// APIKeyEnv names the credential reported when provider is nil.
	APIKeyEnv string
	Metrics   *metrics.Collector
}

type postService struct {
	provider  ai.Provider
	timeout   time.Duration
	split     bool
	apiKeyEnv string
	metrics   *metrics.Collector
}

// NewPostService creates a new post service. provider may be nil when the
// text credential is not configured; Generate then fails with a ConfigError
// without any network call.
func NewPostService(provider ai.Provider, opts PostServiceOptions) PostService {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultUpstreamTimeout
	}
	if opts.APIKeyEnv == "" {
		opts.APIKeyEnv = "API_KEY"
	}
	return &postService{
		provider:  provider,
		timeout:   opts.Timeout,
		split:     opts.Split,
		apiKeyEnv: opts.APIKeyEnv,
		metrics:   opts.Metrics,
	}
}

func (s *postService) Ready() error {
	if s.provider == nil {
		return &ConfigError{
			Setting: s.apiKeyEnv,
			Message: "Chave da API de geração de texto não configurada no servidor.",
		}
	}
	return nil
}

func (s *postService) Generate(ctx context.Context, params GenerateParams) (model.GeneratedPost, error) {
	if err := s.Ready(); err != nil {
		return model.GeneratedPost{}, err
	}
	if params.Date.IsZero() {
		return model.GeneratedPost{}, &ValidationError{Message: "O campo 'date' é obrigatório."}
	}
	tone := strings.TrimSpace(params.Tone)
	if tone == "" {
		return model.GeneratedPost{}, &ValidationError{Message: "O campo 'tone' é obrigatório."}
	}

	topic := calendar.LookupTopic(params.Date)
	// Tone labels match exactly; padded input gets the default style.
	style := ai.StyleFor(params.Tone)

	var (
		post model.GeneratedPost
		err  error
	)
	if s.split {
		post, err = s.generateSplit(ctx, topic, tone, style)
	} else {
		post, err = s.generateCombined(ctx, topic, tone, style)
	}
	if err != nil {
		logger.Warn("post generation failed", "module", "service", "action", "generate", "resource", "post", "result", "failed", "provider", s.provider.Name(), "day", calendar.Key(params.Date), "split", s.split, "error", err)
		return model.GeneratedPost{}, err
	}

	post.Topic = topic
	logger.Info("post generated", "module", "service", "action", "generate", "resource", "post", "result", "ok", "provider", s.provider.Name(), "day", calendar.Key(params.Date), "tone", tone, "hashtags", len(post.Hashtags))
	return post, nil
}

func (s *postService) generateCombined(ctx context.Context, topic, tone, style string) (model.GeneratedPost, error) {
	text, err := s.call(ctx, ai.BuildPrompt(topic, tone, style), ai.PostSchema)
	if err != nil {
		return model.GeneratedPost{}, err
	}

	var payload postPayload
	if err := s.decode(text, &payload); err != nil {
		return model.GeneratedPost{}, err
	}
	caption, hashtags, err := s.captionFields(text, payload)
	if err != nil {
		return model.GeneratedPost{}, err
	}
	imagePrompt, err := s.imagePromptField(text, payload)
	if err != nil {
		return model.GeneratedPost{}, err
	}
	return model.GeneratedPost{Caption: caption, Hashtags: hashtags, ImagePrompt: imagePrompt}, nil
}

func (s *postService) generateSplit(ctx context.Context, topic, tone, style string) (model.GeneratedPost, error) {
	var post model.GeneratedPost

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		text, err := s.call(gctx, ai.BuildCaptionPrompt(topic, tone), ai.CaptionSchema)
		if err != nil {
			return err
		}
		var payload postPayload
		if err := s.decode(text, &payload); err != nil {
			return err
		}
		post.Caption, post.Hashtags, err = s.captionFields(text, payload)
		return err
	})
	g.Go(func() error {
		text, err := s.call(gctx, ai.BuildImagePrompt(topic, style), ai.ImagePromptSchema)
		if err != nil {
			return err
		}
		var payload postPayload
		if err := s.decode(text, &payload); err != nil {
			return err
		}
		post.ImagePrompt, err = s.imagePromptField(text, payload)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.GeneratedPost{}, err
	}
	return post, nil
}

// call runs one provider request under the upstream timeout.
func (s *postService) call(ctx context.Context, prompt string, schema ai.Schema) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	text, err := s.provider.GenerateJSON(ctx, prompt, schema)
	s.metrics.ObserveUpstream(s.provider.Name(), start, err)
	if err != nil {
		return "", &UpstreamError{Upstream: s.provider.Name(), Op: "generate " + schema.Name, Err: err}
	}
	logger.Debug("provider responded", "module", "service", "action", "fetch", "resource", "ai", "result", "ok", "provider", s.provider.Name(), "schema", schema.Name, "duration_ms", time.Since(start).Milliseconds())
	return text, nil
}

// postPayload accepts every field any of the prompts asks for. image_prompt
// is accepted as an alias since models sometimes echo the wire name.
type postPayload struct {
	Caption          *string  `json:"caption"`
	Hashtags         []string `json:"hashtags"`
	ImagePrompt      *string  `json:"imagePrompt"`
	ImagePromptSnake *string  `json:"image_prompt"`
}

func (s *postService) decode(text string, payload *postPayload) error {
	if err := json.Unmarshal([]byte(ai.ExtractJSON(text)), payload); err != nil {
		return &UpstreamError{Upstream: s.provider.Name(), Op: "parse response", Raw: text, Err: err}
	}
	return nil
}

func (s *postService) captionFields(text string, payload postPayload) (string, []string, error) {
	if payload.Caption == nil || payload.Hashtags == nil {
		return "", nil, s.shapeError(text, "caption, hashtags")
	}
	caption := ai.SanitizeCaption(*payload.Caption)
	if caption == "" {
		return "", nil, s.shapeError(text, "caption")
	}
	return caption, ai.NormalizeHashtags(payload.Hashtags), nil
}

func (s *postService) imagePromptField(text string, payload postPayload) (string, error) {
	prompt := payload.ImagePrompt
	if prompt == nil {
		prompt = payload.ImagePromptSnake
	}
	if prompt == nil || strings.TrimSpace(*prompt) == "" {
		return "", s.shapeError(text, "imagePrompt")
	}
	return strings.TrimSpace(ai.StripMarkdown(*prompt)), nil
}

func (s *postService) shapeError(text, fields string) error {
	return &UpstreamError{
		Upstream: s.provider.Name(),
		Op:       "parse response",
		Raw:      text,
		Err:      fmt.Errorf("%w: missing %s", ErrShapeMismatch, fields),
	}
}
