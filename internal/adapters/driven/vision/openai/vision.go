// Package openai provides a vision extraction adapter using the OpenAI
// chat completions API with image content parts.
package openai

import (
	"context"
	"encoding/base64"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"golang.org/x/time/rate"

	"github.com/fripon-labs/fripon-cli/internal/core/domain"
	"github.com/fripon-labs/fripon-cli/internal/core/ports/driven"
	"github.com/fripon-labs/fripon-cli/internal/logger"
)

// Ensure Service implements the interface.
var _ driven.VisionService = (*Service)(nil)

// Default configuration values.
const (
	DefaultModel = "gpt-4o-mini"

	// DefaultRequestsPerMinute throttles outgoing analysis calls.
	// Vision requests carry several images and are expensive; the
	// limiter keeps bursts from tripping the provider's own limits.
	DefaultRequestsPerMinute = 20
)

// Config holds configuration for the OpenAI vision service.
type Config struct {
	// APIKey is the OpenAI API key (required).
	APIKey string

	// BaseURL overrides the API base URL for compatible providers.
	BaseURL string

	// Model is the vision model to use (default: gpt-4o-mini).
	Model string

	// RequestsPerMinute caps the analysis call rate (default: 20).
	RequestsPerMinute int
}

// Service sends garment photographs to an OpenAI vision model and
// parses the structured listing reply.
type Service struct {
	client  openai.Client
	model   string
	limiter *rate.Limiter
}

// New creates a new OpenAI vision service.
func New(cfg Config) (*Service, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = DefaultRequestsPerMinute
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Service{
		client:  openai.NewClient(opts...),
		model:   cfg.Model,
		limiter: rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60.0), 1),
	}, nil
}

// Analyze sends all images of one garment to the vision model with the
// extraction prompt and returns the parsed analysis. All images go in a
// single user message so the model can cross-check labels, views, and
// measurements against each other.
func (s *Service) Analyze(ctx context.Context, images []domain.Image, prompt string) (*domain.Analysis, error) {
	if len(images) == 0 {
		return nil, domain.ErrNoImages
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("vision rate limit: %w", err)
	}

	parts := make([]openai.ChatCompletionContentPartUnionParam, 0, len(images)+1)
	parts = append(parts, openai.TextContentPart(prompt))
	for _, img := range images {
		parts = append(parts, openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
			URL: dataURL(img),
		}))
	}

	logger.Debug("vision: sending %d images to %s", len(images), s.model)

	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(parts),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("vision request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("vision: empty choices in reply")
	}

	return parseReply(resp.Choices[0].Message.Content), nil
}

// ModelName returns the name of the vision model being used.
func (s *Service) ModelName() string {
	return s.model
}

// Close releases resources.
func (s *Service) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}

// dataURL encodes an image as a base64 data URL for the image_url part.
func dataURL(img domain.Image) string {
	mime := img.MIMEType
	if mime == "" {
		mime = "image/jpeg"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
}
