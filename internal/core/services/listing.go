package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"

	"github.com/fripon-labs/fripon-cli/internal/composers"
	"github.com/fripon-labs/fripon-cli/internal/core/domain"
	"github.com/fripon-labs/fripon-cli/internal/core/ports/driven"
	"github.com/fripon-labs/fripon-cli/internal/core/ports/driving"
	"github.com/fripon-labs/fripon-cli/internal/frtext"
	"github.com/fripon-labs/fripon-cli/internal/logger"
	"github.com/fripon-labs/fripon-cli/internal/profiles"
)

// Ensure ListingService implements the interface.
var _ driving.ListingComposer = (*ListingService)(nil)

// Analysis results are memoized so re-composing the same photographs
// (e.g. after editing the collection prefix) doesn't re-bill the vision
// model. TTL keeps the cache from growing across long MCP sessions.
const (
	analysisCacheTTL     = 30 * time.Minute
	analysisCacheCleanup = time.Hour
)

// ListingService composes marketplace listings from garment features or
// photographs.
type ListingService struct {
	registry *composers.Registry
	vision   driven.VisionService
	prompts  driven.PromptStore
	config   driven.ConfigStore
	analyses *cache.Cache
}

// NewListingService creates a new listing service.
// The vision, prompts, and config parameters are optional (can be nil);
// without a vision service only ComposeFromFeatures is available.
func NewListingService(
	registry *composers.Registry,
	vision driven.VisionService,
	prompts driven.PromptStore,
	config driven.ConfigStore,
) *ListingService {
	return &ListingService{
		registry: registry,
		vision:   vision,
		prompts:  prompts,
		config:   config,
		analyses: cache.New(analysisCacheTTL, analysisCacheCleanup),
	}
}

// ComposeFromFeatures builds a listing from an already-extracted feature
// set.
func (s *ListingService) ComposeFromFeatures(
	profile domain.ProfileName, f domain.FeatureSet, aiDescription, aiDefects string,
) (domain.Listing, error) {
	composer, ok := s.registry.Get(profile)
	if !ok {
		return domain.Listing{}, fmt.Errorf("%w: %s", domain.ErrUnknownProfile, profile)
	}

	opts := driven.ComposeOptions{
		AIDescription: aiDescription,
		AIDefects:     aiDefects,
	}
	if s.config != nil {
		opts.CollectionPrefix = s.config.GetString(driven.ConfigCollectionPrefix)
	}

	body := composer.Compose(f, opts)

	// The composer degrades to the cleaned AI description when it cannot
	// build the structured text.
	degraded := aiDescription != "" && body == frtext.Clean(aiDescription)
	if degraded {
		logger.Warn("listing: composition degraded to AI description for profile %s", profile)
	}

	return domain.Listing{
		ID:        uuid.NewString(),
		Profile:   profile,
		Body:      body,
		Degraded:  degraded,
		CreatedAt: time.Now(),
	}, nil
}

// AnalyzeAndCompose runs the vision extraction on the request's images
// and composes a listing from the result.
func (s *ListingService) AnalyzeAndCompose(ctx context.Context, req domain.AnalysisRequest) (domain.Listing, error) {
	if s.vision == nil {
		return domain.Listing{}, domain.ErrVisionUnavailable
	}
	if len(req.Images) == 0 {
		return domain.Listing{}, domain.ErrNoImages
	}

	profile, err := profiles.Get(req.Profile)
	if err != nil {
		return domain.Listing{}, err
	}

	analysis, err := s.analyze(ctx, profile, req)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("analyze: %w", err)
	}

	features := analysis.Features
	if features == nil {
		features = domain.FeatureSet{}
	}
	if req.MeasurementMode != "" {
		features["measurement_mode"] = req.MeasurementMode
	}

	listing, err := s.ComposeFromFeatures(req.Profile, features, analysis.Description, analysis.Defects)
	if err != nil {
		return domain.Listing{}, err
	}

	listing.Title = analysis.Title
	return listing, nil
}

// Profiles returns the registered profile names in sorted order.
func (s *ListingService) Profiles() []domain.ProfileName {
	return s.registry.Profiles()
}

// analyze runs the vision extraction, memoizing results by request
// digest.
func (s *ListingService) analyze(
	ctx context.Context, profile profiles.AnalysisProfile, req domain.AnalysisRequest,
) (*domain.Analysis, error) {
	digest := requestDigest(req)
	if cached, ok := s.analyses.Get(digest); ok {
		logger.Debug("listing: analysis cache hit (%s)", digest[:12])
		return cached.(*domain.Analysis), nil
	}

	contract := ""
	if s.prompts != nil {
		loaded, err := s.prompts.Load(driven.PromptExtractionContract)
		if err != nil {
			return nil, fmt.Errorf("load extraction contract: %w", err)
		}
		contract = loaded
	}

	prompt := profiles.BuildFullPrompt(contract, profile, req.MeasurementMode)

	logger.Section("Vision Analysis")
	logger.Info("Analyzing %d images with profile %s", len(req.Images), req.Profile)

	analysis, err := s.vision.Analyze(ctx, req.Images, prompt)
	if err != nil {
		return nil, err
	}

	s.analyses.Set(digest, analysis, cache.DefaultExpiration)
	return analysis, nil
}

// requestDigest hashes the request identity: profile, measurement mode,
// and every image's bytes.
func requestDigest(req domain.AnalysisRequest) string {
	h := sha256.New()
	h.Write([]byte(req.Profile))
	h.Write([]byte{0})
	h.Write([]byte(req.MeasurementMode))
	for _, img := range req.Images {
		h.Write([]byte{0})
		h.Write([]byte(img.MIMEType))
		h.Write([]byte{0})
		h.Write(img.Data)
	}
	return hex.EncodeToString(h.Sum(nil))
}
