package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fripon-labs/fripon-cli/internal/composers"
	"github.com/fripon-labs/fripon-cli/internal/core/domain"
	"github.com/fripon-labs/fripon-cli/internal/core/ports/driving"
)

// mockVision is a test double for the vision service.
type mockVision struct {
	analysis *domain.Analysis
	err      error
	calls    int
	prompts  []string
}

func (m *mockVision) Analyze(_ context.Context, _ []domain.Image, prompt string) (*domain.Analysis, error) {
	m.calls++
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return nil, m.err
	}
	return m.analysis, nil
}

func (m *mockVision) ModelName() string { return "mock-vision" }
func (m *mockVision) Close() error      { return nil }

// mockPrompts serves a fixed extraction contract.
type mockPrompts struct{ contract string }

func (m *mockPrompts) Load(string) (string, error) { return m.contract, nil }
func (m *mockPrompts) Reload()                     {}

// stubConfig returns fixed values for a handful of keys.
type stubConfig struct{ values map[string]any }

func (c *stubConfig) Get(key string) (any, bool) { v, ok := c.values[key]; return v, ok }
func (c *stubConfig) GetString(key string) string {
	if v, ok := c.values[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
func (c *stubConfig) GetInt(string) int     { return 0 }
func (c *stubConfig) GetBool(string) bool   { return false }
func (c *stubConfig) Set(string, any) error { return nil }
func (c *stubConfig) Save() error           { return nil }
func (c *stubConfig) Load() error           { return nil }
func (c *stubConfig) Path() string          { return "" }

func newRegistry(t *testing.T) *composers.Registry {
	t.Helper()
	r := composers.NewRegistry()
	require.NoError(t, composers.RegisterDefaults(r))
	return r
}

func TestListingService_ImplementsInterface(t *testing.T) {
	var _ driving.ListingComposer = (*ListingService)(nil)
}

func TestComposeFromFeatures(t *testing.T) {
	svc := NewListingService(newRegistry(t), nil, nil, nil)

	features := domain.FeatureSet{
		"model":   "501",
		"size_fr": "38",
		"color":   "bleu délavé",
	}

	listing, err := svc.ComposeFromFeatures(domain.ProfileJeanLevis, features, "", "")

	require.NoError(t, err)
	assert.NotEmpty(t, listing.ID)
	assert.Equal(t, domain.ProfileJeanLevis, listing.Profile)
	assert.Contains(t, listing.Body, "Jean Levi's 501 pour femme.")
	assert.False(t, listing.Degraded)
	assert.False(t, listing.CreatedAt.IsZero())
}

func TestComposeFromFeatures_UnknownProfile(t *testing.T) {
	svc := NewListingService(newRegistry(t), nil, nil, nil)

	_, err := svc.ComposeFromFeatures("chemise_ralph", domain.FeatureSet{}, "", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownProfile)
}

func TestComposeFromFeatures_CollectionPrefixFromConfig(t *testing.T) {
	config := &stubConfig{values: map[string]any{
		"listing.collection_prefix": "atelier",
	}}
	svc := NewListingService(newRegistry(t), nil, nil, config)

	listing, err := svc.ComposeFromFeatures(domain.ProfileJeanLevis, domain.FeatureSet{"size_fr": "40"}, "", "")

	require.NoError(t, err)
	assert.Contains(t, listing.Body, "#atelierfr40")
	assert.NotContains(t, listing.Body, "#durin31")
}

func TestComposeFromFeatures_UniqueIDs(t *testing.T) {
	svc := NewListingService(newRegistry(t), nil, nil, nil)

	first, err := svc.ComposeFromFeatures(domain.ProfileJeanLevis, domain.FeatureSet{}, "", "")
	require.NoError(t, err)
	second, err := svc.ComposeFromFeatures(domain.ProfileJeanLevis, domain.FeatureSet{}, "", "")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestAnalyzeAndCompose(t *testing.T) {
	vision := &mockVision{analysis: &domain.Analysis{
		Title:       "Jean Levi's 501 bleu",
		Description: "Jean droit en denim.",
		Features: domain.FeatureSet{
			"model":   "501",
			"size_fr": "38",
		},
	}}
	svc := NewListingService(newRegistry(t), vision, &mockPrompts{contract: "CONTRACT"}, nil)

	req := domain.AnalysisRequest{
		Profile: domain.ProfileJeanLevis,
		Images:  []domain.Image{{Data: []byte("img1"), MIMEType: "image/jpeg"}},
	}

	listing, err := svc.AnalyzeAndCompose(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 1, vision.calls)
	assert.Equal(t, "Jean Levi's 501 bleu", listing.Title)
	assert.Contains(t, listing.Body, "Jean Levi's 501 pour femme.")
	assert.False(t, listing.Degraded)

	// The prompt starts with the contract and carries the profile suffix.
	require.Len(t, vision.prompts, 1)
	assert.True(t, strings.HasPrefix(vision.prompts[0], "CONTRACT\n\n"))
	assert.Contains(t, vision.prompts[0], "jean_levis")
}

func TestAnalyzeAndCompose_NoVisionService(t *testing.T) {
	svc := NewListingService(newRegistry(t), nil, nil, nil)

	_, err := svc.AnalyzeAndCompose(context.Background(), domain.AnalysisRequest{
		Profile: domain.ProfileJeanLevis,
		Images:  []domain.Image{{Data: []byte("img")}},
	})

	assert.ErrorIs(t, err, domain.ErrVisionUnavailable)
}

func TestAnalyzeAndCompose_NoImages(t *testing.T) {
	svc := NewListingService(newRegistry(t), &mockVision{}, nil, nil)

	_, err := svc.AnalyzeAndCompose(context.Background(), domain.AnalysisRequest{
		Profile: domain.ProfileJeanLevis,
	})

	assert.ErrorIs(t, err, domain.ErrNoImages)
}

func TestAnalyzeAndCompose_UnknownProfile(t *testing.T) {
	svc := NewListingService(newRegistry(t), &mockVision{}, nil, nil)

	_, err := svc.AnalyzeAndCompose(context.Background(), domain.AnalysisRequest{
		Profile: "chemise_ralph",
		Images:  []domain.Image{{Data: []byte("img")}},
	})

	assert.ErrorIs(t, err, domain.ErrUnknownProfile)
}

func TestAnalyzeAndCompose_VisionError(t *testing.T) {
	vision := &mockVision{err: errors.New("boom")}
	svc := NewListingService(newRegistry(t), vision, nil, nil)

	_, err := svc.AnalyzeAndCompose(context.Background(), domain.AnalysisRequest{
		Profile: domain.ProfileJeanLevis,
		Images:  []domain.Image{{Data: []byte("img")}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestAnalyzeAndCompose_MemoizesByDigest(t *testing.T) {
	vision := &mockVision{analysis: &domain.Analysis{
		Description: "Jean.",
		Features:    domain.FeatureSet{"size_fr": "38"},
	}}
	svc := NewListingService(newRegistry(t), vision, nil, nil)

	req := domain.AnalysisRequest{
		Profile: domain.ProfileJeanLevis,
		Images:  []domain.Image{{Data: []byte("same-bytes"), MIMEType: "image/jpeg"}},
	}

	_, err := svc.AnalyzeAndCompose(context.Background(), req)
	require.NoError(t, err)
	_, err = svc.AnalyzeAndCompose(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, vision.calls, "second identical request must hit the cache")

	// Different image bytes miss the cache.
	req.Images[0].Data = []byte("other-bytes")
	_, err = svc.AnalyzeAndCompose(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 2, vision.calls)
}

func TestAnalyzeAndCompose_MeasurementModeReachesComposer(t *testing.T) {
	vision := &mockVision{analysis: &domain.Analysis{
		Features: domain.FeatureSet{"size": "M"},
	}}
	svc := NewListingService(newRegistry(t), vision, nil, nil)

	listing, err := svc.AnalyzeAndCompose(context.Background(), domain.AnalysisRequest{
		Profile:         domain.ProfilePullTommy,
		Images:          []domain.Image{{Data: []byte("img")}},
		MeasurementMode: domain.MeasurementModeFlat,
	})

	require.NoError(t, err)
	assert.Contains(t, listing.Body, "Taille estimée M.")
}

func TestProfiles(t *testing.T) {
	svc := NewListingService(newRegistry(t), nil, nil, nil)

	assert.Equal(t, []domain.ProfileName{
		domain.ProfileJeanLevis,
		domain.ProfilePullTommy,
	}, svc.Profiles())
}

func TestRequestDigest_Distinguishes(t *testing.T) {
	base := domain.AnalysisRequest{
		Profile: domain.ProfileJeanLevis,
		Images:  []domain.Image{{Data: []byte("img"), MIMEType: "image/jpeg"}},
	}

	otherProfile := base
	otherProfile.Profile = domain.ProfilePullTommy

	otherMode := base
	otherMode.MeasurementMode = domain.MeasurementModeFlat

	assert.NotEqual(t, requestDigest(base), requestDigest(otherProfile))
	assert.NotEqual(t, requestDigest(base), requestDigest(otherMode))
	assert.Equal(t, requestDigest(base), requestDigest(base))
}
