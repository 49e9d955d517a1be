package mcp

import (
	"context"

	"github.com/fripon-labs/fripon-cli/internal/core/domain"
	"github.com/fripon-labs/fripon-cli/internal/core/ports/driving"
)

// Ensure mock satisfies the interface.
var _ driving.ListingComposer = (*mockListingComposer)(nil)

// mockListingComposer is a test double for the listing service.
type mockListingComposer struct {
	listing  domain.Listing
	err      error
	profiles []domain.ProfileName

	lastProfile  domain.ProfileName
	lastFeatures domain.FeatureSet
}

func (m *mockListingComposer) ComposeFromFeatures(
	profile domain.ProfileName, f domain.FeatureSet, _, _ string,
) (domain.Listing, error) {
	m.lastProfile = profile
	m.lastFeatures = f
	if m.err != nil {
		return domain.Listing{}, m.err
	}
	return m.listing, nil
}

func (m *mockListingComposer) AnalyzeAndCompose(_ context.Context, _ domain.AnalysisRequest) (domain.Listing, error) {
	if m.err != nil {
		return domain.Listing{}, m.err
	}
	return m.listing, nil
}

func (m *mockListingComposer) Profiles() []domain.ProfileName {
	return m.profiles
}
