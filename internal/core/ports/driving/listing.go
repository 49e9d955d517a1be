package driving

import (
	"context"

	"github.com/fripon-labs/fripon-cli/internal/core/domain"
)

// ListingComposer is the primary port for composing marketplace
// listings from garment features or photographs.
type ListingComposer interface {
	// ComposeFromFeatures builds a listing from an already-extracted
	// feature set. The aiDescription and aiDefects values are the
	// optional free-text fallbacks from a previous analysis.
	// Returns domain.ErrUnknownProfile for an unregistered profile.
	ComposeFromFeatures(profile domain.ProfileName, f domain.FeatureSet, aiDescription, aiDefects string) (domain.Listing, error)

	// AnalyzeAndCompose runs the vision extraction on the request's
	// images and composes a listing from the result.
	// Returns domain.ErrVisionUnavailable when no vision service is
	// configured and domain.ErrNoImages for an empty request.
	AnalyzeAndCompose(ctx context.Context, req domain.AnalysisRequest) (domain.Listing, error)

	// Profiles returns the registered profile names in sorted order.
	Profiles() []domain.ProfileName
}
