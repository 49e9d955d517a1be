package driven

import "github.com/fripon-labs/fripon-cli/internal/core/domain"

// Composer turns a garment feature set into a finished listing body.
// Each composer handles one analysis profile and owns that category's
// paragraph order, phrasing rules, and hashtag derivation.
type Composer interface {
	// Profile returns the analysis profile this composer handles.
	Profile() domain.ProfileName

	// Compose assembles the listing body. It never returns an error:
	// any internal failure degrades to the cleaned AI description from
	// opts, or to an empty string when none was provided. An empty
	// result means "no usable listing", not a failure signal.
	Compose(f domain.FeatureSet, opts ComposeOptions) string
}

// ComposeOptions carries the optional free-text fallbacks and
// caller-level settings for one composition call.
type ComposeOptions struct {
	// AIDescription is the raw free-text description from the vision
	// model, used verbatim as the fallback body.
	AIDescription string

	// AIDefects overrides the feature set's defects field when present.
	AIDefects string

	// CollectionPrefix is the seller's collection tag prefix (for
	// example "durin31"). Composers that emit a collection
	// call-to-action derive the tag from it; empty disables the tag.
	CollectionPrefix string
}
