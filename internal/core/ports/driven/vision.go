package driven

import (
	"context"

	"github.com/fripon-labs/fripon-cli/internal/core/domain"
)

// VisionService extracts structured garment features from photographs.
// This is an optional service - when nil, only composition from an
// existing features file is available.
type VisionService interface {
	// Analyze sends all images of one garment to the vision model with
	// the given extraction prompt and returns the parsed analysis.
	// Implementations parse the reply leniently: fields the model left
	// null are simply absent from the result.
	Analyze(ctx context.Context, images []domain.Image, prompt string) (*domain.Analysis, error)

	// ModelName returns the name of the vision model being used.
	ModelName() string

	// Close releases resources.
	Close() error
}
