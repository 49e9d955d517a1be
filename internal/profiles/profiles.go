// Package profiles defines the analysis profiles the vision extraction
// supports: which garment family is expected, the profile-specific
// prompt suffix, and how the final prompt is assembled.
package profiles

import (
	"fmt"
	"sort"

	"github.com/fripon-labs/fripon-cli/internal/core/domain"
)

// AnalysisProfile describes one supported garment family.
type AnalysisProfile struct {
	Name domain.ProfileName

	// PromptSuffix is appended to the extraction contract to steer the
	// vision model towards this garment family.
	PromptSuffix string

	// MeasurementAware profiles honour the UI measurement mode
	// (label vs flat measurements) and get the related prompt
	// instructions appended.
	MeasurementAware bool

	// FormatInstruction is an optional profile-specific description
	// format constraint appended for measurement-aware profiles.
	FormatInstruction string
}

// builtins holds the registered profiles keyed by name.
var builtins = map[domain.ProfileName]AnalysisProfile{
	domain.ProfileJeanLevis: {
		Name:         domain.ProfileJeanLevis,
		PromptSuffix: jeanLevisSuffix,
	},
	domain.ProfilePullTommy: {
		Name:              domain.ProfilePullTommy,
		PromptSuffix:      pullTommySuffix,
		MeasurementAware:  true,
		FormatInstruction: pullTommyFormatInstruction,
	},
}

// Get returns the profile registered under name.
// Returns domain.ErrUnknownProfile for unregistered names.
func Get(name domain.ProfileName) (AnalysisProfile, error) {
	p, ok := builtins[name]
	if !ok {
		return AnalysisProfile{}, fmt.Errorf("%w: %s", domain.ErrUnknownProfile, name)
	}
	return p, nil
}

// Names returns the registered profile names in sorted order.
func Names() []domain.ProfileName {
	names := make([]domain.ProfileName, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
