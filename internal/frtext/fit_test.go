package frtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitLabel(t *testing.T) {
	tests := []struct {
		name     string
		rawFit   string
		hint     string
		expected string
	}{
		{name: "bootcut", rawFit: "bootcut", expected: FitBootcut},
		{name: "flare", rawFit: "jambe flare", expected: FitBootcut},
		{name: "accented evase", rawFit: "évasé", expected: FitBootcut},
		{name: "plain evase", rawFit: "evase", expected: FitBootcut},
		{name: "curvy via model hint", rawFit: "", hint: "726 Curvy Flare", expected: FitBootcut},
		{name: "skinny", rawFit: "Skinny", expected: FitSkinny},
		{name: "slim", rawFit: "coupe slim", expected: FitSkinny},
		{name: "straight", rawFit: "straight leg", expected: FitStraight},
		{name: "droit", rawFit: "Droit", expected: FitStraight},
		{name: "unmatched returns cleaned value", rawFit: " relaxed ", expected: "relaxed"},
		{name: "both empty", rawFit: "", hint: "", expected: FitUnspecified},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FitLabel(tc.rawFit, tc.hint))
		})
	}
}

func TestFitLabel_HintDoesNotOverrideExplicitFit(t *testing.T) {
	// Boot markers are checked before skinny markers on both inputs, so
	// a boot marker in the hint wins over an explicit skinny fit.
	assert.Equal(t, FitBootcut, FitLabel("skinny", "726 flare"))
}
