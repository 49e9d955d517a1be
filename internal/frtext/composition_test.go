package frtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompositionSentence(t *testing.T) {
	tests := []struct {
		name      string
		cotton    any
		secondary any
		expected  string
	}{
		{
			name:      "both fibers",
			cotton:    98,
			secondary: 2,
			expected:  "Composition : 98% coton et 2% élasthanne.",
		},
		{
			name:     "cotton only",
			cotton:   "100",
			expected: "Composition : 100% coton.",
		},
		{
			name:      "secondary only",
			secondary: 5,
			expected:  "Composition : 5% élasthanne.",
		},
		{
			name:      "floats truncate",
			cotton:    98.6,
			secondary: "1.4",
			expected:  "Composition : 98% coton et 1% élasthanne.",
		},
		{
			name:     "neither parses",
			cotton:   "coton",
			expected: CompositionUnreadableLabels,
		},
		{
			name:     "both absent",
			expected: CompositionUnreadableLabels,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CompositionSentence(tc.cotton, tc.secondary, "élasthanne"))
		})
	}
}

func TestCompositionSentence_Idempotent(t *testing.T) {
	// Repeated calls with identical inputs return the identical sentence.
	first := CompositionSentence(nil, nil, "élasthanne")
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, CompositionSentence(nil, nil, "élasthanne"))
	}
	assert.Equal(t, "Composition non lisible (voir étiquettes en photo).", first)
}

func TestKnitCompositionSentence(t *testing.T) {
	tests := []struct {
		name     string
		material string
		cotton   any
		wool     any
		expected string
	}{
		{
			name:     "percentages win over material",
			material: "100% laine mérinos",
			cotton:   20,
			wool:     80,
			expected: "Composition : 20% coton et 80% laine.",
		},
		{
			name:     "wool only",
			wool:     80,
			expected: "Composition : 80% laine.",
		},
		{
			name:     "material label fallback",
			material: "100% laine mérinos",
			expected: "Composition (étiquette) : 100% laine mérinos.",
		},
		{
			name:     "nothing readable",
			expected: CompositionUnreadablePhotos,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, KnitCompositionSentence(tc.material, tc.cotton, tc.wool))
		})
	}
}
