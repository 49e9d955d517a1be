package frtext

import "strings"

// Canonical fit buckets for denim.
const (
	FitBootcut     = "Bootcut/Évasé"
	FitSkinny      = "Skinny"
	FitStraight    = "Straight/Droit"
	FitUnspecified = "coupe non précisée"
)

// bootMarkers match both the accented and plain spellings so that the
// check stays accent-insensitive without a transliteration pass.
var bootMarkers = []string{"boot", "flare", "évas", "evase", "curve", "curvy"}

// FitLabel classifies a fit description into one of the canonical
// buckets by keyword matching against the raw value and an optional
// secondary hint (typically the model name). Unmatched values are
// returned cleaned; when both inputs are empty the fixed unspecified
// placeholder is returned.
func FitLabel(rawFit, modelHint string) string {
	value := strings.TrimSpace(rawFit)
	hint := strings.TrimSpace(modelHint)
	if value == "" {
		value = hint
	}
	if value == "" {
		return FitUnspecified
	}

	low := strings.ToLower(value)
	secondary := strings.ToLower(hint)

	if containsAny(low, bootMarkers) || containsAny(secondary, bootMarkers) {
		return FitBootcut
	}
	if strings.Contains(low, "skinny") || strings.Contains(low, "slim") {
		return FitSkinny
	}
	if strings.Contains(low, "straight") || strings.Contains(low, "droit") {
		return FitStraight
	}

	return value
}

func containsAny(s string, markers []string) bool {
	if s == "" {
		return false
	}
	for _, marker := range markers {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}
