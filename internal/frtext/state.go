package frtext

import (
	"strings"

	"github.com/fripon-labs/fripon-cli/internal/logger"
)

// StateVeryGood is the condition sentence when no defects are noted.
const StateVeryGood = "Très bon état."

// photoMarker ends the usable part of a defect note: the vision model
// often appends its own "voir photos" reference which the composer
// re-adds in a controlled position.
const photoMarker = "voir photos"

// StateSentence normalises free-text defect notes into the condition
// sentence. Empty or fully-trimmed notes yield the fixed very-good
// sentence; otherwise the cleaned note is embedded with a photo
// reference suffix.
func StateSentence(defects string) string {
	clean := normalizeDefects(defects)
	if clean == "" {
		return StateVeryGood
	}
	return "Très bon état. Légères traces d'usage : " + clean + " (voir photos)."
}

// normalizeDefects trims a defect note: everything from an embedded
// case-insensitive "voir photos" marker onwards is dropped, then
// trailing punctuation and whitespace are stripped.
func normalizeDefects(defects string) string {
	base := Clean(defects)
	if base == "" {
		return ""
	}

	if idx := strings.Index(strings.ToLower(base), photoMarker); idx >= 0 {
		logger.Debug("frtext: defect note truncated at photo marker: %q", base)
		base = base[:idx]
	}

	return strings.TrimRight(strings.TrimSpace(base), ". ,;")
}
