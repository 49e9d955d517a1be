package domain

// ProfileName identifies an analysis profile. The profile selects both
// the prompt sent to the vision model and the composer used to turn the
// extracted features into a listing body.
type ProfileName string

// Known analysis profiles.
const (
	// ProfileJeanLevis covers Levi's denim jeans. The vision model returns
	// an extended nested "features" object for this profile.
	ProfileJeanLevis ProfileName = "jean_levis"

	// ProfilePullTommy covers Tommy Hilfiger knitwear (pull, gilet, cardigan).
	ProfilePullTommy ProfileName = "pull_tommy"
)

// String returns the profile name as a plain string.
func (p ProfileName) String() string {
	return string(p)
}

// Measurement modes selected in the UI before analysis. They control how
// the vision model treats size labels versus flat measurements.
const (
	// MeasurementModeLabel means size labels are readable; sizes must come
	// from labels only.
	MeasurementModeLabel = "etiquette"

	// MeasurementModeFlat means the size label is missing or unreadable;
	// the size is estimated from flat measurements.
	MeasurementModeFlat = "mesures"
)

// SizeSourceEstimated marks a size that was derived from flat
// measurements rather than read from a label.
const SizeSourceEstimated = "estimated"
