package domain

import "time"

// Listing is a finished marketplace listing body for one garment.
type Listing struct {
	// ID is the unique identifier for the listing.
	ID string

	// Profile is the analysis profile the listing was composed under.
	Profile ProfileName

	// Title is the short French title proposed by the vision model.
	// Empty when the listing was composed from a features file.
	Title string

	// Body is the full listing text: ordered paragraphs plus a trailing
	// hashtag line. An empty body means no usable listing, not an error.
	Body string

	// Degraded is true when composition failed and Body carries the raw
	// AI description instead of the structured text.
	Degraded bool

	// CreatedAt is when the listing was composed.
	CreatedAt time.Time
}

// Analysis is the structured output of the vision extraction step for
// one garment, parsed leniently: any field the model was unsure about
// is absent.
type Analysis struct {
	// Title is the proposed listing title.
	Title string

	// Description is the model's free-text French description. It is the
	// fallback body when structured composition fails.
	Description string

	// Defects is the model's free-text defect summary.
	Defects string

	// Features is the flat attribute mapping for the composer. For the
	// jean_levis profile this comes from the nested "features" object.
	Features FeatureSet

	// Raw is the unparsed model reply, kept for diagnosis.
	Raw string
}
