package domain

// Image is one photograph of the garment being analysed.
// All images in a request refer to the same physical item.
type Image struct {
	// Data is the raw image bytes.
	Data []byte

	// MIMEType is the image content type (image/jpeg, image/png, ...).
	MIMEType string
}

// AnalysisRequest describes one vision extraction call: the profile to
// analyse under, the photographs, and the UI measurement mode.
type AnalysisRequest struct {
	// Profile selects the extraction prompt and the composer.
	Profile ProfileName

	// Images are the photographs of the garment.
	Images []Image

	// MeasurementMode is MeasurementModeLabel, MeasurementModeFlat, or
	// empty when the UI made no selection.
	MeasurementMode string
}
