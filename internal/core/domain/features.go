package domain

import (
	"fmt"
	"strings"
)

// FeatureSet is the raw attribute mapping produced by the vision
// extraction step. Values may be strings, numbers, lists of strings, or
// absent; nothing beyond key lookup is guaranteed. Lookups are
// defensive: missing or nil values read as absent.
type FeatureSet map[string]any

// Text returns the trimmed string form of a feature value.
// Missing or nil values return "".
func (f FeatureSet) Text(key string) string {
	if f == nil {
		return ""
	}
	v, ok := f[key]
	if !ok || v == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

// Value returns the raw feature value, or nil when absent.
// Used for numeric-ish fields whose parsing is left to the caller.
func (f FeatureSet) Value(key string) any {
	if f == nil {
		return nil
	}
	return f[key]
}

// List returns a feature value as a list of trimmed strings.
// A scalar value becomes a single-element list; empty elements are dropped.
func (f FeatureSet) List(key string) []string {
	if f == nil {
		return nil
	}
	v, ok := f[key]
	if !ok || v == nil {
		return nil
	}

	var out []string
	appendClean := func(item any) {
		if item == nil {
			return
		}
		s := strings.TrimSpace(fmt.Sprint(item))
		if s != "" {
			out = append(out, s)
		}
	}

	switch items := v.(type) {
	case []string:
		for _, item := range items {
			appendClean(item)
		}
	case []any:
		for _, item := range items {
			appendClean(item)
		}
	default:
		appendClean(v)
	}
	return out
}

// DenimFeatures is the typed view of a denim feature set. Every field is
// optional: empty strings and nil values mean the attribute was not
// extracted. Numeric-ish fields stay untyped because the vision model
// may return them as numbers or strings.
type DenimFeatures struct {
	Brand    string
	Model    string
	Fit      string
	Color    string
	SizeFR   string
	SizeUS   string
	Length   string
	Gender   string
	SKU      string
	RiseType string
	Defects  string

	RiseCM           any
	CottonPercent    any
	ElasthanePercent any
}

// Denim builds the typed denim view of the feature set.
func (f FeatureSet) Denim() DenimFeatures {
	return DenimFeatures{
		Brand:            f.Text("brand"),
		Model:            f.Text("model"),
		Fit:              f.Text("fit"),
		Color:            f.Text("color"),
		SizeFR:           f.Text("size_fr"),
		SizeUS:           f.Text("size_us"),
		Length:           f.Text("length"),
		Gender:           f.Text("gender"),
		SKU:              f.Text("sku"),
		RiseType:         f.Text("rise_type"),
		Defects:          f.Text("defects"),
		RiseCM:           f.Value("rise_cm"),
		CottonPercent:    f.Value("cotton_percent"),
		ElasthanePercent: f.Value("elasthane_percent"),
	}
}

// KnitFeatures is the typed view of a knitwear feature set.
// Same optionality rules as DenimFeatures.
type KnitFeatures struct {
	Brand           string
	GarmentType     string
	Gender          string
	Neckline        string
	Pattern         string
	Material        string
	Size            string
	SizeSource      string
	MeasurementMode string
	Defects         string

	CottonPercent any
	WoolPercent   any

	MainColors []string
}

// Knit builds the typed knitwear view of the feature set.
func (f FeatureSet) Knit() KnitFeatures {
	return KnitFeatures{
		Brand:           f.Text("brand"),
		GarmentType:     f.Text("garment_type"),
		Gender:          f.Text("gender"),
		Neckline:        f.Text("neckline"),
		Pattern:         f.Text("pattern"),
		Material:        f.Text("material"),
		Size:            f.Text("size"),
		SizeSource:      f.Text("size_source"),
		MeasurementMode: f.Text("measurement_mode"),
		Defects:         f.Text("defects"),
		CottonPercent:   f.Value("cotton_percent"),
		WoolPercent:     f.Value("wool_percent"),
		MainColors:      f.List("main_colors"),
	}
}
