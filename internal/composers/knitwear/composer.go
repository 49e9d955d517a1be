// Package knitwear composes marketplace listings for Tommy Hilfiger
// knitwear (pull, gilet, cardigan).
package knitwear

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fripon-labs/fripon-cli/internal/core/domain"
	"github.com/fripon-labs/fripon-cli/internal/core/ports/driven"
	"github.com/fripon-labs/fripon-cli/internal/frtext"
	"github.com/fripon-labs/fripon-cli/internal/logger"
)

// Ensure Composer implements the interface.
var _ driven.Composer = (*Composer)(nil)

// Defaults applied when the vision model left a field empty.
const (
	DefaultBrand       = "Tommy Hilfiger"
	DefaultGarmentType = "pull"
	DefaultGender      = "femme"
)

// Fixed sentences of the knitwear listing.
const (
	sizeUnspecified   = "Taille non précisée."
	logisticsSentence = "Envoi rapide et soigné. Article conforme aux photos."
)

// Composer assembles a knitwear listing. The knitwear format is denser
// than the denim one: paragraphs are separated by single newlines and
// the neckline, pattern, and color sentences share one line.
type Composer struct{}

// New creates a new knitwear composer.
func New() *Composer {
	return &Composer{}
}

// Profile returns the analysis profile this composer handles.
func (c *Composer) Profile() domain.ProfileName {
	return domain.ProfilePullTommy
}

// Compose assembles the listing body in the fixed order: intro, size,
// neckline/pattern/color line, composition, state, logistics, hashtags.
// Any internal failure degrades to the cleaned AI description.
func (c *Composer) Compose(f domain.FeatureSet, opts driven.ComposeOptions) (body string) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("knitwear: composition failed, falling back to AI description: %v", r)
			body = frtext.Clean(opts.AIDescription)
		}
	}()

	logger.Debug("knitwear: features received: %v", f)
	k := f.Knit()

	brand := k.Brand
	if brand == "" {
		brand = DefaultBrand
	}
	garmentType := k.GarmentType
	if garmentType == "" {
		garmentType = DefaultGarmentType
	}
	gender := k.Gender
	if gender == "" {
		gender = DefaultGender
	}
	colors := strings.Join(k.MainColors, ", ")

	intro := introSentence(garmentType, brand, gender)
	size := sizeSentence(k.Size, k.SizeSource, k.MeasurementMode)
	details := detailsLine(k.Neckline, k.Pattern, colors)
	composition := frtext.KnitCompositionSentence(k.Material, k.CottonPercent, k.WoolPercent)

	defects := opts.AIDefects
	if defects == "" {
		defects = k.Defects
	}
	state := frtext.StateSentence(defects)

	hashtags := buildHashtags(garmentType, gender, k.MainColors, k.Size)

	paragraphs := []string{
		intro,
		size,
		details,
		composition,
		state,
		logisticsSentence,
		hashtags,
	}

	kept := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		if p != "" {
			kept = append(kept, p)
		}
	}

	return frtext.StripFooterLines(strings.Join(kept, "\n"))
}

// introSentence builds "<Garment> <Brand> pour <gender>.".
func introSentence(garmentType, brand, gender string) string {
	intro := fmt.Sprintf("%s %s", capitalize(garmentType), brand)
	if gender != "" {
		intro += " pour " + gender
	}
	return intro + "."
}

// sizeSentence branches on how the size was obtained: sizes estimated
// from flat measurements are flagged as such instead of being presented
// as label sizes.
func sizeSentence(size, sizeSource, measurementMode string) string {
	if size == "" {
		return sizeUnspecified
	}
	estimated := strings.ToLower(sizeSource) == domain.SizeSourceEstimated ||
		strings.ToLower(measurementMode) == domain.MeasurementModeFlat
	if estimated {
		return fmt.Sprintf("Taille estimée %s. Estimée à la main à partir des mesures à plat.", size)
	}
	return fmt.Sprintf("Taille indiquée sur étiquette : %s.", size)
}

// detailsLine merges the neckline, pattern, and color sentences into a
// single line, dropping absent parts.
func detailsLine(neckline, pattern, colors string) string {
	var parts []string
	if neckline != "" {
		parts = append(parts, fmt.Sprintf("Col %s.", neckline))
	}
	if pattern != "" {
		parts = append(parts, fmt.Sprintf("Motif : %s.", pattern))
	}
	if colors != "" {
		parts = append(parts, fmt.Sprintf("Coloris : %s.", colors))
	}
	return strings.Join(parts, " ")
}

// buildHashtags derives the knitwear hashtag line: fixed brand tag,
// garment type, gender, one tag per color, and the size.
func buildHashtags(garmentType, gender string, colors []string, size string) string {
	tags := frtext.NewTagSet()

	tags.Add("#tommyhilfiger")
	if garmentType != "" {
		tags.Add("#" + frtext.TagToken(garmentType))
	}
	if gender != "" {
		tags.Add("#" + strings.ToLower(gender))
	}
	for _, color := range colors {
		if token := frtext.TagToken(color); token != "" {
			tags.Add("#" + token)
		}
	}
	if size != "" {
		tags.Add("#taille" + strings.ToLower(size))
	}

	return tags.String()
}

// capitalize uppercases the first rune and lowercases the rest.
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
