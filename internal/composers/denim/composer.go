// Package denim composes marketplace listings for Levi's denim jeans.
package denim

import (
	"fmt"
	"strings"

	"github.com/fripon-labs/fripon-cli/internal/core/domain"
	"github.com/fripon-labs/fripon-cli/internal/core/ports/driven"
	"github.com/fripon-labs/fripon-cli/internal/frtext"
	"github.com/fripon-labs/fripon-cli/internal/logger"
)

// Ensure Composer implements the interface.
var _ driven.Composer = (*Composer)(nil)

// Defaults applied when the vision model left a field empty.
const (
	DefaultBrand  = "Levi's"
	DefaultGender = "femme"

	// DefaultCollectionPrefix is the seller collection tag prefix used
	// when the caller provides none.
	DefaultCollectionPrefix = "durin31"
)

// Fixed sentences of the denim listing.
const (
	sizeUnspecified  = "Taille non précisée."
	colorUnspecified = "Coloris non précisé, se référer aux photos pour les nuances."
	closureSentence  = "Fermeture zippée + bouton gravé Levi’s."

	logisticsSentence = "📏 Mesures visibles en photo."
	shippingSentence  = "📦 Envoi rapide et soigné"
	lotCTASentence    = "💡 Pensez à un lot pour profiter d’une réduction supplémentaire et économiser des frais d’envoi !"
)

// Composer assembles a multi-paragraph denim listing.
type Composer struct{}

// New creates a new denim composer.
func New() *Composer {
	return &Composer{}
}

// Profile returns the analysis profile this composer handles.
func (c *Composer) Profile() domain.ProfileName {
	return domain.ProfileJeanLevis
}

// Compose assembles the listing body in the fixed paragraph order:
// intro, size, color, composition, closure, state, logistics, shipping,
// collection call-to-action, lot call-to-action, hashtags. Empty blocks
// are dropped and paragraphs are separated by blank lines. Any internal
// failure degrades to the cleaned AI description.
func (c *Composer) Compose(f domain.FeatureSet, opts driven.ComposeOptions) (body string) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("denim: composition failed, falling back to AI description: %v", r)
			body = frtext.Clean(opts.AIDescription)
		}
	}()

	logger.Debug("denim: features received: %v", f)
	d := f.Denim()

	brand := d.Brand
	if brand == "" {
		brand = DefaultBrand
	}
	gender := d.Gender
	if gender == "" {
		gender = DefaultGender
	}
	fit := frtext.FitLabel(d.Fit, d.Model)
	rise := frtext.RiseLabel(d.RiseType, d.RiseCM)

	intro := introSentence(brand, d.Model, gender)
	size := sizeSentence(d.SizeUS, d.SizeFR, fit, rise)
	color := colorSentence(d.Color)
	composition := frtext.CompositionSentence(d.CottonPercent, d.ElasthanePercent, "élasthanne")

	defects := opts.AIDefects
	if defects == "" {
		defects = d.Defects
	}
	state := frtext.StateSentence(defects)

	prefix := opts.CollectionPrefix
	if prefix == "" {
		prefix = DefaultCollectionPrefix
	}
	collectionTag := collectionTag(prefix, d.SizeFR)
	collectionCTA := fmt.Sprintf("✨ Retrouvez tous mes articles Levi’s à votre taille ici 👉 %s", collectionTag)

	hashtags := buildHashtags(tagInput{
		brand:         brand,
		model:         d.Model,
		fit:           fit,
		color:         d.Color,
		sizeFR:        d.SizeFR,
		sizeUS:        d.SizeUS,
		length:        d.Length,
		gender:        gender,
		rise:          rise,
		collectionTag: collectionTag,
	})

	paragraphs := []string{
		intro,
		size,
		color,
		composition,
		closureSentence,
		state,
		logisticsSentence,
		shippingSentence,
		collectionCTA,
		lotCTASentence,
		hashtags,
	}

	joined := joinParagraphs(paragraphs, "\n\n")
	return frtext.StripFooterLines(joined)
}

// introSentence builds "Jean <brand> [<model>] pour <gender>.".
func introSentence(brand, model, gender string) string {
	parts := []string{"Jean", brand}
	if model != "" {
		parts = append(parts, model)
	}
	return fmt.Sprintf("%s pour %s.", strings.Join(parts, " "), gender)
}

// sizeSentence combines the US/FR sizes with the fit and rise phrase.
// When nothing is known it falls back to the fixed unspecified sentence.
func sizeSentence(sizeUS, sizeFR, fit, rise string) string {
	var parts []string
	switch {
	case sizeUS != "" && sizeFR != "":
		parts = append(parts, fmt.Sprintf("Taille %s US (équivalent %s FR)", sizeUS, sizeFR))
	case sizeFR != "":
		parts = append(parts, fmt.Sprintf("Taille %s FR", sizeFR))
	case sizeUS != "":
		parts = append(parts, fmt.Sprintf("Taille %s US", sizeUS))
	}
	if fit != "" {
		parts = append(parts, fmt.Sprintf("coupe %s", fit))
	}
	if rise != "" {
		parts = append(parts, fmt.Sprintf("à %s", rise))
	}
	if len(parts) == 0 {
		return sizeUnspecified
	}
	parts = append(parts, "pour une silhouette ajustée et confortable")
	return strings.Join(parts, ", ") + "."
}

// colorSentence appends a light-fade qualifier unless the color text
// already carries a fade marker.
func colorSentence(color string) string {
	if color == "" {
		return colorUnspecified
	}
	nuance := " légèrement délavé"
	if strings.Contains(strings.ToLower(color), "lavé") {
		nuance = ""
	}
	return fmt.Sprintf("Coloris %s%s, très polyvalent et facile à assortir.", color, nuance)
}

// collectionTag derives the seller collection hashtag from the FR size.
func collectionTag(prefix, sizeFR string) string {
	size := strings.ToLower(sizeFR)
	if size == "" {
		size = "nc"
	}
	return "#" + prefix + "fr" + size
}

func joinParagraphs(paragraphs []string, sep string) string {
	kept := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
