package denim

import (
	"regexp"
	"strings"

	"github.com/fripon-labs/fripon-cli/internal/frtext"
	"github.com/fripon-labs/fripon-cli/internal/logger"
)

// modelNumberRe extracts a Levi's model number (501, 505, 511, ...)
// from the model text.
var modelNumberRe = regexp.MustCompile(`\d{3}`)

// dropMarkers are model words that never make useful hashtags on their
// own ("demi curve", "curvy cut", ...).
var dropMarkers = map[string]struct{}{
	"demi":  {},
	"curve": {},
	"curvy": {},
	"cut":   {},
}

// fitBootMarkers classify the display fit into the bootcut tag bucket.
var fitBootMarkers = []string{"bootcut", "boot cut", "boot-cut", "flare", "curve", "curvy"}

// modelTokenReplacer strips apostrophes and dashes from model words.
var modelTokenReplacer = strings.NewReplacer("'", "", "’", "", "-", "")

// fitTokenReplacer flattens an unbucketed fit value into a tag body.
var fitTokenReplacer = strings.NewReplacer(" ", "", "/", "")

// tagInput carries the normalised fields the hashtag builder consumes.
type tagInput struct {
	brand         string
	model         string
	fit           string
	color         string
	sizeFR        string
	sizeUS        string
	length        string
	gender        string
	rise          string
	collectionTag string
}

// buildHashtags derives the denim hashtag line. Tokens are inserted in
// a fixed priority order (brand, category, gender, model, fit, color,
// rise, sizes, collection) and deduplicated on first occurrence.
func buildHashtags(in tagInput) string {
	tags := frtext.NewTagSet()

	brandToken := frtext.TagToken(in.brand)
	if brandToken == "" {
		brandToken = "levis"
	}
	tags.Add("#" + brandToken)
	tags.Add("#jeanlevis")
	tags.Add("#jeandenim")

	if in.gender != "" {
		tags.Add("#levis" + frtext.TagToken(in.gender))
	}

	addModelTags(tags, in.model)
	addFitTag(tags, in.fit)

	if in.color != "" {
		tags.Add("#jean" + frtext.TagToken(in.color))
	}
	if in.rise != "" {
		tags.Add("#" + frtext.TagToken(in.rise))
	}

	if in.sizeFR != "" {
		tags.Add("#fr" + strings.ToLower(in.sizeFR))
	}
	if in.sizeUS != "" {
		tags.Add("#w" + strings.ReplaceAll(strings.ToLower(in.sizeUS), "w", ""))
	}
	if in.length != "" {
		tags.Add("#l" + strings.ReplaceAll(strings.ToLower(in.length), "l", ""))
	}

	tags.Add(in.collectionTag)

	return tags.String()
}

// addModelTags derives tags from the model text: the 3-digit model
// number first, then the remaining model words with noise markers
// dropped and the super-skinny/super-slim pairs merged.
func addModelTags(tags *frtext.TagSet, model string) {
	if model == "" {
		return
	}
	modelLow := strings.ToLower(strings.TrimSpace(model))

	modelNumber := modelNumberRe.FindString(modelLow)
	if modelNumber != "" {
		tags.Add("#levis" + modelNumber)
		tags.Add("#" + modelNumber)
	}

	var words []string
	for _, token := range strings.Fields(strings.ReplaceAll(modelLow, "/", " ")) {
		cleaned := modelTokenReplacer.Replace(token)
		if cleaned == "" || cleaned == modelNumber || isDigits(cleaned) {
			continue
		}
		if _, drop := dropMarkers[cleaned]; drop {
			logger.Debug("denim: model word skipped (marker): %s", token)
			continue
		}
		words = append(words, cleaned)
	}

	// The pair checks look at the original word set so that a model like
	// "super skinny slim" merges into both combined tags.
	present := make(map[string]struct{}, len(words))
	for _, w := range words {
		present[w] = struct{}{}
	}
	_, hasSuper := present["super"]
	if _, hasSkinny := present["skinny"]; hasSuper && hasSkinny {
		tags.Add("#superskinny")
		words = removeWords(words, "super", "skinny")
	}
	if _, hasSlim := present["slim"]; hasSuper && hasSlim {
		tags.Add("#superslim")
		words = removeWords(words, "super", "slim")
	}

	for _, w := range words {
		tags.Add("#" + w)
	}
}

// addFitTag maps the display fit to its tag bucket and appends "jean".
func addFitTag(tags *frtext.TagSet, fit string) {
	if fit == "" {
		return
	}
	fitKey := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(fit)), "é", "e")

	var fitToken string
	switch {
	case containsAny(fitKey, fitBootMarkers):
		fitToken = "bootcut"
	case strings.Contains(fitKey, "skinny") || strings.Contains(fitKey, "slim"):
		fitToken = "skinny"
	case strings.Contains(fitKey, "straight") || strings.Contains(fitKey, "droit"):
		fitToken = "straightdroit"
	default:
		fitToken = fitTokenReplacer.Replace(fitKey)
	}
	tags.Add("#" + fitToken + "jean")
}

func containsAny(s string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func removeWords(words []string, drop ...string) []string {
	dropSet := make(map[string]struct{}, len(drop))
	for _, d := range drop {
		dropSet[d] = struct{}{}
	}
	kept := words[:0]
	for _, w := range words {
		if _, ok := dropSet[w]; !ok {
			kept = append(kept, w)
		}
	}
	return kept
}
