package frtext

import (
	"fmt"
	"strings"
)

// Fixed fallback sentences for unreadable composition labels.
const (
	CompositionUnreadableLabels = "Composition non lisible (voir étiquettes en photo)."
	CompositionUnreadablePhotos = "Composition non lisible (voir photos)."
)

// CompositionSentence builds the denim composition sentence from the
// cotton percentage and a secondary fiber percentage. Fibers with an
// unparsable percentage are omitted; when neither parses the fixed
// unreadable-composition sentence is returned.
func CompositionSentence(cotton, secondary any, secondaryFiber string) string {
	fibers := fiberPhrases(cotton, secondary, secondaryFiber)
	if len(fibers) == 0 {
		return CompositionUnreadableLabels
	}
	return "Composition : " + strings.Join(fibers, " et ") + "."
}

// KnitCompositionSentence builds the knitwear composition sentence.
// It falls back through: explicit percentages, then the raw material
// label as printed, then the fixed unreadable-composition sentence.
func KnitCompositionSentence(material string, cotton, wool any) string {
	fibers := fiberPhrases(cotton, wool, "laine")
	if len(fibers) > 0 {
		return "Composition : " + strings.Join(fibers, " et ") + "."
	}

	if m := Clean(material); m != "" {
		return fmt.Sprintf("Composition (étiquette) : %s.", m)
	}

	return CompositionUnreadablePhotos
}

func fiberPhrases(cotton, secondary any, secondaryFiber string) []string {
	var fibers []string
	if v, ok := Percent(cotton); ok {
		fibers = append(fibers, fmt.Sprintf("%d%% coton", v))
	}
	if v, ok := Percent(secondary); ok {
		fibers = append(fibers, fmt.Sprintf("%d%% %s", v, secondaryFiber))
	}
	return fibers
}
