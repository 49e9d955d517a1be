package profiles

import (
	"strings"

	"github.com/fripon-labs/fripon-cli/internal/core/domain"
	"github.com/fripon-labs/fripon-cli/internal/logger"
)

// Fixed instructions appended for measurement-aware profiles. They keep
// numeric measurements and SKU lines out of the generated description.
const (
	noNumericMeasures = "NE JAMAIS lister de valeurs chiffrées de mesures dans la description, même si les photos montrent un mètre ruban. Se limiter à la phrase sur les mesures en photo."

	noSKULine = "NE JAMAIS ajouter de ligne SKU ou numéro interne dans la description (SKU uniquement dans le titre)."

	labelModeInstruction = "MODE UI = ÉTIQUETTES LISIBLES : baser la taille uniquement sur les étiquettes visibles. Ne pas déduire la taille depuis les mesures à plat même si elles apparaissent sur les photos."

	flatModeInstruction = `MODE UI = ANALYSER LES MESURES : considérer que l'étiquette de taille est illisible/manquante. Utiliser les mesures à plat visibles pour estimer la taille et ajouter la mention "Taille estimée à la main à partir des mesures à plat (voir photos)." juste après la taille dans la description.`
)

// BuildFullPrompt assembles the complete vision prompt: the extraction
// contract, the profile suffix, and, for measurement-aware profiles,
// the measurement-mode instructions matching the caller's selection.
func BuildFullPrompt(contract string, p AnalysisProfile, measurementMode string) string {
	base := contract + "\n\n" + p.PromptSuffix

	if !p.MeasurementAware {
		return base
	}

	extra := []string{noNumericMeasures, noSKULine}
	if p.FormatInstruction != "" {
		extra = append(extra, p.FormatInstruction)
	}

	switch measurementMode {
	case domain.MeasurementModeLabel:
		extra = append(extra, labelModeInstruction)
	case domain.MeasurementModeFlat:
		extra = append(extra, flatModeInstruction)
	}

	logger.Debug("profiles: prompt instructions applied (%s) with mode %q", p.Name, measurementMode)
	return base + "\n\n" + strings.Join(extra, "\n")
}
