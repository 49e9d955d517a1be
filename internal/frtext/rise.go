package frtext

import (
	"strings"

	"github.com/fripon-labs/fripon-cli/internal/logger"
)

// Canonical waist rise labels.
const (
	RiseLow  = "taille basse"
	RiseMid  = "taille moyenne"
	RiseHigh = "taille haute"
)

// Rise thresholds in centimetres. Below RiseLowMaxCM is a low rise,
// RiseHighMinCM and above is a high rise.
const (
	RiseLowMaxCM  = 23
	RiseHighMinCM = 26
)

// RiseLabel classifies a garment's waist rise into one of the three
// canonical labels. The textual rise type wins over the measured rise;
// when neither signal is usable the label defaults to RiseMid.
func RiseLabel(riseType string, riseCM any) string {
	normalized := strings.ToLower(strings.TrimSpace(riseType))

	switch {
	case normalized == "low" || normalized == "ultra_low" || strings.Contains(normalized, "basse"):
		return RiseLow
	case normalized == "high" || strings.Contains(normalized, "haute"):
		return RiseHigh
	case normalized == "mid" || strings.Contains(normalized, "moy"):
		return RiseMid
	}

	if cm, ok := toFloat(riseCM); ok {
		switch {
		case cm < RiseLowMaxCM:
			return RiseLow
		case cm >= RiseHighMinCM:
			return RiseHigh
		default:
			return RiseMid
		}
	}
	if riseCM != nil {
		logger.Debug("frtext: rise_cm not usable: %v", riseCM)
	}

	return RiseMid
}
