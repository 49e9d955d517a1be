package frtext

import (
	"strings"

	"github.com/fripon-labs/fripon-cli/internal/logger"
)

// footerPrefixes mark lines the marketplace renders from structured
// fields already; repeating them in the body is redundant.
var footerPrefixes = []string{"marque :", "couleur :", "sku"}

// StripFooterLines removes any line whose trimmed, lowercased form
// starts with a footer prefix. All other lines, including blank ones,
// are preserved in their original order.
func StripFooterLines(text string) string {
	if text == "" {
		return ""
	}

	lines := strings.Split(text, "\n")
	filtered := make([]string, 0, len(lines))
	for _, line := range lines {
		if isFooterLine(line) {
			logger.Debug("frtext: footer line removed: %q", line)
			continue
		}
		filtered = append(filtered, line)
	}

	return strings.Join(filtered, "\n")
}

func isFooterLine(line string) bool {
	lowered := strings.ToLower(strings.TrimSpace(line))
	for _, prefix := range footerPrefixes {
		if strings.HasPrefix(lowered, prefix) {
			return true
		}
	}
	return false
}
