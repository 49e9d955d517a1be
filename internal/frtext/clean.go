package frtext

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fripon-labs/fripon-cli/internal/logger"
)

// Clean converts any value to its trimmed string form.
// Nil yields "".
func Clean(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

// Percent parses a numeric-like value into an integer percentage via
// float truncation. Nil, empty strings, and unparsable input yield
// (0, false).
func Percent(v any) (int, bool) {
	f, ok := toFloat(v)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// toFloat coerces a value to float64. Strings are trimmed first; an
// empty string is treated as absent rather than malformed.
func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case nil:
		return 0, false
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			logger.Warn("frtext: cannot parse %q as number", t)
			return 0, false
		}
		return f, true
	default:
		s := strings.TrimSpace(fmt.Sprint(v))
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			logger.Warn("frtext: cannot parse %v as number", v)
			return 0, false
		}
		return f, true
	}
}
