package openai

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/fripon-labs/fripon-cli/internal/core/domain"
	"github.com/fripon-labs/fripon-cli/internal/logger"
)

// parseReply turns the raw model reply into a domain.Analysis.
//
// The contract asks for a bare JSON object but models occasionally wrap
// it in markdown fences or leave fields null, so parsing is lenient:
// fences are stripped, null fields are skipped, and an unparsable reply
// degrades to an analysis whose description is the raw text.
func parseReply(raw string) *domain.Analysis {
	cleaned := stripFences(raw)

	parsed := gjson.Parse(cleaned)
	if !parsed.IsObject() {
		logger.Warn("vision: reply is not a JSON object, keeping raw text")
		return &domain.Analysis{
			Description: strings.TrimSpace(raw),
			Raw:         raw,
		}
	}

	analysis := &domain.Analysis{
		Title:       parsed.Get("title").String(),
		Description: parsed.Get("description").String(),
		Defects:     parsed.Get("defects").String(),
		Features:    domain.FeatureSet{},
		Raw:         raw,
	}

	// Top-level base-schema fields double as features so profiles
	// without a nested "features" object still feed the composer.
	parsed.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if name == "title" || name == "description" || name == "features" {
			return true
		}
		addFeature(analysis.Features, name, value)
		return true
	})

	// The nested "features" object (jean_levis profile) wins over any
	// top-level field of the same name.
	if nested := parsed.Get("features"); nested.IsObject() {
		nested.ForEach(func(key, value gjson.Result) bool {
			addFeature(analysis.Features, key.String(), value)
			return true
		})
	}

	return analysis
}

// addFeature stores one reply field into the feature mapping. Null
// fields are simply absent, matching the contract's uncertainty rule.
func addFeature(features domain.FeatureSet, name string, value gjson.Result) {
	switch value.Type {
	case gjson.Null:
		return
	case gjson.String:
		if value.Str != "" {
			features[name] = value.Str
		}
	case gjson.Number:
		features[name] = value.Num
	case gjson.True, gjson.False:
		features[name] = value.Bool()
	default:
		// Arrays (e.g. main_colors) and nested objects keep their
		// generic decoded form for the FeatureSet accessors.
		features[name] = value.Value()
	}
}

// stripFences removes a surrounding markdown code fence, if any.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
