package analysis

import (
	"encoding/json"
	"fmt"
	"strings"
)

var structuredSections = map[string][]string{
	"public_health_impacts":    {"direct_effects", "indirect_effects", "funding_impact", "vulnerable_populations"},
	"local_government_impacts": {"administrative", "fiscal", "implementation"},
	"economic_impacts":         {"direct_costs", "economic_effects", "benefits", "long_term_impact"},
}

var listSections = []string{
	"environmental_impacts", "education_impacts", "infrastructure_impacts",
	"recommended_actions", "immediate_actions", "resource_needs",
}

// NormalizeAndSanitizeJSON repairs common model-output defects before strict
// schema validation:
//   - drops unknown keys (additionalProperties=false friendliness)
//   - replaces null/missing sections with empty lists
//   - clamps enum fields to their allowed values
//   - coerces stray numbers in list fields to strings, drops other types
//
// It returns the cleaned document and the list of repairs applied.
func NormalizeAndSanitizeJSON(raw []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	var repairs []string
	note := func(format string, args ...any) {
		repairs = append(repairs, fmt.Sprintf(format, args...))
	}

	// summary must be a string.
	if v, ok := m["summary"].(string); ok {
		m["summary"] = strings.TrimSpace(v)
	} else {
		m["summary"] = ""
		note("summary(reset)")
	}

	m["key_points"] = sanitizeKeyPoints(m["key_points"], note)

	for section, fields := range structuredSections {
		obj, ok := m[section].(map[string]any)
		if !ok {
			obj = map[string]any{}
			note("%s(reset)", section)
		}
		for _, f := range fields {
			obj[f] = sanitizeStringList(obj[f], section+"."+f, note)
		}
		for k := range obj {
			if !contains(fields, k) {
				delete(obj, k)
				note("%s.%s(unknown)", section, k)
			}
		}
		m[section] = obj
	}

	for _, section := range listSections {
		m[section] = sanitizeStringList(m[section], section, note)
	}

	m["impact_summary"] = sanitizeImpactSummary(m["impact_summary"], note)

	// confidence is optional; keep only a clamped number.
	if v, ok := m["confidence"]; ok {
		if f, isNum := v.(float64); isNum {
			if f < 0 {
				f = 0
			}
			if f > 1 {
				f = 1
			}
			m["confidence"] = f
		} else {
			delete(m, "confidence")
			note("confidence(type)")
		}
	}

	// drop anything the schema does not know about.
	for k := range m {
		if !isKnownField(k) {
			delete(m, k)
			note("%s(unknown)", k)
		}
	}

	b, err := json.Marshal(m)
	if err != nil {
		return nil, nil, err
	}
	return b, repairs, nil
}

func isKnownField(k string) bool {
	switch k {
	case "summary", "key_points", "impact_summary", "confidence":
		return true
	}
	if _, ok := structuredSections[k]; ok {
		return true
	}
	return contains(listSections, k)
}

func sanitizeKeyPoints(v any, note func(string, ...any)) []any {
	items, ok := v.([]any)
	if !ok {
		if v != nil {
			note("key_points(type)")
		}
		return []any{}
	}
	out := make([]any, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			// tolerate bare strings as neutral points
			if s, isStr := item.(string); isStr && strings.TrimSpace(s) != "" {
				out = append(out, map[string]any{"point": strings.TrimSpace(s), "impact_type": "neutral"})
				note("key_points(coerced)")
			} else {
				note("key_points(dropped)")
			}
			continue
		}
		point, _ := obj["point"].(string)
		point = strings.TrimSpace(point)
		if point == "" {
			note("key_points(empty)")
			continue
		}
		impact, _ := obj["impact_type"].(string)
		switch impact {
		case "positive", "negative", "neutral":
		default:
			impact = "neutral"
			note("key_points.impact_type(clamped)")
		}
		out = append(out, map[string]any{"point": point, "impact_type": impact})
	}
	return out
}

func sanitizeStringList(v any, field string, note func(string, ...any)) []any {
	items, ok := v.([]any)
	if !ok {
		if v != nil {
			note("%s(type)", field)
		}
		return []any{}
	}
	out := make([]any, 0, len(items))
	for _, item := range items {
		switch t := item.(type) {
		case string:
			if s := strings.TrimSpace(t); s != "" {
				out = append(out, s)
			}
		case float64:
			out = append(out, fmt.Sprintf("%g", t))
			note("%s(coerced)", field)
		default:
			note("%s(dropped)", field)
		}
	}
	return out
}

func sanitizeImpactSummary(v any, note func(string, ...any)) map[string]any {
	obj, ok := v.(map[string]any)
	if !ok {
		note("impact_summary(reset)")
		obj = map[string]any{}
	}
	clamp := func(key, fallback string, allowed ...string) {
		s, _ := obj[key].(string)
		if !contains(allowed, s) {
			obj[key] = fallback
			note("impact_summary.%s(clamped)", key)
		}
	}
	clamp("primary_category", "local_gov",
		"public_health", "local_gov", "economic", "environmental", "education", "infrastructure")
	clamp("impact_level", "low", "low", "moderate", "high", "critical")
	clamp("relevance", "low", "low", "moderate", "high")
	for k := range obj {
		switch k {
		case "primary_category", "impact_level", "relevance":
		default:
			delete(obj, k)
			note("impact_summary.%s(unknown)", k)
		}
	}
	return obj
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
