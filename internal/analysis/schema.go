package analysis

// BuildAnalysisJSONSchema returns the JSON-Schema (draft 2020-12 subset) for
// StructuredAnalysis as a generic map. We pass this to the model provider as a
// structured-output constraint and also use it locally to validate responses.
func BuildAnalysisJSONSchema() map[string]any {
	stringList := func(desc string) map[string]any {
		return map[string]any{
			"type":        "array",
			"description": desc,
			"items":       map[string]any{"type": "string"},
		}
	}

	props := map[string]any{
		"summary": map[string]any{
			"type":        "string",
			"description": "A concise summary of the bill",
		},
		"key_points": map[string]any{
			"type":        "array",
			"description": "Key bullet points in the legislation",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"point": map[string]any{"type": "string", "minLength": 1},
					"impact_type": map[string]any{
						"type": "string",
						"enum": []string{"positive", "negative", "neutral"},
					},
				},
				"required":             []string{"point", "impact_type"},
				"additionalProperties": false,
			},
		},
		"public_health_impacts": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"direct_effects":         stringList("Direct public health effects"),
				"indirect_effects":       stringList("Indirect public health effects"),
				"funding_impact":         stringList("Health funding changes"),
				"vulnerable_populations": stringList("Effects on vulnerable populations"),
			},
			"required":             []string{"direct_effects", "indirect_effects", "funding_impact", "vulnerable_populations"},
			"additionalProperties": false,
		},
		"local_government_impacts": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"administrative": stringList("Administrative burden changes"),
				"fiscal":         stringList("Fiscal effects on local government"),
				"implementation": stringList("Implementation requirements"),
			},
			"required":             []string{"administrative", "fiscal", "implementation"},
			"additionalProperties": false,
		},
		"economic_impacts": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"direct_costs":     stringList("Direct costs imposed"),
				"economic_effects": stringList("Broader economic effects"),
				"benefits":         stringList("Economic benefits"),
				"long_term_impact": stringList("Long-term economic impact"),
			},
			"required":             []string{"direct_costs", "economic_effects", "benefits", "long_term_impact"},
			"additionalProperties": false,
		},
		"environmental_impacts":  stringList("Environmental effects"),
		"education_impacts":      stringList("Education effects"),
		"infrastructure_impacts": stringList("Infrastructure effects"),
		"recommended_actions":    stringList("Recommended actions for stakeholders"),
		"immediate_actions":      stringList("Actions needed immediately"),
		"resource_needs":         stringList("Resources required for response"),
		"impact_summary": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"primary_category": map[string]any{
					"type": "string",
					"enum": []string{
						"public_health", "local_gov", "economic",
						"environmental", "education", "infrastructure",
					},
				},
				"impact_level": map[string]any{
					"type": "string",
					"enum": []string{"low", "moderate", "high", "critical"},
				},
				"relevance": map[string]any{
					"type": "string",
					"enum": []string{"low", "moderate", "high"},
				},
			},
			"required":             []string{"primary_category", "impact_level", "relevance"},
			"additionalProperties": false,
		},
		"confidence": map[string]any{
			"type":        "number",
			"minimum":     0.0,
			"maximum":     1.0,
			"description": "Self-reported confidence in the analysis",
		},
	}

	required := []string{
		"summary", "key_points", "public_health_impacts",
		"local_government_impacts", "economic_impacts",
		"environmental_impacts", "education_impacts",
		"infrastructure_impacts", "recommended_actions",
		"immediate_actions", "resource_needs", "impact_summary",
	}

	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": false,
	}
}
