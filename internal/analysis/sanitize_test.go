package analysis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAndSanitizeJSON_InvalidJSON(t *testing.T) {
	_, _, err := NormalizeAndSanitizeJSON([]byte("not json"))
	require.Error(t, err)
}

func TestNormalizeAndSanitizeJSON_FillsMissingSections(t *testing.T) {
	cleaned, repairs, err := NormalizeAndSanitizeJSON([]byte(`{"summary":"  A short bill.  "}`))
	require.NoError(t, err)
	assert.NotEmpty(t, repairs)

	var m map[string]any
	require.NoError(t, json.Unmarshal(cleaned, &m))

	assert.Equal(t, "A short bill.", m["summary"])
	assert.Equal(t, []any{}, m["key_points"])
	assert.Equal(t, []any{}, m["environmental_impacts"])

	ph, ok := m["public_health_impacts"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{}, ph["direct_effects"])

	is, ok := m["impact_summary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "local_gov", is["primary_category"])
	assert.Equal(t, "low", is["impact_level"])
	assert.Equal(t, "low", is["relevance"])

	// sanitized output must pass strict validation
	require.NoError(t, ValidateJSONAgainstSchema(BuildAnalysisJSONSchema(), cleaned))
}

func TestNormalizeAndSanitizeJSON_CoercesKeyPoints(t *testing.T) {
	raw := []byte(`{
		"summary": "s",
		"key_points": [
			"bare string point",
			{"point": "tagged point", "impact_type": "bogus"},
			{"point": "   "},
			42
		]
	}`)
	cleaned, repairs, err := NormalizeAndSanitizeJSON(raw)
	require.NoError(t, err)
	assert.Contains(t, repairs, "key_points(coerced)")

	var m map[string]any
	require.NoError(t, json.Unmarshal(cleaned, &m))
	kps, ok := m["key_points"].([]any)
	require.True(t, ok)
	require.Len(t, kps, 2)

	first := kps[0].(map[string]any)
	assert.Equal(t, "bare string point", first["point"])
	assert.Equal(t, "neutral", first["impact_type"])

	second := kps[1].(map[string]any)
	assert.Equal(t, "neutral", second["impact_type"])
}

func TestNormalizeAndSanitizeJSON_CoercesListValues(t *testing.T) {
	raw := []byte(`{
		"summary": "s",
		"recommended_actions": ["  keep me  ", 7, null, {"x":1}, ""]
	}`)
	cleaned, _, err := NormalizeAndSanitizeJSON(raw)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(cleaned, &m))
	assert.Equal(t, []any{"keep me", "7"}, m["recommended_actions"])
}

func TestNormalizeAndSanitizeJSON_DropsUnknownKeys(t *testing.T) {
	raw := []byte(`{
		"summary": "s",
		"explanation": "models love adding these",
		"local_government_impacts": {"administrative": [], "fiscal": [], "implementation": [], "extra": []}
	}`)
	cleaned, repairs, err := NormalizeAndSanitizeJSON(raw)
	require.NoError(t, err)
	assert.Contains(t, repairs, "explanation(unknown)")
	assert.Contains(t, repairs, "local_government_impacts.extra(unknown)")

	var m map[string]any
	require.NoError(t, json.Unmarshal(cleaned, &m))
	_, present := m["explanation"]
	assert.False(t, present)
}

func TestNormalizeAndSanitizeJSON_ClampsConfidence(t *testing.T) {
	cleaned, _, err := NormalizeAndSanitizeJSON([]byte(`{"summary":"s","confidence":1.7}`))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(cleaned, &m))
	assert.Equal(t, 1.0, m["confidence"])

	cleaned, repairs, err := NormalizeAndSanitizeJSON([]byte(`{"summary":"s","confidence":"high"}`))
	require.NoError(t, err)
	assert.Contains(t, repairs, "confidence(type)")
	m = map[string]any{}
	require.NoError(t, json.Unmarshal(cleaned, &m))
	_, present := m["confidence"]
	assert.False(t, present)
}
