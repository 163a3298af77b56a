package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlinkage/openlinkage/api/models"
)

func TestDetectCriticalWarningsMatchesCaseInsensitively(t *testing.T) {
	warnings := detectCriticalWarnings(models.AnalysisRequest{
		UserID:   "abc",
		Symptoms: []string{"shortness of breath", "Confusion"},
	})

	assert.Equal(t, []string{
		"Shortness of breath can indicate cardiopulmonary issues; seek urgent care if worsening.",
		"New confusion warrants medical attention to rule out serious causes.",
	}, warnings)
}

func TestDetectCriticalWarningsPreservesSymptomOrder(t *testing.T) {
	warnings := detectCriticalWarnings(models.AnalysisRequest{
		UserID:   "abc",
		Symptoms: []string{"confusion", "fatigue", "chest pain"},
	})

	require.Len(t, warnings, 2)
	assert.Equal(t, "New confusion warrants medical attention to rule out serious causes.", warnings[0])
	assert.Equal(t, "Chest pain requires immediate evaluation. If severe, call emergency services.", warnings[1])
}

func TestDetectCriticalWarningsIgnoresSubstringMatches(t *testing.T) {
	warnings := detectCriticalWarnings(models.AnalysisRequest{
		UserID:   "abc",
		Symptoms: []string{"slight chest pain at night", "confusions"},
	})

	assert.Empty(t, warnings)
}

func TestDetectCriticalWarningsReturnsEmptyNotNil(t *testing.T) {
	warnings := detectCriticalWarnings(models.AnalysisRequest{
		UserID:   "abc",
		Symptoms: []string{"fatigue"},
	})

	assert.NotNil(t, warnings)
	assert.Empty(t, warnings)
}

// The detector and the MedicationAgent escalation set cover overlapping but
// distinct symptoms: "severe headache" escalates without raising a warning,
// "confusion" raises a warning without escalating.
func TestDetectorAndMedicationSetsStayDisjoint(t *testing.T) {
	headacheOnly := models.AnalysisRequest{UserID: "abc", Symptoms: []string{"severe headache"}}
	assert.Empty(t, detectCriticalWarnings(headacheOnly))
	assert.Len(t, runMedicationAgent(headacheOnly).Recommendations, 3)

	confusionOnly := models.AnalysisRequest{UserID: "abc", Symptoms: []string{"confusion"}}
	assert.Len(t, detectCriticalWarnings(confusionOnly), 1)
	assert.Len(t, runMedicationAgent(confusionOnly).Recommendations, 2)
}
