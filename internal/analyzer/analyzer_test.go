package analyzer

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlinkage/openlinkage/api/models"
)

func testRequest() models.AnalysisRequest {
	return models.AnalysisRequest{
		UserID:         "abc",
		Symptoms:       []string{"fatigue"},
		Goals:          []string{"weight management"},
		LifestyleNotes: "prefers evening workouts",
	}
}

func TestAnalyzeReturnsAllAgentsInFixedOrder(t *testing.T) {
	payload := New().Analyze(testRequest())

	assert.Equal(t, "abc", payload.UserID)
	require.Len(t, payload.Responses, 4)

	wantOrder := []string{AgentHealthButler, AgentNutrition, AgentExercise, AgentMedication}
	for i, response := range payload.Responses {
		assert.Equal(t, wantOrder[i], response.Agent)
		assert.GreaterOrEqual(t, len(response.Recommendations), 2)
	}
}

func TestAnalyzeBuildsOverallSummary(t *testing.T) {
	payload := New().Analyze(testRequest())

	fragments := strings.Split(payload.OverallSummary, " | ")
	require.Len(t, fragments, 4)
	assert.Equal(t, AgentHealthButler+": Follow a consistent sleep schedule to support hormone balance.", fragments[0])
	for i, response := range payload.Responses {
		assert.True(t, strings.HasPrefix(fragments[i], response.Agent+": "))
	}
}

func TestAnalyzeCollectsCriticalWarnings(t *testing.T) {
	req, err := Normalize(models.AnalysisRequest{
		UserID:   "abc",
		Symptoms: []string{"shortness of breath", "Confusion"},
		Goals:    []string{"stability"},
	})
	require.NoError(t, err)

	payload := New().Analyze(req)

	require.GreaterOrEqual(t, len(payload.Warnings), 2)
	assert.Contains(t, payload.Warnings, "Shortness of breath can indicate cardiopulmonary issues; seek urgent care if worsening.")
	assert.Contains(t, payload.Warnings, "New confusion warrants medical attention to rule out serious causes.")
}

func TestAnalyzeWarningsMarshalAsEmptyArray(t *testing.T) {
	payload := New().Analyze(testRequest())

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"warnings":[]`)
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	a := New()
	req := testRequest()

	first, err := json.Marshal(a.Analyze(req))
	require.NoError(t, err)
	second, err := json.Marshal(a.Analyze(req))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestAnalyzeFallbackSummaryWhenAgentsProduceNothing(t *testing.T) {
	silent := &Analyzer{agents: []agentFunc{
		func(models.AnalysisRequest) models.AgentResult {
			return formatResult("SilentAgent", nil)
		},
	}}

	payload := silent.Analyze(testRequest())

	assert.Equal(t, "Agents produced no recommendations.", payload.OverallSummary)
}
