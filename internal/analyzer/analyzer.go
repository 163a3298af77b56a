package analyzer

import (
	"fmt"
	"strings"

	"github.com/openlinkage/openlinkage/api/models"
)

// noRecommendations is the overall summary when no agent contributes a
// single recommendation.
const noRecommendations = "Agents produced no recommendations."

// Analyzer runs every agent against a normalized request and merges their
// results into a single payload.
type Analyzer struct {
	agents []agentFunc
}

func New() *Analyzer {
	return &Analyzer{
		agents: agentFuncs,
	}
}

// Analyze produces the aggregate payload for a normalized request: the
// agents run in their fixed order, the critical-symptom detector runs once,
// and the overall summary stitches each agent's first recommendation. It
// never fails for a request that passed Normalize, and identical requests
// produce identical payloads.
func (a *Analyzer) Analyze(req models.AnalysisRequest) *models.AnalysisPayload {
	responses := make([]models.AgentResult, 0, len(a.agents))
	for _, run := range a.agents {
		responses = append(responses, run(req))
	}

	headlines := make([]string, 0, len(responses))
	for _, response := range responses {
		if len(response.Recommendations) == 0 {
			continue
		}
		headlines = append(headlines, fmt.Sprintf("%s: %s", response.Agent, response.Recommendations[0]))
	}

	overallSummary := noRecommendations
	if len(headlines) > 0 {
		overallSummary = strings.Join(headlines, " | ")
	}

	return &models.AnalysisPayload{
		UserID:         req.UserID,
		OverallSummary: overallSummary,
		Warnings:       detectCriticalWarnings(req),
		Responses:      responses,
	}
}
