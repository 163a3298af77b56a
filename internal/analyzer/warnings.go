package analyzer

import (
	"strings"

	"github.com/openlinkage/openlinkage/api/models"
)

// highRiskSymptoms maps symptoms that always warrant a safety callout to
// the warning returned for them.
var highRiskSymptoms = map[string]string{
	"chest pain":          "Chest pain requires immediate evaluation. If severe, call emergency services.",
	"shortness of breath": "Shortness of breath can indicate cardiopulmonary issues; seek urgent care if worsening.",
	"confusion":           "New confusion warrants medical attention to rule out serious causes.",
}

// detectCriticalWarnings returns one warning per recognized high-risk
// symptom, in the order the symptoms appear on the request. Matching is an
// exact case-insensitive comparison per entry, never a substring check.
// The result is non-nil so an empty set marshals as [].
func detectCriticalWarnings(req models.AnalysisRequest) []string {
	warnings := []string{}
	for _, symptom := range req.Symptoms {
		if warning, ok := highRiskSymptoms[strings.ToLower(symptom)]; ok {
			warnings = append(warnings, warning)
		}
	}
	return warnings
}
