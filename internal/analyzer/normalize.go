package analyzer

import (
	"fmt"
	"strings"

	"github.com/openlinkage/openlinkage/api/models"
)

// ValidationError reports a request that failed normalization. Field is the
// wire name of the offending payload field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Normalize turns a raw decoded request into the canonical form all agents
// operate on: symptom and goal entries are trimmed, blank entries dropped,
// and case-insensitive duplicates removed keeping the first-seen casing and
// relative order. The input is left untouched.
//
// Normalizing an already-normalized request yields the same request.
func Normalize(raw models.AnalysisRequest) (models.AnalysisRequest, error) {
	if raw.UserID == "" {
		return models.AnalysisRequest{}, &ValidationError{Field: "user_id", Reason: "must not be empty"}
	}

	req := models.AnalysisRequest{
		UserID:         raw.UserID,
		Symptoms:       normalizeList(raw.Symptoms),
		Goals:          normalizeList(raw.Goals),
		LifestyleNotes: raw.LifestyleNotes,
	}

	if len(req.Symptoms) == 0 && len(req.Goals) == 0 {
		return models.AnalysisRequest{}, &ValidationError{Field: "symptoms/goals", Reason: "at least one symptom or goal must be provided"}
	}

	return req, nil
}

func normalizeList(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	normalized := make([]string, 0, len(values))
	for _, entry := range values {
		stripped := strings.TrimSpace(entry)
		if stripped == "" {
			continue
		}
		key := strings.ToLower(stripped)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		normalized = append(normalized, stripped)
	}
	return normalized
}
