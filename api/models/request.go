package models

// AnalysisRequest is the health profile shared with every agent. Symptoms
// and goals arrive as free-text lists and must pass through
// analyzer.Normalize before any agent sees them.
type AnalysisRequest struct {
	// UserID is the unique identifier for the user
	UserID string `json:"user_id"`

	// Symptoms the user is currently experiencing
	Symptoms []string `json:"symptoms"`

	// Goals are health or wellness goals to guide recommendations
	Goals []string `json:"goals"`

	// LifestyleNotes is optional free-form context about routines or
	// preferences; a JSON null or omitted field decodes to the empty string
	LifestyleNotes string `json:"lifestyle_notes,omitempty"`
}
