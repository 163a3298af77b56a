package models

// AnalysisPayload is the aggregate analysis returned to the caller: one
// result per agent plus a stitched headline and any critical warnings.
type AnalysisPayload struct {
	// UserID echoes the identifier from the request
	UserID string `json:"user_id"`

	// OverallSummary stitches together the first recommendation of every agent
	OverallSummary string `json:"overall_summary"`

	// Warnings raised for high-risk symptoms; empty when none matched
	Warnings []string `json:"warnings"`

	// Responses holds the per-agent results in fixed agent order
	Responses []AgentResult `json:"responses"`
}

// AgentResult is a single agent's contribution to the payload.
type AgentResult struct {
	// Agent is the fixed identifier of the producing agent
	Agent string `json:"agent"`

	// Summary is the agent's templated processing note
	Summary string `json:"summary"`

	// Recommendations in the order the agent produced them
	Recommendations []string `json:"recommendations"`
}
