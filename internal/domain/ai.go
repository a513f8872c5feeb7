package domain

// AIResult is the structured outcome of one assistant completion. Providers
// return it as an explicit value; failures surface as an error return at the
// provider boundary and are converted to a fallback response by the caller,
// never re-thrown past the engine.
type AIResult struct {
	Response          string   `json:"response"`
	Action            string   `json:"action"`
	Confidence        float64  `json:"confidence"`
	FollowUpQuestions []string `json:"follow_up_questions,omitempty"`
}
