package domain

// Intent is the discrete action category inferred from a command.
type Intent string

const (
	IntentSearch    Intent = "search"
	IntentPlay      Intent = "play"
	IntentPause     Intent = "pause"
	IntentNavigate  Intent = "navigate"
	IntentHelp      Intent = "help"
	IntentDescribe  Intent = "describe"
	IntentFilter    Intent = "filter"
	IntentRecommend Intent = "recommend"
	IntentUnknown   Intent = "unknown"
)

// CommandContext is the caller-supplied mode that selects the routing table.
type CommandContext string

const (
	ContextSearch     CommandContext = "search"
	ContextPlayer     CommandContext = "player"
	ContextDetails    CommandContext = "details"
	ContextNavigation CommandContext = "navigation"
)

// IntentResult pairs the classified intent with its fixed confidence.
// Confidence is always 0.8 for a match and 0 for unknown.
type IntentResult struct {
	Name       Intent  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// AccessibilityFeature is a canonical accessibility tag extracted from text.
type AccessibilityFeature string

const (
	FeatureAudioDescription AccessibilityFeature = "audio_description"
	FeatureClosedCaptions   AccessibilityFeature = "closed_captions"
	FeatureSignLanguage     AccessibilityFeature = "sign_language"
)

// EntitySet holds every vocabulary item found in a command. Extraction is
// additive: all matching phrases are collected, and empty sets are valid.
type EntitySet struct {
	Features []AccessibilityFeature `json:"features"`
	Genres   []string               `json:"genres"`
	Keywords []string               `json:"keywords"`
}

// CommandRequest is a single free-text or transcribed command to interpret.
type CommandRequest struct {
	Utterance string         `json:"utterance"`
	Context   CommandContext `json:"context"`
	ContentID string         `json:"content_id,omitempty"`
	UserID    string         `json:"user_id,omitempty"`
}

// PredictedAction is one ranked follow-up action for the classified intent.
type PredictedAction struct {
	Action      string  `json:"action"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
}

// CommandResponse is the structured result of interpreting a command.
type CommandResponse struct {
	Action       string            `json:"action"`
	Text         string            `json:"text"`
	Speech       string            `json:"speech"`
	Data         ActionData        `json:"data,omitempty"`
	Instructions []string          `json:"instructions,omitempty"`
	Suggestions  []string          `json:"suggestions,omitempty"`
	NextActions  []PredictedAction `json:"next_actions,omitempty"`
}
