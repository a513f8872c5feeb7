package assistant

import "github.com/seu-repo/acessa/internal/domain"

// nextActionTable maps every intent to its three ranked follow-up actions.
// The table is static; PredictActions hands out copies so callers cannot
// mutate it.
var nextActionTable = map[domain.Intent][]domain.PredictedAction{
	domain.IntentSearch: {
		{Action: ActionFilter, Description: "Narrow the results by genre or accessibility feature", Confidence: 0.7},
		{Action: ActionPlay, Description: "Play the first result", Confidence: 0.6},
		{Action: ActionReadDescription, Description: "Hear the description of a result", Confidence: 0.5},
	},
	domain.IntentPlay: {
		{Action: ActionCaptions, Description: "Turn captions on or off", Confidence: 0.7},
		{Action: ActionVolume, Description: "Adjust the volume", Confidence: 0.6},
		{Action: ActionDescribe, Description: "Start audio description", Confidence: 0.5},
	},
	domain.IntentPause: {
		{Action: ActionPlay, Description: "Resume playback", Confidence: 0.8},
		{Action: ActionFindSimilar, Description: "Find similar titles", Confidence: 0.5},
		{Action: ActionNavigateHome, Description: "Go back to the home page", Confidence: 0.4},
	},
	domain.IntentNavigate: {
		{Action: ActionSearch, Description: "Search for a title", Confidence: 0.6},
		{Action: ActionRecommend, Description: "Ask for a recommendation", Confidence: 0.5},
		{Action: ActionHelp, Description: "Hear what you can say", Confidence: 0.4},
	},
	domain.IntentHelp: {
		{Action: ActionSearch, Description: "Search for a title", Confidence: 0.7},
		{Action: ActionNavigateHome, Description: "Go to the home page", Confidence: 0.5},
		{Action: ActionNavigateConfig, Description: "Open accessibility settings", Confidence: 0.4},
	},
	domain.IntentDescribe: {
		{Action: ActionAccessibility, Description: "List the accessibility features", Confidence: 0.7},
		{Action: ActionPlay, Description: "Start playback", Confidence: 0.6},
		{Action: ActionRating, Description: "Hear the rating", Confidence: 0.4},
	},
	domain.IntentFilter: {
		{Action: ActionSearch, Description: "Search within the filtered results", Confidence: 0.6},
		{Action: ActionPlay, Description: "Play the first result", Confidence: 0.5},
		{Action: ActionFilter, Description: "Add another filter", Confidence: 0.4},
	},
	domain.IntentRecommend: {
		{Action: ActionPlay, Description: "Play the recommended title", Confidence: 0.7},
		{Action: ActionReadDescription, Description: "Hear what it is about", Confidence: 0.6},
		{Action: ActionAccessibility, Description: "Check its accessibility features", Confidence: 0.5},
	},
	domain.IntentUnknown: {
		{Action: ActionHelp, Description: "Hear what you can say", Confidence: 0.8},
		{Action: ActionSearch, Description: "Search for a title", Confidence: 0.5},
		{Action: ActionNavigateHome, Description: "Go to the home page", Confidence: 0.4},
	},
}

// PredictActions returns the ranked follow-up actions for an intent. Intents
// without an entry fall back to the unknown row.
func PredictActions(intent domain.Intent) []domain.PredictedAction {
	actions, ok := nextActionTable[intent]
	if !ok {
		actions = nextActionTable[domain.IntentUnknown]
	}
	out := make([]domain.PredictedAction, len(actions))
	copy(out, actions)
	return out
}
