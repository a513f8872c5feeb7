package assistant

import "github.com/seu-repo/acessa/internal/domain"

// suggestionTable holds the example phrases offered alongside every response,
// keyed by the context the command arrived in.
var suggestionTable = map[domain.CommandContext][]string{
	domain.ContextSearch: {
		"search for a title",
		"filter by audio description",
		"recommend something",
	},
	domain.ContextPlayer: {
		"pause",
		"volume up",
		"enable captions",
		"describe this scene",
	},
	domain.ContextDetails: {
		"tell me about this",
		"accessibility features",
		"how good is it",
		"find similar",
	},
	domain.ContextNavigation: {
		"go home",
		"open favorites",
		"accessibility options",
		"what can I say",
	},
}

// SuggestionsFor returns the example phrases for a context as a fresh slice.
func SuggestionsFor(cctx domain.CommandContext) []string {
	suggestions, ok := suggestionTable[cctx]
	if !ok {
		suggestions = suggestionTable[domain.ContextNavigation]
	}
	out := make([]string, len(suggestions))
	copy(out, suggestions)
	return out
}
