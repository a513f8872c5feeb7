package assistant

import "github.com/seu-repo/acessa/internal/domain"

// compose finalizes a routed response by attaching the predicted follow-up
// actions and the context suggestions. It only fills fields the router left
// empty, so a handler that set its own suggestions keeps them.
func compose(resp *domain.CommandResponse, intent domain.IntentResult, cctx domain.CommandContext) *domain.CommandResponse {
	if resp.NextActions == nil {
		resp.NextActions = PredictActions(intent.Name)
	}
	if resp.Suggestions == nil {
		resp.Suggestions = SuggestionsFor(cctx)
	}
	return resp
}
