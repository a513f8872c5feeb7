// Package stub is the default AI provider: deterministic canned answers, no
// network. It keeps the assistant functional when no real provider key is
// configured.
package stub

import (
	"context"

	"github.com/seu-repo/acessa/internal/domain"
	"github.com/seu-repo/acessa/internal/ports"
)

type Provider struct{}

func New() ports.AIProvider {
	return &Provider{}
}

var contextAnswers = map[domain.CommandContext]domain.AIResult{
	domain.ContextSearch: {
		Response:   "I couldn't match that to a search. Try saying \"search for\" followed by a title.",
		Action:     "assistant",
		Confidence: 0.4,
		FollowUpQuestions: []string{
			"Would you like a recommendation instead?",
			"Do you want to filter by audio description?",
		},
	},
	domain.ContextPlayer: {
		Response:   "I didn't catch that player command. You can say play, pause, volume up, or enable captions.",
		Action:     "assistant",
		Confidence: 0.4,
		FollowUpQuestions: []string{
			"Should I describe the current scene?",
		},
	},
	domain.ContextDetails: {
		Response:   "You can ask about this title's description, accessibility features, or rating.",
		Action:     "assistant",
		Confidence: 0.4,
		FollowUpQuestions: []string{
			"Do you want to hear the accessibility features?",
		},
	},
	domain.ContextNavigation: {
		Response:   "I didn't understand. Say \"help\" to hear everything you can do.",
		Action:     "assistant",
		Confidence: 0.4,
		FollowUpQuestions: []string{
			"Do you want to go to the home page?",
		},
	},
}

// Complete returns the canned answer for the context. It never fails.
func (p *Provider) Complete(ctx context.Context, prompt string, cctx domain.CommandContext) (*domain.AIResult, error) {
	answer, ok := contextAnswers[cctx]
	if !ok {
		answer = contextAnswers[domain.ContextNavigation]
	}
	out := answer
	out.FollowUpQuestions = append([]string(nil), answer.FollowUpQuestions...)
	return &out, nil
}
