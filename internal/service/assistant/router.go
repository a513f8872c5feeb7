package assistant

import (
	"context"

	"go.uber.org/zap"

	"github.com/seu-repo/acessa/internal/domain"
	"github.com/seu-repo/acessa/internal/ports"
)

// Router dispatches a classified command to the decision table owned by the
// caller-supplied context. It holds no state between calls; the context is an
// input, not a session attribute. Each per-context table is evaluated
// top-to-bottom with first-match-wins and ends in a catch-all that produces
// action "unknown" with a context-appropriate help string.
type Router struct {
	content ports.ContentRepository
	log     *zap.Logger
}

func NewRouter(content ports.ContentRepository, log *zap.Logger) *Router {
	return &Router{
		content: content,
		log:     log,
	}
}

// Route produces the draft response for a command. The only I/O is read-only
// content lookups for the details and search contexts. Player and details
// contexts require a content id and fail with ErrContentIDRequired without
// one; a details lookup miss fails with ErrContentNotFound. Everything else,
// including completely unrecognized text, resolves to a normal response.
func (r *Router) Route(
	ctx context.Context,
	req domain.CommandRequest,
	intent domain.IntentResult,
	entities domain.EntitySet,
) (*domain.CommandResponse, error) {

	normalized := Normalize(req.Utterance)

	switch req.Context {
	case domain.ContextSearch:
		return r.routeSearch(ctx, req, intent, entities, normalized)
	case domain.ContextPlayer:
		return r.routePlayer(req, normalized)
	case domain.ContextDetails:
		return r.routeDetails(ctx, req, normalized)
	case domain.ContextNavigation:
		return r.routeNavigation(normalized)
	default:
		r.log.Warn("Unrecognized command context, treating as navigation",
			zap.String("context", string(req.Context)),
		)
		return r.routeNavigation(normalized)
	}
}

func unknownResponse(text, speech string) *domain.CommandResponse {
	return &domain.CommandResponse{
		Action: ActionUnknown,
		Text:   text,
		Speech: speech,
	}
}
