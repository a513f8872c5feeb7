package ports

import (
	"context"

	"github.com/seu-repo/acessa/internal/domain"
)

// AIProvider is the pluggable language-model backend consulted when the rule
// tables cannot resolve a command. Implementations must return failures as
// errors; callers substitute a deterministic fallback and never propagate.
type AIProvider interface {
	Complete(ctx context.Context, prompt string, cctx domain.CommandContext) (*domain.AIResult, error)
}
