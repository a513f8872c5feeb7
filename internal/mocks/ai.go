package mocks

import (
	"context"

	"github.com/seu-repo/acessa/internal/domain"
)

// AIProviderMock implements ports.AIProvider for tests.
type AIProviderMock struct {
	CompleteFunc func(ctx context.Context, prompt string, cctx domain.CommandContext) (*domain.AIResult, error)
}

func (m *AIProviderMock) Complete(ctx context.Context, prompt string, cctx domain.CommandContext) (*domain.AIResult, error) {
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, prompt, cctx)
	}
	return &domain.AIResult{Response: "", Confidence: 0}, nil
}
