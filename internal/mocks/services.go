package mocks

import (
	"context"

	"github.com/seu-repo/acessa/internal/domain"
)

// AssistantServiceMock implements ports.AssistantService for tests.
type AssistantServiceMock struct {
	InterpretFunc func(ctx context.Context, req domain.CommandRequest) (*domain.CommandResponse, error)
}

func (m *AssistantServiceMock) Interpret(ctx context.Context, req domain.CommandRequest) (*domain.CommandResponse, error) {
	if m.InterpretFunc != nil {
		return m.InterpretFunc(ctx, req)
	}
	return &domain.CommandResponse{Action: "unknown"}, nil
}

// BrailleServiceMock implements ports.BrailleService for tests.
type BrailleServiceMock struct {
	EncodeFunc func(text string, grade domain.BrailleGrade, cellsPerLine int) (*domain.BrailleDocument, error)
}

func (m *BrailleServiceMock) Encode(text string, grade domain.BrailleGrade, cellsPerLine int) (*domain.BrailleDocument, error) {
	if m.EncodeFunc != nil {
		return m.EncodeFunc(text, grade, cellsPerLine)
	}
	return &domain.BrailleDocument{Source: text, Grade: grade, CellsPerLine: cellsPerLine}, nil
}

// CatalogServiceMock implements ports.CatalogService for tests.
type CatalogServiceMock struct {
	GetContentFunc       func(ctx context.Context, id string) (*domain.ContentItem, error)
	SearchContentFunc    func(ctx context.Context, filter domain.ContentFilter) ([]domain.ContentItem, error)
	AddFavoriteFunc      func(ctx context.Context, userID, contentID string) (*domain.Favorite, error)
	ListFavoritesFunc    func(ctx context.Context, userID string) ([]domain.ContentItem, error)
	RemoveFavoriteFunc   func(ctx context.Context, userID, contentID string) error
	RateContentFunc      func(ctx context.Context, userID, contentID string, score int, comment string) (*domain.Rating, error)
	GetRatingSummaryFunc func(ctx context.Context, contentID string) (float64, int, error)
	StreamURLFunc        func(ctx context.Context, userID, contentID string) (*domain.StreamTicket, error)
}

func (m *CatalogServiceMock) GetContent(ctx context.Context, id string) (*domain.ContentItem, error) {
	if m.GetContentFunc != nil {
		return m.GetContentFunc(ctx, id)
	}
	return nil, nil
}

func (m *CatalogServiceMock) SearchContent(ctx context.Context, filter domain.ContentFilter) ([]domain.ContentItem, error) {
	if m.SearchContentFunc != nil {
		return m.SearchContentFunc(ctx, filter)
	}
	return nil, nil
}

func (m *CatalogServiceMock) AddFavorite(ctx context.Context, userID, contentID string) (*domain.Favorite, error) {
	if m.AddFavoriteFunc != nil {
		return m.AddFavoriteFunc(ctx, userID, contentID)
	}
	return nil, nil
}

func (m *CatalogServiceMock) ListFavorites(ctx context.Context, userID string) ([]domain.ContentItem, error) {
	if m.ListFavoritesFunc != nil {
		return m.ListFavoritesFunc(ctx, userID)
	}
	return nil, nil
}

func (m *CatalogServiceMock) RemoveFavorite(ctx context.Context, userID, contentID string) error {
	if m.RemoveFavoriteFunc != nil {
		return m.RemoveFavoriteFunc(ctx, userID, contentID)
	}
	return nil
}

func (m *CatalogServiceMock) RateContent(ctx context.Context, userID, contentID string, score int, comment string) (*domain.Rating, error) {
	if m.RateContentFunc != nil {
		return m.RateContentFunc(ctx, userID, contentID, score, comment)
	}
	return nil, nil
}

func (m *CatalogServiceMock) GetRatingSummary(ctx context.Context, contentID string) (float64, int, error) {
	if m.GetRatingSummaryFunc != nil {
		return m.GetRatingSummaryFunc(ctx, contentID)
	}
	return 0, 0, nil
}

func (m *CatalogServiceMock) StreamURL(ctx context.Context, userID, contentID string) (*domain.StreamTicket, error) {
	if m.StreamURLFunc != nil {
		return m.StreamURLFunc(ctx, userID, contentID)
	}
	return nil, nil
}

// EmailServiceMock implements ports.EmailService for tests.
type EmailServiceMock struct {
	SendFunc              func(ctx context.Context, to, subject, body string) error
	SendHTMLFunc          func(ctx context.Context, to, subject, htmlBody string) error
	SendWelcomeFunc       func(ctx context.Context, user *domain.User) error
	SendPasswordResetFunc func(ctx context.Context, user *domain.User, resetToken string) error
}

func (m *EmailServiceMock) Send(ctx context.Context, to, subject, body string) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, to, subject, body)
	}
	return nil
}

func (m *EmailServiceMock) SendHTML(ctx context.Context, to, subject, htmlBody string) error {
	if m.SendHTMLFunc != nil {
		return m.SendHTMLFunc(ctx, to, subject, htmlBody)
	}
	return nil
}

func (m *EmailServiceMock) SendWelcome(ctx context.Context, user *domain.User) error {
	if m.SendWelcomeFunc != nil {
		return m.SendWelcomeFunc(ctx, user)
	}
	return nil
}

func (m *EmailServiceMock) SendPasswordReset(ctx context.Context, user *domain.User, resetToken string) error {
	if m.SendPasswordResetFunc != nil {
		return m.SendPasswordResetFunc(ctx, user, resetToken)
	}
	return nil
}
