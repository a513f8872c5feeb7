package ports

import (
	"context"

	"github.com/seu-repo/acessa/internal/domain"
)

// AssistantService interprets free-text commands into structured responses.
// Unrecognized text is not an error: it yields a normal response with
// action "unknown". Only a missing contentID or a missing referenced
// content item fail hard.
type AssistantService interface {
	Interpret(ctx context.Context, req domain.CommandRequest) (*domain.CommandResponse, error)
}

// BrailleService transliterates text into braille cells.
type BrailleService interface {
	Encode(text string, grade domain.BrailleGrade, cellsPerLine int) (*domain.BrailleDocument, error)
}

// CatalogService is the CRUD surface around the content store.
type CatalogService interface {
	GetContent(ctx context.Context, id string) (*domain.ContentItem, error)
	SearchContent(ctx context.Context, filter domain.ContentFilter) ([]domain.ContentItem, error)
	AddFavorite(ctx context.Context, userID, contentID string) (*domain.Favorite, error)
	ListFavorites(ctx context.Context, userID string) ([]domain.ContentItem, error)
	RemoveFavorite(ctx context.Context, userID, contentID string) error
	RateContent(ctx context.Context, userID, contentID string, score int, comment string) (*domain.Rating, error)
	GetRatingSummary(ctx context.Context, contentID string) (float64, int, error)
	StreamURL(ctx context.Context, userID, contentID string) (*domain.StreamTicket, error)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, string, error) // token, refresh, err
	Register(ctx context.Context, user *domain.User) error
	RefreshToken(ctx context.Context, token string) (string, error)
	ValidateToken(ctx context.Context, token string) (*domain.User, error)
}

// EmailService handles transactional email notifications
type EmailService interface {
	Send(ctx context.Context, to, subject, body string) error
	SendHTML(ctx context.Context, to, subject, htmlBody string) error
	SendWelcome(ctx context.Context, user *domain.User) error
	SendPasswordReset(ctx context.Context, user *domain.User, resetToken string) error
}
