package ports

import (
	"context"
	"time"

	"github.com/seu-repo/acessa/internal/domain"
)

// ContentRepository is the read surface of the catalog. The command engine
// only ever calls FindByID and Search.
type ContentRepository interface {
	Save(ctx context.Context, item *domain.ContentItem) error
	FindByID(ctx context.Context, id string) (*domain.ContentItem, error)
	Search(ctx context.Context, filter domain.ContentFilter) ([]domain.ContentItem, error)
	Delete(ctx context.Context, id string) error
}

type FavoriteRepository interface {
	Save(ctx context.Context, fav *domain.Favorite) error
	FindByUserID(ctx context.Context, userID string) ([]domain.Favorite, error)
	Delete(ctx context.Context, userID, contentID string) error
}

type RatingRepository interface {
	Save(ctx context.Context, rating *domain.Rating) error
	FindByContentID(ctx context.Context, contentID string) ([]domain.Rating, error)
	FindByUserAndContent(ctx context.Context, userID, contentID string) (*domain.Rating, error)
	AverageByContentID(ctx context.Context, contentID string) (float64, int, error)
}

type UserRepository interface {
	Save(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Cache is the key/value cache used for content lookups and sessions.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping() error
	Close() error
}
