package mocks

import (
	"context"

	"github.com/seu-repo/acessa/internal/domain"
)

// ContentRepositoryMock implements ports.ContentRepository for tests.
type ContentRepositoryMock struct {
	SaveFunc     func(ctx context.Context, item *domain.ContentItem) error
	FindByIDFunc func(ctx context.Context, id string) (*domain.ContentItem, error)
	SearchFunc   func(ctx context.Context, filter domain.ContentFilter) ([]domain.ContentItem, error)
	DeleteFunc   func(ctx context.Context, id string) error
}

func (m *ContentRepositoryMock) Save(ctx context.Context, item *domain.ContentItem) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, item)
	}
	return nil
}

func (m *ContentRepositoryMock) FindByID(ctx context.Context, id string) (*domain.ContentItem, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *ContentRepositoryMock) Search(ctx context.Context, filter domain.ContentFilter) ([]domain.ContentItem, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, filter)
	}
	return nil, nil
}

func (m *ContentRepositoryMock) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// FavoriteRepositoryMock implements ports.FavoriteRepository for tests.
type FavoriteRepositoryMock struct {
	SaveFunc         func(ctx context.Context, fav *domain.Favorite) error
	FindByUserIDFunc func(ctx context.Context, userID string) ([]domain.Favorite, error)
	DeleteFunc       func(ctx context.Context, userID, contentID string) error
}

func (m *FavoriteRepositoryMock) Save(ctx context.Context, fav *domain.Favorite) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, fav)
	}
	return nil
}

func (m *FavoriteRepositoryMock) FindByUserID(ctx context.Context, userID string) ([]domain.Favorite, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *FavoriteRepositoryMock) Delete(ctx context.Context, userID, contentID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, contentID)
	}
	return nil
}

// RatingRepositoryMock implements ports.RatingRepository for tests.
type RatingRepositoryMock struct {
	SaveFunc                 func(ctx context.Context, rating *domain.Rating) error
	FindByContentIDFunc      func(ctx context.Context, contentID string) ([]domain.Rating, error)
	FindByUserAndContentFunc func(ctx context.Context, userID, contentID string) (*domain.Rating, error)
	AverageByContentIDFunc   func(ctx context.Context, contentID string) (float64, int, error)
}

func (m *RatingRepositoryMock) Save(ctx context.Context, rating *domain.Rating) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, rating)
	}
	return nil
}

func (m *RatingRepositoryMock) FindByContentID(ctx context.Context, contentID string) ([]domain.Rating, error) {
	if m.FindByContentIDFunc != nil {
		return m.FindByContentIDFunc(ctx, contentID)
	}
	return nil, nil
}

func (m *RatingRepositoryMock) FindByUserAndContent(ctx context.Context, userID, contentID string) (*domain.Rating, error) {
	if m.FindByUserAndContentFunc != nil {
		return m.FindByUserAndContentFunc(ctx, userID, contentID)
	}
	return nil, nil
}

func (m *RatingRepositoryMock) AverageByContentID(ctx context.Context, contentID string) (float64, int, error) {
	if m.AverageByContentIDFunc != nil {
		return m.AverageByContentIDFunc(ctx, contentID)
	}
	return 0, 0, nil
}

// UserRepositoryMock implements ports.UserRepository for tests.
type UserRepositoryMock struct {
	SaveFunc        func(ctx context.Context, user *domain.User) error
	FindByIDFunc    func(ctx context.Context, id string) (*domain.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
}

func (m *UserRepositoryMock) Save(ctx context.Context, user *domain.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, user)
	}
	return nil
}

func (m *UserRepositoryMock) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *UserRepositoryMock) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}
