package postgres

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/seu-repo/acessa/internal/domain"
	"github.com/seu-repo/acessa/internal/ports"
)

type FavoriteRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewFavoriteRepository(db *gorm.DB, log *zap.Logger) ports.FavoriteRepository {
	return &FavoriteRepository{
		db:  db,
		log: log,
	}
}

// Save inserts a favorite; marking an already favorited item again is a
// no-op, not an error.
func (r *FavoriteRepository) Save(ctx context.Context, fav *domain.Favorite) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "content_id"}},
			DoNothing: true,
		}).
		Create(fav).Error
}

func (r *FavoriteRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Favorite, error) {
	var favs []domain.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favs).Error
	if err != nil {
		return nil, err
	}
	return favs, nil
}

func (r *FavoriteRepository) Delete(ctx context.Context, userID, contentID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND content_id = ?", userID, contentID).
		Delete(&domain.Favorite{}).Error
}
