package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/acessa/internal/domain"
	"github.com/seu-repo/acessa/internal/ports"
)

type RatingRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewRatingRepository(db *gorm.DB, log *zap.Logger) ports.RatingRepository {
	return &RatingRepository{
		db:  db,
		log: log,
	}
}

func (r *RatingRepository) Save(ctx context.Context, rating *domain.Rating) error {
	return r.db.WithContext(ctx).Save(rating).Error
}

func (r *RatingRepository) FindByContentID(ctx context.Context, contentID string) ([]domain.Rating, error) {
	var ratings []domain.Rating
	err := r.db.WithContext(ctx).
		Where("content_id = ?", contentID).
		Order("updated_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *RatingRepository) FindByUserAndContent(ctx context.Context, userID, contentID string) (*domain.Rating, error) {
	var rating domain.Rating
	err := r.db.WithContext(ctx).
		First(&rating, "user_id = ? AND content_id = ?", userID, contentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepository) AverageByContentID(ctx context.Context, contentID string) (float64, int, error) {
	var result struct {
		Avg   float64
		Count int
	}
	err := r.db.WithContext(ctx).
		Model(&domain.Rating{}).
		Select("COALESCE(AVG(score), 0) AS avg, COUNT(*) AS count").
		Where("content_id = ?", contentID).
		Scan(&result).Error
	if err != nil {
		return 0, 0, err
	}
	return result.Avg, result.Count, nil
}
