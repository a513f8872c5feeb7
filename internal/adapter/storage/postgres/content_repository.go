package postgres

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/acessa/internal/domain"
	"github.com/seu-repo/acessa/internal/observability/telemetry"
	"github.com/seu-repo/acessa/internal/ports"
)

type ContentRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewContentRepository(db *gorm.DB, log *zap.Logger) ports.ContentRepository {
	return &ContentRepository{
		db:  db,
		log: log,
	}
}

func (r *ContentRepository) Save(ctx context.Context, item *domain.ContentItem) error {
	start := time.Now()
	defer func() { telemetry.DatabaseLatency.Observe(time.Since(start).Seconds()) }()

	return r.db.WithContext(ctx).Save(item).Error
}

func (r *ContentRepository) FindByID(ctx context.Context, id string) (*domain.ContentItem, error) {
	start := time.Now()
	defer func() { telemetry.DatabaseLatency.Observe(time.Since(start).Seconds()) }()

	var item domain.ContentItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// Search filters the catalog. Query matches title and overview
// case-insensitively; the accessibility flags narrow, never widen.
func (r *ContentRepository) Search(ctx context.Context, filter domain.ContentFilter) ([]domain.ContentItem, error) {
	start := time.Now()
	defer func() { telemetry.DatabaseLatency.Observe(time.Since(start).Seconds()) }()

	q := r.db.WithContext(ctx).Model(&domain.ContentItem{})

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		q = q.Where("title ILIKE ? OR overview ILIKE ?", pattern, pattern)
	}
	if filter.Genre != "" {
		q = q.Where("genres LIKE ?", "%"+filter.Genre+"%")
	}
	if filter.AudioDescription {
		q = q.Where("audio_description = true")
	}
	if filter.ClosedCaptions {
		q = q.Where("closed_captions = true")
	}
	if filter.SignLanguage {
		q = q.Where("sign_language = true")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	var items []domain.ContentItem
	err := q.Order("vote_average DESC, title ASC").Limit(limit).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ContentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.ContentItem{}, "id = ?", id).Error
}
