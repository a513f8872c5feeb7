package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seu-repo/acessa/internal/adapter/queue"
	"github.com/seu-repo/acessa/internal/domain"
	"github.com/seu-repo/acessa/internal/observability/telemetry"
	"github.com/seu-repo/acessa/internal/ports"
)

const (
	contentCacheTTL = 10 * time.Minute
	contentCacheKey = "content:%s"
)

// Service is the CRUD surface around the content store: lookups, favorites,
// ratings, and signed stream URLs. Content reads go through the cache;
// everything else hits the repositories directly.
type Service struct {
	content   ports.ContentRepository
	favorites ports.FavoriteRepository
	ratings   ports.RatingRepository
	cache     ports.Cache
	mq        queue.MessageQueue

	streamBaseURL string
	streamSecret  []byte
	ticketTTL     time.Duration

	log *zap.Logger
}

func NewService(
	content ports.ContentRepository,
	favorites ports.FavoriteRepository,
	ratings ports.RatingRepository,
	cache ports.Cache,
	mq queue.MessageQueue,
	streamBaseURL string,
	streamSecret string,
	ticketTTL time.Duration,
	log *zap.Logger,
) *Service {
	if ticketTTL <= 0 {
		ticketTTL = 15 * time.Minute
	}
	return &Service{
		content:       content,
		favorites:     favorites,
		ratings:       ratings,
		cache:         cache,
		mq:            mq,
		streamBaseURL: streamBaseURL,
		streamSecret:  []byte(streamSecret),
		ticketTTL:     ticketTTL,
		log:           log,
	}
}

// GetContent fetches one item, cache-aside. Cache failures fall through to
// the repository.
func (s *Service) GetContent(ctx context.Context, id string) (*domain.ContentItem, error) {
	key := fmt.Sprintf(contentCacheKey, id)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err == nil && cached != "" {
			var item domain.ContentItem
			if err := json.Unmarshal([]byte(cached), &item); err == nil {
				telemetry.CacheHitsTotal.WithLabelValues("hit").Inc()
				return &item, nil
			}
		}
		telemetry.CacheHitsTotal.WithLabelValues("miss").Inc()
	}

	item, err := s.content.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find content %s: %w", id, err)
	}
	if item == nil {
		return nil, domain.ErrContentNotFound
	}

	if s.cache != nil {
		if payload, err := json.Marshal(item); err == nil {
			if err := s.cache.Set(ctx, key, string(payload), contentCacheTTL); err != nil {
				s.log.Warn("Failed to cache content item", zap.String("id", id), zap.Error(err))
			}
		}
	}

	return item, nil
}

func (s *Service) SearchContent(ctx context.Context, filter domain.ContentFilter) ([]domain.ContentItem, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}

	items, err := s.content.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search content: %w", err)
	}
	return items, nil
}

func (s *Service) AddFavorite(ctx context.Context, userID, contentID string) (*domain.Favorite, error) {
	if _, err := s.GetContent(ctx, contentID); err != nil {
		return nil, err
	}

	fav := &domain.Favorite{
		ID:        uuid.New().String(),
		UserID:    userID,
		ContentID: contentID,
		CreatedAt: time.Now(),
	}
	if err := s.favorites.Save(ctx, fav); err != nil {
		return nil, fmt.Errorf("save favorite: %w", err)
	}

	s.publish("favorite.added", map[string]string{"user_id": userID, "content_id": contentID})
	return fav, nil
}

// ListFavorites resolves a user's favorites into content items. Items that
// have since left the catalog are skipped, not an error.
func (s *Service) ListFavorites(ctx context.Context, userID string) ([]domain.ContentItem, error) {
	favs, err := s.favorites.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	items := make([]domain.ContentItem, 0, len(favs))
	for _, fav := range favs {
		item, err := s.GetContent(ctx, fav.ContentID)
		if err != nil {
			s.log.Warn("Favorite points at missing content",
				zap.String("user_id", userID),
				zap.String("content_id", fav.ContentID),
				zap.Error(err),
			)
			continue
		}
		items = append(items, *item)
	}
	return items, nil
}

func (s *Service) RemoveFavorite(ctx context.Context, userID, contentID string) error {
	if err := s.favorites.Delete(ctx, userID, contentID); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	return nil
}

// RateContent records or replaces a user's rating and refreshes the item's
// aggregate. One rating per user per item.
func (s *Service) RateContent(ctx context.Context, userID, contentID string, score int, comment string) (*domain.Rating, error) {
	if score < 1 || score > 10 {
		return nil, domain.ErrInvalidScore
	}

	item, err := s.GetContent(ctx, contentID)
	if err != nil {
		return nil, err
	}

	rating, err := s.ratings.FindByUserAndContent(ctx, userID, contentID)
	if err != nil {
		return nil, fmt.Errorf("find existing rating: %w", err)
	}

	now := time.Now()
	if rating == nil {
		rating = &domain.Rating{
			ID:        uuid.New().String(),
			UserID:    userID,
			ContentID: contentID,
			CreatedAt: now,
		}
	}
	rating.Score = score
	rating.Comment = comment
	rating.UpdatedAt = now

	if err := s.ratings.Save(ctx, rating); err != nil {
		return nil, fmt.Errorf("save rating: %w", err)
	}

	if err := s.refreshAggregate(ctx, item); err != nil {
		s.log.Warn("Failed to refresh rating aggregate",
			zap.String("content_id", contentID),
			zap.Error(err),
		)
	}

	s.publish("rating.created", map[string]interface{}{
		"user_id":    userID,
		"content_id": contentID,
		"score":      score,
	})

	return rating, nil
}

func (s *Service) GetRatingSummary(ctx context.Context, contentID string) (float64, int, error) {
	avg, count, err := s.ratings.AverageByContentID(ctx, contentID)
	if err != nil {
		return 0, 0, fmt.Errorf("rating summary: %w", err)
	}
	return avg, count, nil
}

// StreamURL issues a short-lived signed playback URL for an item.
func (s *Service) StreamURL(ctx context.Context, userID, contentID string) (*domain.StreamTicket, error) {
	item, err := s.GetContent(ctx, contentID)
	if err != nil {
		return nil, err
	}
	if item.StreamPath == "" {
		return nil, domain.ErrNoStream
	}

	expiresAt := time.Now().Add(s.ticketTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":        userID,
		"content_id": contentID,
		"exp":        expiresAt.Unix(),
		"iat":        time.Now().Unix(),
	})
	signed, err := token.SignedString(s.streamSecret)
	if err != nil {
		return nil, fmt.Errorf("sign stream ticket: %w", err)
	}

	return &domain.StreamTicket{
		ContentID: contentID,
		URL:       fmt.Sprintf("%s%s?token=%s", s.streamBaseURL, item.StreamPath, signed),
		ExpiresAt: expiresAt,
	}, nil
}

func (s *Service) refreshAggregate(ctx context.Context, item *domain.ContentItem) error {
	avg, count, err := s.ratings.AverageByContentID(ctx, item.ID)
	if err != nil {
		return err
	}

	item.VoteAverage = avg
	item.VoteCount = count
	if err := s.content.Save(ctx, item); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, fmt.Sprintf(contentCacheKey, item.ID)); err != nil {
			s.log.Warn("Failed to invalidate content cache", zap.String("id", item.ID), zap.Error(err))
		}
	}
	return nil
}

func (s *Service) publish(subject string, payload interface{}) {
	if s.mq == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if err := s.mq.Publish(subject, data); err != nil {
		s.log.Warn("Failed to publish event", zap.String("subject", subject), zap.Error(err))
	}
}
