package domain

import (
	"time"
)

// Favorite marks a content item saved by a user.
type Favorite struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index:idx_favorites_user_content,unique"`
	ContentID string    `json:"content_id" gorm:"index:idx_favorites_user_content,unique"`
	CreatedAt time.Time `json:"created_at"`
}

// Rating is a single user's score for a content item, 1 to 10.
type Rating struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index:idx_ratings_user_content,unique"`
	ContentID string    `json:"content_id" gorm:"index:idx_ratings_user_content,unique"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StreamTicket is a short-lived signed URL granting playback access.
type StreamTicket struct {
	ContentID string    `json:"content_id"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}
