package domain

import (
	"time"
)

// ContentItem is a catalog entry with its accessibility metadata. The catalog
// is the system of record; the command engine only reads it.
type ContentItem struct {
	ID               string    `json:"id" gorm:"primaryKey"`
	Title            string    `json:"title" gorm:"index"`
	Overview         string    `json:"overview"`
	Genres           string    `json:"genres"` // comma-separated, lowercase
	ReleaseYear      int       `json:"release_year"`
	AudioDescription bool      `json:"audio_description"`
	ClosedCaptions   bool      `json:"closed_captions"`
	SignLanguage     bool      `json:"sign_language"`
	Narration        string    `json:"narration,omitempty"` // pre-generated narration text, empty if none
	VoteAverage      float64   `json:"vote_average"`
	VoteCount        int       `json:"vote_count"`
	PosterURL        string    `json:"poster_url,omitempty"`
	StreamPath       string    `json:"stream_path,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// HasNarration reports whether a narration track or text exists for the item.
func (c *ContentItem) HasNarration() bool {
	return c.Narration != ""
}

// ContentFilter narrows a catalog search.
type ContentFilter struct {
	Query            string
	Genre            string
	AudioDescription bool
	ClosedCaptions   bool
	SignLanguage     bool
	Limit            int
}

// AccessibilityScore is the weighted completeness of a content item's
// accessibility metadata, always in [0,1].
type AccessibilityScore struct {
	ContentID string  `json:"content_id"`
	Score     float64 `json:"score"`
}
