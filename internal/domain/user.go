package domain

import (
	"time"
)

type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

type User struct {
	ID                string   `json:"id" gorm:"primaryKey"`
	Name              string   `json:"name"`
	Email             string   `json:"email" gorm:"uniqueIndex"`
	Password          string   `json:"-"` // Hashed password
	Role              UserRole `json:"role"`
	Status            string   `json:"status"` // Active, Inactive, Blocked
	PreferredLanguage string   `json:"preferred_language" gorm:"default:pt-BR"`

	// Accessibility preferences applied to responses for this user
	PrefersAudioDescription bool `json:"prefers_audio_description"`
	PrefersClosedCaptions   bool `json:"prefers_closed_captions"`
	PrefersBrailleOutput    bool `json:"prefers_braille_output"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
