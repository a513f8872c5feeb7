package domain

import "errors"

var (
	// ErrContentIDRequired is returned when a player or details command
	// arrives without the content id it structurally requires.
	ErrContentIDRequired = errors.New("content id is required for this context")

	// ErrContentNotFound is returned when a referenced content id does not
	// exist in the catalog.
	ErrContentNotFound = errors.New("content not found")

	// ErrInvalidGrade is returned for an unrecognized braille grade.
	ErrInvalidGrade = errors.New("invalid braille grade")

	// ErrInvalidCellsPerLine is returned when the requested line width is
	// not positive.
	ErrInvalidCellsPerLine = errors.New("cells per line must be positive")

	// ErrInvalidScore is returned for a rating outside the 1 to 10 range.
	ErrInvalidScore = errors.New("rating score must be between 1 and 10")

	// ErrNoStream is returned when a content item has no stream attached.
	ErrNoStream = errors.New("content has no stream available")
)
