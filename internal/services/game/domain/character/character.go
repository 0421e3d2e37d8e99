// Package character defines the character records whose health and clarity
// tracks the game service manages.
package character

import (
	"strings"
	"time"

	apperrors "github.com/soma-satoro/pyreach/internal/platform/errors"
)

const (
	// HealthRatingDefault is the track capacity for a character whose
	// advantages block carries no explicit health stat.
	HealthRatingDefault = 7
	// ClarityRatingDefault is the clarity capacity for a character without
	// an explicit integrity stat.
	ClarityRatingDefault = 7
)

var (
	// ErrEmptyID indicates a character record without an identifier.
	ErrEmptyID = apperrors.New(apperrors.CodeCharacterEmptyID, "character id is required")
	// ErrEmptyName indicates a character record without a display name.
	ErrEmptyName = apperrors.New(apperrors.CodeCharacterEmptyName, "character name is required")
	// ErrInvalidHealthRating indicates a health rating below 1.
	ErrInvalidHealthRating = apperrors.New(apperrors.CodeCharacterInvalidHealthRating, "health rating must be at least 1")
	// ErrInvalidClarityRating indicates a clarity rating below 1.
	ErrInvalidClarityRating = apperrors.New(apperrors.CodeCharacterInvalidClarityRating, "clarity rating must be at least 1")
)

// Character is a persisted character record. The ratings are the capacities
// of the character's damage tracks.
type Character struct {
	ID            string
	Name          string
	HealthRating  int
	ClarityRating int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// New creates a character with defaulted ratings and normalized fields.
func New(id, name string, now time.Time) (Character, error) {
	c := Character{
		ID:            strings.TrimSpace(id),
		Name:          strings.TrimSpace(name),
		HealthRating:  HealthRatingDefault,
		ClarityRating: ClarityRatingDefault,
		CreatedAt:     now.UTC(),
		UpdatedAt:     now.UTC(),
	}
	if err := c.Validate(); err != nil {
		return Character{}, err
	}
	return c, nil
}

// Validate checks the record's invariants.
func (c Character) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if c.HealthRating < 1 {
		return ErrInvalidHealthRating
	}
	if c.ClarityRating < 1 {
		return ErrInvalidClarityRating
	}
	return nil
}
