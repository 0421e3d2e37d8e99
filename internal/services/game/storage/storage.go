// Package storage defines the persistence boundary for the game service.
package storage

import (
	"context"

	apperrors "github.com/soma-satoro/pyreach/internal/platform/errors"
	"github.com/soma-satoro/pyreach/internal/services/game/core/track"
	"github.com/soma-satoro/pyreach/internal/services/game/domain/character"
)

// ErrNotFound indicates a requested persistence record is missing.
// Callers use this to differentiate between legitimate "no such entity" states
// and transport or data corruption failures.
var ErrNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")

// ErrCharacterExists indicates an attempt to create a character whose ID is
// already taken.
var ErrCharacterExists = apperrors.New(apperrors.CodeCharacterAlreadyExists, "character already exists")

// CharacterStore persists character records.
type CharacterStore interface {
	CreateCharacter(ctx context.Context, record character.Character) error
	PutCharacter(ctx context.Context, record character.Character) error
	GetCharacter(ctx context.Context, id string) (character.Character, error)
	DeleteCharacter(ctx context.Context, id string) error
	ListCharacters(ctx context.Context) ([]character.Character, error)
}

// TrackStore persists damage tracks in their sparse {position: severity}
// representation, keyed by character and track mode. A character with no
// stored damage reads back as an empty map, not ErrNotFound.
type TrackStore interface {
	GetTrack(ctx context.Context, characterID string, mode track.Mode) (map[int]track.Severity, error)
	PutTrack(ctx context.Context, characterID string, mode track.Mode, sparse map[int]track.Severity) error
}

// Store aggregates the persistence interfaces the game service requires.
type Store interface {
	CharacterStore
	TrackStore
}
