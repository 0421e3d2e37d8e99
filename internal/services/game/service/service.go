// Package service implements the game operations over characters and their
// damage tracks. All track mutations go through a per-character lock so a
// read-modify-write cycle is atomic with respect to concurrent requests on
// the same character.
package service

import (
	"context"
	"time"

	"github.com/soma-satoro/pyreach/internal/services/game/core/track"
	"github.com/soma-satoro/pyreach/internal/services/game/domain/character"
	"github.com/soma-satoro/pyreach/internal/services/game/domain/systems/cofd"
	"github.com/soma-satoro/pyreach/internal/services/game/storage"
)

// Service executes game operations against a persistence store.
type Service struct {
	store storage.Store
	locks *characterLocks
	now   func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the service clock, used by tests for stable timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New creates a game service backed by the given store.
func New(store storage.Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		locks: newCharacterLocks(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HealthState is a snapshot of a character's health track with the derived
// Chronicles of Darkness readings attached.
type HealthState struct {
	Character     character.Character
	Boxes         []track.Severity
	Capacity      int
	Marked        int
	WoundPenalty  int
	Incapacitated bool
	Rendered      string
	Summary       string
}

// ClarityState is a snapshot of a character's clarity track with the derived
// Chronicles of Darkness readings attached.
type ClarityState struct {
	Character          character.Character
	Boxes              []track.Severity
	Capacity           int
	Marked             int
	ConditionActive    bool
	PerceptionModifier int
	ComatoseRisk       bool
	Rendered           string
	Summary            string
}

// CreateCharacter registers a new character with defaulted track ratings.
func (s *Service) CreateCharacter(ctx context.Context, id, name string) (character.Character, error) {
	record, err := character.New(id, name, s.now())
	if err != nil {
		return character.Character{}, err
	}
	if err := s.store.CreateCharacter(ctx, record); err != nil {
		return character.Character{}, err
	}
	return record, nil
}

// GetCharacter loads a character record.
func (s *Service) GetCharacter(ctx context.Context, id string) (character.Character, error) {
	return s.store.GetCharacter(ctx, id)
}

// GetHealth returns the character's current health state.
func (s *Service) GetHealth(ctx context.Context, characterID string) (HealthState, error) {
	record, healthTrack, err := s.loadTrack(ctx, characterID, track.ModeHealth)
	if err != nil {
		return HealthState{}, err
	}
	return healthState(record, healthTrack), nil
}

// ApplyDamage marks damage on the character's health track and returns the
// resulting state along with how many points were actually applied. When the
// track cannot absorb the full amount the applied count is short of the
// request; that is a normal outcome, not an error.
func (s *Service) ApplyDamage(ctx context.Context, characterID string, amount int, severity track.Severity) (HealthState, int, error) {
	var applied int
	state, err := s.mutateHealth(ctx, characterID, func(t *track.Track) error {
		var err error
		applied, err = t.ApplyDamage(amount, severity)
		return err
	})
	return state, applied, err
}

// HealDamage removes damage of the given severity from the character's
// health track, rightmost boxes first, and compacts the remainder.
func (s *Service) HealDamage(ctx context.Context, characterID string, amount int, severity track.Severity) (HealthState, int, error) {
	var healed int
	state, err := s.mutateHealth(ctx, characterID, func(t *track.Track) error {
		var err error
		healed, err = t.HealDamage(amount, severity)
		return err
	})
	return state, healed, err
}

// ClearDamage wipes the character's health track.
func (s *Service) ClearDamage(ctx context.Context, characterID string) (HealthState, error) {
	return s.mutateHealth(ctx, characterID, func(t *track.Track) error {
		t.Clear()
		return nil
	})
}

// SetMaxHealth changes the character's health rating and resizes the track.
// Damage beyond the new capacity is lost.
func (s *Service) SetMaxHealth(ctx context.Context, characterID string, rating int) (HealthState, error) {
	if rating < 1 {
		return HealthState{}, character.ErrInvalidHealthRating
	}

	unlock := s.locks.acquire(characterID)
	defer unlock()

	record, err := s.store.GetCharacter(ctx, characterID)
	if err != nil {
		return HealthState{}, err
	}

	sparse, err := s.store.GetTrack(ctx, characterID, track.ModeHealth)
	if err != nil {
		return HealthState{}, err
	}
	healthTrack, err := track.Load(track.ModeHealth, record.HealthRating, sparse)
	if err != nil {
		return HealthState{}, err
	}
	if err := healthTrack.SetCapacity(rating); err != nil {
		return HealthState{}, err
	}

	record.HealthRating = rating
	record.UpdatedAt = s.now().UTC()
	if err := record.Validate(); err != nil {
		return HealthState{}, err
	}
	if err := s.store.PutCharacter(ctx, record); err != nil {
		return HealthState{}, err
	}
	if err := s.store.PutTrack(ctx, characterID, track.ModeHealth, track.Dump(healthTrack)); err != nil {
		return HealthState{}, err
	}
	return healthState(record, healthTrack), nil
}

// GetClarity returns the character's current clarity state.
func (s *Service) GetClarity(ctx context.Context, characterID string) (ClarityState, error) {
	record, clarityTrack, err := s.loadTrack(ctx, characterID, track.ModeClarity)
	if err != nil {
		return ClarityState{}, err
	}
	return clarityState(record, clarityTrack), nil
}

// ApplyClarityDamage marks damage on the character's clarity track.
func (s *Service) ApplyClarityDamage(ctx context.Context, characterID string, amount int, severity track.Severity) (ClarityState, int, error) {
	var applied int
	state, err := s.mutateClarity(ctx, characterID, func(t *track.Track) error {
		var err error
		applied, err = t.ApplyDamage(amount, severity)
		return err
	})
	return state, applied, err
}

// HealClarityDamage removes damage of the given severity from the
// character's clarity track.
func (s *Service) HealClarityDamage(ctx context.Context, characterID string, amount int, severity track.Severity) (ClarityState, int, error) {
	var healed int
	state, err := s.mutateClarity(ctx, characterID, func(t *track.Track) error {
		var err error
		healed, err = t.HealDamage(amount, severity)
		return err
	})
	return state, healed, err
}

// loadTrack reads a character and its stored track in the given mode. The
// dense track is rebuilt from the sparse persisted form at the character's
// current rating.
func (s *Service) loadTrack(ctx context.Context, characterID string, mode track.Mode) (character.Character, track.Track, error) {
	record, err := s.store.GetCharacter(ctx, characterID)
	if err != nil {
		return character.Character{}, track.Track{}, err
	}

	sparse, err := s.store.GetTrack(ctx, characterID, mode)
	if err != nil {
		return character.Character{}, track.Track{}, err
	}

	capacity := record.HealthRating
	if mode == track.ModeClarity {
		capacity = record.ClarityRating
	}
	loaded, err := track.Load(mode, capacity, sparse)
	if err != nil {
		return character.Character{}, track.Track{}, err
	}
	return record, loaded, nil
}

// mutateHealth runs a track mutation under the character's lock, persisting
// the result only when the mutation succeeds.
func (s *Service) mutateHealth(ctx context.Context, characterID string, mutate func(*track.Track) error) (HealthState, error) {
	record, healthTrack, err := s.mutateTrack(ctx, characterID, track.ModeHealth, mutate)
	if err != nil {
		return HealthState{}, err
	}
	return healthState(record, healthTrack), nil
}

func (s *Service) mutateClarity(ctx context.Context, characterID string, mutate func(*track.Track) error) (ClarityState, error) {
	record, clarityTrack, err := s.mutateTrack(ctx, characterID, track.ModeClarity, mutate)
	if err != nil {
		return ClarityState{}, err
	}
	return clarityState(record, clarityTrack), nil
}

func (s *Service) mutateTrack(ctx context.Context, characterID string, mode track.Mode, mutate func(*track.Track) error) (character.Character, track.Track, error) {
	unlock := s.locks.acquire(characterID)
	defer unlock()

	record, loaded, err := s.loadTrack(ctx, characterID, mode)
	if err != nil {
		return character.Character{}, track.Track{}, err
	}
	if err := mutate(&loaded); err != nil {
		return character.Character{}, track.Track{}, err
	}
	if err := s.store.PutTrack(ctx, characterID, mode, track.Dump(loaded)); err != nil {
		return character.Character{}, track.Track{}, err
	}
	return record, loaded, nil
}

func healthState(record character.Character, t track.Track) HealthState {
	return HealthState{
		Character:     record,
		Boxes:         t.Boxes(),
		Capacity:      t.Capacity(),
		Marked:        t.Marked(),
		WoundPenalty:  cofd.WoundPenalty(t),
		Incapacitated: cofd.Incapacitated(t),
		Rendered:      cofd.RenderTrack(t),
		Summary:       cofd.DamageSummary(t),
	}
}

func clarityState(record character.Character, t track.Track) ClarityState {
	return ClarityState{
		Character:          record,
		Boxes:              t.Boxes(),
		Capacity:           t.Capacity(),
		Marked:             t.Marked(),
		ConditionActive:    cofd.ClarityConditionActive(t),
		PerceptionModifier: cofd.PerceptionModifier(t),
		ComatoseRisk:       cofd.ComatoseRisk(t),
		Rendered:           cofd.RenderTrack(t),
		Summary:            cofd.DamageSummary(t),
	}
}
