package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/soma-satoro/pyreach/internal/services/game/core/track"
	"github.com/soma-satoro/pyreach/internal/services/game/domain/character"
	"github.com/soma-satoro/pyreach/internal/services/game/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "game.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return store
}

func testCharacter(t *testing.T, id, name string) character.Character {
	t.Helper()
	now := time.Date(2026, time.March, 14, 9, 26, 53, 0, time.UTC)
	record, err := character.New(id, name, now)
	if err != nil {
		t.Fatalf("character.New() error = %v", err)
	}
	return record
}

func assertCharacter(t *testing.T, got, want character.Character) {
	t.Helper()
	if got.ID != want.ID || got.Name != want.Name {
		t.Fatalf("character = %s %q, want %s %q", got.ID, got.Name, want.ID, want.Name)
	}
	if got.HealthRating != want.HealthRating || got.ClarityRating != want.ClarityRating {
		t.Fatalf("ratings = %d/%d, want %d/%d",
			got.HealthRating, got.ClarityRating, want.HealthRating, want.ClarityRating)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) || !got.UpdatedAt.Equal(want.UpdatedAt) {
		t.Fatalf("timestamps = %v/%v, want %v/%v",
			got.CreatedAt, got.UpdatedAt, want.CreatedAt, want.UpdatedAt)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("Open() expected error for empty path")
	}
}

func TestCharacterRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	want := testCharacter(t, "char-1", "Avdiel")
	if err := store.CreateCharacter(ctx, want); err != nil {
		t.Fatalf("CreateCharacter() error = %v", err)
	}

	got, err := store.GetCharacter(ctx, "char-1")
	if err != nil {
		t.Fatalf("GetCharacter() error = %v", err)
	}
	assertCharacter(t, got, want)
}

func TestCreateCharacterDuplicate(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	record := testCharacter(t, "char-1", "Avdiel")
	if err := store.CreateCharacter(ctx, record); err != nil {
		t.Fatalf("CreateCharacter() error = %v", err)
	}
	if err := store.CreateCharacter(ctx, record); !errors.Is(err, storage.ErrCharacterExists) {
		t.Fatalf("CreateCharacter() error = %v, want ErrCharacterExists", err)
	}
}

func TestGetCharacterMissing(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.GetCharacter(context.Background(), "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("GetCharacter() error = %v, want ErrNotFound", err)
	}
}

func TestPutCharacterUpdates(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	record := testCharacter(t, "char-1", "Avdiel")
	if err := store.CreateCharacter(ctx, record); err != nil {
		t.Fatalf("CreateCharacter() error = %v", err)
	}

	record.Name = "Renamed"
	record.HealthRating = 9
	record.UpdatedAt = record.UpdatedAt.Add(time.Minute)
	if err := store.PutCharacter(ctx, record); err != nil {
		t.Fatalf("PutCharacter() error = %v", err)
	}

	got, err := store.GetCharacter(ctx, "char-1")
	if err != nil {
		t.Fatalf("GetCharacter() error = %v", err)
	}
	assertCharacter(t, got, record)
}

func TestDeleteCharacter(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.CreateCharacter(ctx, testCharacter(t, "char-1", "Avdiel")); err != nil {
		t.Fatalf("CreateCharacter() error = %v", err)
	}
	if err := store.DeleteCharacter(ctx, "char-1"); err != nil {
		t.Fatalf("DeleteCharacter() error = %v", err)
	}
	if _, err := store.GetCharacter(ctx, "char-1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("GetCharacter() after delete error = %v, want ErrNotFound", err)
	}
	if err := store.DeleteCharacter(ctx, "char-1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("DeleteCharacter() second call error = %v, want ErrNotFound", err)
	}
}

func TestListCharactersOrdered(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, record := range []character.Character{
		testCharacter(t, "char-2", "Zinnia"),
		testCharacter(t, "char-1", "Avdiel"),
	} {
		if err := store.CreateCharacter(ctx, record); err != nil {
			t.Fatalf("CreateCharacter(%s) error = %v", record.ID, err)
		}
	}

	records, err := store.ListCharacters(ctx)
	if err != nil {
		t.Fatalf("ListCharacters() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("ListCharacters() returned %d records, want 2", len(records))
	}
	if records[0].Name != "Avdiel" || records[1].Name != "Zinnia" {
		t.Fatalf("ListCharacters() order = %q, %q", records[0].Name, records[1].Name)
	}
}

func TestTrackRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.CreateCharacter(ctx, testCharacter(t, "char-1", "Avdiel")); err != nil {
		t.Fatalf("CreateCharacter() error = %v", err)
	}

	sparse := map[int]track.Severity{
		1: track.Aggravated,
		2: track.Lethal,
		3: track.Bashing,
	}
	if err := store.PutTrack(ctx, "char-1", track.ModeHealth, sparse); err != nil {
		t.Fatalf("PutTrack() error = %v", err)
	}

	got, err := store.GetTrack(ctx, "char-1", track.ModeHealth)
	if err != nil {
		t.Fatalf("GetTrack() error = %v", err)
	}
	if len(got) != len(sparse) {
		t.Fatalf("GetTrack() returned %d boxes, want %d", len(got), len(sparse))
	}
	for position, severity := range sparse {
		if got[position] != severity {
			t.Fatalf("GetTrack()[%d] = %v, want %v", position, got[position], severity)
		}
	}
}

func TestGetTrackEmpty(t *testing.T) {
	store := openTestStore(t)

	got, err := store.GetTrack(context.Background(), "char-1", track.ModeHealth)
	if err != nil {
		t.Fatalf("GetTrack() error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("GetTrack() = %v, want empty map", got)
	}
}

func TestPutTrackReplaces(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.CreateCharacter(ctx, testCharacter(t, "char-1", "Avdiel")); err != nil {
		t.Fatalf("CreateCharacter() error = %v", err)
	}

	if err := store.PutTrack(ctx, "char-1", track.ModeHealth, map[int]track.Severity{
		1: track.Bashing,
		2: track.Bashing,
	}); err != nil {
		t.Fatalf("PutTrack() error = %v", err)
	}
	if err := store.PutTrack(ctx, "char-1", track.ModeHealth, map[int]track.Severity{
		1: track.Lethal,
	}); err != nil {
		t.Fatalf("PutTrack() replace error = %v", err)
	}

	got, err := store.GetTrack(ctx, "char-1", track.ModeHealth)
	if err != nil {
		t.Fatalf("GetTrack() error = %v", err)
	}
	if len(got) != 1 || got[1] != track.Lethal {
		t.Fatalf("GetTrack() = %v, want map[1:lethal]", got)
	}
}

func TestTracksKeyedByMode(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.CreateCharacter(ctx, testCharacter(t, "char-1", "Avdiel")); err != nil {
		t.Fatalf("CreateCharacter() error = %v", err)
	}

	if err := store.PutTrack(ctx, "char-1", track.ModeHealth, map[int]track.Severity{
		1: track.Lethal,
	}); err != nil {
		t.Fatalf("PutTrack(health) error = %v", err)
	}
	if err := store.PutTrack(ctx, "char-1", track.ModeClarity, map[int]track.Severity{
		1: track.Severe,
	}); err != nil {
		t.Fatalf("PutTrack(clarity) error = %v", err)
	}

	health, err := store.GetTrack(ctx, "char-1", track.ModeHealth)
	if err != nil {
		t.Fatalf("GetTrack(health) error = %v", err)
	}
	clarity, err := store.GetTrack(ctx, "char-1", track.ModeClarity)
	if err != nil {
		t.Fatalf("GetTrack(clarity) error = %v", err)
	}
	if health[1] != track.Lethal {
		t.Fatalf("health[1] = %v, want lethal", health[1])
	}
	if clarity[1] != track.Severe {
		t.Fatalf("clarity[1] = %v, want severe", clarity[1])
	}
}

func TestDeleteCharacterCascadesTracks(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.CreateCharacter(ctx, testCharacter(t, "char-1", "Avdiel")); err != nil {
		t.Fatalf("CreateCharacter() error = %v", err)
	}
	if err := store.PutTrack(ctx, "char-1", track.ModeHealth, map[int]track.Severity{
		1: track.Bashing,
	}); err != nil {
		t.Fatalf("PutTrack() error = %v", err)
	}
	if err := store.DeleteCharacter(ctx, "char-1"); err != nil {
		t.Fatalf("DeleteCharacter() error = %v", err)
	}

	got, err := store.GetTrack(ctx, "char-1", track.ModeHealth)
	if err != nil {
		t.Fatalf("GetTrack() error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("GetTrack() after delete = %v, want empty map", got)
	}
}
