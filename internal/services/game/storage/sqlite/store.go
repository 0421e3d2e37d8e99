// Package sqlite implements game persistence over a single SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/soma-satoro/pyreach/internal/platform/storage/sqlitemigrate"
	"github.com/soma-satoro/pyreach/internal/services/game/core/track"
	"github.com/soma-satoro/pyreach/internal/services/game/domain/character"
	"github.com/soma-satoro/pyreach/internal/services/game/storage"
	"github.com/soma-satoro/pyreach/internal/services/game/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// toMillis normalizes timestamps into millisecond precision for storage.
func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// fromMillis restores millisecond precision and keeps UTC normalization.
func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Store implements game persistence over SQLite.
//
// A single SQLite file backs character records and their damage tracks so a
// track write and the owning character share transaction and visibility
// boundaries.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a game SQLite store and applies bundled migrations.
//
// This keeps startup and schema evolution in one place, instead of requiring
// callers to coordinate migrations independently.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}

	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return store, nil
}

// Close releases the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// CreateCharacter inserts a new character record, failing when the ID exists.
func (s *Store) CreateCharacter(ctx context.Context, record character.Character) error {
	if err := record.Validate(); err != nil {
		return err
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO characters (id, name, health_rating, clarity_rating, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
`,
		record.ID,
		record.Name,
		record.HealthRating,
		record.ClarityRating,
		toMillis(record.CreatedAt),
		toMillis(record.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrCharacterExists
		}
		return fmt.Errorf("insert character: %w", err)
	}
	return nil
}

// PutCharacter upserts a character record.
func (s *Store) PutCharacter(ctx context.Context, record character.Character) error {
	if err := record.Validate(); err != nil {
		return err
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO characters (id, name, health_rating, clarity_rating, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
    name = excluded.name,
    health_rating = excluded.health_rating,
    clarity_rating = excluded.clarity_rating,
    updated_at = excluded.updated_at
`,
		record.ID,
		record.Name,
		record.HealthRating,
		record.ClarityRating,
		toMillis(record.CreatedAt),
		toMillis(record.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upsert character: %w", err)
	}
	return nil
}

// GetCharacter loads a character record by ID.
func (s *Store) GetCharacter(ctx context.Context, id string) (character.Character, error) {
	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, name, health_rating, clarity_rating, created_at, updated_at
FROM characters
WHERE id = ?
`, id)

	record, err := scanCharacter(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return character.Character{}, storage.ErrNotFound
		}
		return character.Character{}, fmt.Errorf("select character: %w", err)
	}
	return record, nil
}

// DeleteCharacter removes a character and its stored damage. Damage rows are
// removed explicitly so the delete does not depend on the connection's
// foreign key pragma.
func (s *Store) DeleteCharacter(ctx context.Context, id string) error {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM damage_boxes WHERE character_id = ?`, id); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete damage boxes: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM characters WHERE id = ?`, id)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete character: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete character rows affected: %w", err)
	}
	if affected == 0 {
		_ = tx.Rollback()
		return storage.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete transaction: %w", err)
	}
	return nil
}

// ListCharacters returns all character records ordered by name.
func (s *Store) ListCharacters(ctx context.Context) ([]character.Character, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, name, health_rating, clarity_rating, created_at, updated_at
FROM characters
ORDER BY name, id
`)
	if err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	defer rows.Close()

	var records []character.Character
	for rows.Next() {
		record, err := scanCharacter(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan character: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate characters: %w", err)
	}
	return records, nil
}

// GetTrack loads the sparse damage mapping for a character's track. A
// character with no stored damage reads back as an empty map.
func (s *Store) GetTrack(ctx context.Context, characterID string, mode track.Mode) (map[int]track.Severity, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT position, severity
FROM damage_boxes
WHERE character_id = ? AND track = ?
`, characterID, mode.String())
	if err != nil {
		return nil, fmt.Errorf("select damage boxes: %w", err)
	}
	defer rows.Close()

	sparse := make(map[int]track.Severity)
	for rows.Next() {
		var position int
		var label string
		if err := rows.Scan(&position, &label); err != nil {
			return nil, fmt.Errorf("scan damage box: %w", err)
		}
		severity, err := mode.ParseSeverity(label)
		if err != nil {
			return nil, fmt.Errorf("damage box position %d: %w", position, err)
		}
		sparse[position] = severity
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate damage boxes: %w", err)
	}
	return sparse, nil
}

// PutTrack replaces the stored sparse damage mapping for a character's track.
func (s *Store) PutTrack(ctx context.Context, characterID string, mode track.Mode, sparse map[int]track.Severity) error {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin track transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
DELETE FROM damage_boxes WHERE character_id = ? AND track = ?
`, characterID, mode.String()); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear damage boxes: %w", err)
	}

	for position, severity := range sparse {
		label := mode.Label(severity)
		if label == "" {
			_ = tx.Rollback()
			return track.ErrInvalidSeverity
		}
		if _, err := tx.ExecContext(ctx, `
INSERT INTO damage_boxes (character_id, track, position, severity)
VALUES (?, ?, ?, ?)
`, characterID, mode.String(), position, label); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert damage box: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit track transaction: %w", err)
	}
	return nil
}

func scanCharacter(scan func(dest ...any) error) (character.Character, error) {
	var record character.Character
	var createdAt int64
	var updatedAt int64
	if err := scan(
		&record.ID,
		&record.Name,
		&record.HealthRating,
		&record.ClarityRating,
		&createdAt,
		&updatedAt,
	); err != nil {
		return character.Character{}, err
	}
	record.CreatedAt = fromMillis(createdAt)
	record.UpdatedAt = fromMillis(updatedAt)
	return record, nil
}

// isUniqueViolation detects SQLite primary key conflicts.
func isUniqueViolation(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint")
}

var _ storage.Store = (*Store)(nil)
