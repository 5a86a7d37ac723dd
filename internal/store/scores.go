package store

import (
	"database/sql"
	"fmt"
	"time"
)

// ScoreRecord is the persisted state of one counter identity.
// UpdatedAt is nil for identities that have never been written.
type ScoreRecord struct {
	Identity  string
	Score     int
	UpdatedAt *time.Time
}

// ReadScore returns the persisted record for an identity. Identities that
// have never been written read as score 0 with no timestamp; a row is not
// created until the first WriteScore.
func (db *DB) ReadScore(identity string) (ScoreRecord, error) {
	rec := ScoreRecord{Identity: identity}
	var updatedAt int64
	err := db.QueryRow(`
		SELECT score, updated_at FROM scores WHERE identity = ?
	`, identity).Scan(&rec.Score, &updatedAt)
	if err == sql.ErrNoRows {
		return rec, nil
	}
	if err != nil {
		return rec, fmt.Errorf("read score %q: %w", identity, err)
	}
	t := time.UnixMilli(updatedAt)
	rec.UpdatedAt = &t
	return rec, nil
}

// WriteScore persists score and timestamp for an identity, overwriting any
// prior row. There is no locking between a ReadScore and a later WriteScore;
// concurrent processes sharing one database can lose updates.
func (db *DB) WriteScore(identity string, score int, at time.Time) error {
	_, err := db.Exec(`
		INSERT INTO scores (identity, score, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(identity) DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at
	`, identity, score, at.UnixMilli())
	if err != nil {
		return fmt.Errorf("write score %q: %w", identity, err)
	}
	return nil
}
