// internal/history/store.go
//
// DB-backed audit trail of created games and finished rounds. Game state
// itself never touches the database; these rows exist for the history
// endpoint and survive restarts, nothing more. All writers are best
// effort: callers log and continue on error.

package history

import (
	"context"
	"database/sql"
)

// Store wraps the history tables. A nil *Store (no database configured)
// turns every method into a no-op.
type Store struct{ db *sql.DB }

// NewStore returns a Store over db, or nil when db is nil.
func NewStore(db *sql.DB) *Store {
	if db == nil {
		return nil
	}
	return &Store{db: db}
}

// RecordGame inserts a row for a freshly created game.
func (s *Store) RecordGame(ctx context.Context, gameID string, public bool) error {
	if s == nil {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO games(id, public) VALUES(?,?)`,
		gameID, public,
	)
	return err
}

// RecordRound inserts a row for a finished round.
func (s *Store) RecordRound(ctx context.Context, gameID string, round int, endedBy string, keys, players int) error {
	if s == nil {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO round_results(game_id, round, ended_by, keys, players)
		 VALUES(?,?,?,?,?)`,
		gameID, round, endedBy, keys, players,
	)
	return err
}

// Round is one finished-round row.
type Round struct {
	GameID  string `json:"game_id"`
	Round   int    `json:"round"`
	EndedBy string `json:"ended_by"`
	Keys    int    `json:"keys"`
	Players int    `json:"players"`
	EndedAt string `json:"ended_at"`
}

// Recent returns the most recently finished rounds, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Round, error) {
	if s == nil {
		return []Round{}, nil
	}
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT game_id, round, ended_by, keys, players, ended_at
		 FROM round_results
		 ORDER BY ended_at DESC, id DESC
		 LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Round{}
	for rows.Next() {
		var r Round
		if err := rows.Scan(&r.GameID, &r.Round, &r.EndedBy, &r.Keys, &r.Players, &r.EndedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
