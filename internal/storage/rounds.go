package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Round outcomes.
const (
	OutcomeWon  = "won"
	OutcomeLost = "lost"
	OutcomeQuit = "quit"
)

const (
	localSession      = "local"
	defaultRoundLimit = 20
	roundColumns      = "id, round_id, session_id, game_id, asteroids, outcome, score, wave, frames, created_at"
)

// RoundRecord is the history entry for one finished or abandoned round.
type RoundRecord struct {
	ID        int64
	RoundID   string // Random UUID, assigned by SaveRound when empty
	SessionID string // SSH session or "local"
	GameID    string
	Asteroids int // Initial asteroid count
	Outcome   string
	Score     int
	Wave      int
	Frames    uint64
	CreatedAt time.Time
}

// SaveRound stores r and returns its round ID.
func (s *Store) SaveRound(r RoundRecord) (string, error) {
	if r.RoundID == "" {
		r.RoundID = uuid.NewString()
	}
	if r.SessionID == "" {
		r.SessionID = localSession
	}

	_, err := s.db.Exec(
		"INSERT INTO rounds (round_id, session_id, game_id, asteroids, outcome, score, wave, frames) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		r.RoundID, r.SessionID, r.GameID, r.Asteroids, r.Outcome, r.Score, r.Wave, int64(r.Frames),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save round: %w", err)
	}
	return r.RoundID, nil
}

// RoundByID looks up a round. A missing round yields nil and no error.
func (s *Store) RoundByID(roundID string) (*RoundRecord, error) {
	r, err := scanRound(s.db.QueryRow("SELECT "+roundColumns+" FROM rounds WHERE round_id = ?", roundID))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("storage: cannot query round: %w", err)
	}
	return r, nil
}

// RecentRounds returns the latest rounds of gameID, newest first.
// A non-positive limit means twenty.
func (s *Store) RecentRounds(gameID string, limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = defaultRoundLimit
	}

	rows, err := s.db.Query(
		"SELECT "+roundColumns+" FROM rounds WHERE game_id = ? ORDER BY id DESC LIMIT ?",
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var out []RoundRecord
	for rows.Next() {
		r, err := scanRound(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan round: %w", err)
		}
		out = append(out, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: round iteration: %w", err)
	}
	return out, nil
}

func scanRound(row rowScanner) (*RoundRecord, error) {
	var (
		r         RoundRecord
		frames    int64
		createdAt any
	)
	err := row.Scan(&r.ID, &r.RoundID, &r.SessionID, &r.GameID, &r.Asteroids,
		&r.Outcome, &r.Score, &r.Wave, &frames, &createdAt)
	if err != nil {
		return nil, err
	}
	r.Frames = uint64(frames)
	r.CreatedAt = parseTime(createdAt)
	return &r, nil
}
