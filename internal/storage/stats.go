package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// GameStats aggregates the score and round history of one game mode.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	Wins       int // Rounds that ended with a cleared field
	BestWave   int
	LastPlayed time.Time
}

// GetGameStats computes GameStats for gameID. Unknown modes yield zero values.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	st := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&st.GamesCount, &st.HighScore, &st.AvgScore, &st.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot aggregate scores: %w", err)
	}

	err = s.db.QueryRow(
		`SELECT COALESCE(SUM(outcome = ?), 0), COALESCE(MAX(wave), 0)
		 FROM rounds WHERE game_id = ?`,
		OutcomeWon, gameID,
	).Scan(&st.Wins, &st.BestWave)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot aggregate rounds: %w", err)
	}

	var last any
	err = s.db.QueryRow(
		"SELECT created_at FROM scores WHERE game_id = ? ORDER BY created_at DESC, id DESC LIMIT 1",
		gameID,
	).Scan(&last)
	switch {
	case err == nil:
		st.LastPlayed = parseTime(last)
	case !errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}

	return st, nil
}
