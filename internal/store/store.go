// internal/store/store.go
//
// Result ledger for simulation runs.
// Each finished game of a run is recorded once; summaries and leaderboards
// are computed by the store. Game state itself is never persisted.

package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a run has no recorded games.
var ErrNotFound = errors.New("store: not found")

// GameResult is the final record of one game.
type GameResult struct {
	RunID      string
	Game       int // index within the run
	Seed       int64
	Size       int
	Target     int
	Score      int
	Moves      int
	Reason     string // game.Termination, or "turn_limit"
	Duration   time.Duration
	FinishedAt time.Time
}

// Summary aggregates the games of one run.
type Summary struct {
	RunID     string
	Games     int
	AvgScore  float64
	AvgMoves  float64
	BestScore int
	Reasons   map[string]int
}

// Store defines the persistence interface for game results.
// Implementations are backed by memory (memory.go) or SQLite (sqlite.go).
type Store interface {
	// Save records r, replacing any earlier record of the same (RunID, Game).
	Save(ctx context.Context, r GameResult) error

	// Summary aggregates a run. Returns ErrNotFound if it has no games.
	Summary(ctx context.Context, runID string) (Summary, error)

	// Top returns up to limit results ordered by score desc, moves asc,
	// game asc. An empty runID spans all runs.
	Top(ctx context.Context, runID string, limit int) ([]GameResult, error)

	Close() error
}

const defaultTopLimit = 10
