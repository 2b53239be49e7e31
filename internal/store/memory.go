// internal/store/memory.go
//
// In-memory implementation of Store.
// Used when no database is configured, and in tests.
//
// Characteristics:
//   - Results keyed by (run, game) in a map.
//   - Concurrency-safe via RWMutex; games of a run may finish on
//     separate goroutines.
//   - State is lost when the process exits.

package store

import (
	"context"
	"sort"
	"sync"
)

type resultKey struct {
	run  string
	game int
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu      sync.RWMutex               // guards results
	results map[resultKey]GameResult
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{results: make(map[resultKey]GameResult)}
}

func (m *memory) Save(ctx context.Context, r GameResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[resultKey{r.RunID, r.Game}] = r
	return nil
}

func (m *memory) Summary(ctx context.Context, runID string) (Summary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := Summary{RunID: runID, Reasons: map[string]int{}}
	var score, moves int
	for k, r := range m.results {
		if k.run != runID {
			continue
		}
		s.Games++
		score += r.Score
		moves += r.Moves
		if s.Games == 1 || r.Score > s.BestScore {
			s.BestScore = r.Score
		}
		s.Reasons[r.Reason]++
	}
	if s.Games == 0 {
		return Summary{}, ErrNotFound
	}
	s.AvgScore = float64(score) / float64(s.Games)
	s.AvgMoves = float64(moves) / float64(s.Games)
	return s, nil
}

func (m *memory) Top(ctx context.Context, runID string, limit int) ([]GameResult, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}
	m.mu.RLock()
	out := make([]GameResult, 0, len(m.results))
	for k, r := range m.results {
		if runID == "" || k.run == runID {
			out = append(out, r)
		}
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Moves != b.Moves {
			return a.Moves < b.Moves
		}
		if a.Game != b.Game {
			return a.Game < b.Game
		}
		return a.RunID < b.RunID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memory) Close() error { return nil }
