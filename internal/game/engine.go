// internal/game/engine.go
//
// Game engine for a single match-3 session.
// Responsibilities:
//   - Create sessions on a fresh random grid (New) or a given grid (FromGrid).
//   - Keep the grid stable: resolve cascades after construction and after
//     every applied swap.
//   - Drive one turn per Step: ask the greedy agent for a swap, apply it,
//     score the cascade, and check the target.
//   - Track state transitions: playing → finished (no more moves / target).
//
// Notes:
//   - Points from the initial stabilization are not added to the score;
//     a session starts at score 0.
//   - A session owns its grid and tile source; separate sessions share
//     nothing and may run on separate goroutines.
package game

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/match3/internal/agent"
	"github.com/robalobadob/match3/internal/board"
	"github.com/robalobadob/match3/internal/resolver"
)

// Session holds the state of one game.
type Session struct {
	id      string
	grid    *board.Grid
	src     board.TileSource
	target  int
	score   int
	moves   int
	history []board.Move
	reason  Termination
}

// New constructs a session on a size×size grid drawn from src.
func New(size, target int, src board.TileSource) (*Session, error) {
	if err := checkTarget(target); err != nil {
		return nil, err
	}
	g, err := board.NewGrid(size, src)
	if err != nil {
		return nil, err
	}
	return start(g, target, src), nil
}

// FromGrid constructs a session that takes ownership of g.
// src supplies refill tiles.
func FromGrid(g *board.Grid, target int, src board.TileSource) (*Session, error) {
	if err := checkTarget(target); err != nil {
		return nil, err
	}
	return start(g, target, src), nil
}

func checkTarget(target int) error {
	if target <= 0 {
		return &board.InvalidConfigError{Field: "target score", Value: target, Want: "> 0"}
	}
	return nil
}

func start(g *board.Grid, target int, src board.TileSource) *Session {
	s := &Session{
		id:      uuid.NewString(),
		grid:    g,
		src:     src,
		target:  target,
		history: []board.Move{},
		reason:  Continuing,
	}
	settle := resolver.Resolve(g, src)
	log.Debug().
		Str("session", s.id).
		Int("size", g.Size()).
		Int("settlePoints", settle.Points).
		Int("settlePasses", settle.Passes).
		Msg("session started")
	return s
}

// Step plays one turn. Once finished, Step is a no-op that repeats the
// termination reason.
//
// State transitions:
//   - No scoring swap available → Finished, NoMoreMoves.
//   - Score reaches the target after the cascade → Finished, TargetReached.
func (s *Session) Step() TurnOutcome {
	if s.Finished() {
		return TurnOutcome{Finished: true, Reason: s.reason}
	}

	choice, ok := agent.FindBestSwap(s.grid)
	if !ok {
		s.reason = NoMoreMoves
		log.Debug().Str("session", s.id).Int("score", s.score).Int("moves", s.moves).Msg("no more moves")
		return TurnOutcome{Finished: true, Reason: s.reason}
	}

	// The agent only proposes in-bounds adjacent pairs.
	if err := s.grid.Swap(choice.Move); err != nil {
		panic(err)
	}
	s.history = append(s.history, choice.Move)
	s.moves++

	res := resolver.Resolve(s.grid, s.src)
	s.score += res.Points
	if s.score >= s.target {
		s.reason = TargetReached
	}

	log.Debug().
		Str("session", s.id).
		Stringer("move", choice.Move).
		Int("expected", choice.Points).
		Int("points", res.Points).
		Int("passes", res.Passes).
		Int("score", s.score).
		Msg("turn")

	mv := choice.Move
	return TurnOutcome{
		Move:     &mv,
		Points:   res.Points,
		Passes:   res.Passes,
		Finished: s.Finished(),
		Reason:   s.reason,
	}
}

// Finished reports whether the session has stopped.
func (s *Session) Finished() bool { return s.reason != Continuing }

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Moves returns the number of applied swaps.
func (s *Session) Moves() int { return s.moves }

// Snapshot copies the session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:      s.id,
		Grid:    s.grid.Clone(),
		Score:   s.score,
		Target:  s.target,
		Moves:   s.moves,
		History: append([]board.Move(nil), s.history...),
		State:   s.state(),
		Reason:  s.reason,
	}
}

// state reports the coarse state.
func (s *Session) state() State {
	if s.Finished() {
		return StateFinished
	}
	return StatePlaying
}
