// internal/game/types.go
//
// Core type definitions for a match-3 game session.
// Defines:
//   - State: playing or finished.
//   - Termination: why a session finished (or that it is still going).
//   - TurnOutcome: the result of one Step.
//   - Snapshot: a copy of session state for display and reporting.

package game

import "github.com/robalobadob/match3/internal/board"

// State is the coarse session state.
type State string

const (
	StatePlaying  State = "playing"
	StateFinished State = "finished"
)

// Termination tells why a session stopped.
type Termination string

const (
	Continuing    Termination = "continuing"
	NoMoreMoves   Termination = "no_more_moves"
	TargetReached Termination = "target_reached"
)

// TurnOutcome reports one Step.
type TurnOutcome struct {
	Move     *board.Move // nil when no swap was applied
	Points   int         // points scored by the cascade after the swap
	Passes   int         // cascade passes triggered by the swap
	Finished bool
	Reason   Termination
}

// Snapshot is an independent copy of a session's state.
type Snapshot struct {
	ID      string
	Grid    *board.Grid
	Score   int
	Target  int
	Moves   int
	History []board.Move
	State   State
	Reason  Termination
}
