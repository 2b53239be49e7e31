package board

import (
	"errors"
	"fmt"
)

// Sentinel errors, matched with errors.Is against the typed errors below.
var (
	ErrBounds        = errors.New("board: position out of bounds")
	ErrInvalidMove   = errors.New("board: cells are not adjacent")
	ErrInvalidConfig = errors.New("board: invalid configuration")
)

// BoundsError reports access to a position outside a Size×Size grid.
type BoundsError struct {
	Pos  Position
	Size int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("board: position %s out of bounds for size %d", e.Pos, e.Size)
}

func (e *BoundsError) Unwrap() error { return ErrBounds }

// InvalidMoveError reports a swap between non-adjacent cells.
type InvalidMoveError struct {
	Move Move
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("board: move %s does not join adjacent cells", e.Move)
}

func (e *InvalidMoveError) Unwrap() error { return ErrInvalidMove }

// InvalidConfigError reports a construction parameter outside its valid range.
type InvalidConfigError struct {
	Field string
	Value int
	Want  string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("board: invalid %s %d (want %s)", e.Field, e.Value, e.Want)
}

func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }
