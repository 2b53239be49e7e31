// internal/board/types.go
//
// Core type definitions for the match-3 board.
// Defines:
//   - Tile: the kind of candy occupying a cell (0 = empty slot).
//   - Position: a (row, col) coordinate on the grid.
//   - Move: an unordered pair of adjacent positions to swap.

package board

import "fmt"

// Tile identifies the kind of candy in a cell.
// Empty is only seen transiently while a cascade is being resolved.
type Tile int

const (
	Empty        Tile = 0
	DefaultKinds      = 4
)

// Position is a 0-indexed (row, col) pair.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Move swaps the tiles at A and B.
type Move struct {
	A Position
	B Position
}

// Adjacent reports whether A and B differ by exactly 1 in exactly one axis.
func (m Move) Adjacent() bool {
	dr, dc := abs(m.A.Row-m.B.Row), abs(m.A.Col-m.B.Col)
	return dr+dc == 1
}

// Normalize orders the pair row-major so that equal moves compare equal.
func (m Move) Normalize() Move {
	if m.B.Row < m.A.Row || (m.B.Row == m.A.Row && m.B.Col < m.A.Col) {
		return Move{A: m.B, B: m.A}
	}
	return m
}

func (m Move) String() string { return m.A.String() + "<->" + m.B.String() }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
