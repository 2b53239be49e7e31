// internal/board/grid.go
//
// Grid: a square matrix of tiles.
// Responsibilities:
//   - Construct a fully populated grid from a TileSource (row-major order).
//   - Bounds-checked reads and writes (Get/Set return errors, At/Put panic).
//   - Swap adjacent cells, clone, compare, and render.
//
// Notes:
//   - A Grid has exactly one owner (a game session or a test); it is not
//     safe for concurrent use.
//   - Scanning code derives its indices from Size(), so At/Put treat an
//     out-of-range position as a programming error, like slice indexing.

package board

import (
	"strconv"
	"strings"
)

// Grid holds Size×Size tiles indexed [row][col].
type Grid struct {
	size  int
	cells [][]Tile
}

// NewGrid fills a size×size grid with tiles drawn from src, row by row.
func NewGrid(size int, src TileSource) (*Grid, error) {
	if size <= 0 {
		return nil, &InvalidConfigError{Field: "size", Value: size, Want: "> 0"}
	}
	g := empty(size)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			g.cells[r][c] = src.NextTile()
		}
	}
	return g, nil
}

// FromRows builds a grid from literal rows. The input is deep-copied.
// Rows must be non-empty and square.
func FromRows(rows [][]Tile) (*Grid, error) {
	n := len(rows)
	if n == 0 {
		return nil, &InvalidConfigError{Field: "size", Value: 0, Want: "> 0"}
	}
	g := empty(n)
	for r, row := range rows {
		if len(row) != n {
			return nil, &InvalidConfigError{Field: "row length", Value: len(row), Want: strconv.Itoa(n)}
		}
		copy(g.cells[r], row)
	}
	return g, nil
}

func empty(size int) *Grid {
	cells := make([][]Tile, size)
	for r := range cells {
		cells[r] = make([]Tile, size)
	}
	return &Grid{size: size, cells: cells}
}

// Size returns N for an N×N grid.
func (g *Grid) Size() int { return g.size }

// InBounds reports whether p lies on the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.size && p.Col >= 0 && p.Col < g.size
}

// Get returns the tile at p.
func (g *Grid) Get(p Position) (Tile, error) {
	if !g.InBounds(p) {
		return Empty, &BoundsError{Pos: p, Size: g.size}
	}
	return g.cells[p.Row][p.Col], nil
}

// Set writes t at p.
func (g *Grid) Set(p Position, t Tile) error {
	if !g.InBounds(p) {
		return &BoundsError{Pos: p, Size: g.size}
	}
	g.cells[p.Row][p.Col] = t
	return nil
}

// At is Get for callers whose positions are derived from Size().
// It panics with *BoundsError on a bad position.
func (g *Grid) At(p Position) Tile {
	if !g.InBounds(p) {
		panic(&BoundsError{Pos: p, Size: g.size})
	}
	return g.cells[p.Row][p.Col]
}

// Put is the panicking counterpart of Set.
func (g *Grid) Put(p Position, t Tile) {
	if !g.InBounds(p) {
		panic(&BoundsError{Pos: p, Size: g.size})
	}
	g.cells[p.Row][p.Col] = t
}

// Swap exchanges the two cells of m.
// Both cells must be in bounds and adjacent.
func (g *Grid) Swap(m Move) error {
	for _, p := range [2]Position{m.A, m.B} {
		if !g.InBounds(p) {
			return &BoundsError{Pos: p, Size: g.size}
		}
	}
	if !m.Adjacent() {
		return &InvalidMoveError{Move: m}
	}
	a, b := m.A, m.B
	g.cells[a.Row][a.Col], g.cells[b.Row][b.Col] = g.cells[b.Row][b.Col], g.cells[a.Row][a.Col]
	return nil
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	out := empty(g.size)
	for r := range g.cells {
		copy(out.cells[r], g.cells[r])
	}
	return out
}

// Equal reports whether both grids have the same size and tiles.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.size != o.size {
		return false
	}
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c] != o.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// Rows returns a copy of the tiles, indexed [row][col].
func (g *Grid) Rows() [][]Tile {
	return g.Clone().cells
}

// HasEmpty reports whether any cell holds Empty.
func (g *Grid) HasEmpty() bool {
	for _, row := range g.cells {
		for _, t := range row {
			if t == Empty {
				return true
			}
		}
	}
	return false
}

// String renders one row per line, tiles separated by spaces.
func (g *Grid) String() string {
	var b strings.Builder
	for r, row := range g.cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c, t := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(int(t)))
		}
	}
	return b.String()
}
