// internal/formation/formation.go
//
// Formation detector for the match-3 board.
// Responsibilities:
//   - Scan a grid for the five recognized shapes, in fixed priority order:
//     straight run of 5, T, L, straight run of 4, straight run of 3.
//   - Report every match with its shape, kind, cells and point value.
//
// Notes:
//   - Scans are independent and results are concatenated without
//     deduplication: a run of five also reports its run-of-4 and run-of-3
//     windows, and a tile may appear in several formations.
//   - Detect never mutates the grid.

package formation

import "github.com/robalobadob/match3/internal/board"

// Shape is one of the recognized tile patterns.
type Shape int

const (
	Line5 Shape = iota
	TShape
	LShape
	Line4
	Line3
)

var shapePoints = [...]int{
	Line5:  50,
	TShape: 30,
	LShape: 20,
	Line4:  10,
	Line3:  5,
}

var shapeNames = [...]string{
	Line5:  "line5",
	TShape: "t",
	LShape: "l",
	Line4:  "line4",
	Line3:  "line3",
}

// Points returns the score awarded for one formation of this shape.
func (s Shape) Points() int { return shapePoints[s] }

func (s Shape) String() string { return shapeNames[s] }

// Formation is one matched group of same-kind tiles.
type Formation struct {
	Shape  Shape
	Kind   board.Tile
	Cells  []board.Position
	Points int
}

// Offsets relative to an anchor cell, listed in the order cells are reported.
var (
	tPattern = []board.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 1}}
	lPattern = []board.Position{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}}
)

// Detect returns all formations on g in priority order.
func Detect(g *board.Grid) []Formation {
	var out []Formation
	out = lines(g, 5, Line5, out)
	out = pattern(g, tPattern, TShape, out)
	out = pattern(g, lPattern, LShape, out)
	out = lines(g, 4, Line4, out)
	out = lines(g, 3, Line3, out)
	return out
}

// Total sums the points of fs.
func Total(fs []Formation) int {
	sum := 0
	for _, f := range fs {
		sum += f.Points
	}
	return sum
}

// lines appends every horizontal window of n identical non-empty tiles,
// then every vertical one.
func lines(g *board.Grid, n int, shape Shape, out []Formation) []Formation {
	size := g.Size()
	for r := 0; r < size; r++ {
		for c := 0; c+n <= size; c++ {
			if f, ok := run(g, board.Position{Row: r, Col: c}, 0, 1, n, shape); ok {
				out = append(out, f)
			}
		}
	}
	for c := 0; c < size; c++ {
		for r := 0; r+n <= size; r++ {
			if f, ok := run(g, board.Position{Row: r, Col: c}, 1, 0, n, shape); ok {
				out = append(out, f)
			}
		}
	}
	return out
}

func run(g *board.Grid, start board.Position, dr, dc, n int, shape Shape) (Formation, bool) {
	kind := g.At(start)
	if kind == board.Empty {
		return Formation{}, false
	}
	cells := make([]board.Position, n)
	for k := 0; k < n; k++ {
		p := board.Position{Row: start.Row + k*dr, Col: start.Col + k*dc}
		if g.At(p) != kind {
			return Formation{}, false
		}
		cells[k] = p
	}
	return Formation{Shape: shape, Kind: kind, Cells: cells, Points: shape.Points()}, true
}

// pattern appends a formation for every anchor at which all offsets land
// in bounds on the same non-empty kind.
func pattern(g *board.Grid, offsets []board.Position, shape Shape, out []Formation) []Formation {
	size := g.Size()
	for r := 0; r < size; r++ {
	anchor:
		for c := 0; c < size; c++ {
			cells := make([]board.Position, 0, len(offsets))
			var kind board.Tile
			for _, o := range offsets {
				p := board.Position{Row: r + o.Row, Col: c + o.Col}
				if !g.InBounds(p) {
					continue anchor
				}
				t := g.At(p)
				if t == board.Empty || (len(cells) > 0 && t != kind) {
					continue anchor
				}
				kind = t
				cells = append(cells, p)
			}
			out = append(out, Formation{Shape: shape, Kind: kind, Cells: cells, Points: shape.Points()})
		}
	}
	return out
}
