// internal/agent/agent.go
//
// Greedy move selection.
// Responsibilities:
//   - Enumerate every undirected adjacent pair once: for each cell in
//     row-major order, its right neighbour, then its down neighbour.
//   - Score a swap by the formations it creates immediately (no cascade).
//   - Pick the strictly best positive score; ties keep the first found.
//
// The input grid is never mutated: each candidate is tried on a copy.

package agent

import (
	"github.com/robalobadob/match3/internal/board"
	"github.com/robalobadob/match3/internal/formation"
)

// Choice is the selected swap and the points it scores on its own.
type Choice struct {
	Move   board.Move
	Points int
}

// FindBestSwap returns the highest scoring swap on g.
// ok is false when no swap creates a formation.
func FindBestSwap(g *board.Grid) (best Choice, ok bool) {
	n := g.Size()
	scratch := g.Clone()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			from := board.Position{Row: r, Col: c}
			for _, to := range [2]board.Position{{Row: r, Col: c + 1}, {Row: r + 1, Col: c}} {
				if !g.InBounds(to) {
					continue
				}
				m := board.Move{A: from, B: to}
				if pts := score(scratch, m); pts > best.Points {
					best = Choice{Move: m, Points: pts}
				}
			}
		}
	}
	return best, best.Points > 0
}

// Evaluate returns the immediate points of playing m on g, without
// touching g.
func Evaluate(g *board.Grid, m board.Move) (int, error) {
	scratch := g.Clone()
	if err := scratch.Swap(m); err != nil {
		return 0, err
	}
	return formation.Total(formation.Detect(scratch)), nil
}

// score swaps m on scratch, scans, and swaps back so scratch can be reused
// for the next candidate.
func score(scratch *board.Grid, m board.Move) int {
	a, b := scratch.At(m.A), scratch.At(m.B)
	scratch.Put(m.A, b)
	scratch.Put(m.B, a)
	pts := formation.Total(formation.Detect(scratch))
	scratch.Put(m.A, a)
	scratch.Put(m.B, b)
	return pts
}
