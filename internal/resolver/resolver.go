// internal/resolver/resolver.go
//
// Cascade resolution for the match-3 board.
// Responsibilities:
//   - Repeatedly detect formations, clear them, and compact/refill columns
//     until a scan finds nothing (the grid is stable).
//   - Report the points scored across every pass of one call.
//
// Column compaction keeps the surviving tiles of each column in their
// existing top-to-bottom order at rows [0, k) and fills rows [k, N) with
// new tiles from the source. Columns are refilled left to right.

package resolver

import (
	"github.com/robalobadob/match3/internal/board"
	"github.com/robalobadob/match3/internal/formation"
)

// Result summarizes one call to Resolve.
type Result struct {
	Points     int // sum over all passes
	Passes     int // scans that found at least one formation
	Formations int // formations cleared across all passes
}

// Resolve drains cascades on g, drawing refill tiles from src.
// On return g holds no Empty cells and no formations.
func Resolve(g *board.Grid, src board.TileSource) Result {
	var res Result
	for {
		found := formation.Detect(g)
		if len(found) == 0 {
			return res
		}
		res.Passes++
		res.Formations += len(found)
		for _, f := range found {
			res.Points += f.Points
			for _, p := range f.Cells {
				g.Put(p, board.Empty)
			}
		}
		Compact(g, src)
	}
}

// Compact gathers each column's non-empty tiles at the top, preserving
// their order, and fills the remaining rows from src.
func Compact(g *board.Grid, src board.TileSource) {
	n := g.Size()
	kept := make([]board.Tile, 0, n)
	for c := 0; c < n; c++ {
		kept = kept[:0]
		for r := 0; r < n; r++ {
			if t := g.At(board.Position{Row: r, Col: c}); t != board.Empty {
				kept = append(kept, t)
			}
		}
		for r := 0; r < n; r++ {
			var t board.Tile
			if r < len(kept) {
				t = kept[r]
			} else {
				t = src.NextTile()
			}
			g.Put(board.Position{Row: r, Col: c}, t)
		}
	}
}
