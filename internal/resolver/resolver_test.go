package resolver

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/match3/internal/board"
	"github.com/robalobadob/match3/internal/formation"
)

func grid(t *testing.T, rows [][]board.Tile) *board.Grid {
	t.Helper()
	g, err := board.FromRows(rows)
	require.NoError(t, err)
	return g
}

func TestResolve_SinglePass(t *testing.T) {
	g := grid(t, [][]board.Tile{
		{1, 1, 1},
		{2, 3, 4},
		{3, 4, 2},
	})

	res := Resolve(g, board.Sequence(5, 6, 7))

	assert.Equal(t, Result{Points: 5, Passes: 1, Formations: 1}, res)
	assert.Equal(t, [][]board.Tile{
		{2, 3, 4},
		{3, 4, 2},
		{5, 6, 7},
	}, g.Rows())
}

func TestResolve_Cascade(t *testing.T) {
	g := grid(t, [][]board.Tile{
		{1, 1, 1},
		{2, 3, 4},
		{3, 4, 2},
	})

	// The first refill lays 9 9 9 along the bottom row, which clears again.
	res := Resolve(g, board.Sequence(9, 9, 9, 5, 6, 7))

	assert.Equal(t, Result{Points: 10, Passes: 2, Formations: 2}, res)
	assert.Equal(t, [][]board.Tile{
		{2, 3, 4},
		{3, 4, 2},
		{5, 6, 7},
	}, g.Rows())
}

func TestResolve_OverlappingFormationsAllScore(t *testing.T) {
	g := grid(t, [][]board.Tile{
		{1, 1, 1, 1},
		{2, 3, 4, 5},
		{3, 4, 5, 2},
		{4, 5, 2, 3},
	})

	res := Resolve(g, board.Sequence(6, 7, 8, 9))

	// Run of four: one line4 window plus two line3 windows.
	assert.Equal(t, 20, res.Points)
	assert.Equal(t, 3, res.Formations)
	assert.Equal(t, []board.Tile{6, 7, 8, 9}, g.Rows()[3])
}

func TestResolve_StableAndIdempotent(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		src, err := board.NewRandSource(rand.New(rand.NewSource(seed)), board.DefaultKinds)
		require.NoError(t, err)
		g, err := board.NewGrid(9, src)
		require.NoError(t, err)

		Resolve(g, src)
		require.Empty(t, formation.Detect(g), "seed %d", seed)
		require.False(t, g.HasEmpty(), "seed %d", seed)

		before := g.Clone()
		again := Resolve(g, src)
		assert.Equal(t, Result{}, again)
		assert.True(t, before.Equal(g))
	}
}

func TestCompact_PreservesOrderAndRefillsBelow(t *testing.T) {
	g := grid(t, [][]board.Tile{
		{1, 0, 4},
		{0, 0, 0},
		{2, 3, 5},
	})

	Compact(g, board.Sequence(7, 8, 9, 6))

	// Column 0 keeps 1,2 and draws 7; column 1 keeps 3 and draws 8,9;
	// column 2 keeps 4,5 and draws 6.
	assert.Equal(t, [][]board.Tile{
		{1, 3, 4},
		{2, 8, 5},
		{7, 9, 6},
	}, g.Rows())
}

func TestCompact_FullColumnsUnchanged(t *testing.T) {
	g := grid(t, [][]board.Tile{
		{1, 2},
		{3, 4},
	})
	before := g.Clone()

	Compact(g, board.Sequence(9))

	assert.True(t, before.Equal(g))
}
