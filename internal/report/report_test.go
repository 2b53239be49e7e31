package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/match3/internal/board"
	"github.com/robalobadob/match3/internal/game"
	"github.com/robalobadob/match3/internal/store"
)

func TestBoard(t *testing.T) {
	g, err := board.FromRows([][]board.Tile{{1, 2}, {3, 4}})
	require.NoError(t, err)

	var buf bytes.Buffer
	Board(&buf, game.Snapshot{Grid: g, Score: 15, Moves: 2})
	assert.Equal(t, "\nCurrent Board:\n1 2\n3 4\n\nScore: 15 | Moves: 2\n", buf.String())
}

func TestTurn(t *testing.T) {
	var buf bytes.Buffer
	m := board.Move{A: board.Position{Row: 0, Col: 1}, B: board.Position{Row: 1, Col: 1}}
	Turn(&buf, game.TurnOutcome{Move: &m, Points: 25, Passes: 2})
	Turn(&buf, game.TurnOutcome{Finished: true, Reason: game.NoMoreMoves})
	Turn(&buf, game.TurnOutcome{Finished: true, Reason: game.TargetReached})
	assert.Equal(t, "Swapped (0,1) with (1,1) (+25, 2 passes)\nNo more possible moves!\n", buf.String())
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	Summary(&buf, store.Summary{
		RunID: "r1", Games: 4, AvgScore: 195, AvgMoves: 9, BestScore: 300,
		Reasons: map[string]int{"target_reached": 2, "no_more_moves": 2},
	})
	out := buf.String()
	assert.Contains(t, out, "Average Score over 4 games: 195.00")
	assert.Contains(t, out, "Average Moves over 4 games: 9.00")
	assert.Less(t, strings.Index(out, "no_more_moves"), strings.Index(out, "target_reached"))
}

func TestLeaderboard(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Leaderboard(&buf, []store.GameResult{
		{RunID: "r1", Game: 3, Score: 300, Moves: 9, Reason: "target_reached", Seed: 7},
	}))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "RANK"))
	assert.Equal(t, []string{"1", "r1", "3", "300", "9", "target_reached", "7"}, strings.Fields(lines[1]))
}
