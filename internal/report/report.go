// Package report prints boards, turns and run summaries as plain text.
package report

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/robalobadob/match3/internal/game"
	"github.com/robalobadob/match3/internal/store"
)

// Board writes the grid followed by the score line.
func Board(w io.Writer, s game.Snapshot) {
	fmt.Fprintf(w, "\nCurrent Board:\n%s\n", s.Grid)
	fmt.Fprintf(w, "\nScore: %d | Moves: %d\n", s.Score, s.Moves)
}

// Turn writes one applied swap, or the reason the game stopped.
func Turn(w io.Writer, out game.TurnOutcome) {
	switch {
	case out.Move != nil:
		fmt.Fprintf(w, "Swapped %s with %s (+%d, %d passes)\n", out.Move.A, out.Move.B, out.Points, out.Passes)
	case out.Reason == game.NoMoreMoves:
		fmt.Fprintln(w, "No more possible moves!")
	}
}

// Summary writes the averages of a run and the count per reason.
func Summary(w io.Writer, s store.Summary) {
	fmt.Fprintf(w, "\nRun %s\n", s.RunID)
	fmt.Fprintf(w, "Average Score over %d games: %.2f\n", s.Games, s.AvgScore)
	fmt.Fprintf(w, "Average Moves over %d games: %.2f\n", s.Games, s.AvgMoves)
	fmt.Fprintf(w, "Best Score: %d\n", s.BestScore)

	reasons := make([]string, 0, len(s.Reasons))
	for r := range s.Reasons {
		reasons = append(reasons, r)
	}
	sort.Strings(reasons)
	for _, r := range reasons {
		fmt.Fprintf(w, "  %-15s %d\n", r, s.Reasons[r])
	}
}

// Leaderboard writes results as an aligned table.
func Leaderboard(w io.Writer, rows []store.GameResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tRUN\tGAME\tSCORE\tMOVES\tREASON\tSEED")
	for i, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%s\t%d\n", i+1, r.RunID, r.Game, r.Score, r.Moves, r.Reason, r.Seed)
	}
	return tw.Flush()
}
