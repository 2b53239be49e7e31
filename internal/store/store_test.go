package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(run string, game, score, moves int, reason string) GameResult {
	return GameResult{
		RunID:      run,
		Game:       game,
		Seed:       int64(1000 + game),
		Size:       11,
		Target:     10000,
		Score:      score,
		Moves:      moves,
		Reason:     reason,
		Duration:   time.Duration(game+1) * time.Millisecond,
		FinishedAt: time.Date(2026, 10, 19, 12, 0, game, 0, time.UTC),
	}
}

// stores runs each test against both implementations.
func stores(t *testing.T) map[string]Store {
	t.Helper()
	sq, err := OpenSQLite(filepath.Join(t.TempDir(), "data", "results.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sq.Close() })
	return map[string]Store{"memory": NewMemoryStore(), "sqlite": sq}
}

func TestStore_SummaryAndTop(t *testing.T) {
	ctx := context.Background()
	for name, st := range stores(t) {
		st := st
		t.Run(name, func(t *testing.T) {
			require.NoError(t, st.Save(ctx, sample("a", 0, 120, 10, "no_more_moves")))
			require.NoError(t, st.Save(ctx, sample("a", 1, 300, 12, "target_reached")))
			require.NoError(t, st.Save(ctx, sample("a", 2, 300, 9, "target_reached")))
			require.NoError(t, st.Save(ctx, sample("a", 3, 60, 5, "turn_limit")))
			require.NoError(t, st.Save(ctx, sample("b", 0, 999, 1, "target_reached")))

			sum, err := st.Summary(ctx, "a")
			require.NoError(t, err)
			assert.Equal(t, 4, sum.Games)
			assert.InDelta(t, 195.0, sum.AvgScore, 1e-9)
			assert.InDelta(t, 9.0, sum.AvgMoves, 1e-9)
			assert.Equal(t, 300, sum.BestScore)
			assert.Equal(t, map[string]int{"no_more_moves": 1, "target_reached": 2, "turn_limit": 1}, sum.Reasons)

			top, err := st.Top(ctx, "a", 3)
			require.NoError(t, err)
			require.Len(t, top, 3)
			assert.Equal(t, []int{2, 1, 0}, []int{top[0].Game, top[1].Game, top[2].Game})
			assert.Equal(t, sample("a", 2, 300, 9, "target_reached"), top[0])

			all, err := st.Top(ctx, "", 0)
			require.NoError(t, err)
			require.Len(t, all, 5)
			assert.Equal(t, "b", all[0].RunID)
		})
	}
}

func TestStore_SaveReplaces(t *testing.T) {
	ctx := context.Background()
	for name, st := range stores(t) {
		st := st
		t.Run(name, func(t *testing.T) {
			require.NoError(t, st.Save(ctx, sample("r", 0, 10, 1, "no_more_moves")))
			require.NoError(t, st.Save(ctx, sample("r", 0, 40, 4, "no_more_moves")))

			sum, err := st.Summary(ctx, "r")
			require.NoError(t, err)
			assert.Equal(t, 1, sum.Games)
			assert.Equal(t, 40, sum.BestScore)
		})
	}
}

func TestStore_UnknownRun(t *testing.T) {
	ctx := context.Background()
	for name, st := range stores(t) {
		st := st
		t.Run(name, func(t *testing.T) {
			_, err := st.Summary(ctx, "missing")
			assert.ErrorIs(t, err, ErrNotFound)

			top, err := st.Top(ctx, "missing", 5)
			require.NoError(t, err)
			assert.Empty(t, top)
		})
	}
}

func TestOpenSQLite_MigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")
	first, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, first.Save(context.Background(), sample("x", 0, 5, 1, "target_reached")))
	require.NoError(t, first.Close())

	second, err := OpenSQLite(path)
	require.NoError(t, err)
	defer second.Close()
	sum, err := second.Summary(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Games)
}
