// internal/sim/sim.go
//
// Multi-game driver.
// Responsibilities:
//   - Run N independent sessions, each with its own seeded tile source.
//   - Optionally run sessions in parallel (errgroup, bounded by Workers).
//   - Cap each session at MaxTurns steps ("turn_limit").
//   - Record one GameResult per game and return the run summary.
//   - In verbose mode print every turn, buffered per game so parallel
//     games never interleave.

package sim

import (
	"bytes"
	"context"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/match3/internal/board"
	"github.com/robalobadob/match3/internal/config"
	"github.com/robalobadob/match3/internal/game"
	"github.com/robalobadob/match3/internal/report"
	"github.com/robalobadob/match3/internal/seed"
	"github.com/robalobadob/match3/internal/store"
)

// TurnLimit is the reason recorded for a game stopped by MaxTurns.
const TurnLimit = "turn_limit"

// Runner plays simulation runs and records their results.
type Runner struct {
	cfg   config.Config
	store store.Store
	out   io.Writer
	now   func() time.Time

	mu sync.Mutex // serializes writes to out
}

// New returns a Runner. out receives verbose output and may be io.Discard.
func New(cfg config.Config, st store.Store, out io.Writer) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Runner{cfg: cfg, store: st, out: out, now: time.Now}, nil
}

// Run plays cfg.Games games under a fresh run id and returns the summary.
func (r *Runner) Run(ctx context.Context) (store.Summary, error) {
	runID := uuid.NewString()
	key := seed.RunKey(r.cfg.Seed, r.now())
	log.Info().
		Str("run", runID).
		Str("seedKey", key).
		Int("games", r.cfg.Games).
		Int("size", r.cfg.Size).
		Int("target", r.cfg.Target).
		Int("workers", r.cfg.Workers).
		Msg("run started")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)
	for i := 0; i < r.cfg.Games; i++ {
		i := i
		g.Go(func() error {
			res, err := r.playGame(gctx, runID, i, seed.ForGame(key, i))
			if err != nil {
				return err
			}
			return r.store.Save(gctx, res)
		})
	}
	if err := g.Wait(); err != nil {
		return store.Summary{}, err
	}

	sum, err := r.store.Summary(ctx, runID)
	if err != nil {
		return store.Summary{}, err
	}
	log.Info().
		Str("run", runID).
		Float64("avgScore", sum.AvgScore).
		Float64("avgMoves", sum.AvgMoves).
		Int("best", sum.BestScore).
		Msg("run finished")
	return sum, nil
}

// playGame runs one session to completion or to the turn cap.
func (r *Runner) playGame(ctx context.Context, runID string, index int, gameSeed int64) (store.GameResult, error) {
	started := r.now()
	src, err := board.NewRandSource(rand.New(rand.NewSource(gameSeed)), r.cfg.Kinds)
	if err != nil {
		return store.GameResult{}, err
	}
	s, err := game.New(r.cfg.Size, r.cfg.Target, src)
	if err != nil {
		return store.GameResult{}, err
	}

	var buf bytes.Buffer
	if r.cfg.Verbose {
		report.Board(&buf, s.Snapshot())
	}

	reason := TurnLimit
	for turn := 0; turn < r.cfg.MaxTurns; turn++ {
		if err := ctx.Err(); err != nil {
			return store.GameResult{}, err
		}
		out := s.Step()
		if r.cfg.Verbose {
			report.Turn(&buf, out)
			if out.Move != nil {
				report.Board(&buf, s.Snapshot())
			}
		}
		if out.Finished {
			reason = string(out.Reason)
			break
		}
	}
	r.flush(&buf)

	res := store.GameResult{
		RunID:      runID,
		Game:       index,
		Seed:       gameSeed,
		Size:       r.cfg.Size,
		Target:     r.cfg.Target,
		Score:      s.Score(),
		Moves:      s.Moves(),
		Reason:     reason,
		Duration:   r.now().Sub(started),
		FinishedAt: r.now().UTC(),
	}
	log.Info().
		Str("run", runID).
		Int("game", index).
		Int("score", res.Score).
		Int("moves", res.Moves).
		Str("reason", reason).
		Dur("took", res.Duration).
		Msg("game finished")
	return res, nil
}

func (r *Runner) flush(buf *bytes.Buffer) {
	if buf.Len() == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = buf.WriteTo(r.out)
}
