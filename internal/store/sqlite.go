// internal/store/sqlite.go
//
// SQLite implementation of Store.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout).
//   - Applying the embedded migrations (idempotent, recorded in _migrations).
//   - Recording results and answering summary/leaderboard queries.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/match3/assets"
)

// SQLite is a Store backed by a SQLite database file.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if missing) the database at path and
// applies pending migrations.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	if err := migrate(db, assets.Migrations); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLite{db: db}, nil
}

// openDB ensures the parent directory exists, then opens the database
// with a busy timeout and WAL journaling.
func openDB(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// migrate applies every sql/*.sql file of fsys in lexical order, each in
// its own transaction, skipping files already recorded in _migrations.
func migrate(db *sql.DB, fsys fs.FS) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(fsys, "sql/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := fs.ReadFile(fsys, f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// Save upserts the result row for (run, game).
func (s *SQLite) Save(ctx context.Context, r GameResult) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT OR REPLACE INTO results
            (run_id, game, seed, size, target, score, moves, reason, duration_ms, finished_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Game, r.Seed, r.Size, r.Target, r.Score, r.Moves, r.Reason,
		r.Duration.Milliseconds(), r.FinishedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save result %s/%d: %w", r.RunID, r.Game, err)
	}
	return nil
}

// Summary aggregates one run in SQL.
func (s *SQLite) Summary(ctx context.Context, runID string) (Summary, error) {
	sum := Summary{RunID: runID, Reasons: map[string]int{}}
	err := s.db.QueryRowContext(ctx, `
        SELECT COUNT(1), COALESCE(AVG(score), 0), COALESCE(AVG(moves), 0), COALESCE(MAX(score), 0)
        FROM results WHERE run_id=?`, runID,
	).Scan(&sum.Games, &sum.AvgScore, &sum.AvgMoves, &sum.BestScore)
	if err != nil {
		return Summary{}, err
	}
	if sum.Games == 0 {
		return Summary{}, ErrNotFound
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT reason, COUNT(1) FROM results WHERE run_id=? GROUP BY reason`, runID)
	if err != nil {
		return Summary{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var reason string
		var n int
		if err := rows.Scan(&reason, &n); err != nil {
			return Summary{}, err
		}
		sum.Reasons[reason] = n
	}
	return sum, rows.Err()
}

// Top fetches the leaderboard.
//
// - Ordered by score DESC, then moves ASC, then game ASC.
// - Default limit is 10 if not specified.
func (s *SQLite) Top(ctx context.Context, runID string, limit int) ([]GameResult, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT run_id, game, seed, size, target, score, moves, reason, duration_ms, finished_at
        FROM results
        WHERE ?='' OR run_id=?
        ORDER BY score DESC, moves ASC, game ASC, run_id ASC
        LIMIT ?`, runID, runID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]GameResult, 0, limit)
	for rows.Next() {
		var r GameResult
		var ms int64
		var finished string
		if err := rows.Scan(&r.RunID, &r.Game, &r.Seed, &r.Size, &r.Target, &r.Score, &r.Moves,
			&r.Reason, &ms, &finished); err != nil {
			return nil, err
		}
		r.Duration = time.Duration(ms) * time.Millisecond
		r.FinishedAt = mustParse(finished)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close releases the database handle.
func (s *SQLite) Close() error { return s.db.Close() }

// mustParse parses RFC3339 timestamps; on error returns zero time.
func mustParse(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, strings.TrimSpace(s))
	return t
}
