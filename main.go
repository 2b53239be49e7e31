package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/match3/internal/config"
	"github.com/robalobadob/match3/internal/report"
	"github.com/robalobadob/match3/internal/sim"
	"github.com/robalobadob/match3/internal/store"
)

var (
	configPath string
	runID      string
	topLimit   int
	overrides  config.Config
)

func main() {
	root := &cobra.Command{
		Use:           "match3",
		Short:         "Simulate greedy match-3 games",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&overrides.DB, "db", "", "SQLite results database (default in-memory)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Play a batch of games and print the averages",
		RunE:  runSimulation,
	}
	f := runCmd.Flags()
	f.IntVarP(&overrides.Games, "games", "n", 0, "number of games")
	f.IntVar(&overrides.Size, "size", 0, "board size")
	f.IntVar(&overrides.Target, "target", 0, "target score")
	f.IntVar(&overrides.Kinds, "kinds", 0, "number of tile kinds")
	f.Int64Var(&overrides.Seed, "seed", 0, "run seed (0 = today's date)")
	f.IntVarP(&overrides.Workers, "workers", "w", 0, "games played in parallel")
	f.IntVar(&overrides.MaxTurns, "max-turns", 0, "turn cap per game")
	f.BoolVarP(&overrides.Verbose, "verbose", "v", false, "print every turn")

	topCmd := &cobra.Command{
		Use:   "top",
		Short: "Print the highest scoring recorded games",
		RunE:  showTop,
	}
	topCmd.Flags().StringVar(&runID, "run", "", "restrict to one run id")
	topCmd.Flags().IntVar(&topLimit, "limit", 10, "rows to print")

	root.AddCommand(runCmd, topCmd)
	if err := root.Execute(); err != nil {
		log.Fatal().Err(err).Msg("match3 failed")
	}
}

// loadConfig merges file/env config with the flags that were set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.DB = overrides.DB
	}
	if flags.Changed("games") {
		cfg.Games = overrides.Games
	}
	if flags.Changed("size") {
		cfg.Size = overrides.Size
	}
	if flags.Changed("target") {
		cfg.Target = overrides.Target
	}
	if flags.Changed("kinds") {
		cfg.Kinds = overrides.Kinds
	}
	if flags.Changed("seed") {
		cfg.Seed = overrides.Seed
	}
	if flags.Changed("workers") {
		cfg.Workers = overrides.Workers
	}
	if flags.Changed("max-turns") {
		cfg.MaxTurns = overrides.MaxTurns
	}
	if flags.Changed("verbose") {
		cfg.Verbose = overrides.Verbose
	}
	setupLogging(cfg)
	return cfg, nil
}

func setupLogging(cfg config.Config) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func openStore(path string) (store.Store, error) {
	if path == "" {
		return store.NewMemoryStore(), nil
	}
	return store.OpenSQLite(path)
}

func runSimulation(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, err := openStore(cfg.DB)
	if err != nil {
		return err
	}
	defer st.Close()

	r, err := sim.New(cfg, st, os.Stdout)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sum, err := r.Run(ctx)
	if err != nil {
		return err
	}
	report.Summary(os.Stdout, sum)
	return nil
}

func showTop(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.DB == "" {
		log.Warn().Msg("no --db or MATCH3_DB set; in-memory store is empty")
	}
	st, err := openStore(cfg.DB)
	if err != nil {
		return err
	}
	defer st.Close()

	rows, err := st.Top(cmd.Context(), runID, topLimit)
	if err != nil {
		return err
	}
	return report.Leaderboard(os.Stdout, rows)
}
