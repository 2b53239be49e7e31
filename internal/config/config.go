// internal/config/config.go
//
// Simulation driver configuration.
//
// Sources, later ones overriding earlier ones:
//   1. Built-in defaults (11×11 board, 4 kinds, target 10000, 100 games).
//   2. An optional .env file in the working directory (godotenv).
//   3. Environment variables (MATCH3_*).
//   4. An optional YAML file.
//   5. Command-line flags (applied by the caller).
//
// Environment variables:
//   MATCH3_GAMES, MATCH3_SIZE, MATCH3_TARGET, MATCH3_KINDS, MATCH3_SEED,
//   MATCH3_WORKERS, MATCH3_MAX_TURNS, MATCH3_VERBOSE, MATCH3_DB,
//   LOG_LEVEL, LOG_FORMAT

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/match3/internal/board"
)

// Config drives one simulation run.
type Config struct {
	Games     int    `yaml:"games"`
	Size      int    `yaml:"size"`
	Target    int    `yaml:"target"`
	Kinds     int    `yaml:"kinds"`
	Seed      int64  `yaml:"seed"` // 0 = derive from today's date
	Workers   int    `yaml:"workers"`
	MaxTurns  int    `yaml:"max_turns"`
	Verbose   bool   `yaml:"verbose"`
	DB        string `yaml:"db"` // empty = in-memory results
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"` // "json" or "console"
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Games:     100,
		Size:      11,
		Target:    10000,
		Kinds:     board.DefaultKinds,
		Workers:   1,
		MaxTurns:  5000,
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// Load builds a Config from defaults, .env, the environment and, if path
// is non-empty, a YAML file.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	ints := []struct {
		key string
		dst *int
	}{
		{"MATCH3_GAMES", &c.Games},
		{"MATCH3_SIZE", &c.Size},
		{"MATCH3_TARGET", &c.Target},
		{"MATCH3_KINDS", &c.Kinds},
		{"MATCH3_WORKERS", &c.Workers},
		{"MATCH3_MAX_TURNS", &c.MaxTurns},
	}
	for _, f := range ints {
		if v := os.Getenv(f.key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", f.key, err)
			}
			*f.dst = n
		}
	}
	if v := os.Getenv("MATCH3_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("MATCH3_SEED: %w", err)
		}
		c.Seed = n
	}
	if v := os.Getenv("MATCH3_VERBOSE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("MATCH3_VERBOSE: %w", err)
		}
		c.Verbose = b
	}
	c.DB = getEnv("MATCH3_DB", c.DB)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogFormat = strings.ToLower(getEnv("LOG_FORMAT", c.LogFormat))
	return nil
}

// Validate checks ranges. Board parameters fail with
// *board.InvalidConfigError.
func (c Config) Validate() error {
	switch {
	case c.Size <= 0:
		return &board.InvalidConfigError{Field: "size", Value: c.Size, Want: "> 0"}
	case c.Target <= 0:
		return &board.InvalidConfigError{Field: "target score", Value: c.Target, Want: "> 0"}
	case c.Kinds < 1:
		return &board.InvalidConfigError{Field: "kinds", Value: c.Kinds, Want: ">= 1"}
	case c.Games <= 0:
		return errors.New("config: games must be > 0")
	case c.Workers <= 0:
		return errors.New("config: workers must be > 0")
	case c.MaxTurns <= 0:
		return errors.New("config: max turns must be > 0")
	}
	return nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
