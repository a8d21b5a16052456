package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridiron/internal/config"
	"github.com/vovakirdan/gridiron/internal/engine"
	"github.com/vovakirdan/gridiron/internal/sim"
)

// app holds what every subcommand needs: resolved settings, the root
// logger and a simulator built from the loaded configuration.
type app struct {
	seed   int64
	dbPath string
	logger *log.Logger
	sim    *sim.Simulator
}

// newApp merges flags over environment settings and loads configuration.
// Flags win over environment variables.
func newApp() (*app, error) {
	env, err := config.ParseEnv()
	if err != nil {
		return nil, err
	}

	levelName := firstNonEmpty(flagLogLevel, env.LogLevel)
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("gridiron: log level %q: %w", levelName, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gridiron",
		Level:           level,
	})

	dir := firstNonEmpty(flagConfigDir, env.ConfigDir)
	engineCfg, err := config.LoadEngine(dir)
	if err != nil {
		return nil, err
	}
	tables, err := config.LoadTables(dir)
	if err != nil {
		return nil, err
	}
	seasonCfg, err := config.LoadSeason(dir)
	if err != nil {
		return nil, err
	}

	seed := flagSeed
	if seed == 0 {
		seed = env.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("configuration loaded", "dir", dir, "seed", seed, "plays", len(tables.Plays))

	eng := engine.New(engineCfg, tables, logger.With("component", "engine"))
	return &app{
		seed:   seed,
		dbPath: firstNonEmpty(flagDBPath, env.DB),
		logger: logger,
		sim:    sim.New(eng, seasonCfg, logger.With("component", "sim")),
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
