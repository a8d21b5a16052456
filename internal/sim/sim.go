// Package sim runs a league around the play engine: it generates players,
// drafts them onto teams, schedules weeks and plays games drive by drive.
//
// Everything that draws randomness takes an rng.Source, so a season is
// reproducible from a single seed.
package sim

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridiron/internal/config"
	"github.com/vovakirdan/gridiron/internal/engine"
	"github.com/vovakirdan/gridiron/internal/registry"
)

// ErrNoTeams is returned when a season has fewer than two teams.
var ErrNoTeams = errors.New("sim: need at least two teams")

// Simulator orchestrates seasons and games.
type Simulator struct {
	engine *engine.Engine
	tables config.Tables
	cfg    config.SeasonConfig
	logger *log.Logger
}

// New creates a simulator around an engine. A nil logger discards output.
func New(eng *engine.Engine, cfg config.SeasonConfig, logger *log.Logger) *Simulator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Simulator{
		engine: eng,
		tables: eng.Tables(),
		cfg:    cfg,
		logger: logger,
	}
}

// Engine returns the play engine the simulator drives.
func (s *Simulator) Engine() *engine.Engine {
	return s.engine
}

// Config returns the season tuning.
func (s *Simulator) Config() config.SeasonConfig {
	return s.cfg
}

// caller returns the play caller for a personality, falling back to
// the balanced caller for unknown IDs.
func (s *Simulator) caller(personality string) registry.Caller {
	if !registry.Exists(personality) {
		s.logger.Warn("unknown coach personality", "personality", personality)
		personality = "balanced"
	}
	c, err := registry.Create(personality)
	if err != nil {
		panic(err)
	}
	return c
}
