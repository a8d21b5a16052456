// Package engine resolves a single offensive play tick by tick.
//
// A play is simulated on a fresh state: participants are chosen from the
// teams' depth charts, contests are resolved with the battle primitive, and
// every discrete event is written to the play log together with a frame of
// the field at that moment. The engine never fails a play: configuration
// problems fall back to the default play and are reported through the
// logger, and missing participants end the play as a turnover.
package engine

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridiron/internal/config"
	"github.com/vovakirdan/gridiron/internal/core"
	"github.com/vovakirdan/gridiron/internal/league"
	"github.com/vovakirdan/gridiron/internal/rng"
	"github.com/vovakirdan/gridiron/internal/roster"
)

// Engine resolves plays against a fixed set of tuning values and tables.
type Engine struct {
	cfg      config.EngineConfig
	tables   config.Tables
	resolver *roster.Resolver
	logger   *log.Logger
}

// New creates an engine. A nil logger discards output.
func New(cfg config.EngineConfig, tables config.Tables, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{
		cfg:      cfg,
		tables:   tables,
		resolver: roster.New(tables, logger.With("component", "roster")),
		logger:   logger,
	}
}

// Config returns the engine tuning.
func (e *Engine) Config() config.EngineConfig {
	return e.cfg
}

// Tables returns the lookup tables the engine reads.
func (e *Engine) Tables() config.Tables {
	return e.tables
}

// ResolvePlay simulates one play of offense against defense. Players on
// the field get their game stats and fatigue updated in place. All
// randomness is drawn from src.
func (e *Engine) ResolvePlay(offense, defense *league.Team, playKey string, ctx Context, src rng.Source) Result {
	s := e.newState(playKey, ctx, src)
	if s.setup(offense, defense) {
		switch {
		case s.play.Sneak:
			s.runSneak()
		case s.play.Type == config.PlayPass:
			s.runPass()
		default:
			s.runRun()
		}
		s.finish()
	}
	return s.result()
}

func (e *Engine) newState(key string, ctx Context, src rng.Source) *state {
	if ctx.Weather == "" {
		ctx.Weather = Sunny
	}
	return &state{
		e:     e,
		cfg:   e.cfg,
		src:   src,
		ctx:   ctx,
		key:   key,
		los:   core.LineOfScrimmage(ctx.BallOn),
		live:  true,
		byID:  make(map[string]*entity),
		flags: make(map[string]bool),
	}
}

// finish settles yardage, scoring, stats and fatigue once the play is dead.
func (s *state) finish() {
	yards := s.runYards
	if s.play.Type == config.PlayPass && !s.play.Sneak {
		yards = int(math.Round(s.yards))
	}
	if s.incomplete {
		yards = 0
	}

	// Yardage cannot carry past either goal line
	maxGain := 100 - s.ctx.BallOn
	if yards >= maxGain {
		yards = maxGain
		if !s.turnover {
			s.touchdown = true
		}
	}
	if yards < -s.ctx.BallOn {
		yards = -s.ctx.BallOn
	}
	s.runYards = yards

	if s.touchdown && s.once("touchdown") {
		who := s.carrier
		name := "the offense"
		if who != nil {
			name = who.name()
		}
		s.event(EventTouchdown, who, "TOUCHDOWN! %s takes it in", name)
	}

	s.creditStats()
	for _, en := range s.entities() {
		en.player.AddFatigue(s.cfg.Fatigue.PlayCost)
	}

	switch {
	case s.turnover:
		s.logf("Turnover. Result: %s", gainText(yards))
	case s.incomplete:
		s.logf("Result: incomplete")
	default:
		s.logf("Result: %s", gainText(yards))
	}
	s.syncBall()
	s.capture()
}

func (s *state) result() Result {
	return Result{
		PlayKey:    s.key,
		PlayName:   s.play.Name,
		Pass:       s.play.Type == config.PlayPass,
		Yards:      s.runYards,
		Touchdown:  s.touchdown,
		Turnover:   s.turnover,
		Incomplete: s.incomplete,
		Sack:       s.sack,
		Ticks:      s.tick,
		Log:        s.log,
		Frames:     s.frames,
		Events:     s.events,
	}
}
