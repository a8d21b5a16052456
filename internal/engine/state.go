package engine

import (
	"fmt"
	"math"

	"github.com/vovakirdan/gridiron/internal/battle"
	"github.com/vovakirdan/gridiron/internal/config"
	"github.com/vovakirdan/gridiron/internal/core"
	"github.com/vovakirdan/gridiron/internal/league"
	"github.com/vovakirdan/gridiron/internal/physics"
	"github.com/vovakirdan/gridiron/internal/rng"
)

// entity is a player on the field for the current play.
type entity struct {
	physics.Body

	player     *league.Player
	slot       string
	side       league.Side
	pos        league.Position
	assignment string
	zone       string

	route     *config.Route
	waypoints []core.Vec
	waypoint  int

	action  string
	hasBall bool
	carrier bool
}

func (e *entity) id() string   { return e.player.ID }
func (e *entity) name() string { return e.player.Name }

func (e *entity) rating(a league.Attr) float64 {
	return e.player.Rating(a)
}

// avg returns the mean rating of the given attributes.
func (e *entity) avg(attrs ...league.Attr) float64 {
	if len(attrs) == 0 {
		return 0
	}
	sum := 0.0
	for _, a := range attrs {
		sum += e.rating(a)
	}
	return sum / float64(len(attrs))
}

// ball is the play-scoped ball state.
type ball struct {
	Pos    core.Vec
	Z      float64
	Vel    core.Vec
	VZ     float64
	InAir  bool
	Loose  bool
	Target string // Receiver a pass is aimed at, or the player holding it
	Thrown string // Thrower ID
}

type phase int

const (
	phaseDropback phase = iota
	phaseFlight
	phaseLoose
	phaseYAC
	phaseDone
)

// rushBattle pairs a pass rusher with zero, one or two blockers.
type rushBattle struct {
	rusher   *entity
	blockers []*entity
	state    battle.State
	beaten   bool
}

// coverBattle pairs a receiver with a primary defender and optional deep help.
type coverBattle struct {
	receiver   *entity
	defender   *entity
	helper     *entity
	state      battle.State
	separation float64
}

// arrival is the resolved outcome of a pass reaching its target.
type arrival int

const (
	arrivalNone arrival = iota
	arrivalCatch
	arrivalInterception
	arrivalSwat
	arrivalDrop
	arrivalMiss
)

type passState struct {
	thrown      bool
	target      *coverBattle
	aim         core.Vec
	accurate    bool
	pressured   bool
	scrambling  bool
	flightTicks int
	arrival     arrival
	deadAt      int
}

// state is everything a single play mutates. It is discarded when the play ends.
type state struct {
	e   *Engine
	cfg config.EngineConfig
	src rng.Source
	ctx Context

	key  string
	play config.Play
	los  float64

	tick  int
	live  bool
	phase phase

	offense []*entity
	defense []*entity
	byID    map[string]*entity

	qb      *entity
	carrier *entity
	ball    ball

	passRush []*rushBattle
	coverage []*coverBattle
	pass     passState

	rusher      *entity // Designated runner of a run play
	interceptor *entity
	tackler     *entity

	// One-time event flags keyed by event and entity.
	flags map[string]bool

	yards      float64 // Pass play gain, from the carrier's spot
	runYards   int     // Run play gain, accumulated by stage; final yards after finish
	touchdown  bool
	turnover   bool
	incomplete bool
	sack       bool

	log    []string
	frames []Frame
	events []Event
}

// once reports true the first time key is seen in this play.
func (s *state) once(key string) bool {
	if s.flags[key] {
		return false
	}
	s.flags[key] = true
	return true
}

func (s *state) logf(format string, args ...any) {
	s.log = append(s.log, fmt.Sprintf(format, args...))
}

// event writes a log entry for a discrete event and snapshots the field
// immediately so a frame reflects the state the entry describes.
func (s *state) event(kind EventKind, who *entity, format string, args ...any) {
	s.logf(format, args...)
	ev := Event{Index: len(s.log) - 1, Tick: s.tick, Kind: kind}
	if who != nil {
		ev.PlayerID = who.id()
	}
	s.events = append(s.events, ev)
	s.capture()
}

func (s *state) entities() []*entity {
	all := make([]*entity, 0, len(s.offense)+len(s.defense))
	all = append(all, s.offense...)
	return append(all, s.defense...)
}

// syncBall keeps a held ball at its holder's spot.
func (s *state) syncBall() {
	if s.ball.InAir || s.ball.Loose {
		return
	}
	if holder, ok := s.byID[s.ball.Target]; ok && holder.hasBall {
		s.ball.Pos = holder.Pos
		s.ball.Z = 1
	}
}

// capture appends a frame of the current field state.
func (s *state) capture() {
	pos := core.ClampToField(s.ball.Pos)
	f := Frame{
		Tick:     s.tick,
		LogIndex: len(s.log) - 1,
		Ball: BallFrame{
			X:              pos.X,
			Y:              pos.Y,
			Z:              math.Max(s.ball.Z, 0),
			InAir:          s.ball.InAir,
			IsLoose:        s.ball.Loose,
			TargetPlayerID: s.ball.Target,
		},
		Players: make([]PlayerFrame, 0, len(s.offense)+len(s.defense)),
	}
	for _, en := range s.entities() {
		p := core.ClampToField(en.Pos)
		f.Players = append(f.Players, PlayerFrame{
			ID:            en.id(),
			Name:          en.name(),
			Slot:          en.slot,
			Side:          en.side,
			X:             p.X,
			Y:             p.Y,
			Action:        en.action,
			IsBallCarrier: en.carrier,
			HasBall:       en.hasBall,
		})
	}
	s.frames = append(s.frames, f)
}

// giveBall hands possession to en, clearing any previous holder.
func (s *state) giveBall(en *entity) {
	for _, o := range s.entities() {
		o.hasBall = false
		o.carrier = false
	}
	en.hasBall = true
	en.carrier = true
	s.carrier = en
	s.ball.InAir = false
	s.ball.Loose = false
	s.ball.Vel = core.Vec{}
	s.ball.VZ = 0
	s.ball.Target = en.id()
	s.ball.Pos = en.Pos
	s.ball.Z = 1
}

// looseBall knocks the ball free with a new velocity.
func (s *state) looseBall(vel core.Vec, vz float64) {
	for _, o := range s.entities() {
		o.hasBall = false
		o.carrier = false
	}
	s.ball.Loose = true
	s.ball.InAir = false
	s.ball.Vel = vel
	s.ball.VZ = vz
}

// tickStuns counts down stun timers at the start of a tick.
func (s *state) tickStuns() {
	for _, en := range s.entities() {
		if en.StunnedTicks > 0 {
			en.StunnedTicks--
		}
	}
}

// moveAll advances every participant one tick.
func (s *state) moveAll() {
	for _, en := range s.entities() {
		physics.Step(&en.Body, s.cfg.Physics)
	}
}

// yardLine describes a field Y coordinate from the offense's point of view.
func yardLine(y float64) string {
	yl := int(math.Round(y - core.EndZoneDepth))
	switch {
	case yl <= 0:
		return "own goal line"
	case yl >= 100:
		return "goal line"
	case yl == 50:
		return "50"
	case yl < 50:
		return fmt.Sprintf("own %d", yl)
	default:
		return fmt.Sprintf("opp %d", 100-yl)
	}
}

// gainText formats a yardage change for the play log.
func gainText(yards int) string {
	switch {
	case yards > 1:
		return fmt.Sprintf("a gain of %d", yards)
	case yards == 1:
		return "a gain of 1"
	case yards == 0:
		return "no gain"
	default:
		return fmt.Sprintf("a loss of %d", -yards)
	}
}
