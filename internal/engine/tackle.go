package engine

import (
	"math"

	"github.com/vovakirdan/gridiron/internal/battle"
	"github.com/vovakirdan/gridiron/internal/config"
	"github.com/vovakirdan/gridiron/internal/core"
	"github.com/vovakirdan/gridiron/internal/league"
	"github.com/vovakirdan/gridiron/internal/rng"
)

// tackle ends the play with carrier brought down by tackler, then checks
// ball security at the given fumble rate. An empty format skips the log line.
// A carrier who has already gained enough to score is not brought down.
func (s *state) tackle(tackler, carrier *entity, rate float64, format string, args ...any) {
	if !s.once("tackle") {
		return
	}
	if s.scored(carrier) {
		s.live = false
		s.phase = phaseDone
		return
	}
	s.tackler = tackler
	tackler.action = "tackle"
	carrier.action = "down"
	if format != "" {
		s.logf(format, args...)
	}
	s.live = false
	s.phase = phaseDone

	if s.ctx.Weather == Rain {
		rate *= s.cfg.Fumble.RainMultiplier
	}
	rate *= 1 - carrier.rating(league.AttrToughness)/200
	if rng.Chance(s.src, rate) {
		s.fumble(carrier, tackler)
	}
}

// fumble knocks the ball loose from carrier and resolves the recovery.
func (s *state) fumble(carrier, forcer *entity) {
	if !s.once("fumble") {
		return
	}
	carrier.player.GameStats.Fumbles++
	forcer.player.GameStats.ForcedFumbles++

	s.looseBall(core.V(0, -1), 1)
	s.ball.Target = ""
	s.event(EventFumble, carrier, "FUMBLE! %s loses the ball, forced by %s", carrier.name(), forcer.name())

	if rng.Chance(s.src, s.cfg.Fumble.DefenseRecoverChance) {
		carrier.player.GameStats.FumblesLost++
		s.turnover = true
		s.giveBall(forcer)
		forcer.carrier = false
		s.logf("%s recovers for the defense", forcer.name())
	} else {
		s.giveBall(carrier)
		s.logf("%s falls on the loose ball", carrier.name())
	}
}

// scored reports whether carrier's gain so far reaches the end zone.
func (s *state) scored(carrier *entity) bool {
	if s.sack || s.turnover {
		return false
	}
	if s.play.Type != config.PlayPass || s.play.Sneak {
		return s.ctx.BallOn+s.runYards >= 100
	}
	return s.reachedEndZone(carrier.Pos.Y)
}

// reachedEndZone reports whether a carrier at field y has gained enough,
// in whole yards, to score from the current spot.
func (s *state) reachedEndZone(y float64) bool {
	return int(math.Round(y-s.los)) >= 100-s.ctx.BallOn
}

// yacTick runs the ball carrier downfield while the defense pursues. A
// defender who misses is stunned and may try again once recovered.
func (s *state) yacTick() {
	c := s.carrier
	if c == nil {
		s.live = false
		return
	}
	c.Target = core.V(c.Pos.X, core.GoalLine()+2)
	c.action = "run"
	for _, d := range s.defense {
		d.Blocked, d.Engaged = false, false
		d.Target = c.Pos
		if d.StunnedTicks == 0 {
			d.action = "pursue"
		}
	}
	for _, o := range s.offense {
		o.Blocked, o.Engaged = false, false
		if o != c {
			o.Target = o.Pos
		}
	}
	s.moveAll()
	s.syncBall()
	s.yards = c.Pos.Y - s.los

	if s.reachedEndZone(c.Pos.Y) {
		s.touchdown = true
		s.live = false
		s.phase = phaseDone
		return
	}

	for _, d := range s.defense {
		if d.StunnedTicks > 0 || d.Pos.Dist(c.Pos) > s.cfg.Physics.TackleRadius {
			continue
		}
		var st battle.State
		battle.Resolve(
			c.avg(league.AttrAgility, league.AttrSpeed)*c.Fatigue,
			d.avg(league.AttrTackling, league.AttrSpeed)*d.Fatigue,
			&st, s.cfg.Battle, s.src)
		if st.Margin > 0 {
			d.StunnedTicks = s.cfg.Pass.MissedTackleStun
			d.action = "missed"
			s.logf("%s makes %s miss", c.name(), d.name())
			continue
		}
		s.tackle(d, c, s.cfg.Fumble.TackleRate, "%s tackles %s at the %s", d.name(), c.name(), yardLine(c.Pos.Y))
		return
	}
}
