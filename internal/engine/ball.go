package engine

import (
	"github.com/vovakirdan/gridiron/internal/battle"
	"github.com/vovakirdan/gridiron/internal/core"
	"github.com/vovakirdan/gridiron/internal/league"
)

// handleArrival resolves a pass reaching its target. The outcome is decided
// once and stored; applying it is guarded per event, so calling this again
// on a later tick neither logs twice nor changes the ball a second time.
func (s *state) handleArrival() {
	cb := s.pass.target
	if cb == nil {
		return
	}
	if s.pass.arrival == arrivalNone {
		s.pass.arrival = s.contestCatch(cb)
	}

	switch s.pass.arrival {
	case arrivalCatch:
		s.applyCatch(cb)
	case arrivalInterception:
		s.applyInterception(cb)
	case arrivalSwat:
		s.applySwat(cb)
	case arrivalDrop:
		s.applyDrop(cb)
	case arrivalMiss:
		s.applyMiss(cb)
	}
}

// contestCatch decides what happens when the ball arrives. Catcher power
// is hands and agility plus separation; a defender within contest range
// opposes with hands and agility, otherwise a fixed difficulty does.
func (s *state) contestCatch(cb *coverBattle) arrival {
	if !s.pass.accurate {
		return arrivalMiss
	}
	pc := s.cfg.Pass
	rcv := cb.receiver

	catch := rcv.avg(league.AttrCatchingHands, league.AttrAgility) + cb.separation*pc.SeparationCatchBonus
	if s.ctx.Weather == Rain {
		catch -= pc.RainCatchPenalty
	}

	def := cb.defender
	contested := def != nil && cb.separation < pc.ContestRange
	opp := pc.UncontestedDifficulty
	if contested {
		opp = def.avg(league.AttrCatchingHands, league.AttrAgility)
		if cb.helper != nil {
			catch -= pc.DoubleCoveragePenalty
		}
	}

	var st battle.State
	battle.Resolve(catch, opp, &st, s.cfg.Battle, s.src)
	diff := st.Margin

	switch {
	case diff >= 0:
		return arrivalCatch
	case !contested || diff > -s.cfg.Battle.SlightWin:
		return arrivalDrop
	case diff > -s.cfg.Battle.DominantWin:
		return arrivalSwat
	case def.player.Attr(league.AttrCatchingHands) >= pc.InterceptionHands:
		return arrivalInterception
	default:
		return arrivalSwat
	}
}

func (s *state) applyCatch(cb *coverBattle) {
	rcv := cb.receiver
	if !s.once("catch:" + rcv.id()) {
		return
	}
	rcv.Pos = s.pass.aim
	rcv.Target = rcv.Pos
	rcv.action = "catch"
	s.giveBall(rcv)
	s.yards = rcv.Pos.Y - s.los
	s.phase = phaseYAC
	s.event(EventCatch, rcv, "%s catches it at the %s", rcv.name(), yardLine(rcv.Pos.Y))

	if s.reachedEndZone(rcv.Pos.Y) {
		s.touchdown = true
		s.live = false
		s.phase = phaseDone
	}
}

func (s *state) applyInterception(cb *coverBattle) {
	d := cb.defender
	if !s.once("interception:" + d.id()) {
		return
	}
	d.Pos = s.pass.aim
	d.Target = d.Pos
	d.action = "interception"
	s.giveBall(d)
	d.carrier = false
	s.interceptor = d
	s.turnover = true
	s.yards = 0
	s.live = false
	s.phase = phaseDone
	s.event(EventInterception, d, "INTERCEPTED! %s picks off the pass intended for %s", d.name(), cb.receiver.name())
}

func (s *state) applySwat(cb *coverBattle) {
	rcv := cb.receiver
	if !s.once("swat:" + rcv.id()) {
		return
	}
	d := cb.defender
	if d != nil {
		d.Pos = core.ClampToField(s.pass.aim.Add(core.V(0, -0.5)))
		d.action = "swat"
	}
	s.looseBall(s.ball.Vel.Scale(-0.3), 2.5)
	s.ball.Target = ""
	s.incomplete = true
	s.phase = phaseLoose
	s.pass.deadAt = s.tick + 3
	name := "A defender"
	if d != nil {
		name = d.name()
	}
	s.event(EventSwat, d, "%s swats the pass away from %s", name, rcv.name())
}

func (s *state) applyDrop(cb *coverBattle) {
	rcv := cb.receiver
	if !s.once("drop:" + rcv.id()) {
		return
	}
	rcv.Pos = s.pass.aim
	rcv.action = "drop"
	s.looseBall(s.ball.Vel.Scale(0.2), 1.5)
	s.ball.Target = ""
	s.incomplete = true
	s.phase = phaseLoose
	s.pass.deadAt = s.tick + 3
	s.event(EventDrop, rcv, "%s gets both hands on it but drops the pass", rcv.name())
}

func (s *state) applyMiss(cb *coverBattle) {
	rcv := cb.receiver
	if !s.once("miss:" + rcv.id()) {
		return
	}
	s.looseBall(s.ball.Vel.Scale(0.5), 0)
	s.ball.Target = ""
	s.incomplete = true
	s.phase = phaseLoose
	s.pass.deadAt = s.tick + 2
	s.logf("The pass sails out of reach of %s, incomplete", rcv.name())
}
