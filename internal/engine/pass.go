package engine

import (
	"math"
	"sort"
	"strings"

	"github.com/vovakirdan/gridiron/internal/battle"
	"github.com/vovakirdan/gridiron/internal/config"
	"github.com/vovakirdan/gridiron/internal/core"
	"github.com/vovakirdan/gridiron/internal/league"
	"github.com/vovakirdan/gridiron/internal/rng"
)

// runPass drives the pass play tick loop until the ball is dead or the
// tick cap is reached.
func (s *state) runPass() {
	s.setupPassBattles()

	qb := s.qb
	qb.action = "dropback"
	qb.Target = core.ClampToField(core.V(qb.Pos.X, s.los-s.cfg.Pass.DropbackDepth))

	if s.play.PlayAction {
		s.fakeHandoff()
	}
	s.capture()

	s.phase = phaseDropback
	for s.live {
		if s.tick >= s.cfg.Physics.MaxTicks {
			s.whistle()
			break
		}
		s.tick++
		s.tickStuns()
		switch s.phase {
		case phaseDropback:
			s.dropbackTick()
		case phaseFlight:
			s.flightTick()
		case phaseLoose:
			s.looseTick()
		case phaseYAC:
			s.yacTick()
		default:
			s.live = false
		}
		s.syncBall()
		s.capture()
	}
}

// fakeHandoff freezes the second level for the play-action window.
// Blitzers are already coming and ignore the fake.
func (s *state) fakeHandoff() {
	s.logf("%s fakes the handoff", s.qb.name())
	for _, d := range s.defense {
		if d.assignment == config.AssignRush {
			continue
		}
		if d.pos == league.LB || d.pos == league.S {
			d.StunnedTicks = s.cfg.Pass.PlayActionTicks + 1
			d.action = "bite"
		}
	}
}

// whistle ends a play that hit the tick cap with whatever has been gained.
func (s *state) whistle() {
	s.e.logger.Warn("play hit tick cap", "play", s.key, "ticks", s.tick, "phase", s.phase)
	switch s.phase {
	case phaseDropback:
		s.logf("%s throws it away as the play breaks down", s.qb.name())
		s.incomplete = true
	case phaseFlight:
		s.ball.Pos = s.pass.aim
		s.handleArrival()
	case phaseLoose:
		s.incomplete = true
	case phaseYAC:
		if c := s.carrier; c != nil {
			if d := nearest(s.defense, c.Pos); d != nil {
				s.tackle(d, c, s.cfg.Fumble.TackleRate, "%s finally runs down %s at the %s", d.name(), c.name(), yardLine(c.Pos.Y))
			} else {
				s.logf("%s steps out of bounds at the %s", c.name(), yardLine(c.Pos.Y))
			}
		}
	}
	s.live = false
	s.phase = phaseDone
}

// setupPassBattles pairs rushers with blockers and receivers with defenders.
func (s *state) setupPassBattles() {
	var rushers, blockers, cover []*entity
	for _, d := range s.defense {
		switch d.assignment {
		case config.AssignRush:
			rushers = append(rushers, d)
		default:
			cover = append(cover, d)
		}
	}
	for _, o := range s.offense {
		if o != s.qb && o.route == nil {
			blockers = append(blockers, o)
			o.action = "pass block"
			o.Target = o.Pos.Add(core.V(0, -1))
		}
	}

	// Strongest rushers get blockers first
	sort.SliceStable(rushers, func(i, j int) bool {
		return rushPower(rushers[i]) > rushPower(rushers[j])
	})
	free := append([]*entity(nil), blockers...)
	var best *rushBattle
	for _, r := range rushers {
		rb := &rushBattle{rusher: r}
		if len(free) > 0 {
			idx := 0
			for i, b := range free {
				if math.Abs(b.Pos.X-r.Pos.X) < math.Abs(free[idx].Pos.X-r.Pos.X) {
					idx = i
				}
			}
			rb.blockers = append(rb.blockers, free[idx])
			free = append(free[:idx], free[idx+1:]...)
			if best == nil {
				best = rb
			}
		}
		r.action = "rush"
		r.Target = s.qb.Pos
		s.passRush = append(s.passRush, rb)
	}
	if best != nil && len(free) > 0 {
		best.blockers = append(best.blockers, free[0])
		s.logf("%s and %s double-team %s", best.blockers[0].name(), free[0].name(), best.rusher.name())
	}
	for _, rb := range s.passRush {
		if len(rb.blockers) == 0 {
			s.logf("%s comes in unblocked", rb.rusher.name())
		}
	}

	taken := make(map[*entity]bool)
	for _, o := range s.offense {
		if o.route == nil {
			continue
		}
		zone := routeZone(o.Pos, *o.route)
		var def *entity
		for _, d := range cover {
			if d.zone == zone && !taken[d] {
				def = d
				break
			}
		}
		if def == nil {
			def = nearest(filter(cover, func(d *entity) bool { return !taken[d] }), o.Pos)
		}
		if def == nil {
			def = nearest(cover, o.Pos)
		}
		if def != nil {
			taken[def] = true
		}

		cb := &coverBattle{receiver: o, defender: def}
		if o.route.Deep() {
			cb.helper = nearest(filter(cover, func(d *entity) bool {
				return d != def && strings.HasPrefix(d.zone, "deep_")
			}), o.Pos)
		}
		o.action = "route"
		o.Target = o.waypoints[0]
		s.coverage = append(s.coverage, cb)
	}

	for _, d := range cover {
		if !taken[d] {
			d.action = "zone"
			d.Target = zoneSpot(d.zone, s.los, d.Pos)
		}
	}
}

func rushPower(r *entity) float64 {
	return r.avg(league.AttrStrength, league.AttrBlockShedding)
}

// dropbackTick runs one tick before the throw.
func (s *state) dropbackTick() {
	s.rushTick()
	s.coverTick()
	s.moveAll()
	s.advanceRoutes()
	if s.pressureTick() {
		return
	}
	s.decide()
}

// rushTick updates every pass-rush battle.
func (s *state) rushTick() {
	for _, rb := range s.passRush {
		r := rb.rusher
		if rb.beaten || len(rb.blockers) == 0 {
			r.Engaged = false
			r.Target = s.qb.Pos
			continue
		}

		var active []*entity
		for _, b := range rb.blockers {
			if b.StunnedTicks == 0 {
				active = append(active, b)
			}
		}
		if len(active) == 0 {
			rb.beaten = true
			r.Engaged = false
			r.Target = s.qb.Pos
			continue
		}

		power := active[0].avg(league.AttrBlocking, league.AttrStrength)
		if len(active) > 1 {
			power += s.cfg.Battle.DoubleTeamBonus
		}
		switch battle.Resolve(power, rushPower(r), &rb.state, s.cfg.Battle, s.src) {
		case battle.DecisiveB:
			rb.beaten = true
			r.Engaged = false
			r.action = "rush"
			r.Target = s.qb.Pos
			for _, b := range active {
				b.Engaged = false
				b.StunnedTicks = s.cfg.Pass.BeatenBlockStun
				b.action = "beaten"
			}
			if s.once("beat:" + r.id()) {
				s.logf("%s beats %s's block", r.name(), active[0].name())
			}
		case battle.DecisiveA:
			r.Engaged = false
			r.StunnedTicks = s.cfg.Pass.BeatenBlockStun
			r.action = "stonewalled"
			for _, b := range active {
				b.Engaged = false
			}
		default:
			r.Engaged = true
			r.action = "engaged"
			for _, b := range active {
				b.Engaged = true
				b.action = "pass block"
			}
		}
	}
}

// coverTick updates separation for every receiver.
func (s *state) coverTick() {
	for _, cb := range s.coverage {
		rcv := cb.receiver
		d := cb.defender
		if d == nil {
			cb.separation = s.cfg.Pass.MaxSeparation
			continue
		}
		progress := 1.0
		if rcv.route.DevelopTicks > 0 {
			progress = math.Min(float64(s.tick)/float64(rcv.route.DevelopTicks), 1)
		}
		rPower := rcv.avg(league.AttrSpeed, league.AttrAgility)*rcv.Fatigue + progress*s.cfg.Pass.RouteProgressBonus
		dPower := d.avg(league.AttrSpeed, league.AttrAgility) * d.Fatigue
		if d.StunnedTicks > 0 {
			dPower /= 2
		}

		switch battle.Resolve(rPower, dPower, &cb.state, s.cfg.Battle, s.src) {
		case battle.DecisiveA:
			cb.separation += 2 * s.cfg.Pass.SeparationGrowth
		case battle.SlightA:
			cb.separation += s.cfg.Pass.SeparationGrowth
		case battle.SlightB:
			cb.separation -= s.cfg.Pass.SeparationLoss
		case battle.DecisiveB:
			cb.separation -= 2 * s.cfg.Pass.SeparationLoss
		}
		cb.separation = core.ClampF(cb.separation, 0, s.cfg.Pass.MaxSeparation)
	}
}

// advanceRoutes moves receivers along their waypoints and keeps defenders
// trailing by the current separation.
func (s *state) advanceRoutes() {
	for _, cb := range s.coverage {
		rcv := cb.receiver
		if rcv.Pos.Dist(rcv.Target) <= s.cfg.Physics.ArrivalRadius && rcv.waypoint < len(rcv.waypoints)-1 {
			rcv.waypoint++
			rcv.Target = rcv.waypoints[rcv.waypoint]
		}
		if d := cb.defender; d != nil {
			d.Target = core.ClampToField(rcv.Pos.Sub(core.V(0, cb.separation)))
			if d.StunnedTicks == 0 {
				d.action = "cover"
			}
		}
		if h := cb.helper; h != nil {
			h.Target = core.ClampToField(core.V(rcv.Pos.X, math.Max(rcv.Pos.Y+4, h.Pos.Y)))
		}
	}
}

// pressureTick checks free rushers against the passer. Rushers close
// enough force an evade-then-shed contest; losing both stages is a sack.
// It returns true when the play ended.
func (s *state) pressureTick() bool {
	qb := s.qb
	s.pass.pressured = false
	for _, rb := range s.passRush {
		r := rb.rusher
		unblocked := len(rb.blockers) == 0
		if (!rb.beaten && !unblocked) || r.StunnedTicks > 0 {
			continue
		}
		dist := r.Pos.Dist(qb.Pos)
		if dist <= s.cfg.Pass.PressureRadius || (unblocked && s.tick > s.cfg.Pass.UnblockedGraceTicks) {
			s.pass.pressured = true
		}
		if dist > s.cfg.Pass.SackRadius {
			continue
		}

		var evade battle.State
		if battle.Resolve(
			qb.avg(league.AttrAgility, league.AttrSpeed)*qb.Fatigue,
			r.avg(league.AttrAgility, league.AttrSpeed)*r.Fatigue,
			&evade, s.cfg.Battle, s.src).WonByA() {
			r.StunnedTicks = s.cfg.Pass.EvadeStun
			r.action = "missed"
			if s.once("evade:" + r.id()) {
				s.logf("%s slips away from %s", qb.name(), r.name())
			}
			s.scramble(r)
			continue
		}

		var shed battle.State
		if !battle.Resolve(
			qb.rating(league.AttrStrength),
			r.avg(league.AttrStrength, league.AttrTackling),
			&shed, s.cfg.Battle, s.src).WonByB() {
			r.StunnedTicks = s.cfg.Pass.ShakeOffStun
			r.action = "missed"
			if s.once("shake:" + r.id()) {
				s.logf("%s shakes off %s", qb.name(), r.name())
			}
			continue
		}

		s.sackBy(r)
		return true
	}
	return false
}

// scramble moves the passer laterally away from an escaped rusher.
func (s *state) scramble(from *entity) {
	qb := s.qb
	dir := 1.0
	if from.Pos.X > qb.Pos.X {
		dir = -1
	}
	qb.Target = core.ClampToField(core.V(qb.Pos.X+dir*6, qb.Pos.Y))
	qb.action = "scramble"
	s.pass.scrambling = true
}

func (s *state) sackBy(r *entity) {
	if !s.once("sack") {
		return
	}
	qb := s.qb
	s.sack = true
	s.yards = qb.Pos.Y - s.los
	s.carrier = qb
	qb.carrier = true
	r.action = "sack"
	s.event(EventSack, r, "SACKED! %s drops %s for %s", r.name(), qb.name(), gainText(int(math.Round(s.yards))))
	s.tackle(r, qb, s.cfg.Fumble.SackRate, "")
}

// decide evaluates the passer's throw triggers. Pressure only forces the
// ball out once the drop is set, and then only as often as the passer's
// reads allow; a passer who holds it gives the rush another tick.
func (s *state) decide() {
	iq := s.qb.rating(league.AttrPlaybookIQ)
	decideAt := s.cfg.Pass.DecisionBaseTicks - int(iq/99*float64(s.cfg.Pass.DecisionIQTicks))
	if s.play.PlayAction {
		decideAt += s.cfg.Pass.PlayActionTicks
	}

	var reason string
	switch {
	case s.pass.pressured && s.tick >= s.cfg.Pass.MinDropbackTicks &&
		rng.Chance(s.src, s.cfg.Pass.PressureThrowBase+iq/99*s.cfg.Pass.PressureThrowIQ):
		reason = "under pressure"
	case s.pass.scrambling && s.tick >= s.cfg.Pass.MinDropbackTicks && s.openReceiver() != nil:
		reason = "on the run"
	case s.tick >= s.cfg.Pass.ThrowBudgetTicks:
		reason = "before the play breaks down"
	case s.tick >= decideAt:
		reason = "after working through the reads"
	case s.tick >= s.cfg.Pass.MinDropbackTicks && s.openReceiver() != nil &&
		rng.Chance(s.src, s.cfg.Pass.OpenThrowBase+iq/200):
		reason = "hitting the open man"
	}
	if reason != "" {
		s.throw(reason)
	}
}

func (s *state) openReceiver() *coverBattle {
	for _, cb := range s.coverage {
		if cb.separation >= s.cfg.Pass.OpenSeparation {
			return cb
		}
	}
	return nil
}

// bestTarget picks the most open receiver; ties go to the first in formation order.
func (s *state) bestTarget() *coverBattle {
	var best *coverBattle
	for _, cb := range s.coverage {
		if best == nil || cb.separation > best.separation {
			best = cb
		}
	}
	return best
}

// throw releases the ball toward the chosen receiver.
func (s *state) throw(reason string) {
	qb := s.qb
	cb := s.bestTarget()
	if cb == nil {
		s.logf("%s finds nobody and throws it away", qb.name())
		s.incomplete = true
		s.live = false
		s.phase = phaseDone
		return
	}
	rcv := cb.receiver
	phys := s.cfg.Physics
	pc := s.cfg.Pass

	depth := rcv.Pos.Y - s.los
	acc := pc.AccuracyBase + qb.rating(league.AttrThrowingAccuracy)*pc.AccuracyPerPoint
	if s.pass.pressured {
		acc -= pc.PressurePenalty
	}
	if depth > 0 {
		acc -= depth * pc.DepthPenaltyPerYard
	}
	if depth >= pc.DeepYards {
		switch s.ctx.Weather {
		case Windy:
			acc -= pc.WindyDeepPenalty
		case Rain:
			acc -= pc.RainDeepPenalty
		}
	}
	acc = core.ClampF(acc, 0.05, 0.98)
	s.pass.accurate = rng.Chance(s.src, acc)

	// Lead the receiver along the current path
	dir := rcv.Target.Sub(rcv.Pos).Unit()
	lead := rcv.Pos.Dist(qb.Pos) / phys.BallSpeedYPS
	aim := rcv.Pos.Add(dir.Scale(rcv.CurrentSpeedYPS * lead))
	if !s.pass.accurate {
		if dir == (core.Vec{}) {
			dir = core.V(0, 1)
		}
		perp := core.V(-dir.Y, dir.X)
		if rng.Chance(s.src, 0.5) {
			perp = perp.Scale(-1)
		}
		aim = aim.Add(perp.Scale(pc.MissDistance)).Add(dir.Scale(pc.MissDistance / 2))
	}
	aim = core.ClampToField(aim)

	// Flight time covers the distance and the arc for the throw's depth
	airYards := math.Max(aim.Y-s.los, 0)
	flight := aim.Dist(qb.Pos) / phys.BallSpeedYPS
	if phys.Gravity > 0 {
		flight = math.Max(flight, math.Sqrt(8*airYards*pc.ArcPeakPerYard/phys.Gravity))
	}
	ticks := max(int(math.Ceil(flight/phys.TickSeconds)), 1)
	flight = float64(ticks) * phys.TickSeconds

	s.ball.Pos = qb.Pos
	s.ball.Z = phys.ReleaseHeight
	s.ball.Vel = aim.Sub(qb.Pos).Scale(1 / flight)
	s.ball.VZ = phys.Gravity * flight / 2
	s.ball.InAir = true
	s.ball.Loose = false
	s.ball.Thrown = qb.id()
	s.ball.Target = rcv.id()
	qb.hasBall = false
	qb.action = "throw"

	s.pass.thrown = true
	s.pass.target = cb
	s.pass.aim = aim
	s.pass.flightTicks = ticks
	s.phase = phaseFlight

	rcv.Target = aim
	rcv.action = "adjust"
	if d := cb.defender; d != nil {
		d.Target = aim
	}
	for _, rb := range s.passRush {
		rb.rusher.Engaged = false
		for _, b := range rb.blockers {
			b.Engaged = false
		}
	}

	s.logf("%s throws %s for %s, %s", qb.name(), throwText(airYards, pc.DeepYards), rcv.name(), reason)
}

func throwText(air, deep float64) string {
	switch {
	case air >= deep:
		return "deep"
	case air < 1:
		return "short"
	default:
		return "over the middle"
	}
}

// flightTick advances the ball in the air.
func (s *state) flightTick() {
	dt := s.cfg.Physics.TickSeconds
	s.ball.Pos = core.ClampToField(s.ball.Pos.Add(s.ball.Vel.Scale(dt)))
	s.ball.Z += s.ball.VZ * dt
	s.ball.VZ -= s.cfg.Physics.Gravity * dt
	if s.ball.Z < 0 {
		s.ball.Z = 0
	}
	for _, rb := range s.passRush {
		if rb.rusher.StunnedTicks == 0 {
			rb.rusher.Target = s.pass.aim
		}
	}
	s.moveAll()

	s.pass.flightTicks--
	if s.pass.flightTicks <= 0 {
		s.ball.Pos = s.pass.aim
		s.handleArrival()
	}
}

// looseTick lets a dead ball bounce until the whistle.
func (s *state) looseTick() {
	dt := s.cfg.Physics.TickSeconds
	s.ball.Pos = core.ClampToField(s.ball.Pos.Add(s.ball.Vel.Scale(dt)))
	s.ball.Z += s.ball.VZ * dt
	s.ball.VZ -= s.cfg.Physics.Gravity * dt
	if s.ball.Z <= 0 {
		s.ball.Z = 0
		s.ball.VZ = 0
		s.ball.Vel = s.ball.Vel.Scale(0.5)
	}
	s.moveAll()
	if s.tick >= s.pass.deadAt {
		s.live = false
		s.phase = phaseDone
	}
}

// zoneSpot is where an unmatched zone defender drops.
func zoneSpot(zone string, los float64, fallback core.Vec) core.Vec {
	var p core.Vec
	switch zone {
	case "deep_left":
		p = core.V(core.CenterX-12, los+16)
	case "deep_right":
		p = core.V(core.CenterX+12, los+16)
	case "deep_middle":
		p = core.V(core.CenterX, los+18)
	case "short_left":
		p = core.V(core.CenterX-15, los+6)
	case "short_right":
		p = core.V(core.CenterX+15, los+6)
	case "short_middle":
		p = core.V(core.CenterX, los+6)
	case "flat_left":
		p = core.V(8, los+3)
	case "flat_right":
		p = core.V(core.FieldWidth-8, los+3)
	default:
		p = fallback
	}
	return core.ClampToField(p)
}

func filter(list []*entity, keep func(*entity) bool) []*entity {
	var out []*entity
	for _, e := range list {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
