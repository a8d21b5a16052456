package engine

import (
	"github.com/vovakirdan/gridiron/internal/battle"
	"github.com/vovakirdan/gridiron/internal/config"
	"github.com/vovakirdan/gridiron/internal/core"
	"github.com/vovakirdan/gridiron/internal/league"
	"github.com/vovakirdan/gridiron/internal/rng"
)

// runRun resolves a designed run in three stages: the line at tick 1, the
// second level at tick 2 and the deep secondary at tick 3.
func (s *state) runRun() {
	rb := s.runner()
	s.rusher = rb
	s.qb.action = "handoff"
	if rb != s.qb {
		s.logf("%s hands off to %s", s.qb.name(), rb.name())
	}
	s.giveBall(rb)
	rb.action = "carry"
	s.capture()

	laneX := runLane(s.play.Zone)

	s.tick = 1
	if !s.runLine(rb, laneX) || s.reachedGoal() {
		return
	}
	s.tick = 2
	if !s.runSecondLevel(rb) || s.reachedGoal() {
		return
	}
	s.tick = 3
	s.runSecondary(rb)
	s.live = false
}

// runLine resolves every run-block battle and buckets the share of won
// blocks into a yardage band. It returns false when the play is over.
func (s *state) runLine(rb *entity, laneX float64) bool {
	var blockers []*entity
	for _, g := range []league.Position{league.OL, league.TE, league.RB, league.WR, league.QB} {
		for _, o := range s.offense {
			if o.pos == g && o.assignment == config.AssignBlock && o != rb {
				blockers = append(blockers, o)
			}
		}
	}
	var front []*entity
	for _, g := range []league.Position{league.DL, league.LB} {
		for _, d := range s.defense {
			if d.pos == g && len(front) < 7 {
				front = append(front, d)
			}
		}
	}

	pairs := min(len(blockers), len(front))
	bonus := make([]float64, pairs)
	for i := pairs; i < len(blockers) && pairs > 0; i++ {
		bonus[(i-pairs)%pairs] += s.cfg.Battle.DoubleTeamBonus
	}

	wins := 0
	var free []*entity
	for i := 0; i < pairs; i++ {
		b, d := blockers[i], front[i]
		if s.lineBattle(b, d, bonus[i]) {
			wins++
			d.Blocked = true
			d.action = "blocked"
			b.action = "drive"
		} else {
			b.StunnedTicks = s.cfg.Pass.BeatenBlockStun
			b.action = "beaten"
			d.action = "shed"
			free = append(free, d)
		}
	}
	free = append(free, front[pairs:]...)

	total := len(front)
	ratio := 1.0
	if total > 0 {
		ratio = float64(wins) / float64(total)
	}
	s.logf("Up front the line wins %d of %d blocks", wins, total)

	var band config.YardRange
	stuffed := false
	switch {
	case ratio >= s.cfg.Run.BigHoleRatio:
		band = s.cfg.Run.BigHole
		s.logf("A big hole opens %s for %s", laneText(laneX), rb.name())
	case ratio >= s.cfg.Run.CreaseRatio:
		band = s.cfg.Run.Crease
		s.logf("%s squeezes through a crease", rb.name())
	default:
		band = s.cfg.Run.Stuffed
		stuffed = true
	}
	s.runYards += rng.Range(s.src, band.Min, band.Max)

	end := core.ClampToField(core.V(laneX, s.los+float64(s.runYards)))
	if stuffed {
		tackler := bestTackler(free)
		if tackler == nil {
			tackler = bestTackler(front)
		}
		s.animate(rb, end, tackler)
		if tackler == nil {
			s.live = false
			return false
		}
		s.tackle(tackler, rb, s.cfg.Fumble.TackleRate, "Stuffed! %s meets %s at the line for %s",
			tackler.name(), rb.name(), gainText(s.runYards))
		return false
	}
	s.animate(rb, end, nil)
	return true
}

// lineBattle runs up to LineRounds rounds of one block and reports
// whether the blocker won.
func (s *state) lineBattle(b, d *entity, bonus float64) bool {
	rounds := max(s.cfg.Run.LineRounds, 1)
	var st battle.State
	for range rounds {
		out := battle.Resolve(
			b.avg(league.AttrBlocking, league.AttrStrength)+bonus,
			d.avg(league.AttrStrength, league.AttrBlockShedding),
			&st, s.cfg.Battle, s.src)
		if out.Decisive() {
			return out == battle.DecisiveA
		}
	}
	return st.Margin > 0
}

// runSecondLevel puts the nearest free linebacker on the carrier: first a
// grapple, then a break-tackle check. It returns false when the play is over.
func (s *state) runSecondLevel(rb *entity) bool {
	var cands []*entity
	for _, d := range s.defense {
		if !d.Blocked && (d.pos == league.LB || d.pos == league.DL) {
			cands = append(cands, d)
		}
	}
	lb := nearest(cands, rb.Pos)

	if lb == nil {
		s.runYards += rng.Range(s.src, s.cfg.Run.Breakaway.Min, s.cfg.Run.Breakaway.Max)
		s.logf("%s is untouched into the second level", rb.name())
		s.animate(rb, s.runSpot(rb), nil)
		return true
	}

	var grapple battle.State
	battle.Resolve(
		lb.avg(league.AttrTackling, league.AttrSpeed)*lb.Fatigue,
		rb.avg(league.AttrAgility, league.AttrSpeed)*rb.Fatigue,
		&grapple, s.cfg.Battle, s.src)
	if grapple.Margin <= 0 {
		lb.StunnedTicks = s.cfg.Pass.MissedTackleStun
		lb.action = "missed"
		s.runYards += rng.Range(s.src, s.cfg.Run.Breakaway.Min, s.cfg.Run.Breakaway.Max)
		s.logf("%s sidesteps %s and breaks into the open", rb.name(), lb.name())
		s.animate(rb, s.runSpot(rb), nil)
		return true
	}

	var breakTackle battle.State
	battle.Resolve(
		rb.avg(league.AttrStrength, league.AttrToughness),
		lb.avg(league.AttrTackling, league.AttrStrength),
		&breakTackle, s.cfg.Battle, s.src)
	if breakTackle.Margin > 0 {
		lb.StunnedTicks = s.cfg.Pass.ShakeOffStun
		lb.action = "missed"
		s.runYards += rng.Range(s.src, s.cfg.Run.ExtraYards.Min, s.cfg.Run.ExtraYards.Max)
		s.logf("%s breaks the tackle of %s", rb.name(), lb.name())
		s.animate(rb, s.runSpot(rb), nil)
		return true
	}

	s.runYards += rng.Range(s.src, s.cfg.Run.ContactYards.Min, s.cfg.Run.ContactYards.Max)
	s.animate(rb, s.runSpot(rb), lb)
	s.tackle(lb, rb, s.cfg.Fumble.TackleRate, "%s wraps up %s at the %s", lb.name(), rb.name(), yardLine(rb.Pos.Y))
	return false
}

// runSecondary is an open-field speed race against the deepest defender.
func (s *state) runSecondary(rb *entity) {
	var cands []*entity
	for _, d := range s.defense {
		if d.pos == league.S || d.pos == league.CB {
			cands = append(cands, d)
		}
	}
	var safety *entity
	for _, d := range cands {
		if d.StunnedTicks > 0 {
			continue
		}
		if safety == nil || d.rating(league.AttrSpeed)*d.Fatigue > safety.rating(league.AttrSpeed)*safety.Fatigue {
			safety = d
		}
	}

	if safety == nil {
		s.runYards += rng.Range(s.src, s.cfg.Run.OpenField.Min, s.cfg.Run.OpenField.Max)
		s.logf("Nobody left to beat: %s races into the open field", rb.name())
		s.animate(rb, s.runSpot(rb), nil)
		return
	}

	var race battle.State
	battle.Resolve(
		rb.rating(league.AttrSpeed)*rb.Fatigue,
		safety.rating(league.AttrSpeed)*safety.Fatigue,
		&race, s.cfg.Battle, s.src)
	if race.Margin > 0 {
		s.runYards += rng.Range(s.src, s.cfg.Run.OpenField.Min, s.cfg.Run.OpenField.Max)
		s.logf("%s outruns %s in the open field", rb.name(), safety.name())
		if s.reachedGoal() {
			s.animate(rb, s.runSpot(rb), nil)
			return
		}
		s.animate(rb, s.runSpot(rb), safety)
		s.tackle(safety, rb, s.cfg.Fumble.TackleRate, "%s finally runs down %s at the %s", safety.name(), rb.name(), yardLine(rb.Pos.Y))
		return
	}

	s.animate(rb, s.runSpot(rb), safety)
	s.tackle(safety, rb, s.cfg.Fumble.TackleRate, "%s closes and brings down %s at the %s", safety.name(), rb.name(), yardLine(rb.Pos.Y))
}

// runSpot is the field point matching the accumulated run yardage.
func (s *state) runSpot(rb *entity) core.Vec {
	return core.ClampToField(core.V(rb.Pos.X, s.los+float64(s.runYards)))
}

func (s *state) reachedGoal() bool {
	if s.ctx.BallOn+s.runYards >= 100 {
		s.live = false
		return true
	}
	return false
}

// runLane maps a play zone to the X the carrier aims for.
func runLane(zone string) float64 {
	switch zone {
	case "flat_left", "short_left":
		return core.CenterX - 10
	case "flat_right", "short_right":
		return core.CenterX + 10
	default:
		return core.CenterX
	}
}

func laneText(x float64) string {
	switch {
	case x < core.CenterX-1:
		return "on the left side"
	case x > core.CenterX+1:
		return "on the right side"
	default:
		return "up the middle"
	}
}

func bestTackler(list []*entity) *entity {
	var best *entity
	for _, d := range list {
		if best == nil || d.rating(league.AttrTackling) > best.rating(league.AttrTackling) {
			best = d
		}
	}
	return best
}

func nearest(list []*entity, p core.Vec) *entity {
	var best *entity
	bestDist := 0.0
	for _, d := range list {
		dist := d.Pos.Dist(p)
		if best == nil || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best
}
