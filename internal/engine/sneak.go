package engine

import (
	"github.com/vovakirdan/gridiron/internal/battle"
	"github.com/vovakirdan/gridiron/internal/core"
	"github.com/vovakirdan/gridiron/internal/league"
	"github.com/vovakirdan/gridiron/internal/rng"
)

// runSneak resolves a quarterback sneak in one contest: the passer's
// strength against the nose lineman's strength and block shedding.
func (s *state) runSneak() {
	s.tick = 1
	qb := s.runner()
	s.rusher = qb
	s.giveBall(qb)
	qb.action = "sneak"

	nose := s.nose()
	var success bool
	if nose == nil {
		success = true
		s.logf("%s finds nobody over the ball", qb.name())
	} else {
		nose.action = "anchor"
		var st battle.State
		battle.Resolve(qb.rating(league.AttrStrength), nose.avg(league.AttrStrength, league.AttrBlockShedding), &st, s.cfg.Battle, s.src)
		success = st.Margin > 0
	}

	if success {
		s.runYards = rng.Range(s.src, s.cfg.Sneak.Success.Min, s.cfg.Sneak.Success.Max)
		s.logf("%s pushes forward on the sneak", qb.name())
	} else {
		s.runYards = rng.Range(s.src, s.cfg.Sneak.Failure.Min, s.cfg.Sneak.Failure.Max)
		s.logf("%s is stopped at the line by %s", qb.name(), nose.name())
	}

	end := core.ClampToField(core.V(qb.Pos.X, s.los+float64(s.runYards)))
	s.animate(qb, end, nose)

	if s.los+float64(s.runYards) >= core.GoalLine() {
		s.live = false
		return
	}
	if nose != nil {
		s.tackle(nose, qb, s.cfg.Fumble.TackleRate, "%s brings down %s at the %s", nose.name(), qb.name(), yardLine(qb.Pos.Y))
	} else {
		s.live = false
	}
}

// nose returns the defensive lineman lined up closest to the ball.
func (s *state) nose() *entity {
	var best *entity
	bestDist := 0.0
	for _, en := range s.defense {
		if en.pos != league.DL {
			continue
		}
		d := en.Pos.Dist(s.ball.Pos)
		if best == nil || d < bestDist {
			best, bestDist = en, d
		}
	}
	if best != nil {
		return best
	}
	for _, en := range s.defense {
		d := en.Pos.Dist(s.ball.Pos)
		if best == nil || d < bestDist {
			best, bestDist = en, d
		}
	}
	return best
}

// animate moves the carrier to end in sub-steps, dragging the tackler along,
// and captures a frame per step.
func (s *state) animate(carrier *entity, end core.Vec, tackler *entity) {
	steps := s.cfg.Run.SubSteps
	if steps < 1 {
		steps = 1
	}
	from := carrier.Pos
	var tFrom core.Vec
	if tackler != nil {
		tFrom = tackler.Pos
	}
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		carrier.Pos = core.ClampToField(from.Lerp(end, t))
		carrier.Target = carrier.Pos
		if tackler != nil {
			tackler.Pos = core.ClampToField(tFrom.Lerp(end.Add(core.V(0, 0.8)), t))
			tackler.Target = tackler.Pos
		}
		s.syncBall()
		s.capture()
	}
}
