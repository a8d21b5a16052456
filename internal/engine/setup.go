package engine

import (
	"fmt"

	"github.com/vovakirdan/gridiron/internal/config"
	"github.com/vovakirdan/gridiron/internal/core"
	"github.com/vovakirdan/gridiron/internal/league"
	"github.com/vovakirdan/gridiron/internal/physics"
	"github.com/vovakirdan/gridiron/internal/roster"
)

// Order in which position groups claim players; earlier groups get first
// pick of substitutes.
var (
	offenseGroups = []string{"QB", "OL", "RB", "TE", "WR"}
	defenseGroups = []string{"DL", "LB", "CB", "S"}
)

// setup resolves the play call and lines both teams up. It returns false
// when the play cannot be run at all.
func (s *state) setup(offense, defense *league.Team) bool {
	tables := s.e.tables

	play, ok := tables.Play(s.key)
	if !ok {
		s.e.logger.Error("unknown play key", "key", s.key, "fallback", tables.DefaultPlay,
			"err", fmt.Errorf("%w: %q", config.ErrUnknownPlay, s.key))
		s.logf("Play %q is not in the playbook; running %s instead", s.key, tables.DefaultPlay)
		play, ok = tables.Play(tables.DefaultPlay)
		if !ok {
			s.e.logger.Error("default play missing", "key", tables.DefaultPlay)
			s.logf("No default play available; the snap is blown dead")
			s.live = false
			s.capture()
			return false
		}
		s.key = tables.DefaultPlay
	}
	if play.Name == "" {
		play.Name = s.key
	}
	s.play = play

	offForm, ok := s.formation(play.Formation, offense, league.Offense)
	if !ok {
		return s.abort("no offensive formation available")
	}
	defName := s.ctx.DefenseFormation
	if defName == "" {
		defName = defense.Formation(league.Defense)
	}
	defForm, ok := s.formation(defName, defense, league.Defense)
	if !ok {
		return s.abort("no defensive formation available")
	}

	s.logf("%s: %s from %s vs %s, %s and %d at the %s",
		offense.Name, play.Name, offForm.name, defForm.name,
		downText(s.ctx.Down), s.ctx.YardsToGo, yardLine(s.los))

	used := roster.Used{}
	var emergencies []*entity
	s.offense, emergencies = s.lineUp(offense, league.Offense, offForm, offenseGroups, used, emergencies)
	s.defense, emergencies = s.lineUp(defense, league.Defense, defForm, defenseGroups, used, emergencies)

	s.qb = s.slot(s.offense, "QB1")
	if s.qb == nil {
		return s.abort("no quarterback available")
	}
	if play.Type == config.PlayRun || play.Sneak {
		if s.runner() == nil {
			return s.abort("no ball carrier available")
		}
	}

	// Snap
	s.ball.Pos = core.V(core.CenterX, s.los)
	s.giveBall(s.qb)
	s.qb.carrier = false
	s.carrier = nil
	s.capture()

	for _, en := range emergencies {
		s.event(EventEmergency, en, "Emergency fill: %s lines up at %s", en.name(), en.slot)
	}
	return true
}

type namedFormation struct {
	config.Formation
	name string
}

// formation looks up a formation by name, falling back to the team's
// formation and then to any formation for the side.
func (s *state) formation(name string, team *league.Team, side league.Side) (namedFormation, bool) {
	tables := s.e.tables
	f, err := tables.Formation(name)
	if err == nil && f.Side == side {
		return namedFormation{Formation: f, name: name}, true
	}
	if err == nil {
		err = fmt.Errorf("formation %q is not a %s formation", name, side)
	}
	s.e.logger.Error("formation lookup failed", "side", side, "name", name, "err", err)

	candidates := append([]string{team.Formation(side)}, tables.FormationNames(side)...)
	for _, c := range candidates {
		if f, err := tables.Formation(c); err == nil && f.Side == side {
			s.logf("Formation %q unavailable; lining up in %s", name, c)
			return namedFormation{Formation: f, name: c}, true
		}
	}
	return namedFormation{}, false
}

// lineUp picks and places one side's participants in formation slot order.
func (s *state) lineUp(team *league.Team, side league.Side, f namedFormation, groups []string, used roster.Used, emergencies []*entity) ([]*entity, []*entity) {
	bySlot := make(map[string]*entity)
	for _, g := range groups {
		for _, pick := range s.e.resolver.PlayersForSlots(team, side, f.Formation, g, used) {
			if pick.Player == nil {
				continue
			}
			en := s.place(pick.Player, pick.Slot, side, f)
			bySlot[pick.Slot] = en
			if pick.Emergency {
				emergencies = append(emergencies, en)
			}
		}
	}

	out := make([]*entity, 0, len(bySlot))
	for _, slot := range f.Slots {
		if en, ok := bySlot[slot]; ok {
			out = append(out, en)
			s.byID[en.id()] = en
		}
	}
	return out, emergencies
}

// place creates an entity at its alignment spot.
func (s *state) place(p *league.Player, slot string, side league.Side, f namedFormation) *entity {
	spot, ok := f.Alignment[slot]
	if !ok {
		spot = defaultSpot(side)
	}
	start := core.ClampToField(core.V(spot.X, s.los+spot.DY))
	en := &entity{
		Body: physics.Body{
			Pos:     start,
			Target:  start,
			Speed:   p.Attr(league.AttrSpeed),
			Fatigue: p.FatigueModifier(s.cfg.Fatigue.SpeedPenalty),
		},
		player: p,
		slot:   slot,
		side:   side,
		pos:    league.SlotPosition(slot),
		zone:   f.Zones[slot],
		action: "set",
	}

	if side == league.Defense {
		en.assignment = f.Assignments[slot]
		if en.assignment == "" {
			en.assignment = config.AssignCover
			if en.pos == league.DL {
				en.assignment = config.AssignRush
			}
		}
		return en
	}

	switch {
	case slot == "QB1" && !s.play.Sneak:
		en.assignment = "pass"
		if s.play.Type == config.PlayRun {
			en.assignment = "handoff"
		}
	case s.play.Type == config.PlayRun || s.play.Sneak:
		en.assignment = config.AssignBlock
		if s.play.Assignments[slot] == config.AssignCarry {
			en.assignment = config.AssignCarry
		}
	default:
		en.assignment = s.e.tables.Assignment(s.play, slot)
	}

	if !config.IsInstruction(en.assignment) && en.assignment != "pass" && en.assignment != "handoff" {
		r, err := s.e.tables.Route(en.assignment)
		if err != nil {
			s.e.logger.Error("route lookup failed", "play", s.key, "slot", slot, "err", err)
			s.logf("%s has no route %q and stays in to block", p.Name, en.assignment)
			en.assignment = config.AssignBlock
			return en
		}
		en.route = &r
		en.waypoints = routePath(start, s.los, r)
	}
	return en
}

// routePath converts route waypoints into field points. Lateral offsets
// point toward the receiver's own sideline.
func routePath(start core.Vec, los float64, r config.Route) []core.Vec {
	out := 1.0
	if start.X < core.CenterX {
		out = -1
	}
	path := make([]core.Vec, 0, len(r.Waypoints)+1)
	for _, wp := range r.Waypoints {
		path = append(path, core.ClampToField(core.V(start.X+wp.X*out, los+wp.DY)))
	}
	if len(path) == 0 {
		path = append(path, core.ClampToField(core.V(start.X, los+5)))
	}
	return path
}

// routeZone names the defensive zone a route attacks.
func routeZone(start core.Vec, r config.Route) string {
	side := "right"
	if start.X < core.CenterX {
		side = "left"
	}
	switch r.Depth {
	case "flat":
		return "flat_" + side
	case "deep":
		return "deep_" + side
	}
	if r.Lane == "outside" {
		return "short_" + side
	}
	return "short_middle"
}

func defaultSpot(side league.Side) config.Spot {
	if side == league.Defense {
		return config.Spot{X: core.CenterX, DY: 5}
	}
	return config.Spot{X: core.CenterX, DY: -3}
}

// slot finds the entity lined up at slot.
func (s *state) slot(list []*entity, slot string) *entity {
	for _, en := range list {
		if en.slot == slot {
			return en
		}
	}
	return nil
}

// runner returns the designated ball carrier of a run play.
func (s *state) runner() *entity {
	for _, en := range s.offense {
		if en.assignment == config.AssignCarry {
			return en
		}
	}
	if s.play.Sneak {
		return s.qb
	}
	return nil
}

// abort ends the play before the snap as a zero-yard turnover.
func (s *state) abort(reason string) bool {
	s.e.logger.Error("play aborted", "play", s.key, "reason", reason)
	s.logf("Play broken up before the snap: %s. Turnover", reason)
	s.turnover = true
	s.runYards = 0
	s.live = false
	s.capture()
	return false
}

func downText(down int) string {
	switch down {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	case 4:
		return "4th"
	default:
		return fmt.Sprintf("%dth", down)
	}
}
