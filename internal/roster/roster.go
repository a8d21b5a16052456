// Package roster picks the players who line up in each formation slot
// for a single play.
package roster

import (
	"io"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridiron/internal/config"
	"github.com/vovakirdan/gridiron/internal/league"
	"github.com/vovakirdan/gridiron/internal/rating"
)

// Pick is the player chosen for one slot. Player is nil when nobody at all
// could be found.
type Pick struct {
	Slot      string
	Player    *league.Player
	Sub       bool // Bench player at the slot's position
	Emergency bool // Filled from another position or from the injured list
}

// Used tracks player IDs already on the field for the current play.
type Used map[string]bool

// Resolver fills formation slots from a team's depth chart and bench.
type Resolver struct {
	tables config.Tables
	logger *log.Logger
}

// New creates a resolver. A nil logger discards output.
func New(tables config.Tables, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Resolver{tables: tables, logger: logger}
}

// PlayersForSlots returns a pick for every slot of f starting with prefix,
// in formation order. Each chosen player is added to used so nobody lines
// up twice in one play.
func (r *Resolver) PlayersForSlots(team *league.Team, side league.Side, f config.Formation, prefix string, used Used) []Pick {
	slots := f.SlotsWithPrefix(prefix)
	picks := make([]Pick, 0, len(slots))
	for _, slot := range slots {
		pick := r.resolve(team, side, &f, slot, used)
		if pick.Player != nil {
			used[pick.Player.ID] = true
		}
		picks = append(picks, pick)
	}
	return picks
}

func (r *Resolver) resolve(team *league.Team, side league.Side, f *config.Formation, slot string, used Used) Pick {
	chart := team.DepthChart(side)
	if id, ok := chart[slot]; ok {
		if p := team.Player(id); p != nil && p.Status.Available() && !used[p.ID] {
			return Pick{Slot: slot, Player: p}
		}
	}

	starters := make(map[string]bool, len(chart))
	for _, id := range chart {
		starters[id] = true
	}
	pos := league.SlotPosition(slot)

	// Bench player at the same position, non-starters first
	if p := r.best(team, f, slot, starters, func(p *league.Player) bool {
		return p.Position == pos && p.Status.Available() && !used[p.ID]
	}); p != nil {
		return Pick{Slot: slot, Player: p, Sub: true}
	}

	// Anyone healthy
	if p := r.best(team, f, slot, starters, func(p *league.Player) bool {
		return p.Status.Available() && !used[p.ID]
	}); p != nil {
		r.logger.Warn("emergency fill", "team", team.Name, "slot", slot, "player", p.Name, "from", p.Position)
		return Pick{Slot: slot, Player: p, Emergency: true}
	}

	// Nobody healthy is left; play someone hurt rather than nobody
	if p := r.best(team, f, slot, starters, func(p *league.Player) bool {
		return !used[p.ID]
	}); p != nil {
		r.logger.Warn("emergency fill from injured list", "team", team.Name, "slot", slot, "player", p.Name)
		return Pick{Slot: slot, Player: p, Emergency: true}
	}

	r.logger.Error("no player available", "team", team.Name, "slot", slot)
	return Pick{Slot: slot}
}

// best returns the highest suitability roster member accepted by ok.
func (r *Resolver) best(team *league.Team, f *config.Formation, slot string, starters map[string]bool, ok func(*league.Player) bool) *league.Player {
	type cand struct {
		p       *league.Player
		starter bool
		score   float64
	}
	var cands []cand
	for _, p := range team.Roster {
		if !ok(p) {
			continue
		}
		cands = append(cands, cand{p: p, starter: starters[p.ID], score: rating.SlotSuitability(p, slot, f, r.tables.Weights)})
	}
	if len(cands) == 0 {
		return nil
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].starter != cands[j].starter {
			return !cands[i].starter
		}
		if cands[i].score != cands[j].score {
			return cands[i].score > cands[j].score
		}
		return cands[i].p.ID < cands[j].p.ID
	})
	return cands[0].p
}
