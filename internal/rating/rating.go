// Package rating turns raw player attributes into position and slot scores.
package rating

import (
	"sort"

	"github.com/vovakirdan/gridiron/internal/config"
	"github.com/vovakirdan/gridiron/internal/core"
	"github.com/vovakirdan/gridiron/internal/league"
)

// Slot-specific priorities carry this share of a suitability score; the
// positional overall carries the rest.
const slotShare = 0.7

// value reads an attribute normalized for weighting.
func value(p *league.Player, a league.Attr, w config.Weights) float64 {
	v := float64(p.Attr(a))
	switch a {
	case league.AttrWeight:
		if w.WeightDivisor > 0 {
			v /= w.WeightDivisor
		}
	case league.AttrHeight:
		v -= w.HeightOffset
	}
	return v
}

// Overall returns the position-weighted rating of a player, clamped to
// [1, 99]. Positions missing from the table score 0.
func Overall(p *league.Player, pos league.Position, w config.Weights) float64 {
	weights, ok := w.Positions[pos]
	if !ok || p == nil {
		return 0
	}
	// Fixed attribute order keeps float sums identical across runs
	sum := 0.0
	for _, a := range league.AllAttrs {
		if wt, ok := weights[a]; ok {
			sum += value(p, a, w) * wt
		}
	}
	return core.ClampF(sum, 1, 99)
}

// SlotSuitability scores a player for a formation slot. When the formation
// defines priorities for the slot, their weighted average is blended with the
// positional overall; otherwise the overall is used as is.
func SlotSuitability(p *league.Player, slot string, f *config.Formation, w config.Weights) float64 {
	overall := Overall(p, league.SlotPosition(slot), w)
	if f == nil || p == nil {
		return overall
	}
	prio, ok := f.SlotPriorities[slot]
	if !ok || len(prio) == 0 {
		return overall
	}

	sum, total := 0.0, 0.0
	for _, a := range league.AllAttrs {
		if wt, ok := prio[a]; ok {
			sum += value(p, a, w) * wt
			total += wt
		}
	}
	if total <= 0 {
		return overall
	}
	return core.ClampF(slotShare*(sum/total)+(1-slotShare)*overall, 1, 99)
}

// Suitability scores a player for a slot in the team's active formation for side.
func Suitability(p *league.Player, slot string, side league.Side, team *league.Team, t config.Tables) float64 {
	var f *config.Formation
	if team != nil {
		if form, ok := t.Formations[team.Formation(side)]; ok {
			f = &form
		}
	}
	return SlotSuitability(p, slot, f, t.Weights)
}

// BestPosition returns the position the player rates highest at. Ties go to
// the earlier position in league.AllPositions.
func BestPosition(p *league.Player, w config.Weights) (league.Position, float64) {
	best, score := league.AllPositions[0], -1.0
	for _, pos := range league.AllPositions {
		if s := Overall(p, pos, w); s > score {
			best, score = pos, s
		}
	}
	return best, score
}

// ChartSlots lists every slot any formation of the side uses, starting with
// the team's own formation order.
func ChartSlots(team *league.Team, side league.Side, t config.Tables) []string {
	seen := make(map[string]bool)
	var slots []string
	add := func(f config.Formation) {
		for _, s := range f.Slots {
			if !seen[s] {
				seen[s] = true
				slots = append(slots, s)
			}
		}
	}
	if f, ok := t.Formations[team.Formation(side)]; ok {
		add(f)
	}
	for _, name := range t.FormationNames(side) {
		add(t.Formations[name])
	}
	return slots
}

type pair struct {
	player *league.Player
	slot   string
	order  int
	score  float64
}

// AutoDepthChart assigns players to slots by repeatedly taking the highest
// scoring remaining (player, slot) pair. Available players are placed before
// unavailable ones. The result replaces the team's chart for side.
func AutoDepthChart(team *league.Team, side league.Side, t config.Tables) league.DepthChart {
	slots := ChartSlots(team, side, t)
	chart := league.DepthChart{}
	used := make(map[string]bool)

	for _, pass := range []bool{true, false} {
		var pairs []pair
		for _, p := range team.Roster {
			if used[p.ID] || p.Status.Available() != pass {
				continue
			}
			for i, s := range slots {
				if _, taken := chart[s]; taken {
					continue
				}
				pairs = append(pairs, pair{player: p, slot: s, order: i, score: Suitability(p, s, side, team, t)})
			}
		}
		sort.SliceStable(pairs, func(i, j int) bool {
			if pairs[i].score != pairs[j].score {
				return pairs[i].score > pairs[j].score
			}
			if pairs[i].order != pairs[j].order {
				return pairs[i].order < pairs[j].order
			}
			return pairs[i].player.ID < pairs[j].player.ID
		})
		for _, pr := range pairs {
			if used[pr.player.ID] {
				continue
			}
			if _, taken := chart[pr.slot]; taken {
				continue
			}
			chart[pr.slot] = pr.player.ID
			used[pr.player.ID] = true
		}
	}

	if side == league.Defense {
		team.Defense = chart
	} else {
		team.Offense = chart
	}
	return chart
}
