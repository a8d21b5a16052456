package sim

import (
	"github.com/vovakirdan/gridiron/internal/config"
	"github.com/vovakirdan/gridiron/internal/league"
	"github.com/vovakirdan/gridiron/internal/rating"
	"github.com/vovakirdan/gridiron/internal/registry"
)

// DraftPick records one selection.
type DraftPick struct {
	Round    int    `json:"round"`
	Number   int    `json:"number"`
	TeamID   string `json:"teamId"`
	PlayerID string `json:"playerId"`
}

// Draft runs a snake draft of pool onto teams. Each coach takes the prospect
// with the best overall rating at a position still short of the roster
// target, scaled by the coach's positional bias. Drafted players are removed
// from the pool; the remainder is returned.
func (s *Simulator) Draft(teams []*league.Team, pool []*league.Player) ([]DraftPick, []*league.Player) {
	callers := make([]registry.Caller, len(teams))
	for i, t := range teams {
		callers[i] = s.caller(t.Coach.Personality)
	}

	rounds := s.cfg.RosterSize()
	var picks []DraftPick
	number := 0
	for round := range rounds {
		for i := range teams {
			idx := i
			if round%2 == 1 {
				idx = len(teams) - 1 - i
			}
			t := teams[idx]

			best, bestScore := -1, 0.0
			for j, p := range pool {
				if countPosition(t, p.Position) >= s.cfg.Roster[p.Position] {
					continue
				}
				score := rating.Overall(p, p.Position, s.tables.Weights) * callers[idx].DraftBias(p.Position)
				if best < 0 || score > bestScore {
					best, bestScore = j, score
				}
			}
			if best < 0 {
				continue
			}

			p := pool[best]
			pool = append(pool[:best], pool[best+1:]...)
			t.Roster = append(t.Roster, p)
			number++
			picks = append(picks, DraftPick{Round: round + 1, Number: number, TeamID: t.ID, PlayerID: p.ID})
		}
	}
	return picks, pool
}

func countPosition(t *league.Team, pos league.Position) int {
	n := 0
	for _, p := range t.Roster {
		if p.Position == pos {
			n++
		}
	}
	return n
}

// formationsFor picks the formations a coach lines up in.
func formationsFor(personality string, tables config.Tables) league.Formations {
	off, def := "Pro Set", "4-3"
	if personality == "aggressive" {
		off, def = "Spread", "4-3 Blitz"
	}
	return league.Formations{
		Offense: pickFormation(off, league.Offense, tables),
		Defense: pickFormation(def, league.Defense, tables),
	}
}

func pickFormation(name string, side league.Side, tables config.Tables) string {
	if f, err := tables.Formation(name); err == nil && f.Side == side {
		return name
	}
	if names := tables.FormationNames(side); len(names) > 0 {
		return names[0]
	}
	return name
}

// SetDepthCharts assigns formations from the coach's personality and
// rebuilds both depth charts from current availability.
func (s *Simulator) SetDepthCharts(t *league.Team) {
	t.Formations = formationsFor(t.Coach.Personality, s.tables)
	rating.AutoDepthChart(t, league.Offense, s.tables)
	rating.AutoDepthChart(t, league.Defense, s.tables)
}
