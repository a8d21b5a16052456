package sim

import (
	"fmt"

	"github.com/vovakirdan/gridiron/internal/core"
	"github.com/vovakirdan/gridiron/internal/league"
	"github.com/vovakirdan/gridiron/internal/registry"
	"github.com/vovakirdan/gridiron/internal/rng"
)

var (
	firstNames = []string{
		"Avery", "Blake", "Cameron", "Dakota", "Elliot", "Finley", "Harper", "Jordan",
		"Kendall", "Logan", "Morgan", "Noah", "Parker", "Quinn", "Reese", "Riley",
		"Rowan", "Sawyer", "Skyler", "Taylor", "Micah", "Jesse", "Casey", "Emerson",
	}
	lastNames = []string{
		"Abbott", "Bishop", "Castillo", "Dawson", "Ellis", "Fischer", "Garner", "Hayes",
		"Ibarra", "Jensen", "Keller", "Lowe", "Mercer", "Nakamura", "Okafor", "Porter",
		"Quintero", "Ramsey", "Sutton", "Tran", "Underwood", "Vasquez", "Whitaker", "Young",
	}
	teamNames = []string{
		"Badgers", "Comets", "Falcons", "Hornets", "Lynx", "Mustangs", "Otters", "Pioneers",
		"Raptors", "Storm", "Thunder", "Wolves", "Bison", "Herons", "Rockets", "Vipers",
	}
	towns = []string{
		"Cedar Hill", "Maple Grove", "Riverside", "Oak Park", "Lakeview", "Pine Ridge",
		"Fairview", "Brookside", "Westfield", "Stone Creek", "Willow Bend", "Elm Springs",
	}
)

// GenerateTeams creates n empty teams with coaches, cycling through the
// registered personalities.
func (s *Simulator) GenerateTeams(n int, src rng.Source) []*league.Team {
	personalities := registry.IDs()
	teams := make([]*league.Team, 0, n)
	for i := range n {
		name := fmt.Sprintf("%s %s", towns[i%len(towns)], teamNames[(i*5)%len(teamNames)])
		if i >= len(towns) {
			name = fmt.Sprintf("%s %d", name, i/len(towns)+1)
		}
		t := &league.Team{
			ID:   newID(src),
			Name: name,
			Coach: league.Coach{
				Name:        randomName(src),
				Personality: personalities[i%len(personalities)],
			},
		}
		teams = append(teams, t)
	}
	return teams
}

// GeneratePool creates enough draft prospects to fill teams rosters,
// position by position.
func (s *Simulator) GeneratePool(teams int, src rng.Source) []*league.Player {
	var pool []*league.Player
	for _, pos := range league.AllPositions {
		for range s.cfg.Roster[pos] * teams {
			pool = append(pool, s.GeneratePlayer(pos, src))
		}
	}
	return pool
}

// GeneratePlayer creates one prospect with attributes shaped by position.
func (s *Simulator) GeneratePlayer(pos league.Position, src rng.Source) *league.Player {
	lo, hi := s.cfg.Attributes.Min, s.cfg.Attributes.Max
	roll := func() int { return rng.Range(src, lo, hi) }

	p := &league.Player{
		ID:       newID(src),
		Name:     randomName(src),
		Age:      rng.Range(src, s.cfg.AgeRange.Min, s.cfg.AgeRange.Max),
		Position: pos,
		Physical: league.Physical{
			Speed:    roll(),
			Strength: roll(),
			Agility:  roll(),
			Stamina:  roll(),
			Height:   rng.Range(src, 54, 68),
			Weight:   rng.Range(src, 70, 130),
		},
		Mental: league.Mental{
			PlaybookIQ:  roll(),
			Clutch:      roll(),
			Consistency: roll(),
			Toughness:   roll(),
		},
		Technical: league.Technical{
			ThrowingAccuracy: roll(),
			CatchingHands:    roll(),
			Tackling:         roll(),
			Blocking:         roll(),
			BlockShedding:    roll(),
		},
		Status: league.Status{Type: league.StatusHealthy},
	}
	shape(p)
	return p
}

// shape nudges a prospect toward the profile of their position.
func shape(p *league.Player) {
	ph, m, t := &p.Physical, &p.Mental, &p.Technical
	switch p.Position {
	case league.QB:
		t.ThrowingAccuracy += 15
		m.PlaybookIQ += 10
	case league.RB:
		ph.Speed += 10
		ph.Agility += 10
	case league.WR:
		ph.Speed += 12
		t.CatchingHands += 15
	case league.TE:
		t.Blocking += 10
		t.CatchingHands += 8
		ph.Weight += 20
	case league.OL:
		t.Blocking += 15
		ph.Strength += 15
		ph.Weight += 50
	case league.DL:
		ph.Strength += 15
		t.BlockShedding += 15
		ph.Weight += 40
	case league.LB:
		t.Tackling += 15
		ph.Strength += 5
	case league.CB:
		ph.Speed += 15
		t.CatchingHands += 5
	case league.S:
		t.Tackling += 10
		ph.Speed += 8
	}

	for _, v := range []*int{
		&ph.Speed, &ph.Strength, &ph.Agility, &ph.Stamina,
		&m.PlaybookIQ, &m.Clutch, &m.Consistency, &m.Toughness,
		&t.ThrowingAccuracy, &t.CatchingHands, &t.Tackling, &t.Blocking, &t.BlockShedding,
	} {
		*v = core.Clamp(*v, 1, 99)
	}
}

func randomName(src rng.Source) string {
	return firstNames[src.Intn(len(firstNames))] + " " + lastNames[src.Intn(len(lastNames))]
}
