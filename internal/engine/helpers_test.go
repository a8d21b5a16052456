package engine

import (
	"fmt"
	"testing"

	"github.com/vovakirdan/gridiron/internal/config"
	"github.com/vovakirdan/gridiron/internal/league"
	"github.com/vovakirdan/gridiron/internal/rating"
)

// rosterShape is how many players of each position a test team carries.
var rosterShape = []struct {
	pos   league.Position
	count int
}{
	{league.QB, 2}, {league.RB, 3}, {league.WR, 5}, {league.TE, 2}, {league.OL, 7},
	{league.DL, 5}, {league.LB, 4}, {league.CB, 4}, {league.S, 3},
}

func flatPlayer(id string, pos league.Position, v int) *league.Player {
	return &league.Player{
		ID:        id,
		Name:      id,
		Position:  pos,
		Physical:  league.Physical{Speed: v, Strength: v, Agility: v, Stamina: v, Height: 72, Weight: 200},
		Mental:    league.Mental{PlaybookIQ: v, Clutch: v, Consistency: v, Toughness: v},
		Technical: league.Technical{ThrowingAccuracy: v, CatchingHands: v, Tackling: v, Blocking: v, BlockShedding: v},
	}
}

// newTeam builds a full roster with every attribute set to v and a depth
// chart that puts each player at their listed position.
func newTeam(t *testing.T, tables config.Tables, name string, v int, tweak func(*league.Player)) *league.Team {
	t.Helper()
	team := &league.Team{
		ID:         name,
		Name:       name,
		Formations: league.Formations{Offense: "Pro Set", Defense: "4-3"},
	}
	for _, rs := range rosterShape {
		for i := 1; i <= rs.count; i++ {
			p := flatPlayer(fmt.Sprintf("%s-%s%d", name, rs.pos, i), rs.pos, v)
			if tweak != nil {
				tweak(p)
			}
			team.Roster = append(team.Roster, p)
		}
	}
	chartByPosition(team, league.Offense, tables)
	chartByPosition(team, league.Defense, tables)
	return team
}

func chartByPosition(team *league.Team, side league.Side, tables config.Tables) {
	chart := league.DepthChart{}
	next := map[league.Position]int{}
	for _, slot := range rating.ChartSlots(team, side, tables) {
		pos := league.SlotPosition(slot)
		n := 0
		for _, p := range team.Roster {
			if p.Position != pos {
				continue
			}
			if n == next[pos] {
				chart[slot] = p.ID
				next[pos]++
				break
			}
			n++
		}
	}
	if side == league.Defense {
		team.Defense = chart
	} else {
		team.Offense = chart
	}
}

func loadTables(t *testing.T) config.Tables {
	t.Helper()
	tables, err := config.DefaultTables()
	if err != nil {
		t.Fatalf("DefaultTables() error = %v", err)
	}
	return tables
}

func newEngine(t *testing.T) *Engine {
	t.Helper()
	return New(config.DefaultEngineConfig(), loadTables(t), nil)
}

func baseContext() Context {
	return Context{BallOn: 30, Down: 1, YardsToGo: 10, Weather: Sunny}
}
