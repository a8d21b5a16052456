package roster

import (
	"testing"

	"github.com/vovakirdan/gridiron/internal/config"
	"github.com/vovakirdan/gridiron/internal/league"
)

func player(id string, pos league.Position, v int) *league.Player {
	return &league.Player{
		ID:        id,
		Name:      id,
		Position:  pos,
		Physical:  league.Physical{Speed: v, Strength: v, Agility: v, Stamina: v, Height: 70, Weight: 180},
		Mental:    league.Mental{PlaybookIQ: v, Clutch: v, Consistency: v, Toughness: v},
		Technical: league.Technical{ThrowingAccuracy: v, CatchingHands: v, Tackling: v, Blocking: v, BlockShedding: v},
	}
}

var receivers = config.Formation{Side: league.Offense, Slots: []string{"QB1", "WR1", "WR2"}}

func newTeam(players ...*league.Player) *league.Team {
	return &league.Team{
		Name:    "Test",
		Roster:  players,
		Offense: league.DepthChart{"QB1": "qb", "WR1": "wr1", "WR2": "wr2"},
	}
}

func newResolver() *Resolver {
	return New(config.Tables{Weights: config.DefaultWeights()}, nil)
}

func TestPlayersForSlotsStarters(t *testing.T) {
	team := newTeam(player("qb", league.QB, 60), player("wr1", league.WR, 70), player("wr2", league.WR, 65))
	used := Used{}

	picks := newResolver().PlayersForSlots(team, league.Offense, receivers, "WR", used)
	if len(picks) != 2 {
		t.Fatalf("got %d picks, expected 2", len(picks))
	}
	if picks[0].Slot != "WR1" || picks[0].Player.ID != "wr1" {
		t.Errorf("pick 0 = %s/%v, expected WR1/wr1", picks[0].Slot, picks[0].Player)
	}
	if picks[1].Player.ID != "wr2" || picks[1].Sub || picks[1].Emergency {
		t.Errorf("pick 1 = %+v, expected starter wr2", picks[1])
	}
	if !used["wr1"] || !used["wr2"] {
		t.Errorf("used = %v, expected both receivers marked", used)
	}
}

func TestPlayersForSlotsBenchSubstitution(t *testing.T) {
	hurt := player("wr1", league.WR, 80)
	hurt.Status = league.Status{Type: league.StatusInjured, Duration: 3}
	team := newTeam(
		player("qb", league.QB, 60), hurt, player("wr2", league.WR, 65),
		player("bench-weak", league.WR, 40), player("bench-good", league.WR, 55),
	)

	picks := newResolver().PlayersForSlots(team, league.Offense, receivers, "WR", Used{})
	if picks[0].Player.ID != "bench-good" || !picks[0].Sub {
		t.Errorf("WR1 = %+v, expected best bench receiver", picks[0])
	}
	for _, p := range picks {
		if p.Player.Status.Duration > 0 {
			t.Errorf("slot %s got unavailable player %s", p.Slot, p.Player.ID)
		}
	}
}

func TestPlayersForSlotsSkipsUsed(t *testing.T) {
	team := newTeam(player("qb", league.QB, 60), player("wr1", league.WR, 70), player("wr2", league.WR, 65), player("wr3", league.WR, 50))
	used := Used{"wr1": true}

	picks := newResolver().PlayersForSlots(team, league.Offense, receivers, "WR", used)
	seen := map[string]bool{}
	for _, p := range picks {
		if p.Player.ID == "wr1" {
			t.Error("used player picked again")
		}
		if seen[p.Player.ID] {
			t.Errorf("player %s picked twice", p.Player.ID)
		}
		seen[p.Player.ID] = true
	}
}

func TestPlayersForSlotsEmergencyFill(t *testing.T) {
	team := newTeam(player("qb", league.QB, 60), player("wr1", league.WR, 70), player("lineman", league.OL, 50))
	used := Used{}

	picks := newResolver().PlayersForSlots(team, league.Offense, receivers, "WR", used)
	if picks[1].Player == nil || picks[1].Player.ID != "lineman" || !picks[1].Emergency {
		t.Errorf("WR2 = %+v, expected emergency fill by lineman", picks[1])
	}
}

func TestPlayersForSlotsInjuredLastResort(t *testing.T) {
	hurt := player("wr2", league.WR, 65)
	hurt.Status = league.Status{Type: league.StatusInjured, Duration: 1}
	team := newTeam(player("qb", league.QB, 60), player("wr1", league.WR, 70), hurt)

	picks := newResolver().PlayersForSlots(team, league.Offense, receivers, "WR", Used{"qb": true})
	if picks[1].Player == nil || picks[1].Player.ID != "wr2" || !picks[1].Emergency {
		t.Errorf("WR2 = %+v, expected injured player as last resort", picks[1])
	}
}

func TestPlayersForSlotsNobodyLeft(t *testing.T) {
	team := newTeam(player("qb", league.QB, 60))
	picks := newResolver().PlayersForSlots(team, league.Offense, receivers, "WR", Used{"qb": true})
	for _, p := range picks {
		if p.Player != nil {
			t.Errorf("slot %s = %s, expected nobody", p.Slot, p.Player.ID)
		}
	}
}

func TestPlayersForSlotsDeterministic(t *testing.T) {
	team := newTeam(player("qb", league.QB, 60), player("b", league.WR, 50), player("a", league.WR, 50))
	team.Offense = league.DepthChart{}

	first := newResolver().PlayersForSlots(team, league.Offense, receivers, "WR", Used{})
	for range 10 {
		again := newResolver().PlayersForSlots(team, league.Offense, receivers, "WR", Used{})
		for i := range first {
			if first[i].Player.ID != again[i].Player.ID {
				t.Fatalf("slot %s: %s then %s", first[i].Slot, first[i].Player.ID, again[i].Player.ID)
			}
		}
	}
	if first[0].Player.ID != "a" {
		t.Errorf("tie should break by ID, got %s", first[0].Player.ID)
	}
}
