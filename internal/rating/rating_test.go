package rating

import (
	"math"
	"testing"

	"github.com/vovakirdan/gridiron/internal/config"
	"github.com/vovakirdan/gridiron/internal/league"
)

func flatPlayer(id string, v int) *league.Player {
	return &league.Player{
		ID:        id,
		Physical:  league.Physical{Speed: v, Strength: v, Agility: v, Stamina: v, Height: 70, Weight: 180},
		Mental:    league.Mental{PlaybookIQ: v, Clutch: v, Consistency: v, Toughness: v},
		Technical: league.Technical{ThrowingAccuracy: v, CatchingHands: v, Tackling: v, Blocking: v, BlockShedding: v},
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

func TestOverall(t *testing.T) {
	w := config.Weights{
		WeightDivisor: 2.5,
		HeightOffset:  12,
		Positions: map[league.Position]map[league.Attr]float64{
			league.OL: {league.AttrBlocking: 0.5, league.AttrWeight: 0.5},
			league.WR: {league.AttrHeight: 1},
			league.QB: {league.AttrThrowingAccuracy: 2},
		},
	}
	p := flatPlayer("p1", 60)
	p.Physical.Weight = 200

	tests := []struct {
		name     string
		pos      league.Position
		expected float64
	}{
		{"weight normalized", league.OL, 0.5*60 + 0.5*80},
		{"height offset", league.WR, 58},
		{"clamped high", league.QB, 99},
		{"missing position", league.CB, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overall(p, tc.pos, w); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Overall(%s) = %f, expected %f", tc.pos, got, tc.expected)
			}
		})
	}
}

func TestOverallClampsLow(t *testing.T) {
	w := config.Weights{Positions: map[league.Position]map[league.Attr]float64{
		league.QB: {league.AttrThrowingAccuracy: 1},
	}}
	p := flatPlayer("p1", 0)
	if got := Overall(p, league.QB, w); got != 1 {
		t.Errorf("Overall() = %f, expected 1", got)
	}
}

func TestSlotSuitabilityBlend(t *testing.T) {
	w := config.Weights{Positions: map[league.Position]map[league.Attr]float64{
		league.WR: {league.AttrCatchingHands: 1},
	}}
	f := &config.Formation{SlotPriorities: map[string]map[league.Attr]float64{
		"WR1": {league.AttrSpeed: 1},
	}}
	p := flatPlayer("p1", 50)
	p.Physical.Speed = 90

	got := SlotSuitability(p, "WR1", f, w)
	expected := 0.7*90 + 0.3*50
	if math.Abs(got-expected) > 1e-9 {
		t.Errorf("SlotSuitability(WR1) = %f, expected %f", got, expected)
	}

	// WR2 has no priorities and falls back to the overall
	if got := SlotSuitability(p, "WR2", f, w); got != 50 {
		t.Errorf("SlotSuitability(WR2) = %f, expected 50", got)
	}
}

func TestSpecialistAssignedToLine(t *testing.T) {
	tables := loadTables(t)
	lineman := flatPlayer("ol-specialist", 20)
	lineman.Physical.Strength = 95
	lineman.Technical.Blocking = 90
	lineman.Physical.Weight = 260

	team := &league.Team{
		ID:         "t1",
		Roster:     []*league.Player{lineman},
		Formations: league.Formations{Offense: "Pro Set", Defense: "4-3"},
	}

	// Assigning repeatedly must give the same answer
	for range 3 {
		chart := AutoDepthChart(team, league.Offense, tables)
		if len(chart) != 1 {
			t.Fatalf("chart has %d entries, expected 1", len(chart))
		}
		for slot := range chart {
			if pos := league.SlotPosition(slot); pos != league.OL {
				t.Errorf("specialist assigned to %s, expected an OL slot", slot)
			}
		}
	}

	if pos, _ := BestPosition(lineman, tables.Weights); pos != league.OL {
		t.Errorf("BestPosition() = %s, expected OL", pos)
	}
}

func TestAutoDepthChartPrefersAvailable(t *testing.T) {
	tables := config.Tables{
		Formations: map[string]config.Formation{
			"Solo": {Side: league.Offense, Slots: []string{"QB1"}},
		},
		Weights: config.DefaultWeights(),
	}
	star := flatPlayer("star", 90)
	star.Status = league.Status{Type: league.StatusInjured, Duration: 2}
	backup := flatPlayer("backup", 40)

	team := &league.Team{
		Roster:     []*league.Player{star, backup},
		Formations: league.Formations{Offense: "Solo"},
	}
	chart := AutoDepthChart(team, league.Offense, tables)

	if chart["QB1"] != "backup" {
		t.Errorf("QB1 = %q, expected the healthy backup", chart["QB1"])
	}
	if team.Offense["QB1"] != "backup" {
		t.Error("team chart should be replaced")
	}
}

func TestAutoDepthChartFillsWithUnavailable(t *testing.T) {
	tables := config.Tables{
		Formations: map[string]config.Formation{
			"Pair": {Side: league.Offense, Slots: []string{"QB1", "RB1"}},
		},
		Weights: config.DefaultWeights(),
	}
	hurt := flatPlayer("hurt", 70)
	hurt.Status = league.Status{Type: league.StatusInjured, Duration: 1}
	team := &league.Team{
		Roster:     []*league.Player{hurt, flatPlayer("ok", 50)},
		Formations: league.Formations{Offense: "Pair"},
	}

	chart := AutoDepthChart(team, league.Offense, tables)
	if len(chart) != 2 {
		t.Fatalf("chart = %v, expected both slots filled", chart)
	}
}

func TestChartSlotsUnion(t *testing.T) {
	tables := loadTables(t)
	team := &league.Team{Formations: league.Formations{Offense: "Pro Set", Defense: "4-3"}}

	off := ChartSlots(team, league.Offense, tables)
	if off[0] != "QB1" {
		t.Errorf("first offensive slot = %s, expected QB1", off[0])
	}
	seen := map[string]bool{}
	for _, s := range off {
		if seen[s] {
			t.Errorf("slot %s listed twice", s)
		}
		seen[s] = true
	}
	for _, s := range []string{"WR4", "TE2", "OL5"} {
		if !seen[s] {
			t.Errorf("expected %s in offensive chart slots", s)
		}
	}

	def := ChartSlots(team, league.Defense, tables)
	if len(def) < 11 {
		t.Errorf("defensive chart slots = %d, expected at least 11", len(def))
	}
}
