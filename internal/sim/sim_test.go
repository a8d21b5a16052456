package sim

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridiron/internal/config"
	"github.com/vovakirdan/gridiron/internal/engine"
	"github.com/vovakirdan/gridiron/internal/league"
	"github.com/vovakirdan/gridiron/internal/rng"
)

func newSim(t *testing.T, teams int) *Simulator {
	t.Helper()
	tables, err := config.DefaultTables()
	if err != nil {
		t.Fatalf("DefaultTables() error = %v", err)
	}
	cfg := config.DefaultSeasonConfig()
	cfg.Teams = teams
	return New(engine.New(config.DefaultEngineConfig(), tables, nil), cfg, nil)
}

func TestUnknownPersonalityFallsBackToBalanced(t *testing.T) {
	var buf bytes.Buffer
	tables, err := config.DefaultTables()
	if err != nil {
		t.Fatalf("DefaultTables() error = %v", err)
	}
	s := New(engine.New(config.DefaultEngineConfig(), tables, nil), config.DefaultSeasonConfig(), log.New(&buf))

	if got := s.caller("balanced").ID(); got != "balanced" {
		t.Errorf("caller(balanced) = %q", got)
	}
	if buf.Len() != 0 {
		t.Errorf("known personality logged %q", buf.String())
	}

	if got := s.caller("riverboat").ID(); got != "balanced" {
		t.Errorf("caller(riverboat) = %q, expected balanced", got)
	}
	if !strings.Contains(buf.String(), "unknown coach personality") {
		t.Errorf("developer log = %q, expected a warning", buf.String())
	}
}

func teamsNamed(n int) []*league.Team {
	teams := make([]*league.Team, n)
	for i := range teams {
		teams[i] = &league.Team{ID: string(rune('A' + i)), Name: string(rune('A' + i))}
	}
	return teams
}

func TestRoundRobin(t *testing.T) {
	tests := []struct {
		teams, weeks, games int
	}{
		{8, 7, 4},
		{5, 5, 2},
		{2, 1, 1},
	}

	for _, tc := range tests {
		teams := teamsNamed(tc.teams)
		sched := RoundRobin(teams)
		if len(sched) != tc.weeks {
			t.Fatalf("%d teams: %d weeks, expected %d", tc.teams, len(sched), tc.weeks)
		}

		met := make(map[[2]string]int)
		for w, week := range sched {
			if len(week) != tc.games {
				t.Errorf("%d teams week %d: %d games, expected %d", tc.teams, w+1, len(week), tc.games)
			}
			seen := make(map[string]bool)
			for _, m := range week {
				if seen[m.Home.ID] || seen[m.Away.ID] {
					t.Errorf("%d teams week %d: a team plays twice", tc.teams, w+1)
				}
				seen[m.Home.ID], seen[m.Away.ID] = true, true
				a, b := m.Home.ID, m.Away.ID
				if a > b {
					a, b = b, a
				}
				met[[2]string{a, b}]++
			}
		}
		pairs := tc.teams * (tc.teams - 1) / 2
		if len(met) != pairs {
			t.Errorf("%d teams: %d distinct pairings, expected %d", tc.teams, len(met), pairs)
		}
		for pair, n := range met {
			if n != 1 {
				t.Errorf("%d teams: %v met %d times", tc.teams, pair, n)
			}
		}
	}
}

func TestScheduleRepeatsWithHomeSwapped(t *testing.T) {
	teams := teamsNamed(4)
	sched := Schedule(teams, 6)
	if len(sched) != 6 {
		t.Fatalf("len = %d, expected 6", len(sched))
	}
	first, repeat := sched[0][0], sched[3][0]
	if first.Home != repeat.Away || first.Away != repeat.Home {
		t.Errorf("second cycle should swap home and away: %s-%s then %s-%s",
			first.Home.ID, first.Away.ID, repeat.Home.ID, repeat.Away.ID)
	}
}

func TestGeneratePlayerInRange(t *testing.T) {
	s := newSim(t, 4)
	src := rng.New(3)
	for _, pos := range league.AllPositions {
		for range 20 {
			p := s.GeneratePlayer(pos, src)
			for _, a := range league.AllAttrs {
				if a == league.AttrHeight || a == league.AttrWeight {
					continue
				}
				if v := p.Attr(a); v < 1 || v > 99 {
					t.Fatalf("%s %s = %d, outside [1, 99]", pos, a, v)
				}
			}
			if !p.Status.Available() {
				t.Fatalf("new prospect should be available")
			}
		}
	}
}

func TestExhibitionTeamsAreReady(t *testing.T) {
	s := newSim(t, 8)
	home, away := s.Exhibition(rng.New(5))

	if home.ID == away.ID {
		t.Fatal("exhibition teams should differ")
	}
	for _, team := range []*league.Team{home, away} {
		if len(team.Roster) != s.cfg.RosterSize() {
			t.Errorf("%s roster = %d, expected %d", team.Name, len(team.Roster), s.cfg.RosterSize())
		}
	}

	r := s.Engine().ResolvePlay(home, away, "Inside Run", engine.Context{BallOn: 30, Down: 1, YardsToGo: 10}, rng.New(1))
	if r.Ticks == 0 {
		t.Error("exhibition teams should be able to run a play")
	}
}

func TestDraftFillsRosters(t *testing.T) {
	s := newSim(t, 4)
	src := rng.New(8)
	teams := s.GenerateTeams(4, src)
	pool := s.GeneratePool(len(teams), src)
	total := len(pool)

	picks, rest := s.Draft(teams, pool)
	if len(picks) != total || len(rest) != 0 {
		t.Fatalf("picks = %d, left = %d, expected %d and 0", len(picks), len(rest), total)
	}

	drafted := make(map[string]bool)
	for _, team := range teams {
		for _, pos := range league.AllPositions {
			if got, want := countPosition(team, pos), s.cfg.Roster[pos]; got != want {
				t.Errorf("%s has %d %s, expected %d", team.Name, got, pos, want)
			}
		}
		for _, p := range team.Roster {
			if drafted[p.ID] {
				t.Fatalf("%s drafted twice", p.ID)
			}
			drafted[p.ID] = true
		}
	}

	// Snake order: the last team in round one picks first in round two
	if picks[len(teams)].TeamID != teams[len(teams)-1].ID {
		t.Errorf("round two should open with the last team")
	}
}

func TestNewSeasonDeterministic(t *testing.T) {
	a, err := newSim(t, 4).NewSeason(0, rng.New(21))
	if err != nil {
		t.Fatalf("NewSeason() error = %v", err)
	}
	b, _ := newSim(t, 4).NewSeason(0, rng.New(21))

	if !reflect.DeepEqual(a.Picks, b.Picks) {
		t.Error("drafts differ for the same seed")
	}
	if len(a.Schedule) != 3 {
		t.Errorf("weeks = %d, expected 3", len(a.Schedule))
	}
	for i := range a.Teams {
		if a.Teams[i].Name != b.Teams[i].Name || len(a.Teams[i].Offense) == 0 {
			t.Errorf("team %d differs or has no depth chart", i)
		}
	}
}

func TestNewSeasonNeedsTeams(t *testing.T) {
	if _, err := newSim(t, 1).NewSeason(0, rng.New(1)); !errors.Is(err, ErrNoTeams) {
		t.Errorf("error = %v, expected ErrNoTeams", err)
	}
}

func TestPlayGame(t *testing.T) {
	play := func() (GameResult, *Season) {
		s := newSim(t, 2)
		season, err := s.NewSeason(1, rng.New(77))
		if err != nil {
			t.Fatalf("NewSeason() error = %v", err)
		}
		m := season.Schedule[0][0]
		return s.PlayGame(1, m.Home, m.Away, rng.New(78)), season
	}
	r, season := play()
	again, _ := play()

	if r.HomeScore != again.HomeScore || r.AwayScore != again.AwayScore || r.Plays != again.Plays {
		t.Errorf("same seed gave %d-%d in %d plays, then %d-%d in %d plays",
			r.HomeScore, r.AwayScore, r.Plays, again.HomeScore, again.AwayScore, again.Plays)
	}
	if r.ID == "" || r.ID != again.ID {
		t.Errorf("game IDs %q and %q should match and be set", r.ID, again.ID)
	}
	if r.Plays < 40 {
		t.Errorf("only %d plays in a full game", r.Plays)
	}

	points := map[string]int{}
	for _, sp := range r.Scoring {
		points[sp.TeamID] += sp.Points
	}
	if points[r.HomeID] != r.HomeScore || points[r.AwayID] != r.AwayScore {
		t.Errorf("scoring plays %v do not add up to %d-%d", points, r.HomeScore, r.AwayScore)
	}

	for _, team := range season.Teams {
		passing, receiving := 0, 0
		for _, p := range team.Roster {
			passing += p.SeasonStats.PassYards
			receiving += p.SeasonStats.RecYards
			if p.SeasonStats != p.GameStats {
				t.Errorf("%s season totals should equal the only game played", p.Name)
			}
			if p.Fatigue != 0 {
				t.Errorf("%s fatigue should reset after the game", p.Name)
			}
		}
		if passing != receiving {
			t.Errorf("%s passed for %d but caught %d", team.Name, passing, receiving)
		}
	}

	home, away := season.Team(r.HomeID), season.Team(r.AwayID)
	if home.Wins+home.Losses+home.Ties != 1 || away.Wins+away.Losses+away.Ties != 1 {
		t.Error("both teams should have one game on their record")
	}
}

func TestRunSeason(t *testing.T) {
	s := newSim(t, 4)
	season, err := s.NewSeason(0, rng.New(5))
	if err != nil {
		t.Fatalf("NewSeason() error = %v", err)
	}

	weeks := 0
	err = s.Run(context.Background(), season, rng.New(6), func(week int, results []GameResult) error {
		weeks++
		if len(results) != 2 {
			t.Errorf("week %d: %d games, expected 2", week, len(results))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if weeks != 3 || len(season.Results) != 6 {
		t.Errorf("weeks = %d, results = %d, expected 3 and 6", weeks, len(season.Results))
	}

	table := Standings(season.Teams, season.Results)
	games := 0
	for i, st := range table {
		games += st.Games()
		if i > 0 && st.Pct() > table[i-1].Pct() {
			t.Errorf("standings out of order at %d", i)
		}
	}
	if games != 12 {
		t.Errorf("standings count %d team-games, expected 12", games)
	}

	if _, err := s.PlayWeek(context.Background(), season, rng.New(7)); !errors.Is(err, ErrSeasonOver) {
		t.Errorf("PlayWeek() after the last week error = %v, expected ErrSeasonOver", err)
	}

	leaders := Leaders(season.Teams, Categories[0], 5)
	for i := 1; i < len(leaders); i++ {
		if leaders[i].Value > leaders[i-1].Value {
			t.Errorf("leaders out of order: %v", leaders)
		}
	}
}

func TestRunCancelled(t *testing.T) {
	s := newSim(t, 4)
	season, _ := s.NewSeason(0, rng.New(5))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Run(ctx, season, rng.New(6), nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, expected context.Canceled", err)
	}
	if season.Week != 0 {
		t.Errorf("Week = %d, expected no week completed", season.Week)
	}
}

func TestStartWeekCountsDownAbsences(t *testing.T) {
	s := newSim(t, 2)
	s.cfg.Health.BusyRate = 0
	season, _ := s.NewSeason(1, rng.New(9))
	p := season.Teams[0].Roster[0]
	p.Status = league.Status{Type: league.StatusInjured, Duration: 2, Description: "knee sprain"}

	s.StartWeek(season.Teams, rng.New(1))
	if p.Status.Duration != 1 || p.Status.Available() {
		t.Fatalf("after one week status = %+v, expected one week left", p.Status)
	}
	s.StartWeek(season.Teams, rng.New(1))
	if !p.Status.Available() || p.Status.Type != league.StatusHealthy {
		t.Errorf("after two weeks status = %+v, expected healthy", p.Status)
	}
}

func TestStandingsTiebreak(t *testing.T) {
	teams := teamsNamed(3)
	results := []GameResult{
		{HomeID: "A", AwayID: "B", HomeScore: 14, AwayScore: 7},
		{HomeID: "B", AwayID: "C", HomeScore: 21, AwayScore: 0},
		{HomeID: "C", AwayID: "A", HomeScore: 10, AwayScore: 3},
	}
	table := Standings(teams, results)

	// All 1-1; B has the best differential (+14), then A (0), then C (-14)
	order := []string{table[0].TeamID, table[1].TeamID, table[2].TeamID}
	if !reflect.DeepEqual(order, []string{"B", "A", "C"}) {
		t.Errorf("order = %v, expected [B A C]", order)
	}
}

func TestFieldGoalRate(t *testing.T) {
	if got := FieldGoalRate(20, false, 0.9, 0.03); got != 0.9 {
		t.Errorf("20 yards = %f, expected 0.9", got)
	}
	if FieldGoalRate(40, false, 0.9, 0.03) >= FieldGoalRate(30, false, 0.9, 0.03) {
		t.Error("longer kicks should be harder")
	}
	if FieldGoalRate(30, true, 0.9, 0.03) >= FieldGoalRate(30, false, 0.9, 0.03) {
		t.Error("wind should make kicks harder")
	}
}
