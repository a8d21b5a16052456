package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/gridiron/internal/league"
	"github.com/vovakirdan/gridiron/internal/sim"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	id, err := store.CreateSeason(42, 4, 3)
	if err != nil {
		t.Fatalf("CreateSeason() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()
	latest, err := store.LatestSeason()
	if err != nil {
		t.Fatalf("LatestSeason() failed: %v", err)
	}
	if latest.ID != id || latest.Seed != 42 || latest.Teams != 4 || latest.Weeks != 3 {
		t.Errorf("LatestSeason() = %+v", latest)
	}
}

func TestLatestSeasonEmpty(t *testing.T) {
	store := openStore(t)
	if _, err := store.LatestSeason(); !errors.Is(err, ErrNoSeason) {
		t.Errorf("LatestSeason() error = %v, expected ErrNoSeason", err)
	}
}

func TestLatestSeasonPicksNewest(t *testing.T) {
	store := openStore(t)
	if _, err := store.CreateSeason(1, 4, 3); err != nil {
		t.Fatal(err)
	}
	second, err := store.CreateSeason(2, 6, 5)
	if err != nil {
		t.Fatal(err)
	}
	latest, err := store.LatestSeason()
	if err != nil {
		t.Fatal(err)
	}
	if latest.ID != second {
		t.Errorf("LatestSeason() = %s, expected %s", latest.ID, second)
	}
}

func game(id string, week int, home, away string, hs, as int) sim.GameResult {
	return sim.GameResult{
		ID: id, Week: week,
		HomeID: home, HomeName: "Team " + home,
		AwayID: away, AwayName: "Team " + away,
		HomeScore: hs, AwayScore: as,
		Weather: "Sunny", Plays: 80,
	}
}

func TestSaveGameAndStandings(t *testing.T) {
	store := openStore(t)
	season, _ := store.CreateSeason(7, 3, 3)

	g := game("g1", 1, "A", "B", 14, 7)
	g.Lines = []sim.PlayerLine{
		{TeamID: "A", PlayerID: "qb", Name: "Quinn Porter", Position: league.QB, Stats: league.Stats{PassAttempts: 12, Completions: 7, PassYards: 88}},
		{TeamID: "A", PlayerID: "wr", Name: "Riley Tran", Position: league.WR, Stats: league.Stats{Receptions: 4, RecYards: 60}},
	}
	for _, r := range []sim.GameResult{
		g,
		game("g2", 2, "B", "C", 21, 0),
		game("g3", 3, "C", "A", 10, 3),
	} {
		if err := store.SaveGame(season, r); err != nil {
			t.Fatalf("SaveGame(%s) failed: %v", r.ID, err)
		}
	}

	games, err := store.Games(season)
	if err != nil {
		t.Fatalf("Games() failed: %v", err)
	}
	if len(games) != 3 || games[0].ID != "g1" || games[2].Week != 3 {
		t.Errorf("Games() = %+v", games)
	}

	lines, err := store.GameLines("g1")
	if err != nil {
		t.Fatalf("GameLines() failed: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("GameLines() returned %d lines, expected 2", len(lines))
	}
	for _, l := range lines {
		if l.PlayerID == "qb" && l.Stats.PassYards != 88 {
			t.Errorf("QB line = %+v", l.Stats)
		}
	}

	table, err := store.Standings(season)
	if err != nil {
		t.Fatalf("Standings() failed: %v", err)
	}
	order := []string{}
	for _, st := range table {
		order = append(order, st.TeamID)
		if st.Wins != 1 || st.Losses != 1 {
			t.Errorf("%s record = %d-%d, expected 1-1", st.TeamID, st.Wins, st.Losses)
		}
	}
	// Same records; point differential decides
	if len(order) != 3 || order[0] != "B" || order[1] != "A" || order[2] != "C" {
		t.Errorf("standings order = %v, expected [B A C]", order)
	}
}

func TestSaveGameRejectsDuplicate(t *testing.T) {
	store := openStore(t)
	season, _ := store.CreateSeason(7, 2, 1)
	g := game("g1", 1, "A", "B", 7, 0)
	if err := store.SaveGame(season, g); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveGame(season, g); err == nil {
		t.Error("saving the same game twice should fail")
	}
}

func TestSeasonLinesAndLeaders(t *testing.T) {
	store := openStore(t)
	season, _ := store.CreateSeason(7, 1, 1)

	team := &league.Team{ID: "A", Name: "Cedar Hill Badgers", Roster: []*league.Player{
		{ID: "p1", Name: "Avery Abbott", Position: league.RB, SeasonStats: league.Stats{RushYards: 300, RushTouchdowns: 3}},
		{ID: "p2", Name: "Blake Bishop", Position: league.RB, SeasonStats: league.Stats{RushYards: 450, RushTouchdowns: 1, RecTouchdowns: 1}},
		{ID: "p3", Name: "Casey Castillo", Position: league.LB, SeasonStats: league.Stats{Tackles: 40}},
	}}
	if err := store.SaveSeasonLines(season, []*league.Team{team}); err != nil {
		t.Fatalf("SaveSeasonLines() failed: %v", err)
	}

	// Saving again replaces rather than duplicates
	team.Roster[0].SeasonStats.RushYards = 500
	if err := store.SaveSeasonLines(season, []*league.Team{team}); err != nil {
		t.Fatalf("SaveSeasonLines() again failed: %v", err)
	}

	rushing, err := store.Leaders(season, "rushing", 10)
	if err != nil {
		t.Fatalf("Leaders() failed: %v", err)
	}
	if len(rushing) != 2 {
		t.Fatalf("rushing leaders = %+v, expected 2 rows", rushing)
	}
	if rushing[0].PlayerID != "p1" || rushing[0].Value != 500 {
		t.Errorf("top rusher = %+v, expected p1 with 500", rushing[0])
	}
	if rushing[0].Team != "Cedar Hill Badgers" || rushing[0].Position != league.RB {
		t.Errorf("leader row = %+v", rushing[0])
	}

	tds, _ := store.Leaders(season, "touchdowns", 1)
	if len(tds) != 1 || tds[0].PlayerID != "p1" || tds[0].Value != 3 {
		t.Errorf("touchdown leader = %+v, expected p1 with 3", tds)
	}

	line, err := store.SeasonLine(season, "p3")
	if err != nil {
		t.Fatalf("SeasonLine() failed: %v", err)
	}
	if line.Tackles != 40 {
		t.Errorf("Tackles = %d, expected 40", line.Tackles)
	}

	if _, err := store.Leaders(season, "punting", 5); err == nil {
		t.Error("unknown category should fail")
	}
}
