package sim

import (
	"sort"

	"github.com/vovakirdan/gridiron/internal/league"
)

// Standing is a team's record built from game results.
type Standing struct {
	TeamID        string `json:"teamId"`
	Name          string `json:"name"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	Ties          int    `json:"ties"`
	PointsFor     int    `json:"pointsFor"`
	PointsAgainst int    `json:"pointsAgainst"`
}

// Games returns games played.
func (s Standing) Games() int {
	return s.Wins + s.Losses + s.Ties
}

// Pct returns the winning percentage with ties counted as half a win.
func (s Standing) Pct() float64 {
	if s.Games() == 0 {
		return 0
	}
	return (float64(s.Wins) + float64(s.Ties)/2) / float64(s.Games())
}

// Diff returns the point differential.
func (s Standing) Diff() int {
	return s.PointsFor - s.PointsAgainst
}

// Standings orders teams by winning percentage, then point differential,
// then name.
func Standings(teams []*league.Team, results []GameResult) []Standing {
	idx := make(map[string]int, len(teams))
	table := make([]Standing, len(teams))
	for i, t := range teams {
		idx[t.ID] = i
		table[i] = Standing{TeamID: t.ID, Name: t.Name}
	}

	for _, r := range results {
		h, okH := idx[r.HomeID]
		a, okA := idx[r.AwayID]
		if !okH || !okA {
			continue
		}
		table[h].PointsFor += r.HomeScore
		table[h].PointsAgainst += r.AwayScore
		table[a].PointsFor += r.AwayScore
		table[a].PointsAgainst += r.HomeScore
		switch r.WinnerID() {
		case r.HomeID:
			table[h].Wins++
			table[a].Losses++
		case r.AwayID:
			table[a].Wins++
			table[h].Losses++
		default:
			table[h].Ties++
			table[a].Ties++
		}
	}

	sort.SliceStable(table, func(i, j int) bool {
		if table[i].Pct() != table[j].Pct() {
			return table[i].Pct() > table[j].Pct()
		}
		if table[i].Diff() != table[j].Diff() {
			return table[i].Diff() > table[j].Diff()
		}
		return table[i].Name < table[j].Name
	})
	return table
}

// Category is a stat leaderboard.
type Category struct {
	Key   string
	Title string
	Value func(league.Stats) int
}

// Categories lists the leaderboards in display order.
var Categories = []Category{
	{"passing", "Passing yards", func(s league.Stats) int { return s.PassYards }},
	{"rushing", "Rushing yards", func(s league.Stats) int { return s.RushYards }},
	{"receiving", "Receiving yards", func(s league.Stats) int { return s.RecYards }},
	{"touchdowns", "Touchdowns", func(s league.Stats) int { return s.Touchdowns() }},
	{"tackles", "Tackles", func(s league.Stats) int { return s.Tackles }},
	{"sacks", "Sacks", func(s league.Stats) int { return s.Sacks }},
	{"interceptions", "Interceptions", func(s league.Stats) int { return s.Interceptions }},
}

// CategoryByKey finds a leaderboard by key.
func CategoryByKey(key string) (Category, bool) {
	for _, c := range Categories {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}

// Leader is one row of a leaderboard.
type Leader struct {
	PlayerID string          `json:"playerId"`
	Name     string          `json:"name"`
	Team     string          `json:"team"`
	Position league.Position `json:"position"`
	Value    int             `json:"value"`
}

// Leaders returns the top n players by season totals in a category.
// Players with nothing recorded are left out.
func Leaders(teams []*league.Team, c Category, n int) []Leader {
	var out []Leader
	for _, t := range teams {
		for _, p := range t.Roster {
			if v := c.Value(p.SeasonStats); v > 0 {
				out = append(out, Leader{PlayerID: p.ID, Name: p.Name, Team: t.Name, Position: p.Position, Value: v})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
