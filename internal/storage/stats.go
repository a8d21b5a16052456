package storage

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/gridiron/internal/league"
	"github.com/vovakirdan/gridiron/internal/sim"
)

// statColumns lists the stat counters in storage order. It must match
// statValues and scanStats.
var statColumns = []string{
	"pass_attempts", "completions", "pass_yards", "pass_touchdowns", "interceptions_thrown", "sacks_taken",
	"rush_attempts", "rush_yards", "rush_touchdowns",
	"targets", "receptions", "rec_yards", "rec_touchdowns", "drops",
	"tackles", "sacks", "interceptions", "passes_defended", "forced_fumbles", "fumbles", "fumbles_lost",
}

var (
	statColumnList   = strings.Join(statColumns, ", ")
	statPlaceholders = strings.TrimSuffix(strings.Repeat("?, ", len(statColumns)), ", ")
	statColumnsDDL   = func() string {
		defs := make([]string, len(statColumns))
		for i, c := range statColumns {
			defs[i] = c + " INTEGER NOT NULL DEFAULT 0"
		}
		return strings.Join(defs, ",\n\t\t\t")
	}()
)

func statValues(s league.Stats) []any {
	return []any{
		s.PassAttempts, s.Completions, s.PassYards, s.PassTouchdowns, s.InterceptionsThrown, s.SacksTaken,
		s.RushAttempts, s.RushYards, s.RushTouchdowns,
		s.Targets, s.Receptions, s.RecYards, s.RecTouchdowns, s.Drops,
		s.Tackles, s.Sacks, s.Interceptions, s.PassesDefended, s.ForcedFumbles, s.Fumbles, s.FumblesLost,
	}
}

func statDest(s *league.Stats) []any {
	return []any{
		&s.PassAttempts, &s.Completions, &s.PassYards, &s.PassTouchdowns, &s.InterceptionsThrown, &s.SacksTaken,
		&s.RushAttempts, &s.RushYards, &s.RushTouchdowns,
		&s.Targets, &s.Receptions, &s.RecYards, &s.RecTouchdowns, &s.Drops,
		&s.Tackles, &s.Sacks, &s.Interceptions, &s.PassesDefended, &s.ForcedFumbles, &s.Fumbles, &s.FumblesLost,
	}
}

// leaderExpr maps a leaderboard key to its SQL expression.
var leaderExpr = map[string]string{
	"passing":       "pass_yards",
	"rushing":       "rush_yards",
	"receiving":     "rec_yards",
	"touchdowns":    "rush_touchdowns + rec_touchdowns",
	"tackles":       "tackles",
	"sacks":         "sacks",
	"interceptions": "interceptions",
}

// Leaders returns the top players of a season in a leaderboard category.
func (s *Store) Leaders(seasonID, category string, limit int) ([]sim.Leader, error) {
	expr, ok := leaderExpr[category]
	if !ok {
		return nil, fmt.Errorf("storage: unknown leader category %q", category)
	}
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT player_id, name, team_name, position, `+expr+` AS value
		 FROM season_lines
		 WHERE season_id = ? AND `+expr+` > 0
		 ORDER BY value DESC, name, player_id
		 LIMIT ?`,
		seasonID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaders: %w", err)
	}
	defer rows.Close()

	var leaders []sim.Leader
	for rows.Next() {
		var l sim.Leader
		var pos string
		if err := rows.Scan(&l.PlayerID, &l.Name, &l.Team, &pos, &l.Value); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		l.Position = league.Position(pos)
		leaders = append(leaders, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return leaders, nil
}

// SeasonLine returns one player's stored season totals.
func (s *Store) SeasonLine(seasonID, playerID string) (league.Stats, error) {
	var st league.Stats
	err := s.db.QueryRow(
		`SELECT `+statColumnList+` FROM season_lines WHERE season_id = ? AND player_id = ?`,
		seasonID, playerID,
	).Scan(statDest(&st)...)
	if err != nil {
		return st, fmt.Errorf("storage: cannot query season line: %w", err)
	}
	return st, nil
}

// GameLines returns the box score lines of a game.
func (s *Store) GameLines(gameID string) ([]sim.PlayerLine, error) {
	rows, err := s.db.Query(
		`SELECT team_id, player_id, name, position, `+statColumnList+`
		 FROM player_games
		 WHERE game_id = ?
		 ORDER BY team_id, position, name`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query game lines: %w", err)
	}
	defer rows.Close()

	var lines []sim.PlayerLine
	for rows.Next() {
		var l sim.PlayerLine
		var pos string
		dest := append([]any{&l.TeamID, &l.PlayerID, &l.Name, &pos}, statDest(&l.Stats)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		l.Position = league.Position(pos)
		lines = append(lines, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return lines, nil
}

// Standings aggregates a season's stored games into a standings table.
func (s *Store) Standings(seasonID string) ([]sim.Standing, error) {
	rows, err := s.db.Query(
		`SELECT team_id, team_name, SUM(win), SUM(loss), SUM(tie), SUM(pf), SUM(pa)
		 FROM (
			SELECT home_id AS team_id, home_name AS team_name,
			       home_score > away_score AS win, home_score < away_score AS loss, home_score = away_score AS tie,
			       home_score AS pf, away_score AS pa
			FROM games WHERE season_id = ?
			UNION ALL
			SELECT away_id, away_name,
			       away_score > home_score, away_score < home_score, away_score = home_score,
			       away_score, home_score
			FROM games WHERE season_id = ?
		 )
		 GROUP BY team_id, team_name
		 ORDER BY (SUM(win) * 2 + SUM(tie)) * 1.0 / COUNT(*) DESC, SUM(pf) - SUM(pa) DESC, team_name`,
		seasonID, seasonID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query standings: %w", err)
	}
	defer rows.Close()

	var table []sim.Standing
	for rows.Next() {
		var st sim.Standing
		if err := rows.Scan(&st.TeamID, &st.Name, &st.Wins, &st.Losses, &st.Ties, &st.PointsFor, &st.PointsAgainst); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		table = append(table, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return table, nil
}
