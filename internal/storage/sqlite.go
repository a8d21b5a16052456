// Package storage provides SQLite-based persistence for seasons, game
// results and player stat lines.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/gridiron/internal/league"
	"github.com/vovakirdan/gridiron/internal/sim"
)

// ErrNoSeason is returned when no season has been recorded yet.
var ErrNoSeason = errors.New("storage: no season recorded")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// SeasonEntry is a recorded season.
type SeasonEntry struct {
	ID        string
	Seed      int64
	Teams     int
	Weeks     int
	CreatedAt time.Time
}

// GameEntry is a stored game result.
type GameEntry struct {
	ID        string
	SeasonID  string
	Week      int
	HomeID    string
	HomeName  string
	AwayID    string
	AwayName  string
	HomeScore int
	AwayScore int
	Weather   string
	Plays     int
	Turnovers int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS seasons (
			id TEXT PRIMARY KEY,
			seed INTEGER NOT NULL,
			teams INTEGER NOT NULL,
			weeks INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			season_id TEXT NOT NULL,
			week INTEGER NOT NULL,
			home_id TEXT NOT NULL,
			home_name TEXT NOT NULL,
			away_id TEXT NOT NULL,
			away_name TEXT NOT NULL,
			home_score INTEGER NOT NULL DEFAULT 0,
			away_score INTEGER NOT NULL DEFAULT 0,
			weather TEXT NOT NULL,
			plays INTEGER NOT NULL DEFAULT 0,
			turnovers INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_season ON games(season_id, week);

		CREATE TABLE IF NOT EXISTS player_games (
			game_id TEXT NOT NULL,
			team_id TEXT NOT NULL,
			player_id TEXT NOT NULL,
			name TEXT NOT NULL,
			position TEXT NOT NULL,
			` + statColumnsDDL + `,
			PRIMARY KEY (game_id, player_id)
		);

		CREATE TABLE IF NOT EXISTS season_lines (
			season_id TEXT NOT NULL,
			player_id TEXT NOT NULL,
			team_name TEXT NOT NULL,
			name TEXT NOT NULL,
			position TEXT NOT NULL,
			` + statColumnsDDL + `,
			PRIMARY KEY (season_id, player_id)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// CreateSeason records a new season and returns its ID.
func (s *Store) CreateSeason(seed int64, teams, weeks int) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO seasons (id, seed, teams, weeks) VALUES (?, ?, ?, ?)",
		id, seed, teams, weeks,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save season: %w", err)
	}
	return id, nil
}

// LatestSeason returns the most recently created season.
func (s *Store) LatestSeason() (*SeasonEntry, error) {
	var e SeasonEntry
	var createdAt any
	err := s.db.QueryRow(
		`SELECT id, seed, teams, weeks, created_at
		 FROM seasons
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT 1`,
	).Scan(&e.ID, &e.Seed, &e.Teams, &e.Weeks, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSeason
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query season: %w", err)
	}
	e.CreatedAt = parseTime(createdAt)
	return &e, nil
}

// SaveGame stores a game result and its box score lines in one transaction.
func (s *Store) SaveGame(seasonID string, r sim.GameResult) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO games
		 (id, season_id, week, home_id, home_name, away_id, away_name, home_score, away_score, weather, plays, turnovers)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, seasonID, r.Week,
		r.HomeID, r.HomeName, r.AwayID, r.AwayName,
		r.HomeScore, r.AwayScore,
		string(r.Weather), r.Plays, r.Turnovers,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save game %s: %w", r.ID, err)
	}

	for _, line := range r.Lines {
		args := append([]any{r.ID, line.TeamID, line.PlayerID, line.Name, string(line.Position)}, statValues(line.Stats)...)
		if _, err := tx.Exec(
			`INSERT INTO player_games (game_id, team_id, player_id, name, position, `+statColumnList+`)
			 VALUES (?, ?, ?, ?, ?, `+statPlaceholders+`)`,
			args...,
		); err != nil {
			return fmt.Errorf("storage: cannot save line for %s: %w", line.PlayerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit game %s: %w", r.ID, err)
	}
	return nil
}

// SaveSeasonLines replaces the season totals of every rostered player.
func (s *Store) SaveSeasonLines(seasonID string, teams []*league.Team) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, t := range teams {
		for _, p := range t.Roster {
			args := append([]any{seasonID, p.ID, t.Name, p.Name, string(p.Position)}, statValues(p.SeasonStats)...)
			if _, err := tx.Exec(
				`INSERT OR REPLACE INTO season_lines (season_id, player_id, team_name, name, position, `+statColumnList+`)
				 VALUES (?, ?, ?, ?, ?, `+statPlaceholders+`)`,
				args...,
			); err != nil {
				return fmt.Errorf("storage: cannot save season line for %s: %w", p.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit season lines: %w", err)
	}
	return nil
}

// Games returns a season's games ordered by week.
func (s *Store) Games(seasonID string) ([]GameEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, season_id, week, home_id, home_name, away_id, away_name,
		        home_score, away_score, weather, plays, turnovers, created_at
		 FROM games
		 WHERE season_id = ?
		 ORDER BY week, rowid`,
		seasonID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var games []GameEntry
	for rows.Next() {
		var g GameEntry
		var createdAt any
		if err := rows.Scan(
			&g.ID, &g.SeasonID, &g.Week,
			&g.HomeID, &g.HomeName, &g.AwayID, &g.AwayName,
			&g.HomeScore, &g.AwayScore,
			&g.Weather, &g.Plays, &g.Turnovers, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		g.CreatedAt = parseTime(createdAt)
		games = append(games, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return games, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
