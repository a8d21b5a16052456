package config

import (
	"fmt"

	"github.com/vovakirdan/gridiron/internal/league"
)

// SeasonConfig tunes league generation and game flow around the play engine.
type SeasonConfig struct {
	Teams      int                     `yaml:"teams"`
	Roster     map[league.Position]int `yaml:"roster"` // Players drafted per position
	Attributes YardRange               `yaml:"attributes"`
	AgeRange   YardRange               `yaml:"age_range"`

	Game   GameConfig   `yaml:"game"`
	Health HealthConfig `yaml:"health"`
}

// GameConfig covers clock, kicking and field position between plays.
type GameConfig struct {
	QuarterSeconds    int       `yaml:"quarter_seconds"`
	PlaySeconds       YardRange `yaml:"play_seconds"` // Clock used by a play that keeps it running
	IncompleteSeconds int       `yaml:"incomplete_seconds"`
	KickoffSpot       int       `yaml:"kickoff_spot"`
	TouchbackSpot     int       `yaml:"touchback_spot"`
	FreeKickSpot      int       `yaml:"free_kick_spot"` // Receiving spot after a safety
	PuntYards         YardRange `yaml:"punt_yards"`
	PATRate           float64   `yaml:"pat_rate"`
	FieldGoalMax      int       `yaml:"field_goal_max"`
	FieldGoalBase     float64   `yaml:"field_goal_base"` // Make rate at 20 yards
	FieldGoalDrop     float64   `yaml:"field_goal_drop"` // Make rate lost per yard beyond 20
	RainChance        float64   `yaml:"rain_chance"`
	WindChance        float64   `yaml:"wind_chance"`
}

// HealthConfig covers injuries and weekly absences.
type HealthConfig struct {
	InjuryRate  float64   `yaml:"injury_rate"`  // Per participant per play
	InjuryWeeks YardRange `yaml:"injury_weeks"` // Weeks out, counting the week of the injury
	BusyRate    float64   `yaml:"busy_rate"`    // Per player per week
}

// DefaultSeasonConfig returns the built-in season tuning.
func DefaultSeasonConfig() SeasonConfig {
	return SeasonConfig{
		Teams: 8,
		Roster: map[league.Position]int{
			league.QB: 2, league.RB: 3, league.WR: 5, league.TE: 2, league.OL: 7,
			league.DL: 5, league.LB: 4, league.CB: 4, league.S: 3,
		},
		Attributes: YardRange{Min: 25, Max: 90},
		AgeRange:   YardRange{Min: 10, Max: 14},
		Game: GameConfig{
			QuarterSeconds:    600,
			PlaySeconds:       YardRange{Min: 25, Max: 40},
			IncompleteSeconds: 6,
			KickoffSpot:       25,
			TouchbackSpot:     20,
			FreeKickSpot:      30,
			PuntYards:         YardRange{Min: 25, Max: 40},
			PATRate:           0.8,
			FieldGoalMax:      45,
			FieldGoalBase:     0.9,
			FieldGoalDrop:     0.03,
			RainChance:        0.15,
			WindChance:        0.2,
		},
		Health: HealthConfig{
			InjuryRate:  0.002,
			InjuryWeeks: YardRange{Min: 2, Max: 4},
			BusyRate:    0.01,
		},
	}
}

// LoadSeason loads season tuning.
func LoadSeason(dir string) (SeasonConfig, error) {
	cfg, err := load(dir, "season", DefaultSeasonConfig)
	if err != nil {
		return cfg, err
	}
	if cfg.Teams < 2 {
		return cfg, fmt.Errorf("config: season: need at least 2 teams, got %d", cfg.Teams)
	}
	if cfg.Game.QuarterSeconds <= 0 {
		return cfg, fmt.Errorf("config: season: quarter_seconds must be positive")
	}
	return cfg, nil
}

// RosterSize returns the total number of players a team drafts.
func (c SeasonConfig) RosterSize() int {
	n := 0
	for _, pos := range league.AllPositions {
		n += c.Roster[pos]
	}
	return n
}
