package sim

import (
	"context"
	"errors"
	"fmt"

	"github.com/vovakirdan/gridiron/internal/league"
	"github.com/vovakirdan/gridiron/internal/rng"
)

// ErrSeasonOver is returned when every scheduled week has been played.
var ErrSeasonOver = errors.New("sim: season is over")

// Season is a generated league and its schedule.
type Season struct {
	Teams    []*league.Team
	Schedule [][]Matchup
	Picks    []DraftPick
	Results  []GameResult
	Week     int // Weeks played
}

// Team looks up a team by ID.
func (s *Season) Team(id string) *league.Team {
	for _, t := range s.Teams {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Done reports whether every scheduled week has been played.
func (s *Season) Done() bool {
	return s.Week >= len(s.Schedule)
}

// NewSeason generates teams, drafts their rosters and schedules weeks.
// A non-positive weeks value schedules one full round robin.
func (s *Simulator) NewSeason(weeks int, src rng.Source) (*Season, error) {
	if s.cfg.Teams < 2 {
		return nil, ErrNoTeams
	}
	teams := s.GenerateTeams(s.cfg.Teams, src)
	pool := s.GeneratePool(len(teams), src)
	picks, _ := s.Draft(teams, pool)
	for _, t := range teams {
		s.SetDepthCharts(t)
	}

	if weeks <= 0 {
		weeks = len(RoundRobin(teams))
	}
	season := &Season{
		Teams:    teams,
		Schedule: Schedule(teams, weeks),
		Picks:    picks,
	}
	s.logger.Info("season ready", "teams", len(teams), "weeks", weeks, "picks", len(picks))
	return season, nil
}

// Exhibition generates and drafts two fresh teams outside any season.
func (s *Simulator) Exhibition(src rng.Source) (home, away *league.Team) {
	teams := s.GenerateTeams(2, src)
	s.Draft(teams, s.GeneratePool(len(teams), src))
	for _, t := range teams {
		s.SetDepthCharts(t)
	}
	return teams[0], teams[1]
}

// PlayWeek plays the next scheduled week. The context is checked between
// games; a cancelled week keeps the games already played.
func (s *Simulator) PlayWeek(ctx context.Context, season *Season, src rng.Source) ([]GameResult, error) {
	if season.Done() {
		return nil, ErrSeasonOver
	}
	week := season.Week + 1
	s.StartWeek(season.Teams, src)

	var results []GameResult
	for _, m := range season.Schedule[season.Week] {
		if err := ctx.Err(); err != nil {
			season.Results = append(season.Results, results...)
			return results, fmt.Errorf("sim: week %d: %w", week, err)
		}
		results = append(results, s.PlayGame(week, m.Home, m.Away, src))
	}
	season.Results = append(season.Results, results...)
	season.Week++

	s.logger.Info("week complete", "week", week, "games", len(results))
	return results, nil
}

// Run plays the remaining weeks. onWeek, when set, is called after each
// week; an error from it stops the season.
func (s *Simulator) Run(ctx context.Context, season *Season, src rng.Source, onWeek func(week int, results []GameResult) error) error {
	for !season.Done() {
		results, err := s.PlayWeek(ctx, season, src)
		if err != nil {
			return err
		}
		if onWeek != nil {
			if err := onWeek(season.Week, results); err != nil {
				return fmt.Errorf("sim: week %d: %w", season.Week, err)
			}
		}
	}
	return nil
}

// StartWeek counts down absences, rolls new weekly absences and rebuilds
// depth charts around who is available.
func (s *Simulator) StartWeek(teams []*league.Team, src rng.Source) {
	for _, t := range teams {
		for _, p := range t.Roster {
			if p.Status.Duration > 0 {
				p.Status.Duration--
				if p.Status.Duration == 0 {
					s.logger.Debug("player returns", "player", p.Name, "team", t.Name, "from", p.Status.Type)
					p.Status = league.Status{Type: league.StatusHealthy}
				}
				continue
			}
			if rng.Chance(src, s.cfg.Health.BusyRate) {
				p.Status = league.Status{Type: league.StatusBusy, Duration: 1, Description: "family commitment"}
			}
		}
		t.ResetFatigue()
		s.SetDepthCharts(t)
	}
}
