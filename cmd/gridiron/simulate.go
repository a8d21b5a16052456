package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridiron/internal/rng"
	"github.com/vovakirdan/gridiron/internal/sim"
	"github.com/vovakirdan/gridiron/internal/storage"
)

var flagWeeks int

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Simulate a season and store the results",
	Long: `Generates a league, runs the snake draft and plays every scheduled week.

Game results, box scores and season stat lines are written to the
database after each week, so an interrupted season keeps what was played.

Examples:
  gridiron sim
  gridiron sim --weeks 3 --seed 7
  gridiron sim --db ./league.db`,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagWeeks, "weeks", 0, "Weeks to schedule (0 = one full round robin)")
}

func runSim(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	logger := a.logger.With("component", "cli")

	store, err := storage.Open(a.dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	src := rng.New(a.seed)
	season, err := a.sim.NewSeason(flagWeeks, src)
	if err != nil {
		return err
	}
	seasonID, err := store.CreateSeason(a.seed, len(season.Teams), len(season.Schedule))
	if err != nil {
		return err
	}
	logger.Info("season created", "id", seasonID, "seed", a.seed, "db", a.dbPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	runErr := a.sim.Run(ctx, season, src, func(week int, results []sim.GameResult) error {
		fmt.Fprintf(out, "Week %d\n", week)
		for _, r := range results {
			if err := store.SaveGame(seasonID, r); err != nil {
				return err
			}
			fmt.Fprintf(out, "  %-24s %2d  @ %-24s %2d\n", r.AwayName, r.AwayScore, r.HomeName, r.HomeScore)
		}
		return store.SaveSeasonLines(seasonID, season.Teams)
	})
	if runErr != nil {
		return fmt.Errorf("gridiron: season %s stopped: %w", seasonID, runErr)
	}

	fmt.Fprintln(out)
	printStandings(out, sim.Standings(season.Teams, season.Results))
	fmt.Fprintf(out, "\nSeason %s saved. Run 'gridiron leaders' for stat leaders.\n", seasonID)
	return nil
}
