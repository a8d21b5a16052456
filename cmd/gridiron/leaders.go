package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridiron/internal/platform/tui"
	"github.com/vovakirdan/gridiron/internal/sim"
	"github.com/vovakirdan/gridiron/internal/storage"
)

var (
	flagLimit       int
	flagCategory    string
	flagInteractive bool
)

var leadersCmd = &cobra.Command{
	Use:   "leaders",
	Short: "Show standings and stat leaders",
	Long: `Shows standings and stat leaders for the most recent stored season.

Categories: passing, rushing, receiving, touchdowns, tackles, sacks,
interceptions.

Examples:
  gridiron leaders
  gridiron leaders --category sacks --limit 10
  gridiron leaders --interactive`,
	RunE: runLeaders,
}

func init() {
	leadersCmd.Flags().IntVar(&flagLimit, "limit", 5, "Players per category")
	leadersCmd.Flags().StringVar(&flagCategory, "category", "", "Show only one category")
	leadersCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse in a table view")
}

func runLeaders(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	store, err := storage.Open(a.dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	season, err := store.LatestSeason()
	if errors.Is(err, storage.ErrNoSeason) {
		fmt.Fprintln(cmd.OutOrStdout(), "No seasons stored yet. Run 'gridiron sim' first.")
		return nil
	}
	if err != nil {
		return err
	}

	standings, err := store.Standings(season.ID)
	if err != nil {
		return err
	}

	categories := sim.Categories
	if flagCategory != "" {
		c, ok := sim.CategoryByKey(flagCategory)
		if !ok {
			return fmt.Errorf("gridiron: unknown category %q", flagCategory)
		}
		categories = []sim.Category{c}
	}

	leaders := make(map[string][]sim.Leader, len(categories))
	for _, c := range categories {
		list, err := store.Leaders(season.ID, c.Key, flagLimit)
		if err != nil {
			return err
		}
		leaders[c.Key] = list
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(standings, leaders, width, height)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Season %s (seed %d, %d teams, %d weeks)\n\n", season.ID, season.Seed, season.Teams, season.Weeks)
	printStandings(out, standings)
	for _, c := range categories {
		fmt.Fprintf(out, "\n%s\n", c.Title)
		if len(leaders[c.Key]) == 0 {
			fmt.Fprintln(out, "  (none)")
		}
		for i, l := range leaders[c.Key] {
			fmt.Fprintf(out, "  %2d. %-22s %-3s %-22s %5d\n", i+1, l.Name, l.Position, l.Team, l.Value)
		}
	}
	return nil
}

func printStandings(out io.Writer, standings []sim.Standing) {
	fmt.Fprintf(out, "  %-24s %6s %6s %5s %5s\n", "Team", "W-L-T", "Pct", "PF", "PA")
	for _, s := range standings {
		fmt.Fprintf(out, "  %-24s %6s %6.3f %5d %5d\n", s.Name,
			fmt.Sprintf("%d-%d-%d", s.Wins, s.Losses, s.Ties), s.Pct(), s.PointsFor, s.PointsAgainst)
	}
}
