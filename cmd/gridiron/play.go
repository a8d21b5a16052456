package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridiron/internal/engine"
	"github.com/vovakirdan/gridiron/internal/platform/tui"
	"github.com/vovakirdan/gridiron/internal/rng"
)

var (
	flagJSON      bool
	flagBallOn    int
	flagDown      int
	flagToGo      int
	flagWeather   string
	flagDefFormat string
)

var playCmd = &cobra.Command{
	Use:   "play <playKey>",
	Short: "Resolve one play and print its log",
	Long: `Generates two teams, resolves a single play and prints the play log.

Unknown play keys fall back to the playbook's default play.

Examples:
  gridiron play "Slants"
  gridiron play "QB Sneak" --down 4 --to-go 1 --ball-on 60
  gridiron play "Four Verticals" --weather Rain --json`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the full result (log, frames, events) as JSON")
	addSituationFlags(playCmd)
}

// addSituationFlags registers the field situation flags shared by play and watch.
func addSituationFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagBallOn, "ball-on", 25, "Ball spot, 0 = own goal line, 100 = opponent goal line")
	cmd.Flags().IntVar(&flagDown, "down", 1, "Down (1-4)")
	cmd.Flags().IntVar(&flagToGo, "to-go", 10, "Yards to go")
	cmd.Flags().StringVar(&flagWeather, "weather", string(engine.Sunny), "Weather: Sunny, Windy, Rain")
	cmd.Flags().StringVar(&flagDefFormat, "defense", "", "Defensive formation override")
}

func situation() (engine.Context, error) {
	w := engine.Weather(flagWeather)
	switch w {
	case engine.Sunny, engine.Windy, engine.Rain:
	default:
		return engine.Context{}, fmt.Errorf("gridiron: unknown weather %q", flagWeather)
	}
	if flagBallOn < 0 || flagBallOn > 99 {
		return engine.Context{}, fmt.Errorf("gridiron: ball spot %d outside 0-99", flagBallOn)
	}
	return engine.Context{
		BallOn:           flagBallOn,
		Down:             min(max(flagDown, 1), 4),
		YardsToGo:        max(flagToGo, 1),
		Weather:          w,
		DefenseFormation: flagDefFormat,
	}, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx, err := situation()
	if err != nil {
		return err
	}

	src := rng.New(a.seed)
	offense, defense := a.sim.Exhibition(src)
	r := a.sim.Engine().ResolvePlay(offense, defense, args[0], ctx, src)

	out := cmd.OutOrStdout()
	if flagJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	fmt.Fprintf(out, "%s (%s) vs %s (%s), seed %d\n\n", offense.Name, offense.Coach.Name, defense.Name, defense.Coach.Name, a.seed)
	for i, line := range r.Log {
		fmt.Fprintf(out, "%3d  %s\n", i+1, line)
	}
	fmt.Fprintf(out, "\n%s: %s in %d ticks\n", r.PlayName, tui.Summary(r), r.Ticks)
	return nil
}
