package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridiron/internal/core"
	"github.com/vovakirdan/gridiron/internal/platform/tui"
)

var flagFPS int

var watchCmd = &cobra.Command{
	Use:   "watch [playKey]",
	Short: "Replay plays frame by frame",
	Long: `Replays plays on a terminal field with the play log alongside.

With a play key every replay runs that play. Without one, coaches call
plays for random situations and the teams trade possessions.

Controls:
  Space      - Play/pause
  Left/Right - Step one frame
  R          - Restart the play
  N          - Next play
  +/-        - Faster/slower
  Q/Esc      - Quit

Examples:
  gridiron watch
  gridiron watch "Slants" --fps 5
  gridiron watch "Inside Run" --ball-on 95`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Replay frames per second")
	watchCmd.Flags().IntVar(&flagBallOn, "ball-on", 25, "Ball spot when a play key is given")
}

func runWatch(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	key := ""
	if len(args) == 1 {
		key = args[0]
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = a.seed

	return tui.Run(replaySource(a.sim, a.seed, key, min(max(flagBallOn, 0), 99)), cfg)
}
