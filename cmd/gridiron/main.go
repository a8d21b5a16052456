// gridiron simulates a youth football league in the terminal.
//
// Usage:
//
//	gridiron plays              - List formations and plays
//	gridiron play <key>         - Resolve one play and print its log
//	gridiron watch [key]        - Replay plays frame by frame
//	gridiron sim                - Simulate and store a season
//	gridiron leaders            - Show standings and stat leaders
//	gridiron serve              - Watch plays over SSH
//
// Global flags:
//
//	--seed <value>        - RNG seed for reproducible results
//	--db <path>           - Database path (default: ~/.gridiron/gridiron.db)
//	--config-dir <dir>    - Directory with engine, playbook, weights and season YAML
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed      int64
	flagDBPath    string
	flagConfigDir string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridiron",
	Short: "Gridiron - a youth football league simulator",
	Long: `Gridiron simulates a youth football league one play at a time.

Every play is resolved tick by tick on a 53.3 x 120 yard field, with
blocks, routes, coverage, catches and tackles decided by player ratings.

Available commands:
  plays    - List formations and plays
  play     - Resolve one play and print the play log
  watch    - Replay plays frame by frame
  sim      - Simulate a season and store the results
  leaders  - Show standings and stat leaders
  serve    - Start an SSH server to watch plays remotely

Examples:
  gridiron plays
  gridiron play "Slants" --seed 42
  gridiron watch "Inside Run"
  gridiron sim --weeks 7
  gridiron leaders
  gridiron serve --ssh :23235`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = $GRIDIRON_SEED or time based)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to league database (default $GRIDIRON_DB)")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "Directory with YAML overrides (default $GRIDIRON_CONFIG_DIR)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default $GRIDIRON_LOG_LEVEL)")

	rootCmd.AddCommand(playsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(leadersCmd)
	rootCmd.AddCommand(serveCmd)
}
