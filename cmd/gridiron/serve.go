package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridiron/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeFPS    int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an SSH server to watch plays",
	Long: `Start an SSH server where every connection gets its own replay viewer.

Each session generates a fresh pair of teams and replays coach-called
plays for random situations.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.gridiron/host_key

Examples:
  gridiron serve                           # Listen on :23235 with auto-generated key
  gridiron serve --ssh :2222               # Listen on port 2222
  gridiron serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	RunE: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagServeFPS, "fps", defaults.FPS, "Replay frames per second")
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		FPS:         flagServeFPS,
	}

	newSource := func(seed int64) tui.PlaySource {
		return replaySource(a.sim, seed, "", 0)
	}
	server, err := tui.NewSSHServer(cfg, newSource, a.logger.With("component", "ssh"))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Starting gridiron SSH server on %s\n", cfg.Address)
	fmt.Fprintln(out, "Press Ctrl+C to stop")

	return server.ListenAndServe(context.Background())
}
