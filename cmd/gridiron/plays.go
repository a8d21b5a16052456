package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridiron/internal/league"
	"github.com/vovakirdan/gridiron/internal/registry"
)

var playsCmd = &cobra.Command{
	Use:   "plays",
	Short: "List formations, plays and coaches",
	Long:  `Shows the formations and plays loaded from the playbook, and the coach personalities that call them.`,
	RunE:  runPlays,
}

func runPlays(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	tables := a.sim.Engine().Tables()
	out := cmd.OutOrStdout()

	for _, side := range []league.Side{league.Offense, league.Defense} {
		fmt.Fprintf(out, "%s formations:\n", side)
		for _, name := range tables.FormationNames(side) {
			f := tables.Formations[name]
			fmt.Fprintf(out, "  %-16s %s\n", name, personnelText(f.Personnel()))
		}
		fmt.Fprintln(out)
	}

	keys := tables.PlayKeys()
	maxKeyLen := 3
	for _, k := range keys {
		maxKeyLen = max(maxKeyLen, len(k))
	}

	fmt.Fprintln(out, "Plays:")
	fmt.Fprintf(out, "  %-*s  %-4s  %s\n", maxKeyLen, "Key", "Type", "Formation")
	fmt.Fprintf(out, "  %-*s  %-4s  %s\n", maxKeyLen, "---", "----", "---------")
	for _, k := range keys {
		p, _ := tables.Play(k)
		marker := ""
		if k == tables.DefaultPlay {
			marker = "  (default)"
		}
		fmt.Fprintf(out, "  %-*s  %-4s  %s%s\n", maxKeyLen, k, p.Type, p.Formation, marker)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Coaches:")
	for _, c := range registry.List() {
		fmt.Fprintf(out, "  %-12s %s\n", c.ID, c.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'gridiron play <key>' to resolve a play.")
	return nil
}

// personnelText renders slot counts like "QB1 RB1 WR3 TE1 OL5".
func personnelText(counts map[league.Position]int) string {
	var parts []string
	for _, pos := range league.AllPositions {
		if n := counts[pos]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s%d", pos, n))
		}
	}
	return strings.Join(parts, " ")
}
