// Package tui renders play replays in the terminal with Bubble Tea, locally
// or over SSH, and shows league standings.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances the replay by one frame.
type TickMsg time.Time

// tickCmd returns a command that sends a TickMsg at the given frame rate.
func tickCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(max(fps, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
