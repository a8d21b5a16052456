package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridiron/internal/core"
	"github.com/vovakirdan/gridiron/internal/engine"
	"github.com/vovakirdan/gridiron/internal/league"
)

func fixtureResult() engine.Result {
	qb := engine.PlayerFrame{ID: "qb", Name: "Quinn", Slot: "QB", Side: league.Offense, X: 26, Y: 30}
	dt := engine.PlayerFrame{ID: "dt", Name: "Dee", Slot: "DT1", Side: league.Defense, X: 26, Y: 36}
	return engine.Result{
		PlayKey:  "Slants",
		PlayName: "Slants",
		Pass:     true,
		Yards:    7,
		Log:      []string{"Snap.", "Quinn throws.", "Caught for 7."},
		Frames: []engine.Frame{
			{Tick: 0, LogIndex: 0, Players: []engine.PlayerFrame{qb, dt}},
			{Tick: 3, LogIndex: 1, Ball: engine.BallFrame{X: 20, Y: 40, InAir: true}, Players: []engine.PlayerFrame{qb, dt}},
			{Tick: 5, LogIndex: 2, Ball: engine.BallFrame{X: 20, Y: 45, IsLoose: true}, Players: []engine.PlayerFrame{qb, dt}},
		},
	}
}

func newTestModel(calls *[]int) Model {
	src := func(n int) Replay {
		*calls = append(*calls, n)
		return Replay{Title: "Owls at Hawks", BallOn: 25, Result: fixtureResult()}
	}
	return NewModel(src, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10})
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, cmd := m.Update(TickMsg{})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	return next.(Model)
}

func TestReplayAdvancesOnTick(t *testing.T) {
	var calls []int
	m := newTestModel(&calls)

	if m.Frame() != 0 || !m.Playing() {
		t.Fatalf("new model: frame %d playing %v", m.Frame(), m.Playing())
	}

	m = tick(t, m)
	m = tick(t, m)
	if m.Frame() != 2 {
		t.Errorf("Frame() = %d, expected 2", m.Frame())
	}
	if m.Playing() {
		t.Error("replay should stop on the last frame")
	}

	m = tick(t, m)
	if m.Frame() != 2 {
		t.Errorf("Frame() = %d after end, expected 2", m.Frame())
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.Frame() != 0 || !m.Playing() {
		t.Errorf("play at end should rewind, frame %d playing %v", m.Frame(), m.Playing())
	}
}

func TestReplayStepKeys(t *testing.T) {
	var calls []int
	m := newTestModel(&calls)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Frame() != 1 || m.Playing() {
		t.Errorf("step: frame %d playing %v, expected 1 false", m.Frame(), m.Playing())
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Frame() != 0 {
		t.Errorf("stepping back past the start: frame %d, expected 0", m.Frame())
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if !m.Playing() {
		t.Error("restart should resume playback")
	}
}

func TestReplayNewPlay(t *testing.T) {
	var calls []int
	m := newTestModel(&calls)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})

	if len(calls) != 2 || calls[0] != 0 || calls[1] != 1 {
		t.Errorf("source calls = %v, expected [0 1]", calls)
	}
	if m.Frame() != 0 {
		t.Errorf("new play should start at frame 0, got %d", m.Frame())
	}
}

func TestReplayView(t *testing.T) {
	var calls []int
	m := newTestModel(&calls)
	out := m.View()

	for _, want := range []string{"Owls at Hawks", "frame 1/3", "Snap."} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name     string
		result   engine.Result
		expected string
	}{
		{"gain", engine.Result{Yards: 4}, "+4 yds"},
		{"touchdown", engine.Result{Yards: 30, Touchdown: true}, "+30 yds TOUCHDOWN"},
		{"interception", engine.Result{Turnover: true}, "+0 yds TURNOVER"},
		{"sack", engine.Result{Yards: -6, Sack: true}, "-6 yds SACK"},
		{"incomplete", engine.Result{Incomplete: true}, "+0 yds incomplete"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Summary(tc.result); got != tc.expected {
				t.Errorf("Summary() = %q, expected %q", got, tc.expected)
			}
		})
	}
}
