package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridiron/internal/core"
	"github.com/vovakirdan/gridiron/internal/engine"
)

// Replay is one resolved play ready to be shown.
type Replay struct {
	Title  string
	BallOn int
	Result engine.Result
}

// PlaySource produces the n-th play shown by the viewer, starting at 0.
type PlaySource func(n int) Replay

// Replay viewer limits.
const (
	minFPS      = 1
	maxFPS      = 30
	minLogLines = 4
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	logStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	logActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	paneStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
)

// Model is the Bubble Tea model for replaying plays frame by frame.
type Model struct {
	next     PlaySource
	count    int
	replay   Replay
	frame    int
	playing  bool
	fps      int
	screen   *core.Screen
	log      viewport.Model
	help     help.Model
	keys     ReplayKeyMap
	width    int
	height   int
	quitting bool
}

// NewModel creates a replay model showing the first play from next.
func NewModel(next PlaySource, cfg core.RuntimeConfig) Model {
	m := Model{
		next:    next,
		playing: true,
		fps:     core.Clamp(cfg.TickRate, minFPS, maxFPS),
		screen:  core.NewScreen(max(cfg.ScreenW, 1), 1),
		help:    help.New(),
		keys:    DefaultReplayKeyMap(),
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
	m.replay = next(0)
	m.layout()
	return m
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case TickMsg:
		if m.playing {
			m.step(1)
			if m.frame == m.lastFrame() {
				m.playing = false
			}
		}
		return m, tickCmd(m.fps)
	}

	var cmd tea.Cmd
	m.log, cmd = m.log.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		if !m.playing && m.frame == m.lastFrame() {
			m.frame = 0
		}
		m.playing = !m.playing
	case key.Matches(msg, m.keys.Next):
		m.playing = false
		m.step(1)
	case key.Matches(msg, m.keys.Prev):
		m.playing = false
		m.step(-1)
	case key.Matches(msg, m.keys.Restart):
		m.frame = 0
		m.playing = true
	case key.Matches(msg, m.keys.Faster):
		m.fps = min(m.fps+2, maxFPS)
	case key.Matches(msg, m.keys.Slower):
		m.fps = max(m.fps-2, minFPS)
	case key.Matches(msg, m.keys.NewPlay):
		m.count++
		m.replay = m.next(m.count)
		m.frame = 0
		m.playing = true
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	}
	m.syncLog()
	return m, nil
}

// step moves the frame cursor, staying inside the recorded frames.
func (m *Model) step(delta int) {
	m.frame = core.Clamp(m.frame+delta, 0, m.lastFrame())
	m.syncLog()
}

func (m Model) lastFrame() int {
	return max(len(m.replay.Result.Frames)-1, 0)
}

// current returns the frame under the cursor.
func (m Model) current() (engine.Frame, bool) {
	frames := m.replay.Result.Frames
	if len(frames) == 0 {
		return engine.Frame{}, false
	}
	return frames[m.frame], true
}

// layout sizes the field and the log pane for the window.
func (m *Model) layout() {
	helpLines := 1
	if m.help.ShowAll {
		helpLines = 3
	}
	logLines := max(m.height/3, minLogLines)
	fieldH := max(m.height-logLines-helpLines-4, 3)
	w := max(m.width, 10)

	m.screen.Resize(w, fieldH)
	m.log = viewport.New(w-2, logLines)
	m.syncLog()
}

// syncLog rewrites the log pane with the entry of the current frame
// highlighted and scrolled into view.
func (m *Model) syncLog() {
	active := -1
	if f, ok := m.current(); ok {
		active = f.LogIndex
	}

	lines := make([]string, len(m.replay.Result.Log))
	for i, entry := range m.replay.Result.Log {
		if i == active {
			lines[i] = logActiveStyle.Render("> " + entry)
			continue
		}
		if i > active {
			lines[i] = statusStyle.Render("  " + entry)
			continue
		}
		lines[i] = logStyle.Render("  " + entry)
	}
	m.log.SetContent(strings.Join(lines, "\n"))

	switch {
	case active < 0:
		m.log.GotoTop()
	case active < m.log.YOffset:
		m.log.SetYOffset(active)
	case active >= m.log.YOffset+m.log.Height:
		m.log.SetYOffset(active - m.log.Height + 1)
	}
}

// Frame returns the index of the frame on screen.
func (m Model) Frame() int {
	return m.frame
}

// Playing reports whether the replay advances on each tick.
func (m Model) Playing() bool {
	return m.playing
}

// View renders the current frame, the log pane and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	f, _ := m.current()
	r := m.replay.Result

	m.screen.Clear()
	DrawField(m.screen, core.NewRect(0, 0, m.screen.Width(), m.screen.Height()), f, m.replay.BallOn)

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s  %s", m.replay.Title, r.PlayName)))
	b.WriteString(statusStyle.Render(fmt.Sprintf("  frame %d/%d  tick %d  %dfps", m.frame+1, len(r.Frames), f.Tick, m.fps)))
	if m.frame == m.lastFrame() {
		b.WriteString("  " + headerStyle.Render(Summary(r)))
	}
	b.WriteString("\n")
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(paneStyle.Render(m.log.View()))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Summary is a one-line outcome of a play.
func Summary(r engine.Result) string {
	parts := []string{fmt.Sprintf("%+d yds", r.Yards)}
	switch {
	case r.Touchdown:
		parts = append(parts, "TOUCHDOWN")
	case r.Turnover:
		parts = append(parts, "TURNOVER")
	case r.Sack:
		parts = append(parts, "SACK")
	case r.Incomplete:
		parts = append(parts, "incomplete")
	}
	return strings.Join(parts, " ")
}

// Run starts the replay viewer in the local terminal.
func Run(next PlaySource, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(next, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
