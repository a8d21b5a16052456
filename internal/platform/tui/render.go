package tui

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridiron/internal/core"
	"github.com/vovakirdan/gridiron/internal/engine"
	"github.com/vovakirdan/gridiron/internal/league"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorTurf:      lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
	core.ColorYardLine:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorEndZone:   lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	core.ColorOffense:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
	core.ColorDefense:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorBall:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	core.ColorLooseBall: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Blink(true),
	core.ColorHighlight: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorDim:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// fieldCell maps a field point to a screen cell inside area. The field is
// drawn sideways: field Y runs left to right, field X top to bottom.
func fieldCell(area core.Rect, x, y float64) (int, int) {
	col := area.X + int(y/core.FieldLength*float64(area.W-1)+0.5)
	row := area.Y + int(x/core.FieldWidth*float64(area.H-1)+0.5)
	return core.Clamp(col, area.X, area.Right()-1), core.Clamp(row, area.Y, area.Bottom()-1)
}

// Smallest area that still gets yard numbers.
const (
	minLabelWidth  = 48
	minLabelHeight = 7
)

// DrawField rasterizes turf, sidelines, yard lines, the line of scrimmage,
// players and the ball of one frame into area.
func DrawField(s *core.Screen, area core.Rect, f engine.Frame, ballOn int) {
	if area.W < 2 || area.H < 2 {
		return
	}

	for row := area.Y; row < area.Bottom(); row++ {
		for col := area.X; col < area.Right(); col++ {
			s.SetColored(col, row, '.', core.ColorTurf)
		}
	}
	s.DrawHLine(area.X, area.Y, area.W, '-', core.ColorYardLine)
	s.DrawHLine(area.X, area.Bottom()-1, area.W, '-', core.ColorYardLine)

	for yard := 0.0; yard <= core.FieldLength; yard++ {
		col, _ := fieldCell(area, 0, yard)
		switch {
		case yard < core.EndZoneDepth || yard > core.GoalLine():
			s.DrawVLine(col, area.Y, area.H, ':', core.ColorEndZone)
		case int(yard)%10 == 0:
			s.DrawVLine(col, area.Y, area.H, '|', core.ColorYardLine)
		}
	}

	if area.W >= minLabelWidth && area.H >= minLabelHeight {
		drawYardNumbers(s, area)
	}

	los, _ := fieldCell(area, 0, core.LineOfScrimmage(ballOn))
	s.DrawVLine(los, area.Y, area.H, '!', core.ColorDim)

	for _, p := range f.Players {
		col, row := fieldCell(area, p.X, p.Y)
		color := core.ColorOffense
		if p.Side == league.Defense {
			color = core.ColorDefense
		}
		if p.IsBallCarrier || p.HasBall {
			color = core.ColorHighlight
		}
		s.SetColored(col, row, slotRune(p.Slot, p.Side), color)
	}

	switch {
	case f.Ball.IsLoose:
		col, row := fieldCell(area, f.Ball.X, f.Ball.Y)
		s.SetColored(col, row, '*', core.ColorLooseBall)
	case f.Ball.InAir:
		col, row := fieldCell(area, f.Ball.X, f.Ball.Y)
		s.SetColored(col, row, 'o', core.ColorBall)
	}
}

// drawYardNumbers labels each ten-yard line just inside the near sideline,
// counting up to midfield from both goal lines.
func drawYardNumbers(s *core.Screen, area core.Rect) {
	row := area.Y + 1
	for line := 10; line <= 90; line += 10 {
		label := strconv.Itoa(min(line, 100-line))
		col, _ := fieldCell(area, 0, core.EndZoneDepth+float64(line))
		if !area.Contains(col+len(label), row) {
			continue
		}
		s.DrawText(col+1, row, label)
	}
}

// slotRune is the first letter of the slot name, lowercase for defenders.
func slotRune(slot string, side league.Side) rune {
	r, _ := utf8.DecodeRuneInString(slot)
	if r == utf8.RuneError {
		r = 'o'
	}
	if side == league.Defense {
		return unicode.ToLower(r)
	}
	return unicode.ToUpper(r)
}
