package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/gridiron/internal/core"
	"github.com/vovakirdan/gridiron/internal/league"
)

func TestFieldCellCorners(t *testing.T) {
	area := core.NewRect(2, 1, 61, 21)

	tests := []struct {
		name     string
		x, y     float64
		col, row int
	}{
		{"own end line near sideline", 0, 0, 2, 1},
		{"far end line far sideline", core.FieldWidth, core.FieldLength, 62, 21},
		{"midfield", core.CenterX, 60, 32, 11},
		{"off the field is clamped", -10, 500, 62, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			col, row := fieldCell(area, tc.x, tc.y)
			if col != tc.col || row != tc.row {
				t.Errorf("fieldCell(%v, %v) = (%d, %d), expected (%d, %d)", tc.x, tc.y, col, row, tc.col, tc.row)
			}
		})
	}
}

func TestDrawField(t *testing.T) {
	s := core.NewScreen(61, 21)
	area := core.NewRect(0, 0, 61, 21)
	f := fixtureResult().Frames[2]

	DrawField(s, area, f, 25)

	col, row := fieldCell(area, 26, 30)
	if c := s.GetCell(col, row); c.Rune != 'Q' || c.Color != core.ColorOffense {
		t.Errorf("quarterback cell = %+v, expected offense 'Q'", c)
	}
	col, row = fieldCell(area, 26, 36)
	if c := s.GetCell(col, row); c.Rune != 'd' || c.Color != core.ColorDefense {
		t.Errorf("tackle cell = %+v, expected defense 'd'", c)
	}
	col, row = fieldCell(area, 20, 45)
	if c := s.GetCell(col, row); c.Rune != '*' || c.Color != core.ColorLooseBall {
		t.Errorf("loose ball cell = %+v, expected '*'", c)
	}

	los, _ := fieldCell(area, 0, core.LineOfScrimmage(25))
	if s.Get(los, 0) != '!' {
		t.Errorf("line of scrimmage column %d = %q, expected '!'", los, s.Get(los, 0))
	}
	if s.Get(0, 0) != ':' || s.Get(60, 20) != ':' {
		t.Error("end zones should be drawn at both ends")
	}
	if s.Get(8, 0) != '-' || s.Get(8, 20) != '-' {
		t.Errorf("sidelines = %q/%q, expected '-'", s.Get(8, 0), s.Get(8, 20))
	}
	mid, _ := fieldCell(area, 0, 60)
	if got := string([]rune{s.Get(mid+1, 1), s.Get(mid+2, 1)}); got != "50" {
		t.Errorf("midfield label = %q, expected \"50\"", got)
	}
}

func TestYardNumbersNeedRoom(t *testing.T) {
	s := core.NewScreen(30, 5)
	DrawField(s, core.NewRect(0, 0, 30, 5), fixtureResult().Frames[0], 50)
	for _, r := range s.String() {
		if r >= '0' && r <= '9' {
			t.Fatalf("small field should not carry yard numbers:\n%s", s.String())
		}
	}
}

func TestDrawFieldTinyAreaIsNoop(t *testing.T) {
	s := core.NewScreen(4, 4)
	DrawField(s, core.NewRect(0, 0, 1, 4), fixtureResult().Frames[0], 50)
	if strings.TrimSpace(s.String()) != "" {
		t.Error("an area narrower than two cells should not be drawn")
	}
}

func TestSlotRune(t *testing.T) {
	tests := []struct {
		slot     string
		side     league.Side
		expected rune
	}{
		{"QB", league.Offense, 'Q'},
		{"wr2", league.Offense, 'W'},
		{"CB1", league.Defense, 'c'},
		{"", league.Offense, 'O'},
		{"", league.Defense, 'o'},
	}

	for _, tc := range tests {
		if got := slotRune(tc.slot, tc.side); got != tc.expected {
			t.Errorf("slotRune(%q, %s) = %q, expected %q", tc.slot, tc.side, got, tc.expected)
		}
	}
}

func TestRenderScreenKeepsRows(t *testing.T) {
	s := core.NewScreen(5, 3)
	s.DrawText(0, 1, "Q d")
	out := RenderScreen(s)
	if strings.Count(out, "\n") != 2 {
		t.Errorf("RenderScreen should keep 3 rows, got %q", out)
	}
	if !strings.Contains(out, "Q") || !strings.Contains(out, "d") {
		t.Errorf("RenderScreen lost text: %q", out)
	}
}
