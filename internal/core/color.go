package core

// Color represents a foreground color for a screen cell.
// The renderer maps these to ANSI 256-color codes.
type Color uint8

// Palette for field elements.
const (
	ColorDefault Color = iota
	ColorTurf
	ColorYardLine
	ColorEndZone
	ColorOffense
	ColorDefense
	ColorBall
	ColorLooseBall
	ColorHighlight
	ColorDim
)

// String returns the palette name, used in debug dumps.
func (c Color) String() string {
	switch c {
	case ColorTurf:
		return "turf"
	case ColorYardLine:
		return "yardline"
	case ColorEndZone:
		return "endzone"
	case ColorOffense:
		return "offense"
	case ColorDefense:
		return "defense"
	case ColorBall:
		return "ball"
	case ColorLooseBall:
		return "loose"
	case ColorHighlight:
		return "highlight"
	case ColorDim:
		return "dim"
	default:
		return "default"
	}
}
