package engine

import "github.com/vovakirdan/gridiron/internal/league"

// Weather modulates deep passing, catching and ball security.
type Weather string

const (
	Sunny Weather = "Sunny"
	Windy Weather = "Windy"
	Rain  Weather = "Rain"
)

// Context is the field situation a play starts from.
type Context struct {
	BallOn    int // 0 = own goal line, 100 = opponent goal line
	Down      int
	YardsToGo int
	Weather   Weather

	// DefenseFormation overrides the defending team's formation when set.
	DefenseFormation string
}

// EventKind names a discrete play event that has a matching log entry.
type EventKind string

const (
	EventCatch        EventKind = "catch"
	EventInterception EventKind = "interception"
	EventSwat         EventKind = "swat"
	EventDrop         EventKind = "drop"
	EventSack         EventKind = "sack"
	EventFumble       EventKind = "fumble"
	EventTouchdown    EventKind = "touchdown"
	EventEmergency    EventKind = "emergency"
)

// Event points at the log entry describing a discrete event.
type Event struct {
	Index    int       `json:"index"`
	Tick     int       `json:"tick"`
	Kind     EventKind `json:"kind"`
	PlayerID string    `json:"playerId,omitempty"`
}

// BallFrame is the ball's state in a frame.
type BallFrame struct {
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
	Z              float64 `json:"z"`
	InAir          bool    `json:"inAir"`
	IsLoose        bool    `json:"isLoose"`
	TargetPlayerID string  `json:"targetPlayerId,omitempty"`
}

// PlayerFrame is one participant's state in a frame.
type PlayerFrame struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Slot          string      `json:"slot"`
	Side          league.Side `json:"side"`
	X             float64     `json:"x"`
	Y             float64     `json:"y"`
	Action        string      `json:"action"`
	IsBallCarrier bool        `json:"isBallCarrier"`
	HasBall       bool        `json:"hasBall"`
}

// Frame is a snapshot of the field. LogIndex is the last log entry written
// when the snapshot was taken.
type Frame struct {
	Tick     int           `json:"tick"`
	LogIndex int           `json:"logIndex"`
	Ball     BallFrame     `json:"ball"`
	Players  []PlayerFrame `json:"players"`
}

// Result is the outcome of a single play.
type Result struct {
	PlayKey    string   `json:"playKey"`
	PlayName   string   `json:"playName"`
	Pass       bool     `json:"pass"`
	Yards      int      `json:"yards"`
	Touchdown  bool     `json:"touchdown"`
	Turnover   bool     `json:"turnover"`
	Incomplete bool     `json:"incomplete"`
	Sack       bool     `json:"sack"`
	Ticks      int      `json:"ticks"`
	Log        []string `json:"log"`
	Frames     []Frame  `json:"frames"`
	Events     []Event  `json:"events"`
}

// EventsOf returns the events of one kind, in order.
func (r Result) EventsOf(kind EventKind) []Event {
	var out []Event
	for _, e := range r.Events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
