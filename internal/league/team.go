package league

import "sort"

// DepthChart maps slot names to player IDs for one side of the ball.
type DepthChart map[string]string

// Slots returns the chart's slot names in sorted order.
func (d DepthChart) Slots() []string {
	slots := make([]string, 0, len(d))
	for s := range d {
		slots = append(slots, s)
	}
	sort.Strings(slots)
	return slots
}

// Formations names the formation each side currently lines up in.
type Formations struct {
	Offense string `json:"offense"`
	Defense string `json:"defense"`
}

// Coach carries the personality used for drafting and play calling.
type Coach struct {
	Name        string `json:"name"`
	Personality string `json:"personality"`
}

// Team is a league franchise with an embedded roster.
type Team struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Roster     []*Player  `json:"roster"`
	Formations Formations `json:"formations"`
	Offense    DepthChart `json:"depthOffense"`
	Defense    DepthChart `json:"depthDefense"`
	Coach      Coach      `json:"coach"`
	Wins       int        `json:"wins"`
	Losses     int        `json:"losses"`
	Ties       int        `json:"ties"`
}

// Player looks up a roster member by ID.
func (t *Team) Player(id string) *Player {
	for _, p := range t.Roster {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// DepthChart returns the chart for a side, creating it if needed.
func (t *Team) DepthChart(side Side) DepthChart {
	if side == Defense {
		if t.Defense == nil {
			t.Defense = DepthChart{}
		}
		return t.Defense
	}
	if t.Offense == nil {
		t.Offense = DepthChart{}
	}
	return t.Offense
}

// Formation returns the formation name for a side.
func (t *Team) Formation(side Side) string {
	if side == Defense {
		return t.Formations.Defense
	}
	return t.Formations.Offense
}

// ResetGameStats clears every roster member's per-game counters.
func (t *Team) ResetGameStats() {
	for _, p := range t.Roster {
		p.GameStats = Stats{}
	}
}

// ResetFatigue clears fatigue for the whole roster.
func (t *Team) ResetFatigue() {
	for _, p := range t.Roster {
		p.ResetFatigue()
	}
}

// Record returns the win/loss/tie tuple.
func (t *Team) Record() (wins, losses, ties int) {
	return t.Wins, t.Losses, t.Ties
}
