package sim

import "github.com/vovakirdan/gridiron/internal/league"

// Matchup is one scheduled game.
type Matchup struct {
	Home *league.Team
	Away *league.Team
}

// RoundRobin schedules every team against every other once using the
// circle method. With an odd team count one team has a bye each week.
// Home and away alternate so no team hosts every week.
func RoundRobin(teams []*league.Team) [][]Matchup {
	ring := append([]*league.Team(nil), teams...)
	if len(ring)%2 == 1 {
		ring = append(ring, nil)
	}
	n := len(ring)
	if n < 2 {
		return nil
	}

	weeks := make([][]Matchup, 0, n-1)
	for round := range n - 1 {
		var week []Matchup
		for i := range n / 2 {
			a, b := ring[i], ring[n-1-i]
			if a == nil || b == nil {
				continue
			}
			if (round+i)%2 == 0 {
				a, b = b, a
			}
			week = append(week, Matchup{Home: a, Away: b})
		}
		weeks = append(weeks, week)

		// Keep the first team fixed and rotate the rest one place
		last := ring[n-1]
		copy(ring[2:], ring[1:n-1])
		ring[1] = last
	}
	return weeks
}

// Schedule extends the round robin to the requested number of weeks,
// repeating it with home and away swapped.
func Schedule(teams []*league.Team, weeks int) [][]Matchup {
	base := RoundRobin(teams)
	if len(base) == 0 {
		return nil
	}
	out := make([][]Matchup, 0, weeks)
	for w := range weeks {
		cycle := w / len(base)
		week := base[w%len(base)]
		if cycle%2 == 1 {
			swapped := make([]Matchup, len(week))
			for i, m := range week {
				swapped[i] = Matchup{Home: m.Away, Away: m.Home}
			}
			week = swapped
		}
		out = append(out, week)
	}
	return out
}
