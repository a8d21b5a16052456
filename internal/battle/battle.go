// Package battle resolves a single round of a momentum-based contest
// between two sides.
package battle

import (
	"github.com/vovakirdan/gridiron/internal/config"
	"github.com/vovakirdan/gridiron/internal/rng"
)

// Outcome is the result of one round.
type Outcome int

const (
	Draw Outcome = iota
	SlightA
	SlightB
	DecisiveA
	DecisiveB
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case SlightA:
		return "slight A"
	case SlightB:
		return "slight B"
	case DecisiveA:
		return "decisive A"
	case DecisiveB:
		return "decisive B"
	default:
		return "draw"
	}
}

// Decisive reports whether the round ended the contest.
func (o Outcome) Decisive() bool {
	return o == DecisiveA || o == DecisiveB
}

// WonByA reports whether side A took the round, slightly or decisively.
func (o Outcome) WonByA() bool {
	return o == SlightA || o == DecisiveA
}

// WonByB reports whether side B took the round, slightly or decisively.
func (o Outcome) WonByB() bool {
	return o == SlightB || o == DecisiveB
}

// State carries consecutive slight wins for both sides across rounds.
type State struct {
	StreakA int
	StreakB int
	Margin  float64 // Last noisy difference, A minus B
}

// Resolve runs one round. Each side gets independent symmetric noise; a
// margin beyond DominantWin is decisive, a margin beyond SlightWin extends
// the winner's streak and resets the loser's, and EscalateStreak slight
// wins in a row become decisive. Anything closer is a draw that resets
// both streaks.
func Resolve(powerA, powerB float64, st *State, cfg config.BattleConfig, src rng.Source) Outcome {
	a := powerA + rng.Noise(src, cfg.Noise)
	b := powerB + rng.Noise(src, cfg.Noise)
	diff := a - b
	st.Margin = diff

	escalate := cfg.EscalateStreak
	if escalate <= 0 {
		escalate = 2
	}

	switch {
	case diff > cfg.DominantWin:
		st.StreakA, st.StreakB = 0, 0
		return DecisiveA
	case -diff > cfg.DominantWin:
		st.StreakA, st.StreakB = 0, 0
		return DecisiveB
	case diff > cfg.SlightWin:
		st.StreakA++
		st.StreakB = 0
		if st.StreakA >= escalate {
			st.StreakA = 0
			return DecisiveA
		}
		return SlightA
	case -diff > cfg.SlightWin:
		st.StreakB++
		st.StreakA = 0
		if st.StreakB >= escalate {
			st.StreakB = 0
			return DecisiveB
		}
		return SlightB
	default:
		st.StreakA, st.StreakB = 0, 0
		return Draw
	}
}
