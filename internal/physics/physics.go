// Package physics advances field entities by one simulation tick.
package physics

import (
	"github.com/vovakirdan/gridiron/internal/config"
	"github.com/vovakirdan/gridiron/internal/core"
)

// Body is the movable part of a play participant.
type Body struct {
	Pos    core.Vec
	Target core.Vec

	Speed   int     // Speed rating, 1-99
	Fatigue float64 // Fatigue modifier, 1 = fresh

	StunnedTicks int
	Blocked      bool
	Engaged      bool

	CurrentSpeedYPS float64
}

// Immobile reports whether the body cannot move this tick.
func (b *Body) Immobile() bool {
	return b.StunnedTicks > 0 || b.Blocked || b.Engaged
}

// SpeedYPS maps a 1-99 speed rating linearly onto the configured yards-per-second range.
func SpeedYPS(rating int, cfg config.PhysicsConfig) float64 {
	r := core.ClampF(float64(rating), 1, 99)
	return cfg.MinSpeedYPS + (r-1)/98*(cfg.MaxSpeedYPS-cfg.MinSpeedYPS)
}

// Step moves the body one tick toward its target and reports whether it
// is now at the target. Stun counters are decremented by the caller.
func Step(b *Body, cfg config.PhysicsConfig) bool {
	if b.Immobile() {
		b.CurrentSpeedYPS = 0
		return false
	}

	delta := b.Target.Sub(b.Pos)
	remaining := delta.Len()
	if remaining <= cfg.ArrivalRadius {
		b.Pos = core.ClampToField(b.Target)
		b.CurrentSpeedYPS = 0
		return true
	}

	fatigue := b.Fatigue
	if fatigue <= 0 {
		fatigue = 1
	}
	speed := SpeedYPS(b.Speed, cfg) * fatigue
	travel := speed * cfg.TickSeconds
	b.CurrentSpeedYPS = speed

	if travel >= remaining {
		b.Pos = core.ClampToField(b.Target)
		return true
	}
	b.Pos = core.ClampToField(b.Pos.Add(delta.Unit().Scale(travel)))
	return false
}
