// Package config provides YAML-based engine tuning and the read-only
// formation, playbook, route and rating tables the simulator consumes.
package config

import "github.com/vovakirdan/gridiron/internal/league"

// EngineConfig contains every tunable constant of the play engine.
type EngineConfig struct {
	Physics PhysicsConfig `yaml:"physics"`
	Battle  BattleConfig  `yaml:"battle"`
	Pass    PassConfig    `yaml:"pass"`
	Run     RunConfig     `yaml:"run"`
	Sneak   SneakConfig   `yaml:"sneak"`
	Fumble  FumbleConfig  `yaml:"fumble"`
	Fatigue FatigueConfig `yaml:"fatigue"`
}

// PhysicsConfig defines movement and ball flight parameters.
type PhysicsConfig struct {
	TickSeconds   float64 `yaml:"tick_seconds"`
	MaxTicks      int     `yaml:"max_ticks"`      // Hard cap on ticks per play
	ArrivalRadius float64 `yaml:"arrival_radius"` // Yards; closer than this snaps to target
	MinSpeedYPS   float64 `yaml:"min_speed_yps"`  // Speed rating 1
	MaxSpeedYPS   float64 `yaml:"max_speed_yps"`  // Speed rating 99
	TackleRadius  float64 `yaml:"tackle_radius"`
	BallSpeedYPS  float64 `yaml:"ball_speed_yps"`
	Gravity       float64 `yaml:"gravity"` // Yards per second squared
	ReleaseHeight float64 `yaml:"release_height"`
}

// BattleConfig defines the contest primitive thresholds.
type BattleConfig struct {
	Noise           float64 `yaml:"noise"`        // Symmetric noise added to each side
	DominantWin     float64 `yaml:"dominant_win"` // Margin for an immediate decisive win
	SlightWin       float64 `yaml:"slight_win"`   // Margin for a streak-building win
	EscalateStreak  int     `yaml:"escalate_streak"`
	DoubleTeamBonus float64 `yaml:"double_team_bonus"`
}

// PassConfig defines pass play tuning, including the QB decision heuristics.
type PassConfig struct {
	MinDropbackTicks    int     `yaml:"min_dropback_ticks"`
	DecisionBaseTicks   int     `yaml:"decision_base_ticks"`
	DecisionIQTicks     int     `yaml:"decision_iq_ticks"` // Ticks shaved off by a 99 IQ passer
	OpenSeparation      float64 `yaml:"open_separation"`
	OpenThrowBase       float64 `yaml:"open_throw_base"`
	ThrowBudgetTicks    int     `yaml:"throw_budget_ticks"` // QB must release by this tick
	DropbackDepth       float64 `yaml:"dropback_depth"`
	PlayActionTicks     int     `yaml:"play_action_ticks"` // Ticks second-level defenders bite on a fake
	UnblockedGraceTicks int     `yaml:"unblocked_grace_ticks"`
	PressureRadius      float64 `yaml:"pressure_radius"`
	PressureThrowBase   float64 `yaml:"pressure_throw_base"` // Per-tick chance a pressured passer gets rid of it
	PressureThrowIQ     float64 `yaml:"pressure_throw_iq"`   // Added at 99 IQ
	SackRadius          float64 `yaml:"sack_radius"`
	MaxSeparation       float64 `yaml:"max_separation"`
	SeparationGrowth    float64 `yaml:"separation_growth"`
	SeparationLoss      float64 `yaml:"separation_loss"`
	RouteProgressBonus  float64 `yaml:"route_progress_bonus"`

	AccuracyBase          float64 `yaml:"accuracy_base"`
	AccuracyPerPoint      float64 `yaml:"accuracy_per_point"`
	PressurePenalty       float64 `yaml:"pressure_penalty"`
	DepthPenaltyPerYard   float64 `yaml:"depth_penalty_per_yard"`
	WindyDeepPenalty      float64 `yaml:"windy_deep_penalty"`
	RainDeepPenalty       float64 `yaml:"rain_deep_penalty"`
	DeepYards             float64 `yaml:"deep_yards"`
	MissDistance          float64 `yaml:"miss_distance"`
	ArcPeakPerYard        float64 `yaml:"arc_peak_per_yard"`
	SeparationCatchBonus  float64 `yaml:"separation_catch_bonus"`
	DoubleCoveragePenalty float64 `yaml:"double_coverage_penalty"`
	RainCatchPenalty      float64 `yaml:"rain_catch_penalty"`
	UncontestedDifficulty float64 `yaml:"uncontested_difficulty"` // Opposing power when nobody contests a catch
	InterceptionHands     int     `yaml:"interception_hands"`
	ContestRange          float64 `yaml:"contest_range"`

	MissedTackleStun int `yaml:"missed_tackle_stun"`
	EvadeStun        int `yaml:"evade_stun"`
	ShakeOffStun     int `yaml:"shake_off_stun"`
	BeatenBlockStun  int `yaml:"beaten_block_stun"`
}

// YardRange is an inclusive yardage band.
type YardRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// RunConfig defines the three-stage run resolution.
type RunConfig struct {
	BigHoleRatio float64   `yaml:"big_hole_ratio"`
	CreaseRatio  float64   `yaml:"crease_ratio"`
	BigHole      YardRange `yaml:"big_hole"`
	Crease       YardRange `yaml:"crease"`
	Stuffed      YardRange `yaml:"stuffed"`
	Breakaway    YardRange `yaml:"breakaway"`
	ExtraYards   YardRange `yaml:"extra_yards"`
	OpenField    YardRange `yaml:"open_field"`
	ContactYards YardRange `yaml:"contact_yards"`
	LineRounds   int       `yaml:"line_rounds"`
	SubSteps     int       `yaml:"sub_steps"`
}

// SneakConfig defines the one-shot QB sneak contest.
type SneakConfig struct {
	Success YardRange `yaml:"success"`
	Failure YardRange `yaml:"failure"`
}

// FumbleConfig defines ball security.
type FumbleConfig struct {
	TackleRate           float64 `yaml:"tackle_rate"`
	SackRate             float64 `yaml:"sack_rate"`
	RainMultiplier       float64 `yaml:"rain_multiplier"`
	DefenseRecoverChance float64 `yaml:"defense_recover_chance"`
}

// FatigueConfig defines how plays tire players out.
type FatigueConfig struct {
	PlayCost     float64 `yaml:"play_cost"`
	SpeedPenalty float64 `yaml:"speed_penalty"`
}

// Spot is a position relative to the line of scrimmage: X is absolute
// across the field, DY is yards downfield (negative = offensive backfield).
type Spot struct {
	X  float64 `yaml:"x"`
	DY float64 `yaml:"dy"`
}

// Formation is an ordered set of named slots for one side of the ball.
type Formation struct {
	Side           league.Side                        `yaml:"side"`
	Slots          []string                           `yaml:"slots"`
	Alignment      map[string]Spot                    `yaml:"alignment"`
	Assignments    map[string]string                  `yaml:"assignments"`
	Zones          map[string]string                  `yaml:"zones"`
	SlotPriorities map[string]map[league.Attr]float64 `yaml:"slot_priorities"`
}

// Personnel counts the formation's slots by base position.
func (f Formation) Personnel() map[league.Position]int {
	counts := make(map[league.Position]int)
	for _, s := range f.Slots {
		counts[league.SlotPosition(s)]++
	}
	return counts
}

// SlotsWithPrefix returns the formation's slots starting with prefix, in order.
func (f Formation) SlotsWithPrefix(prefix string) []string {
	var out []string
	for _, s := range f.Slots {
		if len(s) >= len(prefix) && s[:len(prefix)] == prefix {
			out = append(out, s)
		}
	}
	return out
}

// PlayType is run or pass.
type PlayType string

const (
	PlayRun  PlayType = "run"
	PlayPass PlayType = "pass"
)

// Assignment values used in play definitions besides route names.
const (
	AssignBlock = "block"
	AssignCarry = "carry"
	AssignRush  = "rush"
	AssignCover = "cover"
)

// Play is an offensive play call.
type Play struct {
	Name        string            `yaml:"name"`
	Type        PlayType          `yaml:"type"`
	Formation   string            `yaml:"formation"`
	Zone        string            `yaml:"zone,omitempty"`
	PlayAction  bool              `yaml:"play_action,omitempty"`
	Sneak       bool              `yaml:"sneak,omitempty"`
	Assignments map[string]string `yaml:"assignments"`
}

// Route describes a receiver path. Waypoint X is a lateral offset measured
// toward the receiver's own sideline, so negative X breaks inside.
type Route struct {
	Depth        string    `yaml:"depth"` // flat, short, deep
	Lane         string    `yaml:"lane"`  // inside, middle, outside
	Waypoints    []Spot    `yaml:"waypoints"`
	DevelopTicks int       `yaml:"develop_ticks"`
	BaseYards    YardRange `yaml:"base_yards"`
}

// Deep reports whether the route attacks a deep zone.
func (r Route) Deep() bool {
	return r.Depth == "deep"
}

// Weights holds the position attribute weighting used by the rating calculator.
type Weights struct {
	WeightDivisor float64                                     `yaml:"weight_divisor"`
	HeightOffset  float64                                     `yaml:"height_offset"`
	Positions     map[league.Position]map[league.Attr]float64 `yaml:"positions"`
}

// Tables groups every read-only lookup table.
type Tables struct {
	DefaultPlay string               `yaml:"default_play"`
	Formations  map[string]Formation `yaml:"formations"`
	Plays       map[string]Play      `yaml:"plays"`
	Routes      map[string]Route     `yaml:"routes"`
	Weights     Weights              `yaml:"-"`
}
