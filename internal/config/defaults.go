package config

import (
	_ "embed"

	"github.com/vovakirdan/gridiron/internal/league"
)

//go:embed defaults/engine.yaml
var defaultEngineYAML []byte

//go:embed defaults/playbook.yaml
var defaultPlaybookYAML []byte

//go:embed defaults/weights.yaml
var defaultWeightsYAML []byte

//go:embed defaults/season.yaml
var defaultSeasonYAML []byte

// DefaultEngineConfig returns the built-in engine tuning.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Physics: PhysicsConfig{
			TickSeconds:   0.1,
			MaxTicks:      500,
			ArrivalRadius: 0.2,
			MinSpeedYPS:   4.5,
			MaxSpeedYPS:   9.0,
			TackleRadius:  1.2,
			BallSpeedYPS:  18,
			Gravity:       10.7,
			ReleaseHeight: 2,
		},
		Battle: BattleConfig{
			Noise:           5,
			DominantWin:     10,
			SlightWin:       3,
			EscalateStreak:  2,
			DoubleTeamBonus: 12,
		},
		Pass: PassConfig{
			MinDropbackTicks:    8,
			DecisionBaseTicks:   34,
			DecisionIQTicks:     12,
			OpenSeparation:      2.5,
			OpenThrowBase:       0.35,
			ThrowBudgetTicks:    90,
			DropbackDepth:       7,
			PlayActionTicks:     3,
			UnblockedGraceTicks: 1,
			PressureRadius:      2.5,
			PressureThrowBase:   0.2,
			PressureThrowIQ:     0.4,
			SackRadius:          1.2,
			MaxSeparation:       6,
			SeparationGrowth:    0.6,
			SeparationLoss:      0.4,
			RouteProgressBonus:  10,

			AccuracyBase:          0.45,
			AccuracyPerPoint:      0.005,
			PressurePenalty:       0.15,
			DepthPenaltyPerYard:   0.004,
			WindyDeepPenalty:      0.12,
			RainDeepPenalty:       0.08,
			DeepYards:             15,
			MissDistance:          4,
			ArcPeakPerYard:        0.12,
			SeparationCatchBonus:  4,
			DoubleCoveragePenalty: 12,
			RainCatchPenalty:      6,
			UncontestedDifficulty: 35,
			InterceptionHands:     50,
			ContestRange:          3,

			MissedTackleStun: 5,
			EvadeStun:        4,
			ShakeOffStun:     2,
			BeatenBlockStun:  3,
		},
		Run: RunConfig{
			BigHoleRatio: 0.6,
			CreaseRatio:  0.3,
			BigHole:      YardRange{Min: 4, Max: 8},
			Crease:       YardRange{Min: 1, Max: 4},
			Stuffed:      YardRange{Min: -2, Max: 0},
			Breakaway:    YardRange{Min: 5, Max: 12},
			ExtraYards:   YardRange{Min: 2, Max: 5},
			OpenField:    YardRange{Min: 10, Max: 40},
			ContactYards: YardRange{Min: 0, Max: 2},
			LineRounds:   3,
			SubSteps:     5,
		},
		Sneak: SneakConfig{
			Success: YardRange{Min: 1, Max: 3},
			Failure: YardRange{Min: -1, Max: 0},
		},
		Fumble: FumbleConfig{
			TackleRate:           0.015,
			SackRate:             0.06,
			RainMultiplier:       1.5,
			DefenseRecoverChance: 0.5,
		},
		Fatigue: FatigueConfig{
			PlayCost:     3,
			SpeedPenalty: 0.3,
		},
	}
}

// DefaultWeights returns the built-in position weight table.
func DefaultWeights() Weights {
	return Weights{
		WeightDivisor: 2.5,
		HeightOffset:  12,
		Positions: map[league.Position]map[league.Attr]float64{
			league.QB: {
				league.AttrThrowingAccuracy: 0.40,
				league.AttrPlaybookIQ:       0.25,
				league.AttrClutch:           0.10,
				league.AttrConsistency:      0.10,
				league.AttrAgility:          0.10,
				league.AttrStrength:         0.05,
			},
			league.RB: {
				league.AttrSpeed:         0.30,
				league.AttrAgility:       0.25,
				league.AttrStrength:      0.15,
				league.AttrCatchingHands: 0.10,
				league.AttrToughness:     0.10,
				league.AttrWeight:        0.10,
			},
			league.WR: {
				league.AttrSpeed:         0.35,
				league.AttrCatchingHands: 0.35,
				league.AttrAgility:       0.20,
				league.AttrHeight:        0.10,
			},
			league.TE: {
				league.AttrBlocking:      0.30,
				league.AttrCatchingHands: 0.25,
				league.AttrStrength:      0.20,
				league.AttrSpeed:         0.15,
				league.AttrHeight:        0.10,
			},
			league.OL: {
				league.AttrBlocking: 0.45,
				league.AttrStrength: 0.40,
				league.AttrWeight:   0.15,
			},
			league.DL: {
				league.AttrStrength:      0.35,
				league.AttrBlockShedding: 0.30,
				league.AttrTackling:      0.20,
				league.AttrWeight:        0.15,
			},
			league.LB: {
				league.AttrTackling:      0.35,
				league.AttrBlockShedding: 0.20,
				league.AttrSpeed:         0.15,
				league.AttrStrength:      0.15,
				league.AttrPlaybookIQ:    0.15,
			},
			league.CB: {
				league.AttrSpeed:         0.35,
				league.AttrAgility:       0.30,
				league.AttrPlaybookIQ:    0.20,
				league.AttrCatchingHands: 0.15,
			},
			league.S: {
				league.AttrSpeed:         0.25,
				league.AttrTackling:      0.25,
				league.AttrPlaybookIQ:    0.20,
				league.AttrCatchingHands: 0.15,
				league.AttrAgility:       0.15,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a config file name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "engine":
		return defaultEngineYAML
	case "playbook":
		return defaultPlaybookYAML
	case "weights":
		return defaultWeightsYAML
	case "season":
		return defaultSeasonYAML
	default:
		return nil
	}
}
