package registry

import (
	"github.com/vovakirdan/gridiron/internal/config"
	"github.com/vovakirdan/gridiron/internal/core"
	"github.com/vovakirdan/gridiron/internal/league"
	"github.com/vovakirdan/gridiron/internal/rng"
)

func init() {
	Register("balanced", func() Caller {
		return &profile{
			id: "balanced", title: "Balanced",
			passRate: 0.45, longBoost: 0.3, deepShare: 0.3, sneakRate: 0.5,
			goMaxYards: 1, goMinBallOn: 45, fieldGoalRange: 40,
		}
	})
	Register("aggressive", func() Caller {
		return &profile{
			id: "aggressive", title: "Air Raid",
			passRate: 0.6, longBoost: 0.3, deepShare: 0.55, sneakRate: 0.3,
			goMaxYards: 3, goMinBallOn: 35, fieldGoalRange: 35,
			bias: map[league.Position]float64{league.QB: 1.25, league.WR: 1.15, league.CB: 1.05},
		}
	})
	Register("ground", func() Caller {
		return &profile{
			id: "ground", title: "Ground and Pound",
			passRate: 0.25, longBoost: 0.35, deepShare: 0.2, sneakRate: 0.8,
			goMaxYards: 2, goMinBallOn: 40, fieldGoalRange: 42,
			bias: map[league.Position]float64{league.RB: 1.2, league.OL: 1.15, league.DL: 1.1, league.TE: 1.05},
		}
	})
}

// profile is a table-driven coaching personality.
type profile struct {
	id, title string

	passRate  float64 // Base share of pass calls
	longBoost float64 // Added on third or fourth and long
	deepShare float64 // Share of pass calls that attack deep
	sneakRate float64 // Chance of a sneak on a yard or less to go

	goMaxYards     int // Longest fourth down worth going for
	goMinBallOn    int // Nearest own-territory spot to go for it from
	fieldGoalRange int // Longest field goal attempted

	bias map[league.Position]float64
}

func (p *profile) ID() string    { return p.id }
func (p *profile) Title() string { return p.title }

func (p *profile) DraftBias(pos league.Position) float64 {
	if b, ok := p.bias[pos]; ok {
		return b
	}
	return 1
}

// book groups a playbook's keys by what kind of call they are.
type book struct {
	runs, sneaks, short, deep []string
}

func newBook(tables config.Tables) book {
	var b book
	for _, key := range tables.PlayKeys() {
		play, _ := tables.Play(key)
		switch {
		case play.Sneak:
			b.sneaks = append(b.sneaks, key)
		case play.Type == config.PlayPass && hasDeepRoute(play, tables):
			b.deep = append(b.deep, key)
		case play.Type == config.PlayPass:
			b.short = append(b.short, key)
		default:
			b.runs = append(b.runs, key)
		}
	}
	return b
}

func hasDeepRoute(play config.Play, tables config.Tables) bool {
	for _, a := range play.Assignments {
		if r, err := tables.Route(a); err == nil && r.Deep() {
			return true
		}
	}
	return false
}

func pick(keys []string, src rng.Source) string {
	if len(keys) == 0 {
		return ""
	}
	return keys[src.Intn(len(keys))]
}

// PassShare is the probability of a pass call in the situation.
func (p *profile) PassShare(sit Situation) float64 {
	share := p.passRate
	switch {
	case sit.Down >= 3 && sit.YardsToGo >= 7:
		share += p.longBoost
	case sit.YardsToGo <= 2:
		share -= 0.2
	}
	if sit.Rain {
		share -= 0.1
	}
	if sit.Quarter >= 4 && sit.ScoreDiff < 0 {
		share += 0.2
	}
	return core.ClampF(share, 0.05, 0.95)
}

func (p *profile) CallPlay(sit Situation, tables config.Tables, src rng.Source) string {
	b := newBook(tables)

	if sit.YardsToGo <= 1 && len(b.sneaks) > 0 && rng.Chance(src, p.sneakRate) {
		return pick(b.sneaks, src)
	}

	var key string
	if rng.Chance(src, p.PassShare(sit)) {
		deepShare := p.deepShare
		if sit.YardsToGo >= 10 {
			deepShare += 0.2
		}
		if rng.Chance(src, deepShare) {
			key = pick(b.deep, src)
		}
		if key == "" {
			key = pick(b.short, src)
		}
		if key == "" {
			key = pick(b.deep, src)
		}
	}
	if key == "" {
		key = pick(b.runs, src)
	}
	if key == "" {
		key = tables.DefaultPlay
	}
	return key
}

// FieldGoalDistance is the kick length from a spot: the snap travels seven
// yards back and the posts stand ten yards deep.
func FieldGoalDistance(ballOn int) int {
	return 100 - ballOn + 17
}

func (p *profile) FourthDown(sit Situation) Decision {
	kick := FieldGoalDistance(sit.BallOn)
	desperate := sit.Quarter >= 4 && sit.ScoreDiff < -3

	switch {
	case desperate && sit.YardsToGo <= 10:
		return GoForIt
	case sit.YardsToGo <= p.goMaxYards && sit.BallOn >= p.goMinBallOn:
		return GoForIt
	case kick <= p.fieldGoalRange:
		return FieldGoal
	default:
		return Punt
	}
}
