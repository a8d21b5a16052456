package main

import (
	"fmt"

	"github.com/vovakirdan/gridiron/internal/config"
	"github.com/vovakirdan/gridiron/internal/engine"
	"github.com/vovakirdan/gridiron/internal/league"
	"github.com/vovakirdan/gridiron/internal/platform/tui"
	"github.com/vovakirdan/gridiron/internal/registry"
	"github.com/vovakirdan/gridiron/internal/rng"
	"github.com/vovakirdan/gridiron/internal/sim"
)

var weathers = []engine.Weather{engine.Sunny, engine.Windy, engine.Rain}

// replaySource builds a play source over one exhibition matchup. With a
// play key every replay runs that play from ballOn on first and ten.
// Without one the offense's coach calls plays for random situations and
// the teams alternate possession.
func replaySource(s *sim.Simulator, seed int64, playKey string, ballOn int) tui.PlaySource {
	src := rng.New(seed)
	home, away := s.Exhibition(src)
	tables := s.Engine().Tables()

	return func(n int) tui.Replay {
		offense, defense := home, away
		if playKey == "" && n%2 == 1 {
			offense, defense = away, home
		}
		offense.ResetFatigue()
		defense.ResetFatigue()

		ctx := engine.Context{BallOn: ballOn, Down: 1, YardsToGo: 10, Weather: engine.Sunny}
		key := playKey
		if key == "" {
			ctx = engine.Context{
				BallOn:    rng.Range(src, 5, 90),
				Down:      rng.Range(src, 1, 4),
				YardsToGo: rng.Range(src, 1, 10),
				Weather:   weathers[src.Intn(len(weathers))],
			}
			key = callPlay(offense, ctx, tables, src)
		}

		return tui.Replay{
			Title:  fmt.Sprintf("%s vs %s, %s & %d at the %d", offense.Name, defense.Name, ordinal(ctx.Down), ctx.YardsToGo, ctx.BallOn),
			BallOn: ctx.BallOn,
			Result: s.Engine().ResolvePlay(offense, defense, key, ctx, src),
		}
	}
}

// callPlay asks the team's coach for a play in the given situation.
func callPlay(t *league.Team, ctx engine.Context, tables config.Tables, src rng.Source) string {
	caller, err := registry.Create(t.Coach.Personality)
	if err != nil {
		return tables.DefaultPlay
	}
	return caller.CallPlay(registry.Situation{
		Down:      ctx.Down,
		YardsToGo: ctx.YardsToGo,
		BallOn:    ctx.BallOn,
		Quarter:   1,
		Rain:      ctx.Weather == engine.Rain,
	}, tables, src)
}

func ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return fmt.Sprintf("%dth", n)
	}
}
