package engine

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridiron/internal/config"
	"github.com/vovakirdan/gridiron/internal/core"
	"github.com/vovakirdan/gridiron/internal/league"
	"github.com/vovakirdan/gridiron/internal/rng"
)

func TestResolvePlayDeterministic(t *testing.T) {
	e := newEngine(t)
	tables := e.Tables()

	for _, key := range tables.PlayKeys() {
		t.Run(key, func(t *testing.T) {
			run := func() Result {
				off := newTeam(t, tables, "home", 60, nil)
				def := newTeam(t, tables, "away", 60, nil)
				return e.ResolvePlay(off, def, key, baseContext(), rng.New(42))
			}
			first, second := run(), run()
			if !reflect.DeepEqual(first.Log, second.Log) {
				t.Errorf("logs differ:\n%v\n%v", first.Log, second.Log)
			}
			if !reflect.DeepEqual(first.Frames, second.Frames) {
				t.Error("frames differ between identically seeded runs")
			}
			if !reflect.DeepEqual(first, second) {
				t.Error("results differ between identically seeded runs")
			}
		})
	}
}

// fuzzPlays runs every play key across many seeds and weather conditions.
func fuzzPlays(t *testing.T, seeds int, check func(t *testing.T, key string, seed int64, r Result)) {
	t.Helper()
	e := newEngine(t)
	tables := e.Tables()
	weathers := []Weather{Sunny, Windy, Rain}

	for _, key := range tables.PlayKeys() {
		for seed := int64(1); seed <= int64(seeds); seed++ {
			off := newTeam(t, tables, "home", 40+int(seed%50), nil)
			def := newTeam(t, tables, "away", 40+int((seed*7)%50), nil)
			ctx := baseContext()
			ctx.BallOn = int(seed*13) % 100
			ctx.Weather = weathers[seed%3]
			r := e.ResolvePlay(off, def, key, ctx, rng.New(seed))
			check(t, key, seed, r)
		}
	}
}

func TestLogFrameSync(t *testing.T) {
	fuzzPlays(t, 60, func(t *testing.T, key string, seed int64, r Result) {
		for _, ev := range r.Events {
			if ev.Index < 0 || ev.Index >= len(r.Log) {
				t.Fatalf("%s seed %d: event %s points outside the log", key, seed, ev.Kind)
			}
			var ok bool
			for _, f := range r.Frames {
				if f.LogIndex < ev.Index {
					continue
				}
				switch ev.Kind {
				case EventCatch, EventInterception:
					ok = ok || (!f.Ball.InAir && (f.Ball.TargetPlayerID != "" || anyCarrier(f)))
				case EventSwat, EventDrop:
					ok = ok || f.Ball.IsLoose
				default:
					ok = true
				}
			}
			if !ok {
				t.Errorf("%s seed %d: no frame reflects %s at log %d (%q)", key, seed, ev.Kind, ev.Index, r.Log[ev.Index])
			}
		}

		// Every narrated catch or swat is a recorded event
		for i, line := range r.Log {
			if strings.Contains(line, "catches it") && !hasEvent(r, EventCatch, i) {
				t.Errorf("%s seed %d: catch at log %d has no event", key, seed, i)
			}
			if strings.Contains(line, "swats the pass") && !hasEvent(r, EventSwat, i) {
				t.Errorf("%s seed %d: swat at log %d has no event", key, seed, i)
			}
		}
	})
}

func TestFramesStayInBounds(t *testing.T) {
	fuzzPlays(t, 80, func(t *testing.T, key string, seed int64, r Result) {
		if len(r.Frames) == 0 {
			t.Fatalf("%s seed %d: no frames", key, seed)
		}
		for i, f := range r.Frames {
			if !core.InField(core.V(f.Ball.X, f.Ball.Y)) {
				t.Fatalf("%s seed %d frame %d: ball out of bounds at (%f, %f)", key, seed, i, f.Ball.X, f.Ball.Y)
			}
			for _, p := range f.Players {
				if !core.InField(core.V(p.X, p.Y)) {
					t.Fatalf("%s seed %d frame %d: %s out of bounds", key, seed, i, p.ID)
				}
			}
			if f.LogIndex >= len(r.Log) {
				t.Fatalf("%s seed %d frame %d: log index %d past log end", key, seed, i, f.LogIndex)
			}
		}
	})
}

func TestTickCapAndLogOrder(t *testing.T) {
	maxTicks := config.DefaultEngineConfig().Physics.MaxTicks
	fuzzPlays(t, 30, func(t *testing.T, key string, seed int64, r Result) {
		if r.Ticks >= maxTicks {
			t.Errorf("%s seed %d: play ran into the %d tick cap", key, seed, maxTicks)
		}
		last := -1
		for _, f := range r.Frames {
			if f.LogIndex < last {
				t.Fatalf("%s seed %d: frame log index went backwards", key, seed)
			}
			last = f.LogIndex
		}
		if r.Touchdown && r.Turnover {
			t.Errorf("%s seed %d: touchdown and turnover on the same play", key, seed)
		}
	})
}

// stoppedShort are narrations that leave the carrier short of the goal line.
var stoppedShort = []string{"out of bounds", "runs down", "tackles", "wraps up", "brings down", "Stuffed!"}

func TestTouchdownIsNeverAStop(t *testing.T) {
	fuzzPlays(t, 60, func(t *testing.T, key string, seed int64, r Result) {
		if !r.Touchdown {
			return
		}
		for _, line := range r.Log {
			for _, stop := range stoppedShort {
				if strings.Contains(line, stop) {
					t.Errorf("%s seed %d: touchdown after %q", key, seed, line)
				}
			}
		}
	})
}

func TestMissedTacklerCanTryAgain(t *testing.T) {
	e := newEngine(t)
	tables := e.Tables()
	off := newTeam(t, tables, "home", 90, nil)
	def := newTeam(t, tables, "away", 40, nil)

	s := e.newState("Slants", baseContext(), rng.Fixed(0.5))
	if !s.setup(off, def) {
		t.Fatalf("setup failed: %v", s.log)
	}
	s.setupPassBattles()
	c := s.coverage[0].receiver
	d := s.defense[0]
	s.defense = []*entity{d}
	s.giveBall(c)
	s.phase = phaseYAC

	d.Pos = core.ClampToField(c.Pos.Add(core.V(0, 0.5)))
	s.yacTick()
	if !s.live || d.action != "missed" {
		t.Fatalf("first try should miss, log: %v", s.log)
	}

	d.StunnedTicks = 0
	d.player.Technical.Tackling = 99
	d.player.Physical.Speed = 99
	d.Pos = core.ClampToField(c.Pos.Add(core.V(0, 0.5)))
	s.yacTick()
	if s.live || s.tackler != d {
		t.Errorf("recovered defender should make the tackle, log: %v", s.log)
	}
}

func TestOverwhelmedLineGivesUpSacks(t *testing.T) {
	e := newEngine(t)
	tables := e.Tables()
	weak := func(p *league.Player) {
		switch p.Position {
		case league.OL:
			p.Technical.Blocking = 10
			p.Physical.Strength = 10
		case league.QB:
			p.Physical.Agility = 10
			p.Physical.Speed = 10
			p.Physical.Strength = 10
		}
	}

	var plays, sacks int
	for _, key := range tables.PlayKeys() {
		if play := tables.Plays[key]; play.Type != config.PlayPass || play.Sneak {
			continue
		}
		for seed := int64(1); seed <= 25; seed++ {
			off := newTeam(t, tables, "home", 60, weak)
			def := newTeam(t, tables, "away", 90, nil)
			r := e.ResolvePlay(off, def, key, baseContext(), rng.New(seed))
			plays++
			if !r.Sack {
				continue
			}
			sacks++

			if n := len(r.EventsOf(EventSack)); n != 1 {
				t.Errorf("%s seed %d: %d sack events", key, seed, n)
			}
			if r.Yards > 0 {
				t.Errorf("%s seed %d: sack gained %d yards", key, seed, r.Yards)
			}
			if qb := off.Player(off.Offense["QB1"]); qb.GameStats.SacksTaken != 1 {
				t.Errorf("%s seed %d: SacksTaken = %d, expected 1", key, seed, qb.GameStats.SacksTaken)
			}
			credited := 0
			for _, p := range def.Roster {
				credited += p.GameStats.Sacks
			}
			if credited != 1 {
				t.Errorf("%s seed %d: %d defenders credited with the sack", key, seed, credited)
			}
		}
	}
	if sacks == 0 {
		t.Errorf("no sacks in %d pass plays behind an overwhelmed line", plays)
	}
}

func TestPlayActionFreezesOnlyCoverDefenders(t *testing.T) {
	e := newEngine(t)
	tables := e.Tables()
	off := newTeam(t, tables, "home", 60, nil)
	def := newTeam(t, tables, "away", 60, nil)
	def.Formations.Defense = "4-3 Blitz"
	chartByPosition(def, league.Defense, tables)

	s := e.newState("PA Post", baseContext(), rng.New(1))
	if !s.setup(off, def) {
		t.Fatalf("setup failed: %v", s.log)
	}
	s.fakeHandoff()

	blitzers := 0
	for _, d := range s.defense {
		if d.pos != league.LB && d.pos != league.S {
			continue
		}
		if d.assignment == config.AssignRush {
			blitzers++
			if d.StunnedTicks > 0 || d.action == "bite" {
				t.Errorf("blitzing %s bit on the fake", d.slot)
			}
			continue
		}
		if d.StunnedTicks == 0 || d.action != "bite" {
			t.Errorf("%s in coverage ignored the fake", d.slot)
		}
	}
	if blitzers == 0 {
		t.Fatal("4-3 Blitz lined up no blitzing linebackers")
	}
}

func anyCarrier(f Frame) bool {
	for _, p := range f.Players {
		if p.IsBallCarrier || p.HasBall {
			return true
		}
	}
	return false
}

func hasEvent(r Result, kind EventKind, index int) bool {
	for _, ev := range r.Events {
		if ev.Kind == kind && ev.Index == index {
			return true
		}
	}
	return false
}

func TestQBSneak(t *testing.T) {
	e := newEngine(t)
	tables := e.Tables()

	success := 0
	const trials = 50
	for seed := int64(1); seed <= trials; seed++ {
		off := newTeam(t, tables, "home", 50, func(p *league.Player) {
			if p.Position == league.QB {
				p.Physical.Strength = 90
			}
		})
		def := newTeam(t, tables, "away", 50, func(p *league.Player) {
			if p.Position == league.DL {
				p.Physical.Strength = 40
				p.Technical.BlockShedding = 40
			}
		})
		r := e.ResolvePlay(off, def, "QB Sneak", baseContext(), rng.New(seed))
		if r.Ticks != 1 {
			t.Errorf("seed %d: sneak took %d ticks, expected 1", seed, r.Ticks)
		}
		if len(r.EventsOf(EventCatch)) > 0 {
			t.Errorf("seed %d: sneak produced a catch", seed)
		}
		if r.Yards > 0 && !r.Turnover {
			success++
		}
	}
	if success < trials*9/10 {
		t.Errorf("sneak succeeded %d of %d times, expected at least 90%%", success, trials)
	}
}

func TestStuffedRun(t *testing.T) {
	e := newEngine(t)
	tables := e.Tables()

	for seed := int64(1); seed <= 30; seed++ {
		off := newTeam(t, tables, "home", 1, nil)
		def := newTeam(t, tables, "away", 99, nil)
		r := e.ResolvePlay(off, def, "Inside Run", baseContext(), rng.New(seed))

		if r.Yards > 0 {
			t.Errorf("seed %d: stuffed run gained %d yards", seed, r.Yards)
		}
		if r.Touchdown {
			t.Errorf("seed %d: stuffed run scored", seed)
		}
		if r.Ticks != 1 {
			t.Errorf("seed %d: stuffed run ended at tick %d, expected 1", seed, r.Ticks)
		}
	}
}

func eliteOffense(p *league.Player) {
	p.Physical = league.Physical{Speed: 80, Strength: 90, Agility: 80, Stamina: 90, Height: 72, Weight: 220}
	p.Technical.Blocking = 90
	switch p.Position {
	case league.QB:
		p.Technical.ThrowingAccuracy = 95
	case league.WR:
		p.Technical.CatchingHands = 99
		p.Physical.Agility = 99
		p.Physical.Speed = 99
	}
}

func TestPassCompletion(t *testing.T) {
	e := newEngine(t)
	tables := e.Tables()
	off := newTeam(t, tables, "home", 80, eliteOffense)
	def := newTeam(t, tables, "away", 40, nil)

	r := e.ResolvePlay(off, def, "Slants", baseContext(), rng.Fixed(0.5))
	if r.Incomplete {
		t.Errorf("expected a completion, log: %v", r.Log)
	}
	if r.Turnover {
		t.Errorf("expected no turnover, log: %v", r.Log)
	}
	if r.Yards <= 0 {
		t.Errorf("Yards = %d, expected a positive gain", r.Yards)
	}
	if len(r.EventsOf(EventCatch)) != 1 {
		t.Errorf("expected exactly one catch event, got %v", r.Events)
	}

	qb := off.Player(off.Offense["QB1"])
	if qb.GameStats.PassAttempts != 1 || qb.GameStats.Completions != 1 {
		t.Errorf("QB stats = %+v, expected one completion", qb.GameStats)
	}
	if qb.GameStats.PassYards != r.Yards {
		t.Errorf("PassYards = %d, expected %d", qb.GameStats.PassYards, r.Yards)
	}
	if qb.Fatigue <= 0 {
		t.Error("passer should have gained fatigue")
	}
}

func TestUnknownPlayFallsBackToDefault(t *testing.T) {
	var buf bytes.Buffer
	tables := loadTables(t)
	e := New(config.DefaultEngineConfig(), tables, log.New(&buf))
	off := newTeam(t, tables, "home", 60, nil)
	def := newTeam(t, tables, "away", 60, nil)

	r := e.ResolvePlay(off, def, "Fumblerooski", baseContext(), rng.New(7))
	if r.PlayKey != tables.DefaultPlay {
		t.Errorf("PlayKey = %q, expected default %q", r.PlayKey, tables.DefaultPlay)
	}
	if len(r.Log) == 0 || !strings.Contains(r.Log[0], "not in the playbook") {
		t.Errorf("first log entry = %q, expected fallback notice", r.Log[0])
	}
	if !strings.Contains(buf.String(), "unknown play key") {
		t.Errorf("developer log = %q, expected an error entry", buf.String())
	}
	if r.Pass {
		t.Error("default play should be a run")
	}
}

func TestMissingParticipantsAbort(t *testing.T) {
	e := newEngine(t)
	tables := e.Tables()
	def := newTeam(t, tables, "away", 60, nil)

	tests := []struct {
		name   string
		roster []*league.Player
		play   string
	}{
		{"empty roster", nil, "Slants"},
		{"no ball carrier", []*league.Player{flatPlayer("qb", league.QB, 60)}, "Inside Run"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			off := &league.Team{Name: "short", Roster: tc.roster, Formations: league.Formations{Offense: "Pro Set"}}
			r := e.ResolvePlay(off, def, tc.play, baseContext(), rng.New(1))
			if !r.Turnover || r.Yards != 0 {
				t.Errorf("result = turnover %v yards %d, expected a zero-yard turnover", r.Turnover, r.Yards)
			}
			if len(r.Frames) == 0 {
				t.Error("aborted play should still produce a frame")
			}
		})
	}
}

func TestEmergencyFillIsLogged(t *testing.T) {
	e := newEngine(t)
	tables := e.Tables()
	off := newTeam(t, tables, "home", 60, nil)
	for _, p := range off.Roster {
		if p.Position == league.RB {
			p.Status = league.Status{Type: league.StatusInjured, Duration: 2}
		}
	}
	def := newTeam(t, tables, "away", 60, nil)

	r := e.ResolvePlay(off, def, "Inside Run", baseContext(), rng.New(3))
	if len(r.EventsOf(EventEmergency)) == 0 {
		t.Errorf("expected an emergency fill event, log: %v", r.Log)
	}
	if r.Ticks == 0 {
		t.Errorf("play should run with an emergency carrier, log: %v", r.Log)
	}
}
