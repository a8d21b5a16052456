package sim

import (
	"fmt"

	"github.com/vovakirdan/gridiron/internal/core"
	"github.com/vovakirdan/gridiron/internal/engine"
	"github.com/vovakirdan/gridiron/internal/league"
	"github.com/vovakirdan/gridiron/internal/registry"
	"github.com/vovakirdan/gridiron/internal/rng"
)

const (
	home = 0
	away = 1
)

// ScoringPlay is one score in a game.
type ScoringPlay struct {
	Quarter int    `json:"quarter"`
	Clock   string `json:"clock"`
	TeamID  string `json:"teamId"`
	Kind    string `json:"kind"`
	Points  int    `json:"points"`
	Text    string `json:"text"`
}

// Injury is a player hurt during a game.
type Injury struct {
	TeamID   string `json:"teamId"`
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Weeks    int    `json:"weeks"`
	Text     string `json:"text"`
}

// PlayerLine is one player's box score line.
type PlayerLine struct {
	TeamID   string          `json:"teamId"`
	PlayerID string          `json:"playerId"`
	Name     string          `json:"name"`
	Position league.Position `json:"position"`
	Stats    league.Stats    `json:"stats"`
}

// GameResult is the outcome of a full game.
type GameResult struct {
	ID        string         `json:"id"`
	Week      int            `json:"week"`
	HomeID    string         `json:"homeId"`
	HomeName  string         `json:"homeName"`
	AwayID    string         `json:"awayId"`
	AwayName  string         `json:"awayName"`
	HomeScore int            `json:"homeScore"`
	AwayScore int            `json:"awayScore"`
	Weather   engine.Weather `json:"weather"`
	Plays     int            `json:"plays"`
	Turnovers int            `json:"turnovers"`
	Scoring   []ScoringPlay  `json:"scoring"`
	Injuries  []Injury       `json:"injuries"`
	Lines     []PlayerLine   `json:"lines"`
	Log       []string       `json:"log"`
}

// WinnerID returns the winning team's ID, or "" for a tie.
func (r GameResult) WinnerID() string {
	switch {
	case r.HomeScore > r.AwayScore:
		return r.HomeID
	case r.AwayScore > r.HomeScore:
		return r.AwayID
	default:
		return ""
	}
}

var injuryKinds = []string{"sprained ankle", "bruised ribs", "hamstring strain", "jammed wrist", "concussion protocol", "knee sprain"}

// game is the state of one game in progress.
type game struct {
	sim     *Simulator
	src     rng.Source
	teams   [2]*league.Team
	callers [2]registry.Caller
	score   [2]int
	weather engine.Weather
	res     *GameResult

	quarter int
	clock   int // Seconds left in the quarter

	poss   int // Index of the team with the ball
	ballOn int
	down   int
	toGo   int
}

// PlayGame simulates a full game between two teams. Game stats are reset
// at kickoff and added to season and career totals at the final whistle.
func (s *Simulator) PlayGame(week int, homeTeam, awayTeam *league.Team, src rng.Source) GameResult {
	g := &game{
		sim:     s,
		src:     src,
		teams:   [2]*league.Team{homeTeam, awayTeam},
		callers: [2]registry.Caller{s.caller(homeTeam.Coach.Personality), s.caller(awayTeam.Coach.Personality)},
	}
	g.res = &GameResult{
		ID:       newID(src),
		Week:     week,
		HomeID:   homeTeam.ID,
		HomeName: homeTeam.Name,
		AwayID:   awayTeam.ID,
		AwayName: awayTeam.Name,
	}
	g.weather = g.pickWeather()
	g.res.Weather = g.weather

	for _, t := range g.teams {
		t.ResetGameStats()
		t.ResetFatigue()
	}

	g.quarter, g.clock = 1, s.cfg.Game.QuarterSeconds
	g.logf("%s at %s, %s", awayTeam.Name, homeTeam.Name, g.weather)
	g.kickoff(home)
	for g.quarter <= 4 {
		g.snap()
	}
	g.finish()

	s.logger.Debug("game final",
		"week", week, "home", homeTeam.Name, "away", awayTeam.Name,
		"score", fmt.Sprintf("%d-%d", g.score[home], g.score[away]), "plays", g.res.Plays)
	return *g.res
}

func (g *game) pickWeather() engine.Weather {
	gc := g.sim.cfg.Game
	r := g.src.Float64()
	switch {
	case r < gc.RainChance:
		return engine.Rain
	case r < gc.RainChance+gc.WindChance:
		return engine.Windy
	default:
		return engine.Sunny
	}
}

func (g *game) logf(format string, args ...any) {
	g.res.Log = append(g.res.Log, fmt.Sprintf("Q%d %s %s", g.quarter, g.clockText(), fmt.Sprintf(format, args...)))
}

func (g *game) clockText() string {
	c := max(g.clock, 0)
	return fmt.Sprintf("%02d:%02d", c/60, c%60)
}

func (g *game) situation() registry.Situation {
	return registry.Situation{
		Down:      g.down,
		YardsToGo: g.toGo,
		BallOn:    g.ballOn,
		ScoreDiff: g.score[g.poss] - g.score[1-g.poss],
		Quarter:   g.quarter,
		Rain:      g.weather == engine.Rain,
	}
}

// firstDown starts a new set of downs at spot.
func (g *game) firstDown(spot int) {
	g.ballOn = core.Clamp(spot, 1, 99)
	g.down = 1
	g.toGo = min(10, 100-g.ballOn)
}

// changePossession gives the ball to the other team at spot, measured
// from their own goal line.
func (g *game) changePossession(spot int) {
	g.poss = 1 - g.poss
	g.firstDown(spot)
}

// kickoff gives the ball to the team that did not kick.
func (g *game) kickoff(kicker int) {
	g.poss = 1 - kicker
	g.firstDown(g.sim.cfg.Game.KickoffSpot)
	g.logf("%s kicks off; %s take over at their own %d", g.teams[kicker].Name, g.teams[g.poss].Name, g.ballOn)
}

// runClock runs seconds off the clock and handles quarter breaks.
func (g *game) runClock(seconds int) {
	g.clock -= max(seconds, 1)
	if g.clock > 0 {
		return
	}
	g.quarter++
	if g.quarter > 4 {
		return
	}
	g.clock = g.sim.cfg.Game.QuarterSeconds
	if g.quarter == 3 {
		for _, t := range g.teams {
			t.ResetFatigue()
		}
		g.logf("Halftime: %s %d, %s %d", g.teams[home].Name, g.score[home], g.teams[away].Name, g.score[away])
		g.kickoff(away)
	}
}

// snap plays one down, or a kick on fourth down.
func (g *game) snap() {
	gc := g.sim.cfg.Game
	off := g.poss
	caller := g.callers[off]

	if g.down == 4 {
		switch caller.FourthDown(g.situation()) {
		case registry.Punt:
			g.punt()
			g.runClock(gc.IncompleteSeconds)
			return
		case registry.FieldGoal:
			g.fieldGoal()
			g.runClock(gc.IncompleteSeconds)
			return
		}
	}

	key := caller.CallPlay(g.situation(), g.sim.tables, g.src)
	ctx := engine.Context{BallOn: g.ballOn, Down: g.down, YardsToGo: g.toGo, Weather: g.weather}
	r := g.sim.engine.ResolvePlay(g.teams[off], g.teams[1-off], key, ctx, g.src)
	g.res.Plays++

	g.injuries(r)
	g.apply(r)

	seconds := rng.Range(g.src, gc.PlaySeconds.Min, gc.PlaySeconds.Max)
	if r.Incomplete {
		seconds = gc.IncompleteSeconds
	}
	g.runClock(seconds)
}

// apply moves the chains after a play.
func (g *game) apply(r engine.Result) {
	off, def := g.poss, 1-g.poss
	spot := g.ballOn + r.Yards

	switch {
	case r.Touchdown:
		g.touchdown(off, r)
	case r.Turnover:
		g.res.Turnovers++
		g.logf("%s: %s, turnover", g.teams[off].Name, r.PlayName)
		g.changePossession(100 - core.Clamp(spot, 1, 99))
	case spot <= 0:
		g.safety(def)
	default:
		g.ballOn = spot
		g.toGo -= r.Yards
		switch {
		case g.toGo <= 0:
			g.firstDown(spot)
		case g.down == 4:
			g.logf("%s turn it over on downs at the %d", g.teams[off].Name, spot)
			g.changePossession(100 - spot)
		default:
			g.down++
		}
	}
}

func (g *game) addScore(team int, kind string, points int, text string) {
	g.score[team] += points
	g.res.Scoring = append(g.res.Scoring, ScoringPlay{
		Quarter: g.quarter,
		Clock:   g.clockText(),
		TeamID:  g.teams[team].ID,
		Kind:    kind,
		Points:  points,
		Text:    text,
	})
	g.logf("%s: %s (%d-%d)", g.teams[team].Name, text, g.score[home], g.score[away])
}

func (g *game) touchdown(team int, r engine.Result) {
	g.addScore(team, "touchdown", 6, fmt.Sprintf("%s, %d yards", r.PlayName, r.Yards))
	if rng.Chance(g.src, g.sim.cfg.Game.PATRate) {
		g.addScore(team, "extra point", 1, "extra point good")
	} else {
		g.logf("%s miss the extra point", g.teams[team].Name)
	}
	g.kickoff(team)
}

// safety scores two for the defense, which then receives a free kick.
func (g *game) safety(defense int) {
	g.addScore(defense, "safety", 2, "safety")
	g.poss = defense
	g.firstDown(g.sim.cfg.Game.FreeKickSpot)
}

func (g *game) punt() {
	gc := g.sim.cfg.Game
	yards := rng.Range(g.src, gc.PuntYards.Min, gc.PuntYards.Max)
	land := g.ballOn + yards
	spot := gc.TouchbackSpot
	if land < 100 {
		spot = 100 - land
	}
	g.logf("%s punt %d yards", g.teams[g.poss].Name, yards)
	g.changePossession(spot)
}

// FieldGoalRate is the chance of making a kick of the given distance.
func FieldGoalRate(distance int, windy bool, base, drop float64) float64 {
	rate := base - float64(max(distance-20, 0))*drop
	if windy {
		rate -= 0.1
	}
	return core.ClampF(rate, 0.05, 0.99)
}

func (g *game) fieldGoal() {
	gc := g.sim.cfg.Game
	team := g.poss
	dist := registry.FieldGoalDistance(g.ballOn)
	rate := FieldGoalRate(dist, g.weather == engine.Windy, gc.FieldGoalBase, gc.FieldGoalDrop)
	if dist > gc.FieldGoalMax {
		rate = 0
	}

	if rng.Chance(g.src, rate) {
		g.addScore(team, "field goal", 3, fmt.Sprintf("%d-yard field goal", dist))
		g.kickoff(team)
		return
	}
	g.logf("%s miss a %d-yard field goal", g.teams[team].Name, dist)
	g.changePossession(max(100-g.ballOn, gc.TouchbackSpot))
}

// injuries rolls for every participant in the play's final frame.
func (g *game) injuries(r engine.Result) {
	if len(r.Frames) == 0 {
		return
	}
	hc := g.sim.cfg.Health
	for _, pf := range r.Frames[len(r.Frames)-1].Players {
		team, p := g.player(pf.ID)
		if p == nil || !p.Status.Available() {
			continue
		}
		rate := hc.InjuryRate * (1.5 - p.Rating(league.AttrToughness)/100)
		if !rng.Chance(g.src, rate) {
			continue
		}
		weeks := rng.Range(g.src, hc.InjuryWeeks.Min, hc.InjuryWeeks.Max)
		kind := injuryKinds[g.src.Intn(len(injuryKinds))]
		p.Status = league.Status{Type: league.StatusInjured, Duration: weeks, Description: kind}
		g.res.Injuries = append(g.res.Injuries, Injury{
			TeamID: g.teams[team].ID, PlayerID: p.ID, Name: p.Name, Weeks: weeks, Text: kind,
		})
		g.logf("Injury: %s (%s), out %d weeks", p.Name, kind, weeks)
		g.sim.logger.Info("injury", "player", p.Name, "team", g.teams[team].Name, "weeks", weeks, "kind", kind)
	}
}

func (g *game) player(id string) (int, *league.Player) {
	for i, t := range g.teams {
		if p := t.Player(id); p != nil {
			return i, p
		}
	}
	return 0, nil
}

// finish records the result, updates standings and rolls game stats up.
func (g *game) finish() {
	g.quarter = 4
	g.clock = 0
	g.res.HomeScore = g.score[home]
	g.res.AwayScore = g.score[away]
	g.logf("Final: %s %d, %s %d", g.teams[home].Name, g.score[home], g.teams[away].Name, g.score[away])

	h, a := g.teams[home], g.teams[away]
	switch {
	case g.score[home] > g.score[away]:
		h.Wins++
		a.Losses++
	case g.score[away] > g.score[home]:
		a.Wins++
		h.Losses++
	default:
		h.Ties++
		a.Ties++
	}

	for _, t := range g.teams {
		for _, p := range t.Roster {
			if p.GameStats != (league.Stats{}) {
				g.res.Lines = append(g.res.Lines, PlayerLine{
					TeamID: t.ID, PlayerID: p.ID, Name: p.Name, Position: p.Position, Stats: p.GameStats,
				})
			}
			p.SeasonStats.Add(p.GameStats)
			p.CareerStats.Add(p.GameStats)
		}
		t.ResetFatigue()
	}
}
