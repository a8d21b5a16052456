// Package league defines the long-lived entities of a season: players,
// teams, their attributes, status and stat counters.
package league

// Physical attributes. Height is in inches and Weight in pounds; every other
// attribute is an integer rating in [1, 99].
type Physical struct {
	Speed    int `yaml:"speed" json:"speed"`
	Strength int `yaml:"strength" json:"strength"`
	Agility  int `yaml:"agility" json:"agility"`
	Stamina  int `yaml:"stamina" json:"stamina"`
	Height   int `yaml:"height" json:"height"`
	Weight   int `yaml:"weight" json:"weight"`
}

// Mental attributes.
type Mental struct {
	PlaybookIQ  int `yaml:"playbook_iq" json:"playbookIQ"`
	Clutch      int `yaml:"clutch" json:"clutch"`
	Consistency int `yaml:"consistency" json:"consistency"`
	Toughness   int `yaml:"toughness" json:"toughness"`
}

// Technical attributes.
type Technical struct {
	ThrowingAccuracy int `yaml:"throwing_accuracy" json:"throwingAccuracy"`
	CatchingHands    int `yaml:"catching_hands" json:"catchingHands"`
	Tackling         int `yaml:"tackling" json:"tackling"`
	Blocking         int `yaml:"blocking" json:"blocking"`
	BlockShedding    int `yaml:"block_shedding" json:"blockShedding"`
}

// StatusType classifies a player's availability.
type StatusType string

const (
	StatusHealthy   StatusType = "healthy"
	StatusInjured   StatusType = "injured"
	StatusBusy      StatusType = "busy"
	StatusTemporary StatusType = "temporary"
)

// Status describes why and for how long a player is unavailable.
// Duration counts weeks remaining.
type Status struct {
	Type        StatusType `json:"type"`
	Duration    int        `json:"duration"`
	Description string     `json:"description,omitempty"`
}

// Available reports whether the player can be picked for a play.
func (s Status) Available() bool {
	if s.Duration > 0 {
		return false
	}
	return s.Type == "" || s.Type == StatusHealthy || s.Type == StatusTemporary
}

// Player is a league participant. Players persist across the season and are
// mutated in place by the engine and orchestrator.
type Player struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Position  Position  `json:"position"`
	Physical  Physical  `json:"physical"`
	Mental    Mental    `json:"mental"`
	Technical Technical `json:"technical"`
	Status    Status    `json:"status"`

	// Fatigue is in [0, 100]; it rises during plays and resets each half.
	Fatigue float64 `json:"fatigue"`

	GameStats   Stats `json:"gameStats"`
	SeasonStats Stats `json:"seasonStats"`
	CareerStats Stats `json:"careerStats"`
}

// Attr reads an attribute by key. Unknown keys read as 0.
func (p *Player) Attr(a Attr) int {
	if p == nil {
		return 0
	}
	switch a {
	case AttrSpeed:
		return p.Physical.Speed
	case AttrStrength:
		return p.Physical.Strength
	case AttrAgility:
		return p.Physical.Agility
	case AttrStamina:
		return p.Physical.Stamina
	case AttrHeight:
		return p.Physical.Height
	case AttrWeight:
		return p.Physical.Weight
	case AttrPlaybookIQ:
		return p.Mental.PlaybookIQ
	case AttrClutch:
		return p.Mental.Clutch
	case AttrConsistency:
		return p.Mental.Consistency
	case AttrToughness:
		return p.Mental.Toughness
	case AttrThrowingAccuracy:
		return p.Technical.ThrowingAccuracy
	case AttrCatchingHands:
		return p.Technical.CatchingHands
	case AttrTackling:
		return p.Technical.Tackling
	case AttrBlocking:
		return p.Technical.Blocking
	case AttrBlockShedding:
		return p.Technical.BlockShedding
	default:
		return 0
	}
}

// Rating reads an attribute as a float in [0, 99], for use in contest power.
func (p *Player) Rating(a Attr) float64 {
	v := p.Attr(a)
	if v < 0 {
		return 0
	}
	if v > 99 && a != AttrHeight && a != AttrWeight {
		return 99
	}
	return float64(v)
}

// FatigueModifier converts fatigue into a speed multiplier in [1-penalty, 1].
func (p *Player) FatigueModifier(penalty float64) float64 {
	if p == nil {
		return 1
	}
	f := p.Fatigue
	if f < 0 {
		f = 0
	}
	if f > 100 {
		f = 100
	}
	return 1 - f/100*penalty
}

// AddFatigue raises fatigue by cost, reduced by stamina, capped at 100.
func (p *Player) AddFatigue(cost float64) {
	stamina := p.Rating(AttrStamina)
	p.Fatigue += cost * (1.5 - stamina/100)
	if p.Fatigue > 100 {
		p.Fatigue = 100
	}
}

// ResetFatigue clears accumulated fatigue.
func (p *Player) ResetFatigue() {
	p.Fatigue = 0
}
