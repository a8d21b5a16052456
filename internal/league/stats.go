package league

// Stats are per-player counters. The same shape is used for game, season
// and career totals.
type Stats struct {
	PassAttempts        int `json:"passAttempts"`
	Completions         int `json:"completions"`
	PassYards           int `json:"passYards"`
	PassTouchdowns      int `json:"passTouchdowns"`
	InterceptionsThrown int `json:"interceptionsThrown"`
	SacksTaken          int `json:"sacksTaken"`

	RushAttempts   int `json:"rushAttempts"`
	RushYards      int `json:"rushYards"`
	RushTouchdowns int `json:"rushTouchdowns"`

	Targets       int `json:"targets"`
	Receptions    int `json:"receptions"`
	RecYards      int `json:"recYards"`
	RecTouchdowns int `json:"recTouchdowns"`
	Drops         int `json:"drops"`

	Tackles        int `json:"tackles"`
	Sacks          int `json:"sacks"`
	Interceptions  int `json:"interceptions"`
	PassesDefended int `json:"passesDefended"`
	ForcedFumbles  int `json:"forcedFumbles"`
	Fumbles        int `json:"fumbles"`
	FumblesLost    int `json:"fumblesLost"`
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.PassAttempts += o.PassAttempts
	s.Completions += o.Completions
	s.PassYards += o.PassYards
	s.PassTouchdowns += o.PassTouchdowns
	s.InterceptionsThrown += o.InterceptionsThrown
	s.SacksTaken += o.SacksTaken
	s.RushAttempts += o.RushAttempts
	s.RushYards += o.RushYards
	s.RushTouchdowns += o.RushTouchdowns
	s.Targets += o.Targets
	s.Receptions += o.Receptions
	s.RecYards += o.RecYards
	s.RecTouchdowns += o.RecTouchdowns
	s.Drops += o.Drops
	s.Tackles += o.Tackles
	s.Sacks += o.Sacks
	s.Interceptions += o.Interceptions
	s.PassesDefended += o.PassesDefended
	s.ForcedFumbles += o.ForcedFumbles
	s.Fumbles += o.Fumbles
	s.FumblesLost += o.FumblesLost
}

// Touchdowns returns all offensive touchdowns scored by the player.
func (s Stats) Touchdowns() int {
	return s.RushTouchdowns + s.RecTouchdowns
}

// TotalYards returns rushing plus receiving yards.
func (s Stats) TotalYards() int {
	return s.RushYards + s.RecYards
}
