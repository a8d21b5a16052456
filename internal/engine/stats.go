package engine

import "github.com/vovakirdan/gridiron/internal/config"

// creditStats attributes the finished play to the players involved.
// Fumble counters are credited when the fumble happens.
func (s *state) creditStats() {
	yards := s.runYards

	if s.play.Type != config.PlayPass || s.play.Sneak {
		if s.rusher != nil {
			st := &s.rusher.player.GameStats
			st.RushAttempts++
			st.RushYards += yards
			if s.touchdown {
				st.RushTouchdowns++
			}
		}
		if s.tackler != nil {
			s.tackler.player.GameStats.Tackles++
		}
		return
	}

	qb := &s.qb.player.GameStats
	if s.sack {
		qb.SacksTaken++
		if s.tackler != nil {
			s.tackler.player.GameStats.Sacks++
			s.tackler.player.GameStats.Tackles++
		}
		return
	}
	if !s.pass.thrown || s.pass.target == nil {
		return
	}

	cb := s.pass.target
	rcv := &cb.receiver.player.GameStats
	qb.PassAttempts++
	rcv.Targets++

	switch s.pass.arrival {
	case arrivalCatch:
		qb.Completions++
		rcv.Receptions++
		qb.PassYards += yards
		rcv.RecYards += yards
		if s.touchdown {
			qb.PassTouchdowns++
			rcv.RecTouchdowns++
		}
		if s.tackler != nil {
			s.tackler.player.GameStats.Tackles++
		}
	case arrivalInterception:
		qb.InterceptionsThrown++
		if s.interceptor != nil {
			s.interceptor.player.GameStats.Interceptions++
		}
	case arrivalSwat:
		if cb.defender != nil {
			cb.defender.player.GameStats.PassesDefended++
		}
	case arrivalDrop:
		rcv.Drops++
	}
}
