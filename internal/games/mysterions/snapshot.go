package mysterions

import (
	"github.com/cobrien706/mysterions/internal/core"
)

// PursuerSnapshot is one pursuer's observable state: where it is and
// which strategy is driving it.
type PursuerSnapshot struct {
	Pos      core.Vec
	Strategy StrategyKind
}

// Snapshot is an immutable view of the session state at one tick, used
// by determinism tests and debugging tools. Two sessions with the same
// seed and input sequence must produce identical snapshots tick for
// tick.
type Snapshot struct {
	Tick      int
	Round     int
	Status    Status
	Score     int
	Lives     int
	Health    int
	Agent     core.Vec
	Pursuers  []PursuerSnapshot
	Coins     []core.Vec // uncollected coin positions
	CoinsLeft int
}

// Snapshot captures the current state. Pursuer and coin entries are
// copied in active-set order, which is itself deterministic.
func (s *Session) Snapshot() Snapshot {
	r := s.round
	snap := Snapshot{
		Tick:      r.Tick,
		Round:     s.roundNum,
		Status:    s.status,
		Score:     s.score,
		Lives:     s.lives,
		Health:    r.Agent.Health,
		Agent:     r.Agent.Pos,
		CoinsLeft: r.CoinsLeft(),
	}
	for _, p := range r.Pursuers {
		snap.Pursuers = append(snap.Pursuers, PursuerSnapshot{Pos: p.Pos, Strategy: p.Strategy})
	}
	for i := range r.Coins {
		if !r.Coins[i].Collected {
			snap.Coins = append(snap.Coins, r.Coins[i].Pos)
		}
	}
	return snap
}
