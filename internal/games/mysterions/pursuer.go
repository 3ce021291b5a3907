package mysterions

import (
	"math/rand"

	"github.com/cobrien706/mysterions/internal/core"
)

// StrategyKind selects the active pursuit behavior of a pursuer. Exactly
// one is active at a time; StrategyCharge is both the initial state and
// the only state a completed maneuver returns to.
type StrategyKind int

const (
	StrategyCharge StrategyKind = iota
	StrategyKnightMoves
)

// Pursuer is one hostile entity. While charging it recomputes its heading
// from the agent's position every tick; while maneuvering it walks its
// planned legs without looking at the agent at all.
type Pursuer struct {
	Pos      core.Vec
	Size     float64
	Speed    float64
	Strategy StrategyKind
	Man      Maneuver
}

// Box returns the pursuer's bounding box.
func (p *Pursuer) Box() core.FRect {
	return core.NewFRect(p.Pos.X, p.Pos.Y, p.Size, p.Size)
}

// Step advances the pursuer by one tick toward target, honoring the
// board's collision rules. threshold is the charge lock-on distance.
func (p *Pursuer) Step(board *Board, target core.Vec, threshold, pacesMin, pacesMax float64, rng *rand.Rand) {
	switch p.Strategy {
	case StrategyCharge:
		p.stepCharge(board, target, threshold)
	case StrategyKnightMoves:
		p.stepManeuver(board, pacesMin, pacesMax, rng)
	}
}

// stepCharge applies the charge velocity, or hands off to knight-moves
// when that move would collide. The handoff tick itself moves nothing;
// the first maneuver leg starts on the next tick.
func (p *Pursuer) stepCharge(board *Board, target core.Vec, threshold float64) {
	vel := chargeVelocity(p.Pos, target, threshold, p.Speed)
	if vel.IsZero() {
		return
	}
	if board.Collides(p.Box(), vel) {
		p.Strategy = StrategyKnightMoves
		p.Man = startManeuver(board, p.Box())
		return
	}
	p.Pos = p.Pos.Add(vel)
}

// stepManeuver walks the current maneuver leg. A blocked step abandons
// the whole maneuver and replans from the current position rather than
// resuming the interrupted leg.
func (p *Pursuer) stepManeuver(board *Board, pacesMin, pacesMax float64, rng *rand.Rand) {
	delta := p.Man.Dir.Scale(p.Speed)
	if board.Collides(p.Box(), delta) {
		p.Man = startManeuver(board, p.Box())
		return
	}

	p.Pos = p.Pos.Add(delta)
	p.Man.Traveled += p.Speed

	if !p.Man.done() {
		return
	}
	switch p.Man.Stage {
	case StageFirst:
		p.Man.turn(board, p.Box(), pacesMin, pacesMax, rng)
	case StageSecond:
		p.Strategy = StrategyCharge
	}
}
