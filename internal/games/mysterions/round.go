package mysterions

import (
	"math/rand"

	"github.com/cobrien706/mysterions/internal/config"
	"github.com/cobrien706/mysterions/internal/core"
)

// Agent is the player-controlled entity.
type Agent struct {
	Pos    core.Vec
	Size   float64
	Speed  float64
	Health int
}

// Box returns the agent's bounding box.
func (a *Agent) Box() core.FRect {
	return core.NewFRect(a.Pos.X, a.Pos.Y, a.Size, a.Size)
}

// Coin is a collectible. Collected coins stay in the slice so indices
// remain stable for rendering; only uncollected ones count.
type Coin struct {
	Pos       core.Vec
	Collected bool
}

// RoundOutcome is the result of a single simulation tick.
type RoundOutcome int

const (
	RoundPlaying RoundOutcome = iota
	RoundWon                  // every coin collected
	RoundLost                 // health exhausted
)

// Round is one play-through on one generated board. Created at round
// start and replaced wholesale at round end; nothing in it survives
// except through the session.
type Round struct {
	Board    *Board
	Agent    Agent
	Pursuers []*Pursuer
	Coins    []Coin

	Tick      int
	HeadStart int // ticks before pursuers start moving
}

// NewRound generates a fresh layout and populates a round from it.
// pursuerSpeed and extraPursuers carry the difficulty scaling so the
// generator and entities stay difficulty-agnostic.
func NewRound(cfg config.MysterionsConfig, headStartTicks, extraPursuers int, pursuerSpeed float64, rng *rand.Rand) *Round {
	layout := GenerateLayout(cfg, extraPursuers, rng)

	r := &Round{
		Board: &Board{
			Width:     layout.BoardWidth,
			Height:    layout.BoardHeight,
			Obstacles: layout.Obstacles,
		},
		Agent: Agent{
			Pos:    layout.Agent,
			Size:   cfg.Board.EntitySize,
			Speed:  cfg.Agent.Speed,
			Health: cfg.Agent.MaxHealth,
		},
		HeadStart: headStartTicks,
	}

	for _, pos := range layout.Coins {
		r.Coins = append(r.Coins, Coin{Pos: pos})
	}
	for _, pos := range layout.Pursuers {
		r.Pursuers = append(r.Pursuers, &Pursuer{
			Pos:   pos,
			Size:  cfg.Board.EntitySize,
			Speed: pursuerSpeed,
		})
	}
	return r
}

// Step advances the round by one tick. Order is fixed: agent movement,
// pursuer movement, coin pickup, pursuer contact, then outcome. The coin
// check runs before the health check, so clearing the last coin on the
// same tick a fatal hit lands still wins the round.
func (r *Round) Step(cfg config.MysterionsConfig, intent core.Vec, rng *rand.Rand) (scoreDelta int, outcome RoundOutcome) {
	r.Tick++

	r.moveAgent(intent)

	if r.HeadStart > 0 {
		r.HeadStart--
	} else {
		for _, p := range r.Pursuers {
			p.Step(r.Board, r.Agent.Pos, cfg.Pursuers.ChargeThreshold,
				cfg.Pursuers.TurnPacesMin, cfg.Pursuers.TurnPacesMax, rng)
		}
	}

	scoreDelta = r.collectCoins(cfg)
	r.applyContacts(cfg)

	switch {
	case r.CoinsLeft() == 0:
		return scoreDelta, RoundWon
	case r.Agent.Health <= 0:
		return scoreDelta, RoundLost
	default:
		return scoreDelta, RoundPlaying
	}
}

// moveAgent applies the movement intent, blocked entirely when the
// projected box would collide.
func (r *Round) moveAgent(intent core.Vec) {
	vel := core.Vec{X: intent.X * r.Agent.Speed, Y: intent.Y * r.Agent.Speed}
	if vel.IsZero() || r.Board.Collides(r.Agent.Box(), vel) {
		return
	}
	r.Agent.Pos = r.Agent.Pos.Add(vel)
}

// collectCoins marks coins the agent is overlapping and returns the
// score gained this tick.
func (r *Round) collectCoins(cfg config.MysterionsConfig) int {
	agentBox := r.Agent.Box()
	gained := 0
	for i := range r.Coins {
		if r.Coins[i].Collected {
			continue
		}
		coinBox := core.NewFRect(r.Coins[i].Pos.X, r.Coins[i].Pos.Y,
			cfg.Board.EntitySize, cfg.Board.EntitySize)
		if overlapDeep(agentBox, coinBox, cfg.Gameplay.OverlapThreshold) {
			r.Coins[i].Collected = true
			gained += cfg.Coins.Value
		}
	}
	return gained
}

// applyContacts resolves pursuer-agent collisions: each contact costs
// health and removes that pursuer. Several pursuers landing on the same
// tick each deal damage.
func (r *Round) applyContacts(cfg config.MysterionsConfig) {
	agentBox := r.Agent.Box()
	survivors := r.Pursuers[:0]
	for _, p := range r.Pursuers {
		if overlapDeep(agentBox, p.Box(), cfg.Gameplay.OverlapThreshold) {
			r.Agent.Health = core.Max(0, r.Agent.Health-cfg.Gameplay.ContactDamage)
			continue
		}
		survivors = append(survivors, p)
	}
	r.Pursuers = survivors
}

// CoinsLeft returns the number of uncollected coins.
func (r *Round) CoinsLeft() int {
	left := 0
	for i := range r.Coins {
		if !r.Coins[i].Collected {
			left++
		}
	}
	return left
}

// overlapDeep reports whether two boxes overlap by more than threshold
// on both axes. Grazing contact does not count as a hit or a pickup.
func overlapDeep(a, b core.FRect, threshold float64) bool {
	dx, dy := a.OverlapDepth(b)
	return dx > threshold && dy > threshold
}
