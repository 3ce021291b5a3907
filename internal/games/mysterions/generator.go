package mysterions

import (
	"math/rand"

	"github.com/cobrien706/mysterions/internal/config"
	"github.com/cobrien706/mysterions/internal/core"
)

// Layout is a freshly generated round: board geometry plus the starting
// positions of every entity. Placement works on a coarse grid with one
// object per cell, which guarantees coins never spawn inside obstacles
// and no two objects stack.
type Layout struct {
	BoardWidth  float64
	BoardHeight float64
	Obstacles   []core.FRect
	Coins       []core.Vec
	Pursuers    []core.Vec
	Agent       core.Vec
}

// GenerateLayout builds a random round layout from the config. Counts are
// drawn from the configured half-open ranges; extraPursuers adds the
// difficulty scaling on top. All randomness comes from rng, so a seed
// reproduces the exact same board.
func GenerateLayout(cfg config.MysterionsConfig, extraPursuers int, rng *rand.Rand) Layout {
	gw, gh := cfg.Board.GridWidth, cfg.Board.GridHeight
	square := cfg.Board.SquareSize

	layout := Layout{
		BoardWidth:  float64(gw) * square,
		BoardHeight: float64(gh) * square,
	}

	agentCol, agentRow := pickAgentCell(cfg, rng)
	layout.Agent = entityPos(cfg, agentCol, agentRow)

	coins := countIn(cfg.Coins.MinCount, cfg.Coins.MaxCount, rng)
	obstacles := countIn(cfg.Obstacles.MinCount, cfg.Obstacles.MaxCount, rng)
	pursuers := countIn(cfg.Pursuers.MinCount, cfg.Pursuers.MaxCount, rng) + extraPursuers

	// Shuffled cell order makes placement a single pass: coins first,
	// then obstacles, then pursuers on whatever cells remain.
	for _, cell := range rng.Perm(gw * gh) {
		col, row := cell%gw, cell/gw
		if col == agentCol && row == agentRow {
			continue
		}
		switch {
		case len(layout.Coins) < coins:
			layout.Coins = append(layout.Coins, entityPos(cfg, col, row))
		case len(layout.Obstacles) < obstacles:
			layout.Obstacles = append(layout.Obstacles,
				core.NewFRect(float64(col)*square, float64(row)*square, square, square))
		case len(layout.Pursuers) < pursuers:
			// Keep pursuers out of the agent's immediate neighborhood
			// so the head start is not forfeit on tick one.
			if adjacentCells(col, row, agentCol, agentRow) {
				continue
			}
			layout.Pursuers = append(layout.Pursuers, entityPos(cfg, col, row))
		default:
			return layout
		}
	}
	return layout
}

// pickAgentCell chooses the agent's starting cell, kept away from the
// board edge by the configured buffer.
func pickAgentCell(cfg config.MysterionsConfig, rng *rand.Rand) (col, row int) {
	buf := cfg.Agent.BorderBuffer
	col = cellIn(cfg.Board.GridWidth, buf, rng)
	row = cellIn(cfg.Board.GridHeight, buf, rng)
	return col, row
}

// cellIn picks a random cell index in [buf, size-buf), falling back to
// the full range when the buffer would leave nothing.
func cellIn(size, buf int, rng *rand.Rand) int {
	if size-2*buf <= 0 {
		return rng.Intn(size)
	}
	return buf + rng.Intn(size-2*buf)
}

// entityPos centers an entity-sized box inside the given grid cell.
func entityPos(cfg config.MysterionsConfig, col, row int) core.Vec {
	square := cfg.Board.SquareSize
	offset := (square - cfg.Board.EntitySize) / 2
	return core.Vec{
		X: float64(col)*square + offset,
		Y: float64(row)*square + offset,
	}
}

// countIn draws from the half-open range [min, max).
func countIn(min, max int, rng *rand.Rand) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min)
}

// adjacentCells reports whether two cells are within one step of each
// other in any direction, including diagonals.
func adjacentCells(c1, r1, c2, r2 int) bool {
	dc, dr := c1-c2, r1-r2
	if dc < 0 {
		dc = -dc
	}
	if dr < 0 {
		dr = -dr
	}
	return dc <= 1 && dr <= 1
}
