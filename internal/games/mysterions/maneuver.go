package mysterions

import (
	"math/rand"

	"github.com/cobrien706/mysterions/internal/core"
)

// ManeuverStage identifies which straight leg of a knight-moves maneuver
// is in progress.
type ManeuverStage int

const (
	// StageFirst travels along the direction of greatest clearance.
	StageFirst ManeuverStage = iota
	// StageSecond travels perpendicular to the first leg. Completing it
	// hands the pursuer back to the charge strategy.
	StageSecond
)

// Maneuver is the live state of a knight-moves evasion: two perpendicular
// straight legs walked blind, ignoring the agent entirely. A pursuer in a
// maneuver can be passed at arm's length without reacting.
type Maneuver struct {
	Stage    ManeuverStage
	Dir      core.Vec // unit axis direction of the current leg
	Target   float64  // distance this leg should cover
	Traveled float64  // distance covered so far
}

// maneuverDirs is the clearance scan order. Horizontal before vertical,
// positive before negative; ties keep the earlier direction.
var maneuverDirs = [4]core.Vec{
	{X: 1}, {X: -1}, {Y: 1}, {Y: -1},
}

// bestDirection returns the axis direction with the most clear travel
// distance from box, and that clearance. Deterministic for a given board
// and position.
func bestDirection(board *Board, box core.FRect) (core.Vec, float64) {
	best := maneuverDirs[0]
	bestClear := board.Clearance(box, best)
	for _, dir := range maneuverDirs[1:] {
		if c := board.Clearance(box, dir); c > bestClear {
			best, bestClear = dir, c
		}
	}
	return best, bestClear
}

// startManeuver begins a fresh maneuver from box: pick the clearest
// direction and plan a straight leg covering half that clearance. The
// target is floored at one pace so a boxed-in pursuer still schedules a
// move; its first step then collides and the maneuver restarts, which
// resolves as soon as the surroundings open up.
func startManeuver(board *Board, box core.FRect) Maneuver {
	dir, clear := bestDirection(board, box)
	return Maneuver{
		Stage:  StageFirst,
		Dir:    dir,
		Target: maxPaces(clear/2, 1),
	}
}

// turn switches a completed first leg into the perpendicular second leg.
// The perpendicular sign is chosen at random; the leg length is drawn
// uniformly from [pacesMin, pacesMax) and capped by the clearance
// actually available that way.
func (m *Maneuver) turn(board *Board, box core.FRect, pacesMin, pacesMax float64, rng *rand.Rand) {
	var dir core.Vec
	sign := float64(rng.Intn(2)*2 - 1)
	if m.Dir.X != 0 {
		dir = core.Vec{Y: sign}
	} else {
		dir = core.Vec{X: sign}
	}

	paces := pacesMin + rng.Float64()*(pacesMax-pacesMin)
	if clear := board.Clearance(box, dir); clear < paces {
		paces = clear
	}

	m.Stage = StageSecond
	m.Dir = dir
	m.Target = maxPaces(paces, 1)
	m.Traveled = 0
}

// done reports whether the current leg has covered its target distance.
func (m *Maneuver) done() bool {
	return m.Traveled >= m.Target
}

func maxPaces(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
