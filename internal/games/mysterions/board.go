// Package mysterions implements a pursuit arcade game: the player's agent
// collects coins on a bounded board while pursuers navigate around static
// obstacles toward it. The simulation is a pure fixed-tick core with no
// rendering dependencies, driven by the platform through registry.Game.
package mysterions

import (
	"github.com/cobrien706/mysterions/internal/core"
)

// Board holds the static geometry of a round: world bounds and the
// obstacle rectangles. Boundary walls act as implicit obstacles.
type Board struct {
	Width, Height float64
	Obstacles     []core.FRect
}

// Bounds returns the playable area as a rectangle at the origin.
func (b *Board) Bounds() core.FRect {
	return core.NewFRect(0, 0, b.Width, b.Height)
}

// Collides reports whether the box, moved by delta, would overlap any
// obstacle or leave the board. Pure function; the agent's movement clamp
// and every pursuer strategy use this same test so both entity kinds obey
// identical physical rules.
func (b *Board) Collides(box core.FRect, delta core.Vec) bool {
	projected := box.Translate(delta)

	for _, obs := range b.Obstacles {
		if projected.Intersects(obs) {
			return true
		}
	}
	return !b.Bounds().Contains(projected)
}

// Clearance returns how far the box can travel along the axis direction
// dir before touching an obstacle or the boundary. dir must be a unit
// axis vector. Never negative.
func (b *Board) Clearance(box core.FRect, dir core.Vec) float64 {
	var free float64

	switch {
	case dir.X > 0:
		free = b.Width - box.Right()
		for _, obs := range b.Obstacles {
			if !spansOverlap(box.Y, box.Bottom(), obs.Y, obs.Bottom()) {
				continue
			}
			if obs.X >= box.Right() && obs.X-box.Right() < free {
				free = obs.X - box.Right()
			}
		}
	case dir.X < 0:
		free = box.X
		for _, obs := range b.Obstacles {
			if !spansOverlap(box.Y, box.Bottom(), obs.Y, obs.Bottom()) {
				continue
			}
			if obs.Right() <= box.X && box.X-obs.Right() < free {
				free = box.X - obs.Right()
			}
		}
	case dir.Y > 0:
		free = b.Height - box.Bottom()
		for _, obs := range b.Obstacles {
			if !spansOverlap(box.X, box.Right(), obs.X, obs.Right()) {
				continue
			}
			if obs.Y >= box.Bottom() && obs.Y-box.Bottom() < free {
				free = obs.Y - box.Bottom()
			}
		}
	case dir.Y < 0:
		free = box.Y
		for _, obs := range b.Obstacles {
			if !spansOverlap(box.X, box.Right(), obs.X, obs.Right()) {
				continue
			}
			if obs.Bottom() <= box.Y && box.Y-obs.Bottom() < free {
				free = box.Y - obs.Bottom()
			}
		}
	}

	if free < 0 {
		free = 0
	}
	return free
}

// spansOverlap reports whether the open intervals (a1,a2) and (b1,b2)
// overlap. Touching intervals do not count, matching FRect.Intersects.
func spansOverlap(a1, a2, b1, b2 float64) bool {
	return a1 < b2 && b1 < a2
}
