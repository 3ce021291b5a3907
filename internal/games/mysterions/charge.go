package mysterions

import (
	"github.com/cobrien706/mysterions/internal/core"
)

// chargeVelocity returns the per-tick movement of a charging pursuer at
// pos toward target. At long range the pursuer locks onto one axis at a
// time, horizontal preferred; once both axis distances close inside the
// threshold it cuts straight at the target diagonally. Speed is applied
// per component, so a diagonal charge moves speed units on each axis.
// A pursuer sitting exactly on the target gets a zero vector.
func chargeVelocity(pos, target core.Vec, threshold, speed float64) core.Vec {
	dx := target.X - pos.X
	dy := target.Y - pos.Y

	switch {
	case core.AbsF(dx) < threshold && core.AbsF(dy) < threshold:
		return core.Vec{X: core.Sign(dx) * speed, Y: core.Sign(dy) * speed}
	case core.AbsF(dx) >= threshold:
		return core.Vec{X: core.Sign(dx) * speed}
	default:
		return core.Vec{Y: core.Sign(dy) * speed}
	}
}
