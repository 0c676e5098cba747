// Package lander implements the lunar lander game in two variants:
// Classic (8-direction heading that snaps to the held arrow keys) and
// Deluxe (32-step heading rotated under a cooldown, with random terrain).
package lander

import (
	"math"

	"github.com/Haniyya/moonar-lander/internal/core"
)

// Compass is a discrete heading: an index into a fixed number of evenly
// spaced directions. The index is always kept in [0, steps) by explicit
// modulo arithmetic. Index 0 points East; increasing indices rotate
// counter-clockwise on screen.
type Compass struct {
	index int
	steps int
}

// Named indices for the 8-direction compass.
const (
	dirE  = 0
	dirNE = 1
	dirN  = 2
	dirNW = 3
	dirW  = 4
	dirSW = 5
	dirS  = 6
	dirSE = 7
)

// NewCompass creates a compass with the given number of steps,
// pointing East.
func NewCompass(steps int) Compass {
	return Compass{steps: steps}
}

// Index returns the current direction index.
func (c Compass) Index() int {
	return c.index
}

// Steps returns the number of discrete directions.
func (c Compass) Steps() int {
	return c.steps
}

// Angle converts the heading to radians: 2π/steps per index.
// Combined with core.Vec2.Rotate this puts index steps/4 (North)
// straight up on screen.
func (c Compass) Angle() float64 {
	return 2 * math.Pi / float64(c.steps) * float64(c.index)
}

// StepCCW returns the compass rotated one step counter-clockwise.
func (c Compass) StepCCW() Compass {
	c.index = (c.index + 1) % c.steps
	return c
}

// StepCW returns the compass rotated one step clockwise.
func (c Compass) StepCW() Compass {
	c.index = (c.index - 1 + c.steps) % c.steps
	return c
}

// compassFromDirections maps the held arrow-key subset to an 8-direction
// heading. The lookup is total: the empty subset yields East.
func compassFromDirections(in core.InputFrame) Compass {
	c := NewCompass(8)
	switch {
	case in.Has(core.ActionUp):
		switch {
		case in.Has(core.ActionLeft):
			c.index = dirNW
		case in.Has(core.ActionRight):
			c.index = dirNE
		default:
			c.index = dirN
		}
	case in.Has(core.ActionDown):
		switch {
		case in.Has(core.ActionLeft):
			c.index = dirSW
		case in.Has(core.ActionRight):
			c.index = dirSE
		default:
			c.index = dirS
		}
	case in.Has(core.ActionLeft):
		c.index = dirW
	default:
		c.index = dirE
	}
	return c
}
