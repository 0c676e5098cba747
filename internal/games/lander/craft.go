package lander

import (
	"time"

	"github.com/Haniyya/moonar-lander/internal/config"
	"github.com/Haniyya/moonar-lander/internal/core"
)

// CraftChar is the rune used for the craft outline.
const CraftChar = '█'

// Craft holds the kinematic state of the lander: position, velocity and
// discrete heading. It advances under constant gravity and an optional
// thruster aligned with the nose.
type Craft struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Heading Compass

	gravity  core.Vec2
	thruster core.Vec2

	// stepEvery gates heading changes in the cooldown model; zero means
	// the heading snaps instantly to the held arrow combination.
	stepEvery time.Duration
	cooldown  time.Duration

	noseLength float64
	halfWidth  float64
}

// NewCraft creates a craft at the configured spawn point, at rest,
// heading East.
func NewCraft(cfg config.LanderConfig) *Craft {
	var stepEvery time.Duration
	if cfg.Rotation.FullTurnMs > 0 {
		stepEvery = time.Duration(cfg.Rotation.FullTurnMs) * time.Millisecond / time.Duration(cfg.Rotation.Steps)
	}

	return &Craft{
		Pos:        core.NewVec2(cfg.Craft.StartX, cfg.Craft.StartY),
		Heading:    NewCompass(cfg.Rotation.Steps),
		gravity:    core.NewVec2(0, cfg.Physics.Gravity),
		thruster:   core.NewVec2(cfg.Physics.Thruster, 0),
		stepEvery:  stepEvery,
		noseLength: cfg.Craft.NoseLength,
		halfWidth:  cfg.Craft.HalfWidth,
	}
}

// Advance integrates one frame: updates the heading from the held keys,
// applies gravity and thrust scaled by the elapsed time, then moves the
// craft by its new velocity. A zero elapsed time leaves the state
// untouched regardless of input.
func (c *Craft) Advance(elapsed time.Duration, in core.InputFrame) {
	if elapsed <= 0 {
		return
	}

	if c.stepEvery == 0 {
		c.Heading = compassFromDirections(in)
	} else {
		c.cooldown -= elapsed
		if c.cooldown < 0 {
			c.cooldown = 0
		}
		if c.cooldown == 0 {
			switch {
			case in.Has(core.ActionLeft):
				c.Heading = c.Heading.StepCCW()
				c.cooldown = c.stepEvery
			case in.Has(core.ActionRight):
				c.Heading = c.Heading.StepCW()
				c.cooldown = c.stepEvery
			}
		}
	}

	dt := elapsed.Seconds()
	dv := c.gravity.Scale(dt)
	if in.Has(core.ActionThrust) {
		dv = dv.Add(c.thruster.Rotate(c.Heading.Angle()).Scale(dt))
	}
	c.Vel = c.Vel.Add(dv)
	c.Pos = c.Pos.Add(c.Vel.Scale(dt))
}

// Polygon returns the craft outline in local coordinates: a triangle with
// the tip forward along local +x.
func (c *Craft) Polygon() []core.Vec2 {
	return []core.Vec2{
		{X: c.noseLength, Y: 0},
		{X: -c.noseLength, Y: c.halfWidth},
		{X: -c.noseLength, Y: -c.halfWidth},
	}
}

// Render draws the craft as an outlined triangle at its position,
// rotated by the heading angle.
func (c *Craft) Render(dst *core.Screen) {
	dst.DrawPolygon(c.Polygon(), c.Pos, c.Heading.Angle(), CraftChar, core.ColorBrightWhite)
}
