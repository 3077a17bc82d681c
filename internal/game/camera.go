package game

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const turnDuration = 0.25 // seconds per quarter turn

// Camera owns the view heading the mover steers against. Turns are tweened
// so "forward" swings smoothly instead of snapping by 90 degrees.
type Camera struct {
	heading float64
	target  float64
	tween   *gween.Tween
}

func NewCamera() *Camera { return &Camera{} }

// Heading implements HeadingSource; yaw in radians.
func (c *Camera) Heading() float64 { return c.heading }

// TurnBy queues a relative turn. Turning again mid-tween retargets from the
// accumulated goal, so repeated taps stack up full quarter turns.
func (c *Camera) TurnBy(delta float64) {
	c.target += delta
	c.tween = gween.New(float32(c.heading), float32(c.target), turnDuration, ease.OutQuad)
}

// Update advances the active tween by dt seconds.
func (c *Camera) Update(dt float64) {
	if c.tween == nil || dt <= 0 {
		return
	}
	v, done := c.tween.Update(float32(dt))
	c.heading = float64(v)
	if done {
		c.heading = c.target
		c.tween = nil
	}
}

// Reset snaps the view back to the spawn orientation.
func (c *Camera) Reset() {
	c.heading = 0
	c.target = 0
	c.tween = nil
}
