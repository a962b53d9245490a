// Copyright (c) 2025, Floralens. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package container

import (
	"time"

	"github.com/floralens/safearea/base/nums"
)

const (
	// pulseScale is the low point of the orientation scale pulse.
	pulseScale = 0.98

	// pulseLegDuration is the duration of each leg of the pulse
	// (1.0 to 0.98, then back).
	pulseLegDuration = 100 * time.Millisecond
)

// Animation represents the data for one container animation. The
// function is run on every [Container.Step] and receives the Animation
// so that it can reference [Animation.Delta] and set [Animation.Done].
type Animation struct {

	// Func is the animation function, run every step.
	Func func(a *Animation)

	// Delta is the amount of time that has passed since the last step.
	Delta time.Duration

	// Done can be set to true to stop the animation; it is removed at
	// the next step.
	Done bool
}

// Animate adds a new [Animation] to the container. Pending animations
// are cleared on [Container.Unmount].
func (c *Container) Animate(f func(a *Animation)) {
	c.anims = append(c.anims, &Animation{Func: f})
}

// Step advances all pending animations to the clock's current time.
// It is called by the surrounding render loop on every paint tick.
func (c *Container) Step() {
	now := c.clk().Now()
	if c.lastStep.IsZero() {
		c.lastStep = now
	}
	delta := now.Sub(c.lastStep)
	c.lastStep = now
	if len(c.anims) == 0 {
		return
	}
	remaining := c.anims[:0]
	for _, a := range c.anims {
		a.Delta = delta
		a.Func(a)
		if !a.Done {
			remaining = append(remaining, a)
		}
	}
	c.anims = remaining
}

// startPulse begins the cosmetic orientation scale pulse,
// 1.0 to 0.98 and back, one leg per [pulseLegDuration]. It never
// gates layout; a pulse restarted mid-flight simply begins again.
func (c *Container) startPulse() {
	var elapsed time.Duration
	c.Animate(func(a *Animation) {
		elapsed += a.Delta
		switch {
		case elapsed < pulseLegDuration:
			t := float32(elapsed) / float32(pulseLegDuration)
			c.scale = 1 - (1-pulseScale)*t
		case elapsed < 2*pulseLegDuration:
			t := float32(elapsed-pulseLegDuration) / float32(pulseLegDuration)
			c.scale = pulseScale + (1-pulseScale)*t
		default:
			c.scale = 1
			a.Done = true
		}
		c.scale = nums.Clamp(c.scale, pulseScale, 1)
	})
}
