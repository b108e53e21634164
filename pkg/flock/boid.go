// Package flock implements a boids flocking simulation.
//
// Boids is an artificial life program, developed by Craig Reynolds in 1986,
// which simulates the flocking behaviour of birds, and related group motion.
// The name "boid" corresponds to a shortened version of "bird-oid object".
// https://en.wikipedia.org/wiki/Boids
//
// Every tick the flock applies, in this order, Separation, Alignment and
// Cohesion to all boids, then for each boid boundary avoidance followed by
// the position update. Each rule reads the headings left by the previous one.
package flock

import (
	"fmt"

	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/geometry"
)

// Boid represents a single entity in the flock.
// Fields are exported so the renderer can read them.
type Boid struct {
	Pos     geometry.Vector2D // world coordinates
	Heading geometry.Vector2D // unit vector, direction of travel
	Speed   float64           // constant for the boid's lifetime
}

// Velocity is the displacement applied at the end of a tick.
func (b *Boid) Velocity() geometry.Vector2D {
	return b.Heading.Mul(b.Speed)
}

// Advance applies the velocity to the boid position.
func (b *Boid) Advance() {
	b.Pos = b.Pos.Add(b.Velocity())
}

// steer turns the heading toward desired, closing factor of the gap.
// The heading is left untouched if the blend has no direction.
func (b *Boid) steer(desired geometry.Vector2D, factor float64) {
	blended := b.Heading.Lerp(desired, factor)
	if blended.IsZero() {
		return
	}
	b.Heading = blended.Normalize()
}

func (b Boid) String() string {
	return fmt.Sprintf("boid at %s heading %s speed %.0f", b.Pos, b.Heading, b.Speed)
}
