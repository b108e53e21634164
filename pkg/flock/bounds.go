package flock

import "github.com/lao-tseu-is-alive/go-flocking-boids/pkg/geometry"

// Bounds is the rectangular world [0, Width] x [0, Height].
// The presentation layer owns it and passes it on every tick, so it follows window resizes.
type Bounds struct {
	Width, Height float64
}

// Contains reports whether p lies strictly inside the rectangle shrunk by margin on every side.
func (w Bounds) Contains(p geometry.Vector2D, margin float64) bool {
	return p.X > margin && p.X < w.Width-margin &&
		p.Y > margin && p.Y < w.Height-margin
}

