package flock

import "github.com/lao-tseu-is-alive/go-flocking-boids/pkg/geometry"

// Rule is one pass of a neighbor based steering behavior over the whole flock.
// It mutates headings in place, boid after boid.
type Rule func(boids []Boid, nb *Neighborhood, cfg *Config)

// Separation steers every boid away from the neighbors closer than the separation threshold.
// Closer neighbors repel harder and faster boids turn away more aggressively.
func Separation(boids []Boid, nb *Neighborhood, cfg *Config) {
	threshold := cfg.SeparationThreshold()
	for i := range boids {
		neighbors := nb.Of(boids, i)
		if len(neighbors) < cfg.SeparationMinNeighbors {
			continue
		}
		d, ok := separationDirection(boids[i], neighbors, threshold)
		if !ok {
			continue
		}
		b := &boids[i]
		b.steer(d, cfg.SeparationFactor*b.Speed/cfg.ReferenceSpeed)
	}
}

// Alignment steers every boid toward the mean heading of its neighbors.
func Alignment(boids []Boid, nb *Neighborhood, cfg *Config) {
	for i := range boids {
		neighbors := nb.Of(boids, i)
		if len(neighbors) < cfg.AlignmentMinNeighbors {
			continue
		}
		d, ok := alignmentDirection(neighbors)
		if !ok {
			continue
		}
		boids[i].steer(d, cfg.AlignmentFactor)
	}
}

// Cohesion steers every boid toward the center of mass of its neighbors.
func Cohesion(boids []Boid, nb *Neighborhood, cfg *Config) {
	for i := range boids {
		neighbors := nb.Of(boids, i)
		if len(neighbors) < cfg.CohesionMinNeighbors {
			continue
		}
		d, ok := cohesionDirection(boids[i], neighbors)
		if !ok {
			continue
		}
		b := &boids[i]
		b.steer(d, cfg.CohesionFactor*b.Speed/cfg.ReferenceSpeed)
	}
}

// AvoidBounds nudges the heading of b away from the world edges it is about to reach.
// Unlike the neighbor rules the push is added to the heading, there is no lerp.
func AvoidBounds(b *Boid, bounds Bounds, cfg *Config) {
	push := BoundaryPush(*b, bounds, cfg)
	if push.IsZero() {
		return
	}
	nudged := b.Heading.Add(push)
	if nudged.IsZero() {
		return
	}
	b.Heading = nudged.Normalize()
}

// BoundaryPush computes the edge avoidance vector of b.
// The lookahead grows with speed; on each axis only the near edge or the far edge pushes, never both.
func BoundaryPush(b Boid, bounds Bounds, cfg *Config) geometry.Vector2D {
	lookahead := cfg.WallBaseDistance + b.Speed*cfg.WallLookaheadFactor
	strength := cfg.WallSteerBase * (b.Speed / cfg.ReferenceSpeed)

	var push geometry.Vector2D
	if b.Pos.X < lookahead {
		push.X += strength
	} else if b.Pos.X > bounds.Width-lookahead {
		push.X -= strength
	}

	if b.Pos.Y < lookahead {
		push.Y += strength
	} else if b.Pos.Y > bounds.Height-lookahead {
		push.Y -= strength
	}
	return push
}

// separationDirection averages the repulsion from neighbors strictly between 0 and threshold away,
// each weighted by (threshold - distance) / threshold.
// ok is false when no neighbor is that close or the repulsions cancel out.
func separationDirection(me Boid, neighbors []Boid, threshold float64) (geometry.Vector2D, bool) {
	var sum geometry.Vector2D
	count := 0
	for _, other := range neighbors {
		dist := me.Pos.DistanceTo(other.Pos)
		if dist >= threshold || dist <= 0 {
			continue
		}
		away := me.Pos.Sub(other.Pos).Normalize()
		strength := (threshold - dist) / threshold
		sum = sum.Add(away.Mul(strength))
		count++
	}
	if count == 0 {
		return geometry.Zero, false
	}
	avg := sum.Mul(1 / float64(count))
	if avg.IsZero() {
		return geometry.Zero, false
	}
	return avg.Normalize(), true
}

// alignmentDirection is the normalized sum of the neighbor headings.
func alignmentDirection(neighbors []Boid) (geometry.Vector2D, bool) {
	var sum geometry.Vector2D
	for _, other := range neighbors {
		sum = sum.Add(other.Heading)
	}
	if sum.IsZero() {
		return geometry.Zero, false
	}
	return sum.Normalize(), true
}

// cohesionDirection points from me toward the centroid of the neighbors.
func cohesionDirection(me Boid, neighbors []Boid) (geometry.Vector2D, bool) {
	if len(neighbors) == 0 {
		return geometry.Zero, false
	}
	var centroid geometry.Vector2D
	for _, other := range neighbors {
		centroid = centroid.Add(other.Pos)
	}
	centroid = centroid.Mul(1 / float64(len(neighbors)))

	desired := centroid.Sub(me.Pos)
	if desired.IsZero() {
		return geometry.Zero, false
	}
	return desired.Normalize(), true
}
