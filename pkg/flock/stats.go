package flock

import (
	"fmt"

	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/geometry"
)

// Stats summarizes the flock state at the current tick.
type Stats struct {
	Count    int
	Tick     uint64
	Centroid geometry.Vector2D
	// Coherence is the length of the mean heading: 1 when all boids fly the same way,
	// close to 0 when headings cancel out.
	Coherence float64
	// HeadingVariance is the circular variance of the headings, 1 - Coherence.
	HeadingVariance float64
}

func (s Stats) String() string {
	return fmt.Sprintf("tick %d: %d boids, centroid %s, coherence %.3f",
		s.Tick, s.Count, s.Centroid, s.Coherence)
}

// Stats computes the flock summary, an empty flock reports zero values.
func (f *Flock) Stats() Stats {
	s := Stats{Count: len(f.boids), Tick: f.ticks}
	if s.Count == 0 {
		return s
	}
	s.Coherence = Coherence(f.boids)
	s.HeadingVariance = 1 - s.Coherence

	var sum geometry.Vector2D
	for _, b := range f.boids {
		sum = sum.Add(b.Pos)
	}
	s.Centroid = sum.Mul(1 / float64(s.Count))
	return s
}

// Coherence is the length of the mean heading of boids.
func Coherence(boids []Boid) float64 {
	if len(boids) == 0 {
		return 0
	}
	var sum geometry.Vector2D
	for _, b := range boids {
		sum = sum.Add(b.Heading)
	}
	return sum.Mul(1 / float64(len(boids))).Len()
}
