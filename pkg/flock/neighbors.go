package flock

// defaultNeighborCapacity is sized for the tens to low hundreds of boids the brute-force search targets.
const defaultNeighborCapacity = 64

// Neighborhood answers radius queries over a flock by brute force.
// It keeps one scratch buffer that is cleared and refilled by every query,
// so a tick does not allocate once the buffer has grown to the largest neighborhood.
// A spatial index could replace the linear scan behind the same method.
type Neighborhood struct {
	radius float64
	buf    []Boid
}

// NewNeighborhood returns a query helper for boids of interaction radius r.
func NewNeighborhood(r float64) *Neighborhood {
	return &Neighborhood{
		radius: r,
		buf:    make([]Boid, 0, defaultNeighborCapacity),
	}
}

// Of returns a copy of every boid other than boids[index] whose circle of radius R
// overlaps the subject's one, that is whose distance is strictly below 2R.
// The returned slice is only valid until the next call.
func (n *Neighborhood) Of(boids []Boid, index int) []Boid {
	n.buf = n.buf[:0]
	me := boids[index]
	for i := range boids {
		if i == index {
			continue
		}
		if n.AreNeighbors(me, boids[i]) {
			n.buf = append(n.buf, boids[i])
		}
	}
	return n.buf
}

// AreNeighbors reports whether a and b are within interaction range of each other.
func (n *Neighborhood) AreNeighbors(a, b Boid) bool {
	// squared range, no Sqrt() in the hot loop
	reach := 2 * n.radius
	return a.Pos.DistanceSquaredTo(b.Pos) < reach*reach
}
