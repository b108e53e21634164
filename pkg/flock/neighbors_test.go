package flock

import (
	"math/rand/v2"
	"testing"

	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/geometry"
)

func boidAt(x, y float64) Boid {
	return Boid{Pos: geometry.Vector2D{X: x, Y: y}, Heading: geometry.Vector2D{X: 1}, Speed: 3}
}

func TestNeighborhood_Of(t *testing.T) {
	// R = 120, neighbors are strictly closer than 240
	nb := NewNeighborhood(120)

	tests := []struct {
		name  string
		other Boid
		want  int
	}{
		{"Same position", boidAt(0, 0), 1},
		{"Close", boidAt(50, 50), 1},
		{"Just inside", boidAt(239.9, 0), 1},
		{"Exactly 2R", boidAt(240, 0), 0},
		{"Far away", boidAt(0, 300), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			boids := []Boid{boidAt(0, 0), tt.other}
			if got := len(nb.Of(boids, 0)); got != tt.want {
				t.Errorf("len(Of) = %d; want %d", got, tt.want)
			}
		})
	}
}

func TestNeighborhood_OfExcludesSelf(t *testing.T) {
	nb := NewNeighborhood(120)

	if got := nb.Of([]Boid{boidAt(10, 10)}, 0); len(got) != 0 {
		t.Errorf("lone boid has %d neighbors; want 0", len(got))
	}

	boids := []Boid{boidAt(0, 0), boidAt(10, 0), boidAt(20, 0), boidAt(1000, 0)}
	got := nb.Of(boids, 1)
	if len(got) != 2 {
		t.Fatalf("len(Of) = %d; want 2", len(got))
	}
	for _, b := range got {
		if b.Pos.Eq(boids[1].Pos) {
			t.Errorf("subject %v found among its own neighbors", boids[1].Pos)
		}
	}
}

func TestNeighborhood_Symmetric(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1))
	nb := NewNeighborhood(120)

	boids := make([]Boid, 60)
	for i := range boids {
		boids[i] = boidAt(rng.Float64()*1000, rng.Float64()*800)
	}

	// sees[i][j] is true when j is in the neighborhood of i
	sees := make([][]bool, len(boids))
	for i := range boids {
		sees[i] = make([]bool, len(boids))
		for _, n := range nb.Of(boids, i) {
			for j := range boids {
				if j != i && boids[j].Pos == n.Pos {
					sees[i][j] = true
				}
			}
		}
	}

	for i := range boids {
		for j := range boids {
			if sees[i][j] != sees[j][i] {
				t.Errorf("asymmetric candidacy between %d and %d: %v vs %v", i, j, sees[i][j], sees[j][i])
			}
			if i != j && sees[i][j] != nb.AreNeighbors(boids[i], boids[j]) {
				t.Errorf("Of and AreNeighbors disagree for %d,%d", i, j)
			}
		}
	}
}

func TestNeighborhood_ReusesBuffer(t *testing.T) {
	nb := NewNeighborhood(120)
	boids := make([]Boid, 30)
	for i := range boids {
		boids[i] = boidAt(float64(i)*5, 0)
	}

	allocs := testing.AllocsPerRun(100, func() {
		for i := range boids {
			nb.Of(boids, i)
		}
	})
	if allocs != 0 {
		t.Errorf("Of allocated %.1f times per run; want 0", allocs)
	}
}

func BenchmarkNeighborhood_Of(b *testing.B) {
	rng := rand.New(rand.NewPCG(7, 7))
	nb := NewNeighborhood(120)
	boids := make([]Boid, 200)
	for i := range boids {
		boids[i] = boidAt(rng.Float64()*1600, rng.Float64()*900)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		nb.Of(boids, i%len(boids))
	}
}
