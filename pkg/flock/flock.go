package flock

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/geometry"
	"github.com/tochemey/goakt/v3/log"
)

var (
	// ErrSpawnOutOfBounds is returned when a spawn position is too close to the world edges.
	ErrSpawnOutOfBounds = errors.New("spawn position out of bounds")
	// ErrZeroHeading is returned when a boid is spawned without a direction of travel.
	ErrZeroHeading = errors.New("spawn heading has no direction")
)

// Flock is the simulation state: an append-only collection of boids advanced one tick at a time.
// It is not safe for concurrent use, spawn between ticks from the goroutine that calls Step.
type Flock struct {
	cfg    *Config
	boids  []Boid
	nb     *Neighborhood
	rules  []Rule
	ticks  uint64
	logger log.Logger
}

// Option configures a Flock.
type Option func(*Flock)

// WithLogger sets the logger, the default discards everything.
func WithLogger(logger log.Logger) Option {
	return func(f *Flock) {
		f.logger = logger
	}
}

// New creates an empty flock ruled by cfg.
func New(cfg *Config, opts ...Option) *Flock {
	f := &Flock{
		cfg: cfg,
		nb:  NewNeighborhood(cfg.NeighborRadius()),
		// the order matters: each rule sees the headings left by the previous one
		rules:  []Rule{Separation, Alignment, Cohesion},
		logger: log.DiscardLogger,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Config returns the rules the flock runs with.
func (f *Flock) Config() *Config {
	return f.cfg
}

// Spawn appends a new boid with heading normalized.
// A zero heading is rejected with ErrZeroHeading and the flock is left unchanged.
func (f *Flock) Spawn(pos, heading geometry.Vector2D, speed float64) error {
	if heading.IsZero() {
		f.logger.Warnf("spawn at %s ignored: zero heading", pos)
		return fmt.Errorf("%w: boid at %s", ErrZeroHeading, pos)
	}
	b := Boid{
		Pos:     pos,
		Heading: heading.Normalize(),
		Speed:   speed,
	}
	f.boids = append(f.boids, b)
	f.logger.Debugf("Born: boid #%d %s", len(f.boids)-1, b)
	return nil
}

// SpawnRandom spawns a boid at pos with a uniformly random heading and an integer
// speed drawn in [MinSpeed, MaxSpeed]. pos must keep a margin of one boid size from
// the edges of the current bounds.
func (f *Flock) SpawnRandom(pos geometry.Vector2D, bounds Bounds, rng *rand.Rand) error {
	if !bounds.Contains(pos, f.cfg.TriangleSize) {
		return fmt.Errorf("%w: %s outside %.0fx%.0f with margin %.0f",
			ErrSpawnOutOfBounds, pos, bounds.Width, bounds.Height, f.cfg.TriangleSize)
	}
	return f.Spawn(pos, RandomHeading(rng), RandomSpeed(rng, f.cfg.MinSpeed, f.cfg.MaxSpeed))
}

// Step advances the simulation by one tick inside bounds.
func (f *Flock) Step(bounds Bounds) {
	for _, rule := range f.rules {
		rule(f.boids, f.nb, f.cfg)
	}
	for i := range f.boids {
		b := &f.boids[i]
		AvoidBounds(b, bounds, f.cfg)
		b.Advance()
	}
	f.ticks++
}

// Agents iterates over the boids in insertion order.
// Values are copies: the consumer cannot mutate the flock through them.
func (f *Flock) Agents() iter.Seq[Boid] {
	return func(yield func(Boid) bool) {
		for _, b := range f.boids {
			if !yield(b) {
				return
			}
		}
	}
}

// Snapshot returns a copy of the boids.
func (f *Flock) Snapshot() []Boid {
	return slices.Clone(f.boids)
}

// Len is the number of boids.
func (f *Flock) Len() int {
	return len(f.boids)
}

// Ticks is the number of steps run so far.
func (f *Flock) Ticks() uint64 {
	return f.ticks
}

// RandomHeading returns a unit vector with a uniformly distributed angle.
func RandomHeading(rng *rand.Rand) geometry.Vector2D {
	return geometry.NewVectorPolar(1, rng.Float64()*2*math.Pi).Normalize()
}

// RandomSpeed returns an integer speed in [minSpeed, maxSpeed].
func RandomSpeed(rng *rand.Rand, minSpeed, maxSpeed int) float64 {
	if maxSpeed <= minSpeed {
		return float64(minSpeed)
	}
	return float64(minSpeed + rng.IntN(maxSpeed-minSpeed+1))
}
