// Command flocksim runs the flocking simulation without a window and logs how the flock evolves.
//
//	flocksim [-config boids.toml] [-n 100] [-steps 3600] [-every 600] [-seed 1]
package main

import (
	"flag"
	"math/rand/v2"
	"os"
	"time"

	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/geometry"
	"github.com/tochemey/goakt/v3/log"
)

func main() {
	var (
		configFile = flag.String("config", "", "JSON or TOML config file, defaults are used when empty")
		numBoids   = flag.Int("n", 100, "number of boids to spawn")
		steps      = flag.Int("steps", 3600, "number of ticks to run")
		every      = flag.Int("every", 600, "log the flock stats every this many ticks")
		seed       = flag.Uint64("seed", 1, "random seed for spawn positions, headings and speeds")
	)
	flag.Parse()

	logger := log.New(log.InfoLevel, os.Stdout)

	cfg := flock.DefaultConfig()
	if *configFile != "" {
		loaded, err := flock.LoadConfig(*configFile)
		if err != nil {
			logger.Fatalf("failed to load config: %v", err)
		}
		cfg = loaded
	}
	level, err := flock.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatalf("failed to set log level: %v", err)
	}
	logger = log.New(level, os.Stdout)

	rng := rand.New(rand.NewPCG(*seed, *seed))
	bounds := cfg.Bounds()
	f := flock.New(cfg, flock.WithLogger(logger))

	// keep one unit away from the spawn margin, it is exclusive
	margin := cfg.TriangleSize + 1
	for i := 0; i < *numBoids; i++ {
		pos := geometry.Vector2D{
			X: margin + rng.Float64()*(bounds.Width-2*margin),
			Y: margin + rng.Float64()*(bounds.Height-2*margin),
		}
		if err := f.SpawnRandom(pos, bounds, rng); err != nil {
			logger.Warnf("skipping boid %d: %v", i, err)
		}
	}
	logger.Infof("Spawned %d boids in %.0fx%.0f (seed %d)", f.Len(), bounds.Width, bounds.Height, *seed)

	start := time.Now()
	for tick := 1; tick <= *steps; tick++ {
		f.Step(bounds)
		if *every > 0 && tick%*every == 0 {
			logger.Infof("%s", f.Stats())
		}
	}

	elapsed := time.Since(start)
	perTick := time.Duration(0)
	if *steps > 0 {
		perTick = elapsed / time.Duration(*steps)
	}
	logger.Infof("Done: %s | %d ticks in %s (%s/tick)", f.Stats(), *steps, elapsed, perTick)
}
