// Command boids runs the interactive flocking simulation.
//
//	boids [config_file]
//
// The optional argument is a JSON or TOML config file (see configs/).
// Right click spawns a boid under the cursor, space pauses and resumes,
// F toggles the neighbor radius circles and H hides the settings panel.
// The panel sliders tune the steering factors live. The window can be
// resized, the boids avoid its current edges.
package main

import (
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/ui"
	"github.com/tochemey/goakt/v3/log"
)

const (
	usage = "usage: boids [config_file]"

	// indices are uint16, a batch is flushed before they would wrap around
	maxBatchVertices = 3 * (math.MaxUint16 / 3)
	panelWidth       = 240
)

var (
	background  = color.RGBA{R: 18, G: 18, B: 18, A: 255}
	radiusColor = color.RGBA{R: 0, G: 228, B: 48, A: 255}
	whiteImage  = ebiten.NewImage(3, 3)
)

type Game struct {
	flock  *flock.Flock
	cfg    *flock.Config
	bounds flock.Bounds
	rng    *rand.Rand
	logger log.Logger

	panel     *ui.UIPanel
	showPanel bool
	pause     *ui.Checkbox
	radius    *ui.Checkbox
	sliders   []*ui.Slider
	defaults  flock.Config // factors restored by the reset button

	// reused every frame by Draw
	vertices []ebiten.Vertex
	indices  []uint16

	lastLogTime time.Time
}

func newGame(cfg *flock.Config, logger log.Logger) *Game {
	g := &Game{
		flock:       flock.New(cfg, flock.WithLogger(logger)),
		cfg:         cfg,
		bounds:      cfg.Bounds(),
		rng:         rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		logger:      logger,
		showPanel:   true,
		defaults:    *cfg,
		lastLogTime: time.Now(),
	}

	g.panel = ui.NewUIPanel(10, 10, panelWidth, cfg.WorldHeight-20)
	g.panel.AddSection("Steering")
	for _, tn := range cfg.Tunables() {
		s := g.panel.AddSlider(tn.Name, tn.Min, tn.Max, *tn.Value)
		s.OnChange = func(v float64) {
			*tn.Value = v
			g.logger.Debugf("%s factor set to %.3f", tn.Name, v)
		}
		g.sliders = append(g.sliders, s)
	}
	g.panel.AddButton("Reset factors", g.resetFactors)

	g.panel.AddSection("Simulation")
	g.pause = g.panel.AddCheckbox("Paused (Space)", false)
	g.radius = g.panel.AddCheckbox("Neighbor radius (F)", false)
	g.panel.AddButton("Step once", func() {
		if g.pause.Value {
			g.flock.Step(g.bounds)
		}
	})
	return g
}

// resetFactors restores the steering factors the program started with.
func (g *Game) resetFactors() {
	for i, tn := range g.defaults.Tunables() {
		g.sliders[i].Set(*tn.Value)
	}
	g.logger.Infof("Steering factors reset")
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.pause.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.radius.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showPanel = !g.showPanel
	}
	if g.showPanel {
		g.panel.Update()
	}

	if g.pause.Value {
		return nil
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		pos := geometry.Vector2D{X: float64(x), Y: float64(y)}
		if g.showPanel && g.panel.Contains(pos.X, pos.Y) {
			g.logger.Debugf("spawn ignored: %s is on the settings panel", pos)
		} else if err := g.flock.SpawnRandom(pos, g.bounds, g.rng); err != nil {
			g.logger.Debugf("spawn ignored: %v", err)
		}
	}
	g.flock.Step(g.bounds)
	g.logStats()
	return nil
}

// logStats writes one line per second while the simulation runs.
func (g *Game) logStats() {
	if time.Since(g.lastLogTime) < time.Second {
		return
	}
	g.logger.Infof("📊 TPS: %.1f | %s", ebiten.ActualTPS(), g.flock.Stats())
	g.lastLogTime = time.Now()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	radius := float32(g.cfg.NeighborRadius())

	for b := range g.flock.Agents() {
		if g.batchFull() {
			g.flushTriangles(screen)
		}
		g.appendTriangle(b)
		if g.radius.Value {
			vector.StrokeCircle(screen, float32(b.Pos.X), float32(b.Pos.Y), radius, 1, radiusColor, true)
		}
	}
	g.flushTriangles(screen)

	status := ""
	if g.pause.Value {
		status = " [PAUSED]"
	}
	s := g.flock.Stats()
	hud := fmt.Sprintf(
		"Boids: %d  Tick: %d  Coherence: %.2f%s\nTPS: %.1f\nRight click: spawn  Space: pause  F: radius  H: panel",
		s.Count, s.Tick, s.Coherence, status, ebiten.ActualTPS())
	if g.showPanel {
		g.panel.Draw(screen)
		ebitenutil.DebugPrintAt(screen, hud, panelWidth+20, 0)
	} else {
		ebitenutil.DebugPrint(screen, hud)
	}
}

// batchFull reports whether one more triangle would overflow the uint16 indices.
func (g *Game) batchFull() bool {
	return len(g.vertices)+3 > maxBatchVertices
}

// flushTriangles draws the pending batch and empties it.
func (g *Game) flushTriangles(screen *ebiten.Image) {
	if len(g.indices) > 0 {
		screen.DrawTriangles(g.vertices, g.indices, whiteImage, &ebiten.DrawTrianglesOptions{})
	}
	g.vertices = g.vertices[:0]
	g.indices = g.indices[:0]
}

// appendTriangle adds a boid as an isosceles triangle pointing along its heading.
func (g *Game) appendTriangle(b flock.Boid) {
	size := g.cfg.TriangleSize
	angle := b.Heading.Angle() + math.Pi/2
	corners := [3]geometry.Vector2D{
		{X: -size / 2, Y: 1.5 * size / 3},
		{X: size / 2, Y: 1.5 * size / 3},
		{X: 0, Y: 1.5 * size * -2 / 3},
	}

	base := uint16(len(g.vertices))
	for _, c := range corners {
		p := c.Rotate(angle).Add(b.Pos)
		g.vertices = append(g.vertices, ebiten.Vertex{
			DstX: float32(p.X),
			DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: 0.9, ColorG: 0.16, ColorB: 0.22, ColorA: 1,
		})
	}
	g.indices = append(g.indices, base, base+1, base+2)
}

// Layout follows the window size: the outside size is the world the boids live in.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.bounds = flock.Bounds{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	g.panel.MaxHeight = float64(outsideHeight) - 20
	return outsideWidth, outsideHeight
}

func init() {
	whiteImage.Fill(color.White)
}

func main() {
	logger := log.New(log.InfoLevel, os.Stdout)

	cfg := flock.DefaultConfig()
	switch len(os.Args) {
	case 1:
	case 2:
		loaded, err := flock.LoadConfig(os.Args[1])
		if err != nil {
			logger.Fatalf("failed to load config: %v", err)
		}
		cfg = loaded
	default:
		logger.Fatalf("%d arguments provided\n%s", len(os.Args)-1, usage)
	}

	level, err := flock.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatalf("failed to set log level: %v", err)
	}
	logger = log.New(level, os.Stdout)

	g := newGame(cfg, logger)

	ebiten.SetWindowSize(int(cfg.WorldWidth), int(cfg.WorldHeight))
	ebiten.SetWindowTitle("Boids")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TargetTPS)

	logger.Infof("Starting boids in %.0fx%.0f, neighbor radius %.0f", cfg.WorldWidth, cfg.WorldHeight, cfg.NeighborRadius())
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal(err)
	}
}
