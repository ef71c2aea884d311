// Package game owns the sandbox state and runs the per-frame pass pipeline.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/sandbox/camera"
	"github.com/pthm-cable/sandbox/config"
	"github.com/pthm-cable/sandbox/geom"
	"github.com/pthm-cable/sandbox/input"
	"github.com/pthm-cable/sandbox/inspector"
	"github.com/pthm-cable/sandbox/layout"
	"github.com/pthm-cable/sandbox/systems"
	"github.com/pthm-cable/sandbox/telemetry"
	"github.com/pthm-cable/sandbox/ui"
)

// Options configures a new game.
type Options struct {
	Seed           int64   // RNG seed for particle placement
	LogStats       bool    // Log window summaries via slog
	StatsWindowSec float64 // Telemetry window length (0 = config)
	OutputDir      string  // Directory for CSV output (empty = disabled)
}

// Game holds the scene and everything that works on it.
type Game struct {
	cfg *config.Config

	// ECS
	world     *ecs.World
	particles *systems.Particles

	// Selection
	selection *systems.Selection
	transform *systems.SelectionTransform
	motion    systems.Motion
	dragBox   *systems.DragBox

	// Base layers
	boundsLayer systems.BoundsLayer
	groupLayer  systems.GroupLayer

	spawner *systems.Spawner
	grid    *systems.Grid

	// View
	camera  *camera.Camera
	preset  camera.Preset
	tracker input.Tracker

	ui        *ui.UI
	inspector *inspector.Inspector

	// Telemetry
	perf      *telemetry.PerfCollector
	collector *telemetry.Collector
	output    *telemetry.OutputManager
	passes    *telemetry.PassRegistry
	logStats  bool

	// Per-frame state
	frame        int32
	elapsed      float64 // Seconds since start
	in           input.Frame
	requests     ui.Requests
	panels       layout.Panels
	window       layout.Window
	viewport     geom.Rect // Physical pixels
	selBounds    geom.AABB
	hasSelBounds bool
	trajectories []systems.Circle

	// 3D render target sized to the viewport
	target    rl.RenderTexture2D
	targetW   int32
	targetH   int32
	hasTarget bool
}

// NewGame creates the scene and spawns the initial population.
// Requires an open window.
func NewGame(opts Options) (*Game, error) {
	cfg := config.Cfg()

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	world := ecs.NewWorld()
	g := &Game{
		cfg:       cfg,
		world:     world,
		particles: systems.NewParticles(world),
		selection: systems.NewSelection(),
		transform: systems.NewSelectionTransform(),
		motion:    systems.Motion{AngularSpeed: cfg.Motion.AngularSpeed},
		dragBox:   systems.NewDragBox(cfg.Selection.MinDragDistance, cfg.Selection.VisualThreshold),
		spawner: systems.NewSpawner(
			rand.New(rand.NewSource(opts.Seed)),
			cfg.Particles.Radius,
			cfg.Particles.YMin,
		),
		grid:      systems.NewGrid(cfg.Grid.SizeX, cfg.Grid.SizeZ, cfg.Grid.MaxSize, cfg.Grid.Spacing),
		ui:        ui.New(cfg),
		inspector: inspector.New(),
		perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		collector: telemetry.NewCollector(statsWindow),
		output:    output,
		passes:    telemetry.NewPassRegistry(),
		logStats:  opts.LogStats,
	}

	g.resolveLayout()
	g.camera = camera.New(cfg.Camera, g.viewport)
	g.preset = camera.PresetStart

	g.spawnInitialPopulation()

	slog.Info("sandbox started",
		"seed", opts.Seed,
		"particles", g.particles.Count(),
		"bounds", g.ui.State.Bounds,
		"viewport", g.viewport,
		"stats_window", statsWindow,
		"output_dir", output.Dir(),
	)
	return g, nil
}

// spawnInitialPopulation fills the bounds volume with random particles.
func (g *Game) spawnInitialPopulation() {
	s := &g.ui.State
	set := s.Spawn
	set.Mode = systems.PlaceRandom
	created := g.spawner.Spawn(g.particles, set, g.cfg.Particles.Initial, s.Bounds, s.Group)
	g.record(telemetry.NewCreateEvent(g.frame, len(created), set.Mode.String()))
}

// Frame returns the number of completed frames.
func (g *Game) Frame() int32 {
	return g.frame
}

// Unload releases GPU resources and flushes output files.
func (g *Game) Unload() {
	if g.hasTarget {
		rl.UnloadRenderTexture(g.target)
		g.hasTarget = false
	}
	if err := g.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
