package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/sandbox/layout"
	"github.com/pthm-cable/sandbox/systems"
	"github.com/pthm-cable/sandbox/telemetry"
)

// Update runs every pass up to layout resolution. Draw finishes the frame.
func (g *Game) Update() {
	g.perf.RecordFrame()
	g.perf.StartFrame()

	g.perf.StartPass(telemetry.PassInput)
	g.in = g.sampleInput()
	g.tracker.Track(g.in)
	g.handleOverlayKeys()
	g.requests = g.ui.State.TakeRequests()

	g.perf.StartPass(telemetry.PassCleanup)
	g.tracker.Cleanup(g.in)

	g.perf.StartPass(telemetry.PassCamera)
	g.updateCamera()

	g.perf.StartPass(telemetry.PassCreation)
	g.updateCreation()

	g.perf.StartPass(telemetry.PassBounds)
	boundsRewrote := g.boundsLayer.Update(g.particles, g.ui.State.Bounds)

	g.perf.StartPass(telemetry.PassGroup)
	g.updateGroup(boundsRewrote)

	g.perf.StartPass(telemetry.PassPick)
	g.updatePick()

	g.perf.StartPass(telemetry.PassDragBox)
	g.updateDragBox()

	g.perf.StartPass(telemetry.PassCapture)
	if g.transform.Capture(g.particles, g.selection) {
		slog.Debug("selection captured", "frame", g.frame, "count", g.selection.Len())
	}
	if g.requests.ResetSelection {
		g.transform.ResetParams()
	}

	g.perf.StartPass(telemetry.PassMotion)
	g.motion.Update(g.transform, g.in.Dt)

	g.perf.StartPass(telemetry.PassTransform)
	sc := g.cfg.Selection
	g.transform.ClampParams(sc.OffsetRange, sc.ScaleMin, sc.ScaleMax)
	g.transform.Apply(g.particles, g.selection)

	g.perf.StartPass(telemetry.PassSelBounds)
	g.selBounds, g.hasSelBounds = systems.SelectionBounds(g.particles, g.selection, sc.BoundsPadding)
	g.trajectories = g.trajectories[:0]
	if g.motion.ShowTrajectory {
		g.trajectories = systems.Trajectories(g.transform)
	}

	g.perf.StartPass(telemetry.PassLayout)
	g.resolveLayout()
	g.camera.SetViewport(g.viewport)
}

// updateCamera applies mouse look, keyboard movement, presets and FOV.
func (g *Game) updateCamera() {
	if g.camera == nil {
		return
	}
	cam := g.camera
	f := g.in

	if g.requests.HasPreset {
		cam.ApplyPreset(g.requests.Preset)
		g.preset = g.requests.Preset
		g.record(telemetry.NewPresetEvent(g.frame, g.preset.String()))
	}

	if g.tracker.Left.Held() && g.viewport.ContainsPixel(f.Physical()) {
		cam.Rotate(f.CursorDelta.X, f.CursorDelta.Y)
	}

	k := f.Keys
	cam.Move(axis(k.Forward, k.Back), axis(k.Right, k.Left), axis(k.Up, k.Down), f.Dt, k.Fast)

	if g.requests.ResetFOV {
		cam.ResetFOV()
		g.ui.State.FOV = cam.FOV
	} else {
		cam.SetFOV(g.ui.State.FOV)
	}
}

// updateCreation handles the create and remove buttons.
func (g *Game) updateCreation() {
	s := &g.ui.State
	if g.requests.Create {
		created := g.spawner.Spawn(g.particles, s.Spawn, s.Spawn.Count, s.Bounds, s.Group)
		g.record(telemetry.NewCreateEvent(g.frame, len(created), s.Spawn.Mode.String()))
	}
	if g.requests.RemoveSelected {
		n := systems.RemoveSelected(g.particles, g.selection)
		g.record(telemetry.NewRemoveEvent(g.frame, n, "selected"))
	}
	if g.requests.RemoveAll {
		n := systems.RemoveAll(g.particles, g.selection)
		g.record(telemetry.NewRemoveEvent(g.frame, n, "all"))
	}
	g.selection.Prune(g.particles)
}

// updateGroup reprojects through the group transform. A rewrite moves every
// particle back to its base, so the selection originals are re-read and the
// selection transform reapplied later in the frame.
func (g *Game) updateGroup(force bool) {
	s := &g.ui.State
	if !g.groupLayer.Update(g.particles, s.Bounds, s.Group, force) {
		return
	}
	if g.selection.Len() > 0 {
		g.transform.Recapture(g.particles, g.selection)
	}
}

// updatePick toggles the particle under a left click.
func (g *Game) updatePick() {
	if g.camera == nil || !g.tracker.LeftClicked(g.cfg.Selection.ClickTravel) {
		return
	}
	res, ok := systems.PickAt(g.particles, g.selection, g.camera, g.viewport, g.in.Physical())
	if !ok {
		return
	}
	g.record(telemetry.NewPickEvent(g.frame, uint32(res.Entity.ID()), res.Selected))
	if res.Selected {
		g.inspector.Focus(res.Entity)
	}
}

// updateDragBox advances the right-drag gesture and commits on release.
func (g *Game) updateDragBox() {
	if g.camera == nil {
		return
	}
	g.dragBox.Update(g.tracker.RightPressed(), g.tracker.RightReleased(), g.in.Physical(), g.viewport)

	res, ok := g.dragBox.Commit(g.particles, g.selection, g.camera, g.viewport, g.in.Scale)
	if !ok {
		return
	}
	if res.Cleared > 0 {
		g.record(telemetry.NewClearEvent(g.frame, res.Cleared))
		g.inspector.Clear()
	}
	if res.Added > 0 {
		g.record(telemetry.NewBoxSelectEvent(g.frame, res.Added))
	}
}

// resolveLayout arranges the panels for the current window and resolves
// the camera viewport from them.
func (g *Game) resolveLayout() {
	scale := rl.GetWindowScaleDPI().X
	if scale <= 0 {
		scale = 1
	}
	g.window = layout.Window{
		PhysicalW: float32(rl.GetRenderWidth()),
		PhysicalH: float32(rl.GetRenderHeight()),
		Scale:     scale,
	}
	logicalW := float32(rl.GetScreenWidth())
	logicalH := float32(rl.GetScreenHeight())

	g.panels = g.ui.Arrange(logicalW, logicalH)
	g.viewport = layout.Resolve(g.panels.Measurements, g.window)
}

// record counts an event and logs it.
func (g *Game) record(e telemetry.Event) {
	g.collector.Record(e)
	slog.Info("scene event", "event", e)
}
