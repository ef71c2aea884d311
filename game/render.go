package game

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/sandbox/components"
	"github.com/pthm-cable/sandbox/geom"
	"github.com/pthm-cable/sandbox/systems"
	"github.com/pthm-cable/sandbox/telemetry"
	"github.com/pthm-cable/sandbox/ui"
)

// Sphere tessellation for particles
const (
	particleRings  = 6
	particleSlices = 8
)

// trajectorySegments is the number of line segments per trajectory circle.
const trajectorySegments = 48

// Draw submits the frame: the 3D scene into the viewport texture, the
// texture into the window, then the UI on top.
func (g *Game) Draw() {
	g.perf.StartPass(telemetry.PassRender)

	g.drawScene()

	rl.BeginDrawing()
	rl.ClearBackground(ui.ColorFrom(g.cfg.Colors.Background))
	g.blitScene()
	g.ui.Draw(g.panels, g.view())
	rl.EndDrawing()

	g.perf.EndFrame()
	g.collector.RecordFrameTime(g.in.Dt)
	g.elapsed += float64(g.in.Dt)
	g.flushTelemetry()
	g.frame++
}

// ensureTarget keeps the render texture at the viewport size. Returns false
// when the viewport is empty.
func (g *Game) ensureTarget() bool {
	w, h := int32(g.viewport.W), int32(g.viewport.H)
	if w <= 0 || h <= 0 {
		return false
	}
	if g.hasTarget && w == g.targetW && h == g.targetH {
		return true
	}
	if g.hasTarget {
		rl.UnloadRenderTexture(g.target)
	}
	g.target = rl.LoadRenderTexture(w, h)
	g.targetW, g.targetH = w, h
	g.hasTarget = true
	return true
}

// drawScene renders the 3D scene into the render texture.
func (g *Game) drawScene() {
	if g.camera == nil || !g.ensureTarget() {
		return
	}
	overlays := g.ui.State.Overlays
	colors := g.cfg.Colors

	rl.BeginTextureMode(g.target)
	rl.ClearBackground(ui.ColorFrom(colors.Background))
	rl.BeginMode3D(g.camera3D())

	if overlays.IsEnabled(ui.OverlayGrid) {
		g.grid.SetSize(g.ui.State.GridX, g.ui.State.GridZ)
		gridColor := ui.ColorFrom(colors.Grid)
		for _, l := range g.grid.Lines() {
			rl.DrawLine3D(vec3(l.From), vec3(l.To), gridColor)
		}
	}
	if overlays.IsEnabled(ui.OverlayAxes) {
		axisColors := [3]rl.Color{rl.Red, rl.Green, rl.Blue}
		for i, l := range systems.Axes(g.cfg.Grid.AxisLength) {
			rl.DrawLine3D(vec3(l.From), vec3(l.To), axisColors[i])
		}
	}
	if overlays.IsEnabled(ui.OverlayBounds) {
		box := g.ui.State.Bounds.Box()
		rl.DrawCubeWiresV(vec3(box.Center()), vec3(box.Size()), ui.ColorFrom(colors.Bounds))
	}

	g.drawParticles()

	if overlays.IsEnabled(ui.OverlaySelBounds) && g.hasSelBounds {
		rl.DrawCubeWiresV(vec3(g.selBounds.Center()), vec3(g.selBounds.Size()), ui.ColorFrom(colors.Picked))
	}
	g.drawTrajectories()

	rl.EndMode3D()
	rl.EndTextureMode()
}

// drawParticles draws every particle tinted by its selection state.
func (g *Game) drawParticles() {
	colors := g.cfg.Colors
	tints := [...]rl.Color{
		components.TintNone:   ui.ColorFrom(colors.Unselected),
		components.TintPicked: ui.ColorFrom(colors.Picked),
		components.TintBoxed:  ui.ColorFrom(colors.BoxSelected),
	}
	g.particles.Each(func(pos geom.Vec3, radius float32, tint components.Tint) {
		c := tints[components.TintNone]
		if int(tint) < len(tints) {
			c = tints[tint]
		}
		rl.DrawSphereEx(vec3(pos), radius, particleRings, particleSlices, c)
	})
}

// drawTrajectories draws the orbit circle of every selected particle.
func (g *Game) drawTrajectories() {
	if len(g.trajectories) == 0 {
		return
	}
	c := ui.ColorFrom(g.cfg.Colors.Trajectory)
	const step = 2 * math32.Pi / trajectorySegments
	for _, circle := range g.trajectories {
		prev := circle.Point(0)
		for i := 1; i <= trajectorySegments; i++ {
			next := circle.Point(float32(i) * step)
			rl.DrawLine3D(vec3(prev), vec3(next), c)
			prev = next
		}
	}
}

// blitScene draws the render texture into the viewport. Render textures are
// stored bottom-up, so the source height is negated.
func (g *Game) blitScene() {
	if !g.hasTarget || g.viewport.Empty() {
		return
	}
	scale := g.window.Scale
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(g.targetW), Height: -float32(g.targetH)}
	dst := rl.Rectangle{
		X:      g.viewport.X / scale,
		Y:      g.viewport.Y / scale,
		Width:  g.viewport.W / scale,
		Height: g.viewport.H / scale,
	}
	rl.DrawTexturePro(g.target.Texture, src, dst, rl.Vector2{}, 0, rl.White)

	if g.ui.State.Overlays.IsEnabled(ui.OverlayViewportHL) {
		rl.DrawRectangleLinesEx(dst, 1, rl.Yellow)
	}
}

// view collects the read-only frame data for the panels.
func (g *Game) view() ui.View {
	drag, visible := g.dragBox.Visual(g.window.Scale)
	return ui.View{
		Particles: g.particles.Count(),
		Selected:  g.selection.Len(),
		Frame:     g.frame,

		Transform: g.transform,
		Motion:    &g.motion,
		Details:   g.inspector.Sections(g.particles),

		Camera:   g.camera,
		Preset:   g.preset,
		Viewport: g.viewport,
		Scale:    g.window.Scale,
		Cursor:   g.in.Cursor,

		DragRect:    drag,
		DragVisible: visible,

		Perf:   g.perf.Stats(),
		Passes: g.passes,
		FPS:    rl.GetFPS(),
	}
}

// camera3D converts the scene camera for raylib.
func (g *Game) camera3D() rl.Camera3D {
	cam := g.camera
	return rl.Camera3D{
		Position:   vec3(cam.Position),
		Target:     vec3(cam.Target()),
		Up:         vec3(cam.Up()),
		Fovy:       cam.FOV,
		Projection: rl.CameraPerspective,
	}
}

func vec3(v geom.Vec3) rl.Vector3 {
	return rl.Vector3{X: v.X, Y: v.Y, Z: v.Z}
}
