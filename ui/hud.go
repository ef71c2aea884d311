package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/sandbox/camera"
	"github.com/pthm-cable/sandbox/geom"
)

// drawTopBar renders the title and the panel toggles.
func (u *UI) drawTopBar(area geom.Rect) {
	r := u.renderer
	s := &u.State
	r.DrawPanel(area)

	rl.DrawText(u.cfg.Screen.Title, int32(area.X+r.Theme.Padding), int32(area.Y+5), r.Theme.HeaderFontSize, r.Theme.ValueColor)

	const bw = 90
	x := area.X + area.W - 3*(bw+4) - r.Theme.Padding
	y := area.Y + (area.H-r.Theme.LineHeight)/2
	if r.Toggle(x, y, bw, "Inspector", !s.Flags.InspectorCollapsed) {
		s.Flags.InspectorCollapsed = !s.Flags.InspectorCollapsed
	}
	x += bw + 4
	if r.Toggle(x, y, bw, "Split", !s.Flags.SplitCollapsed) {
		s.Flags.SplitCollapsed = !s.Flags.SplitCollapsed
	}
	x += bw + 4
	label := "Streams"
	if s.Flags.StreamsVisible {
		label = "3D Viewer"
	}
	if r.Toggle(x, y, bw, label, s.Flags.StreamsVisible) {
		s.Flags.StreamsVisible = !s.Flags.StreamsVisible
	}
}

// drawSecondBar renders the camera presets and field of view.
func (u *UI) drawSecondBar(area geom.Rect, v View) {
	r := u.renderer
	s := &u.State
	r.DrawPanel(area)

	const bw = 60
	x := area.X + r.Theme.Padding
	y := area.Y + (area.H-r.Theme.LineHeight)/2
	r.DrawLabel(x, y, "Camera")
	x += 50
	for _, p := range []camera.Preset{camera.PresetStart, camera.PresetFront, camera.PresetTop} {
		if r.Toggle(x, y, bw, p.String(), v.Preset == p) {
			s.requests.Preset = p
			s.requests.HasPreset = true
		}
		x += bw + 4
	}

	x += r.Theme.Padding
	s.FOV = r.SliderFloat(x, y, 260, "FOV", s.FOV, u.cfg.Camera.MinFOV, u.cfg.Camera.MaxFOV, "%.0f")
	x += 264
	if r.Button(x, y, bw, "Reset") {
		s.requests.ResetFOV = true
	}

	if v.Camera != nil {
		pos := v.Camera.Position
		text := fmt.Sprintf("pos (%.1f, %.1f, %.1f)", pos.X, pos.Y, pos.Z)
		tw := float32(rl.MeasureText(text, r.Theme.FontSize))
		r.DrawLabel(area.X+area.W-tw-r.Theme.Padding, y, text)
	}
}

// drawBottomBar renders counts and frame timing.
func (u *UI) drawBottomBar(area geom.Rect, v View) {
	r := u.renderer
	r.DrawPanel(area)
	text := fmt.Sprintf("FPS %d | frame %.2f ms | particles %d | selected %d | viewport %.0fx%.0f",
		v.FPS,
		float64(v.Perf.AvgFrameDuration)/float64(time.Millisecond),
		v.Particles, v.Selected,
		v.Viewport.W, v.Viewport.H,
	)
	r.DrawLabel(area.X+r.Theme.Padding, area.Y+(area.H-r.Theme.LineHeight)/2, text)
}

// drawSplit renders the auxiliary panel beside a half-width viewport.
func (u *UI) drawSplit(area geom.Rect, v View) {
	r := u.renderer
	s := &u.State
	r.DrawPanel(area)

	x := area.X + r.Theme.Padding
	y := area.Y + r.Theme.Padding
	y = r.DrawSectionHeader(x, y, "Scene")
	y = r.DrawLabelValue(x, y, "Bounds", fmt.Sprintf("%.1f x %.1f x %.1f", s.Bounds.X, s.Bounds.YHeight, s.Bounds.Z))
	g := s.Group
	y = r.DrawLabelValue(x, y, "Group", fmt.Sprintf("(%.1f, %.1f, %.1f) x%.2f", g.Offset.X, g.Offset.Y, g.Offset.Z, g.Scale))
	y = r.DrawLabelValue(x, y, "Grid", fmt.Sprintf("%d x %d", s.GridX, s.GridZ))
	y = r.DrawLabelValue(x, y, "Mode", s.Spawn.Mode.String())
	if v.Camera != nil {
		f := v.Camera.Forward()
		r.DrawLabelValue(x, y, "Facing", fmt.Sprintf("(%.2f, %.2f, %.2f)", f.X, f.Y, f.Z))
	}
}

// drawStreams renders the per-pass timing table over the hidden viewer.
func (u *UI) drawStreams(area geom.Rect, v View) {
	r := u.renderer
	r.DrawPanel(area)

	x := area.X + r.Theme.Padding
	y := area.Y + r.Theme.Padding
	w := area.W - 2*r.Theme.Padding
	if w > 600 {
		w = 600
	}
	y = r.DrawSectionHeader(x, y, "Streams")
	y = r.DrawLabelValue(x, y, "Frame", fmt.Sprintf("avg %d us  p95 %d us  std %d us",
		v.Perf.AvgFrameDuration.Microseconds(),
		v.Perf.P95FrameDuration.Microseconds(),
		v.Perf.StdFrameDuration.Microseconds()))
	if v.Passes == nil {
		return
	}

	for _, cat := range v.Passes.Categories() {
		y = r.DrawSectionHeader(x, y+4, cat)
		for _, info := range v.Passes.ByCategory(cat) {
			pct := v.Perf.PassPct[info.ID]
			avg := v.Perf.PassAvg[info.ID]
			r.DrawBar(x, y, w, info.Name, pct, 100)
			rl.DrawText(fmt.Sprintf("%d us", avg.Microseconds()), int32(x+w+8), int32(y+4), r.Theme.FontSize, r.Theme.LabelColor)
			y += r.Theme.LineHeight
		}
	}
}

// drawDragBox renders the translucent selection rectangle.
func (u *UI) drawDragBox(v View) {
	if !v.DragVisible {
		return
	}
	scale := v.Scale
	if scale <= 0 {
		scale = 1
	}
	// Window physical to window logical
	box := rl.Rectangle{
		X:      v.DragRect.X / scale,
		Y:      v.DragRect.Y / scale,
		Width:  v.DragRect.W / scale,
		Height: v.DragRect.H / scale,
	}
	rl.DrawRectangleRec(box, u.renderer.Theme.SelectBox)
	rl.DrawRectangleLinesEx(box, 1, u.renderer.Theme.SelectBoxLine)
}
