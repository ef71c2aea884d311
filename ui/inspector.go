package ui

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/pthm-cable/sandbox/geom"
)

// drawInspector renders the right panel: selection transform, motion
// toggles and the focused particle's components.
func (u *UI) drawInspector(area geom.Rect, v View) {
	r := u.renderer
	cfg := u.cfg
	r.DrawPanel(area)

	border := r.Theme.Chrome.PanelBorder
	x := area.X + border
	w := area.W - 2*border
	y := area.Y + r.Theme.Padding
	line := r.Theme.LineHeight

	y = r.DrawSectionHeader(x, y, "Selection")
	y = r.DrawLabelValue(x, y, "Selected", fmt.Sprintf("%d / %d", v.Selected, v.Particles))

	if t := v.Transform; t != nil && v.Selected > 0 {
		rng := cfg.Selection.OffsetRange
		t.Offset, y = r.SliderVec3(x, y, w, "Offset", t.Offset, -rng, rng)
		t.Scale, y = r.SliderVec3(x, y, w, "Scale", t.Scale, cfg.Selection.ScaleMin, cfg.Selection.ScaleMax)
		t.RotationY = r.SliderFloat(x, y, w, "Rotation", t.RotationY, -math32.Pi, math32.Pi, "%.2f")
		y += line
		if r.Button(x, y, w, "Reset Transform") {
			u.State.requests.ResetSelection = true
		}
		y += line + 4
	}

	if m := v.Motion; m != nil {
		y = r.DrawSectionHeader(x, y, "Motion")
		m.Active = r.Check(x, y, "Motion 1", m.Active)
		y += line
		m.ShowTrajectory = r.Check(x, y, "Show Trajectory", m.ShowTrajectory)
		y += line
		m.AngularSpeed = r.SliderFloat(x, y, w, "Speed", m.AngularSpeed, -math32.Pi, math32.Pi, "%.2f")
		y += line + 4
	}

	if len(v.Details) > 0 {
		r.DrawSections(x, y, w, v.Details)
	}
}
