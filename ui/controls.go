package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/sandbox/geom"
	"github.com/pthm-cable/sandbox/systems"
)

// Placement slider ranges
const (
	placementRange = 20
	placementMax   = 20
)

// drawControls renders the left panel: bounds, group, creation, grid and
// overlay toggles.
func (u *UI) drawControls(area geom.Rect) {
	r := u.renderer
	s := &u.State
	cfg := u.cfg
	r.DrawPanel(area)

	border := r.Theme.Chrome.PanelBorder
	x := area.X + border
	w := area.W - 2*border
	y := area.Y + r.Theme.Padding
	line := r.Theme.LineHeight

	y = r.DrawSectionHeader(x, y, "Bounds")
	s.Bounds.X = r.SliderFloat(x, y, w, "X", s.Bounds.X, cfg.Bounds.Min, cfg.Bounds.Max, "%.1f")
	y += line
	s.Bounds.Z = r.SliderFloat(x, y, w, "Z", s.Bounds.Z, cfg.Bounds.Min, cfg.Bounds.Max, "%.1f")
	y += line
	s.Bounds.YHeight = r.SliderFloat(x, y, w, "Y Height", s.Bounds.YHeight, cfg.Bounds.Min, cfg.Bounds.Max, "%.1f")
	y += line + 4

	rng := cfg.Group.OffsetRange
	s.Group.Offset, y = r.SliderVec3(x, y, w, "Group Offset", s.Group.Offset, -rng, rng)
	s.Group.Scale = r.SliderFloat(x, y, w, "Scale", s.Group.Scale, cfg.Group.ScaleMin, cfg.Group.ScaleMax, "%.2f")
	y += line + 4

	y = u.drawCreation(x, y, w)

	y = r.DrawSectionHeader(x, y, "Grid")
	s.GridX = r.SliderInt(x, y, w, "Size X", s.GridX, 1, cfg.Grid.MaxSize)
	y += line
	s.GridZ = r.SliderInt(x, y, w, "Size Z", s.GridZ, 1, cfg.Grid.MaxSize)
	y += line + 4

	u.drawOverlayToggles(x, y, w)
}

// drawCreation renders the placement mode, batch size and removal buttons.
func (u *UI) drawCreation(x, y, w float32) float32 {
	r := u.renderer
	s := &u.State
	line := r.Theme.LineHeight

	y = r.DrawSectionHeader(x, y, "Create")
	names := systems.PlacementModeNames()
	bw := (w - float32(len(names)-1)*4) / float32(len(names))
	for i, name := range names {
		mode := systems.PlacementMode(i)
		if r.Toggle(x+float32(i)*(bw+4), y, bw, name, s.Spawn.Mode == mode) {
			s.Spawn.Mode = mode
		}
	}
	y += line
	s.Spawn.Count = r.SliderInt(x, y, w, "Count", s.Spawn.Count, 1, u.cfg.Particles.MaxBatch)
	y += line

	switch s.Spawn.Mode {
	case systems.PlaceBall:
		s.Spawn.BallCenter, y = r.SliderVec3(x, y, w, "Ball Center", s.Spawn.BallCenter, -placementRange, placementRange)
		s.Spawn.BallRadius = r.SliderFloat(x, y, w, "Radius", s.Spawn.BallRadius, 0.1, placementMax, "%.2f")
		y += line
	case systems.PlaceCube:
		s.Spawn.CubeCenter, y = r.SliderVec3(x, y, w, "Cube Center", s.Spawn.CubeCenter, -placementRange, placementRange)
		s.Spawn.CubeSize, y = r.SliderVec3(x, y, w, "Cube Size", s.Spawn.CubeSize, 0.1, placementMax)
	}

	if r.Button(x, y, w, fmt.Sprintf("Create %d", s.Spawn.Count)) {
		s.requests.Create = true
	}
	y += line
	if r.Button(x, y, w, "Remove Selected") {
		s.requests.RemoveSelected = true
	}
	y += line
	if r.Button(x, y, w, "Remove All") {
		s.requests.RemoveAll = true
	}
	return y + line + 4
}

// drawOverlayToggles renders one checkbox per overlay, grouped by category.
func (u *UI) drawOverlayToggles(x, y, w float32) float32 {
	r := u.renderer
	reg := u.State.Overlays
	line := r.Theme.LineHeight

	y = r.DrawSectionHeader(x, y, "Overlays")
	for _, cat := range reg.Categories() {
		for _, desc := range reg.ByCategory(cat) {
			enabled := reg.IsEnabled(desc.ID)
			if next := r.Check(x, y, desc.Name, enabled); next != enabled {
				reg.SetEnabled(desc.ID, next)
			}
			if desc.KeyLabel != "" {
				key := fmt.Sprintf("[%s]", desc.KeyLabel)
				kw := float32(rl.MeasureText(key, r.Theme.FontSize))
				rl.DrawText(key, int32(x+w-kw), int32(y+4), r.Theme.FontSize, r.Theme.LabelColor)
			}
			y += line
		}
	}
	return y
}
