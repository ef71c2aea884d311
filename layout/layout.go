// Package layout resolves the camera viewport from UI panel measurements.
package layout

import (
	"github.com/chewxy/math32"

	"github.com/pthm-cable/sandbox/geom"
)

// Measurements are produced by the UI each frame, in logical pixels.
type Measurements struct {
	LeftPanelEnd    float32 // Right edge of the left control panel
	RightPanelStart float32 // Left edge of the inspector panel
	TopBarsHeight   float32 // Combined height of the top bars
	BottomBarHeight float32

	InspectorCollapsed  bool
	SplitPanelCollapsed bool
	ViewerHidden        bool // Streams panel replaces the 3D view
}

// Window describes the host window.
type Window struct {
	PhysicalW, PhysicalH float32
	Scale                float32 // Logical to physical pixel factor
}

// Resolve returns the camera viewport in physical pixels.
// A hidden viewer yields a zero rectangle at the origin so the camera stays
// valid but renders nothing.
func Resolve(m Measurements, w Window) geom.Rect {
	if m.ViewerHidden {
		return geom.Rect{}
	}
	scale := w.Scale
	if scale <= 0 {
		scale = 1
	}

	// Edges snap to whole physical pixels so the render texture matches
	left := math32.Round(m.LeftPanelEnd * scale)
	top := math32.Round(m.TopBarsHeight * scale)
	bottom := math32.Round(m.BottomBarHeight * scale)

	right := math32.Floor(w.PhysicalW)
	if !m.InspectorCollapsed {
		right = math32.Round(m.RightPanelStart * scale)
	}

	width := saturatingSub(right, left)
	height := saturatingSub(saturatingSub(math32.Floor(w.PhysicalH), top), bottom)

	r := geom.Rect{X: left, Y: top, W: width, H: height}
	if !m.SplitPanelCollapsed {
		// Split panel takes the left half
		half := math32.Floor(width / 2)
		r.X = left + half
		r.W = width - half
	}
	return r
}

// SplitPanel returns the rectangle of the auxiliary split panel in logical
// pixels, or false when it is collapsed or the viewer is hidden.
func SplitPanel(m Measurements, logicalW, logicalH float32) (geom.Rect, bool) {
	if m.SplitPanelCollapsed || m.ViewerHidden {
		return geom.Rect{}, false
	}
	right := logicalW
	if !m.InspectorCollapsed {
		right = m.RightPanelStart
	}
	width := saturatingSub(right, m.LeftPanelEnd)
	height := saturatingSub(saturatingSub(logicalH, m.TopBarsHeight), m.BottomBarHeight)
	return geom.Rect{X: m.LeftPanelEnd, Y: m.TopBarsHeight, W: width / 2, H: height}, true
}

func saturatingSub(a, b float32) float32 {
	if a < b {
		return 0
	}
	return a - b
}
