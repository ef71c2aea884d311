package layout

import "github.com/pthm-cable/sandbox/geom"

// Chrome holds the fixed panel metrics in logical pixels.
type Chrome struct {
	TopBarHeight    float32
	SecondBarHeight float32
	LeftPanelWidth  float32 // Content width, borders excluded
	PanelBorder     float32
	BottomBarHeight float32
}

// Flags are the panel visibility toggles.
type Flags struct {
	InspectorCollapsed bool
	SplitCollapsed     bool
	StreamsVisible     bool
}

// Panels holds the panel rectangles for one frame in logical pixels.
type Panels struct {
	TopBar    geom.Rect
	SecondBar geom.Rect
	Left      geom.Rect
	Right     geom.Rect
	Bottom    geom.Rect
	Split     geom.Rect
	Streams   geom.Rect

	RightVisible   bool
	SplitVisible   bool
	StreamsVisible bool

	Measurements Measurements
}

// Arrange places the panels for a logical window size. The side panels run
// from the top bars to the window bottom; the inspector mirrors the left
// panel width on the right edge. The bottom bar spans the gap between them.
func Arrange(c Chrome, f Flags, logicalW, logicalH float32) Panels {
	top := c.TopBarHeight + c.SecondBarHeight
	side := c.LeftPanelWidth + 2*c.PanelBorder
	middleH := saturatingSub(saturatingSub(logicalH, top), c.BottomBarHeight)

	m := Measurements{
		LeftPanelEnd:        side,
		RightPanelStart:     saturatingSub(logicalW, side),
		TopBarsHeight:       top,
		BottomBarHeight:     c.BottomBarHeight,
		InspectorCollapsed:  f.InspectorCollapsed,
		SplitPanelCollapsed: f.SplitCollapsed,
		ViewerHidden:        f.StreamsVisible,
	}

	right := logicalW
	if !f.InspectorCollapsed {
		right = m.RightPanelStart
	}
	sideH := saturatingSub(logicalH, top)

	p := Panels{
		TopBar:         geom.Rect{W: logicalW, H: c.TopBarHeight},
		SecondBar:      geom.Rect{Y: c.TopBarHeight, W: logicalW, H: c.SecondBarHeight},
		Left:           geom.Rect{Y: top, W: side, H: sideH},
		Bottom:         geom.Rect{X: side, Y: saturatingSub(logicalH, c.BottomBarHeight), W: saturatingSub(right, side), H: c.BottomBarHeight},
		RightVisible:   !f.InspectorCollapsed,
		StreamsVisible: f.StreamsVisible,
		Measurements:   m,
	}
	if p.RightVisible {
		p.Right = geom.Rect{X: m.RightPanelStart, Y: top, W: side, H: sideH}
	}
	if p.StreamsVisible {
		p.Streams = geom.Rect{X: side, Y: top, W: saturatingSub(right, side), H: middleH}
	}
	p.Split, p.SplitVisible = SplitPanel(m, logicalW, logicalH)
	return p
}

// Contains reports whether a logical point lies over any visible panel.
func (p Panels) Contains(pt geom.Vec2) bool {
	for _, r := range []geom.Rect{p.TopBar, p.SecondBar, p.Left, p.Bottom} {
		if r.Contains(pt) {
			return true
		}
	}
	if p.RightVisible && p.Right.Contains(pt) {
		return true
	}
	if p.SplitVisible && p.Split.Contains(pt) {
		return true
	}
	return p.StreamsVisible && p.Streams.Contains(pt)
}
