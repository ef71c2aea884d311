package layout

import (
	"testing"

	"github.com/pthm-cable/sandbox/geom"
)

func base() Measurements {
	return Measurements{
		LeftPanelEnd:        238,
		RightPanelStart:     1362,
		TopBarsHeight:       52,
		BottomBarHeight:     24,
		SplitPanelCollapsed: true,
	}
}

func TestResolve(t *testing.T) {
	window := Window{PhysicalW: 1600, PhysicalH: 900, Scale: 1}

	tests := []struct {
		name   string
		mutate func(*Measurements)
		window Window
		want   geom.Rect
	}{
		{
			name:   "both panels",
			mutate: func(m *Measurements) {},
			window: window,
			want:   geom.Rect{X: 238, Y: 52, W: 1124, H: 824},
		},
		{
			name:   "inspector collapsed",
			mutate: func(m *Measurements) { m.InspectorCollapsed = true },
			window: window,
			want:   geom.Rect{X: 238, Y: 52, W: 1362, H: 824},
		},
		{
			name:   "split panel visible",
			mutate: func(m *Measurements) { m.SplitPanelCollapsed = false },
			window: window,
			want:   geom.Rect{X: 800, Y: 52, W: 562, H: 824},
		},
		{
			name:   "viewer hidden",
			mutate: func(m *Measurements) { m.ViewerHidden = true },
			window: window,
			want:   geom.Rect{},
		},
		{
			name:   "scale factor 2",
			mutate: func(m *Measurements) {},
			window: Window{PhysicalW: 3200, PhysicalH: 1800, Scale: 2},
			want:   geom.Rect{X: 476, Y: 104, W: 2248, H: 1648},
		},
		{
			name:   "fractional scale snaps to whole pixels",
			mutate: func(m *Measurements) {},
			window: Window{PhysicalW: 2000, PhysicalH: 1125, Scale: 1.25},
			want:   geom.Rect{X: 298, Y: 65, W: 1405, H: 1030},
		},
		{
			name:   "fractional scale with split panel",
			mutate: func(m *Measurements) { m.SplitPanelCollapsed = false },
			window: Window{PhysicalW: 2000, PhysicalH: 1125, Scale: 1.25},
			want:   geom.Rect{X: 1000, Y: 65, W: 703, H: 1030},
		},
		{
			name:   "panels overlap saturates",
			mutate: func(m *Measurements) { m.RightPanelStart = 100 },
			window: window,
			want:   geom.Rect{X: 238, Y: 52, W: 0, H: 824},
		},
		{
			name:   "window shorter than bars",
			mutate: func(m *Measurements) {},
			window: Window{PhysicalW: 1600, PhysicalH: 40, Scale: 1},
			want:   geom.Rect{X: 238, Y: 52, W: 1124, H: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := base()
			tt.mutate(&m)
			if got := Resolve(m, tt.window); got != tt.want {
				t.Errorf("Resolve = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSplitPanel(t *testing.T) {
	m := base()
	if _, ok := SplitPanel(m, 1600, 900); ok {
		t.Error("collapsed split panel should not be shown")
	}

	m.SplitPanelCollapsed = false
	r, ok := SplitPanel(m, 1600, 900)
	if !ok {
		t.Fatal("expected split panel")
	}
	if r != (geom.Rect{X: 238, Y: 52, W: 562, H: 824}) {
		t.Errorf("SplitPanel = %+v", r)
	}

	// Split panel and viewport tile the area between the side panels
	vp := Resolve(m, Window{PhysicalW: 1600, PhysicalH: 900, Scale: 1})
	if r.X+r.W != vp.X {
		t.Errorf("split panel ends at %f, viewport starts at %f", r.X+r.W, vp.X)
	}
}
