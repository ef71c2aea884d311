package layout

import (
	"testing"

	"github.com/pthm-cable/sandbox/geom"
)

var chrome = Chrome{
	TopBarHeight:    22,
	SecondBarHeight: 30,
	LeftPanelWidth:  200,
	PanelBorder:     19,
	BottomBarHeight: 24,
}

func TestArrangeMatchesResolve(t *testing.T) {
	p := Arrange(chrome, Flags{SplitCollapsed: true}, 1600, 900)

	m := p.Measurements
	if m.LeftPanelEnd != 238 || m.RightPanelStart != 1362 || m.TopBarsHeight != 52 {
		t.Errorf("measurements = %+v", m)
	}
	if p.Left != (geom.Rect{Y: 52, W: 238, H: 848}) {
		t.Errorf("left = %+v", p.Left)
	}
	if p.Right != (geom.Rect{X: 1362, Y: 52, W: 238, H: 848}) {
		t.Errorf("right = %+v", p.Right)
	}
	if p.Bottom != (geom.Rect{X: 238, Y: 876, W: 1124, H: 24}) {
		t.Errorf("bottom = %+v", p.Bottom)
	}

	got := Resolve(m, Window{PhysicalW: 1600, PhysicalH: 900, Scale: 1})
	if got != (geom.Rect{X: 238, Y: 52, W: 1124, H: 824}) {
		t.Errorf("viewport = %+v", got)
	}
}

func TestArrangeFlags(t *testing.T) {
	p := Arrange(chrome, Flags{InspectorCollapsed: true, StreamsVisible: true}, 1600, 900)

	if p.RightVisible || p.Right != (geom.Rect{}) {
		t.Errorf("collapsed inspector should have no rect, got %+v", p.Right)
	}
	if !p.StreamsVisible || p.Streams != (geom.Rect{X: 238, Y: 52, W: 1362, H: 824}) {
		t.Errorf("streams = %+v", p.Streams)
	}
	if p.SplitVisible {
		t.Error("split panel should stay hidden while streams are shown")
	}
	if !p.Measurements.ViewerHidden {
		t.Error("streams panel should hide the viewer")
	}
}

func TestPanelsContains(t *testing.T) {
	p := Arrange(chrome, Flags{}, 1600, 900)

	tests := []struct {
		name string
		pt   geom.Vec2
		want bool
	}{
		{"top bar", geom.Vec2{X: 800, Y: 10}, true},
		{"left panel", geom.Vec2{X: 100, Y: 400}, true},
		{"inspector", geom.Vec2{X: 1500, Y: 400}, true},
		{"bottom bar", geom.Vec2{X: 800, Y: 890}, true},
		{"split panel", geom.Vec2{X: 300, Y: 400}, true},
		{"viewport", geom.Vec2{X: 1000, Y: 400}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Contains(tt.pt); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}
