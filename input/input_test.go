package input

import (
	"testing"

	"github.com/pthm-cable/sandbox/geom"
)

func frame() Frame {
	return Frame{CursorOnScreen: true, Scale: 1, Dt: 1.0 / 60}
}

func TestPressAndReleaseEdges(t *testing.T) {
	var tr Tracker

	f := frame()
	f.RightPressed, f.RightDown = true, true
	tr.Track(f)
	tr.Cleanup(f)
	if !tr.RightPressed() {
		t.Fatal("expected right press edge")
	}

	f = frame()
	f.RightDown = true
	tr.Track(f)
	tr.Cleanup(f)
	if tr.RightPressed() || tr.RightReleased() {
		t.Error("held button should report no edge")
	}
	if !tr.Right.Held() {
		t.Error("expected right held")
	}

	f = frame()
	f.RightReleased = true
	tr.Track(f)
	tr.Cleanup(f)
	if !tr.RightReleased() {
		t.Error("expected right release edge")
	}
}

func TestCleanupForcesStuckRelease(t *testing.T) {
	var tr Tracker

	f := frame()
	f.RightPressed, f.RightDown = true, true
	tr.Track(f)
	tr.Cleanup(f)

	// Release happened over the UI and the host edge was lost
	f = frame()
	f.OverUI = true
	tr.Track(f)
	tr.Cleanup(f)

	if !tr.RightReleased() {
		t.Error("cleanup should synthesize the release edge")
	}
	if tr.Right.Forced() != 1 {
		t.Errorf("expected 1 forced release, got %d", tr.Right.Forced())
	}
}

func TestPressOverUIIgnored(t *testing.T) {
	var tr Tracker

	f := frame()
	f.OverUI = true
	f.LeftPressed, f.LeftDown = true, true
	tr.Track(f)
	tr.Cleanup(f)

	if tr.Left.Held() {
		t.Error("press over UI should not be tracked")
	}
}

func TestLeftClickedTravel(t *testing.T) {
	tests := []struct {
		name  string
		moveX float32
		want  bool
	}{
		{"stationary", 0, true},
		{"small jitter", 4, true},
		{"at threshold", 5, true},
		{"camera drag", 40, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tr Tracker
			f := frame()
			f.Cursor = geom.Vec2{X: 100, Y: 100}
			f.LeftPressed, f.LeftDown = true, true
			tr.Track(f)
			tr.Cleanup(f)

			f = frame()
			f.Cursor = geom.Vec2{X: 100 + tt.moveX, Y: 100}
			f.LeftDown = true
			tr.Track(f)
			tr.Cleanup(f)

			f = frame()
			f.Cursor = geom.Vec2{X: 100, Y: 100}
			f.LeftReleased = true
			tr.Track(f)
			tr.Cleanup(f)

			if got := tr.LeftClicked(5); got != tt.want {
				t.Errorf("LeftClicked = %v, want %v (travel %f)", got, tt.want, tr.Left.Travel())
			}
		})
	}
}

func TestPhysicalCursor(t *testing.T) {
	f := Frame{Cursor: geom.Vec2{X: 10, Y: 20}, Scale: 2}
	if got := f.Physical(); got != (geom.Vec2{X: 20, Y: 40}) {
		t.Errorf("Physical = %v, want (20, 40)", got)
	}

	f.Scale = 0
	if got := f.Physical(); got != f.Cursor {
		t.Errorf("zero scale should fall back to 1, got %v", got)
	}
}
