package systems

import "testing"

func TestGridLineCount(t *testing.T) {
	g := NewGrid(10, 4, 100, 1)
	lines := g.Lines()
	if len(lines) != 11+5 {
		t.Fatalf("got %d lines, want 16", len(lines))
	}
	first := lines[0]
	if first.From.X != -5 || first.From.Z != -2 || first.To.Z != 2 {
		t.Errorf("first line = %+v", first)
	}
}

func TestGridRebuildsOnResize(t *testing.T) {
	g := NewGrid(2, 2, 100, 1)
	if n := len(g.Lines()); n != 6 {
		t.Fatalf("got %d lines, want 6", n)
	}
	g.SetSize(3, 2)
	if n := len(g.Lines()); n != 7 {
		t.Errorf("after resize got %d lines, want 7", n)
	}
}

func TestGridClamp(t *testing.T) {
	tests := []struct {
		x, z         int
		wantX, wantZ int
	}{
		{0, 0, 1, 1},
		{-5, 50, 1, 50},
		{200, 100, 100, 100},
	}
	for _, tt := range tests {
		g := NewGrid(tt.x, tt.z, 100, 1)
		if g.SizeX != tt.wantX || g.SizeZ != tt.wantZ {
			t.Errorf("NewGrid(%d, %d) size = %dx%d, want %dx%d", tt.x, tt.z, g.SizeX, g.SizeZ, tt.wantX, tt.wantZ)
		}
	}
}

func TestAxes(t *testing.T) {
	axes := Axes(5)
	if axes[0].To.X != 5 || axes[1].To.Y != 5 || axes[2].To.Z != 5 {
		t.Errorf("axes = %+v", axes)
	}
}
