package telemetry

import "testing"

func TestPassRegistryOrder(t *testing.T) {
	reg := NewPassRegistry()
	ids := reg.IDs()
	want := []string{
		PassInput, PassCleanup, PassCamera, PassCreation, PassBounds, PassGroup,
		PassPick, PassDragBox, PassCapture, PassMotion, PassTransform, PassSelBounds,
		PassLayout, PassRender,
	}
	if len(ids) != len(want) {
		t.Fatalf("got %d passes, want %d", len(ids), len(want))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("pass %d = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestPassRegistryLookup(t *testing.T) {
	reg := NewPassRegistry()

	if got := reg.Name(PassDragBox); got != "Drag Box" {
		t.Errorf("Name(dragbox) = %q", got)
	}
	if got := reg.Name("missing"); got != "missing" {
		t.Errorf("Name fallback = %q", got)
	}
	if _, ok := reg.Get("missing"); ok {
		t.Error("unexpected lookup hit")
	}

	cats := reg.Categories()
	if len(cats) != 4 || cats[0] != "input" || cats[3] != "frame" {
		t.Errorf("categories = %v", cats)
	}
	if n := len(reg.ByCategory("selection")); n != 6 {
		t.Errorf("selection passes = %d, want 6", n)
	}
}
