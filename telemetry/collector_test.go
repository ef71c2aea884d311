package telemetry

import "testing"

func TestCollectorWindow(t *testing.T) {
	c := NewCollector(5)

	if c.ShouldFlush(4.9) {
		t.Error("window should not flush before its duration")
	}
	if !c.ShouldFlush(5) {
		t.Error("window should flush at its duration")
	}

	c.Record(NewPickEvent(1, 7, true))
	c.Record(NewPickEvent(2, 7, false))
	c.Record(NewBoxSelectEvent(3, 4))
	c.Record(NewBoxSelectEvent(4, 2))
	c.Record(NewClearEvent(5, 6))
	c.Record(NewCreateEvent(6, 50, "Ball"))
	c.Record(NewRemoveEvent(7, 3, "selected"))
	c.Record(NewPresetEvent(8, "front"))
	c.RecordFrameTime(0.016)
	c.RecordFrameTime(0.018)

	s := c.Flush(300, 5.2, 47, 2)
	if s.WindowStartFrame != 0 || s.WindowEndFrame != 300 {
		t.Errorf("window frames = %d..%d", s.WindowStartFrame, s.WindowEndFrame)
	}
	if s.Picks != 1 || s.Deselects != 1 {
		t.Errorf("picks=%d deselects=%d", s.Picks, s.Deselects)
	}
	if s.BoxSelects != 2 || s.BoxAdded != 6 || s.Clears != 1 {
		t.Errorf("box selects=%d added=%d clears=%d", s.BoxSelects, s.BoxAdded, s.Clears)
	}
	if s.Created != 50 || s.Removed != 3 || s.PresetChanges != 1 {
		t.Errorf("created=%d removed=%d presets=%d", s.Created, s.Removed, s.PresetChanges)
	}
	if s.Particles != 47 || s.Selected != 2 {
		t.Errorf("particles=%d selected=%d", s.Particles, s.Selected)
	}
	if s.FrameMeanMS < 16.9 || s.FrameMeanMS > 17.1 {
		t.Errorf("frame mean = %v ms, want ~17", s.FrameMeanMS)
	}

	// Counters reset, next window starts where this one ended
	next := c.Flush(600, 10.4, 47, 2)
	if next.WindowStartFrame != 300 || next.Picks != 0 || next.Created != 0 || next.FrameMeanMS != 0 {
		t.Errorf("counters not reset: %+v", next)
	}
	if c.ShouldFlush(15) {
		t.Error("window should be measured from the last flush")
	}
}

func TestCollectorDefaultWindow(t *testing.T) {
	if got := NewCollector(0).WindowDurationSec(); got != 5 {
		t.Errorf("default window = %v, want 5", got)
	}
}

func TestEventNames(t *testing.T) {
	tests := []struct {
		e    Event
		want string
	}{
		{NewPickEvent(0, 1, true), "pick"},
		{NewPickEvent(0, 1, false), "deselect"},
		{NewBoxSelectEvent(0, 1), "box_select"},
		{NewClearEvent(0, 1), "clear"},
		{NewCreateEvent(0, 1, "Random"), "create"},
		{NewRemoveEvent(0, 1, "all"), "remove"},
		{NewPresetEvent(0, "top"), "preset"},
		{Event{Type: EventType(99)}, "unknown"},
	}
	for _, tt := range tests {
		if got := tt.e.Type.String(); got != tt.want {
			t.Errorf("EventType(%d).String() = %q, want %q", tt.e.Type, got, tt.want)
		}
	}
}
