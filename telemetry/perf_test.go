package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartFrame()
		pc.StartPass(PassBounds)
		time.Sleep(100 * time.Microsecond)
		pc.StartPass(PassRender)
		time.Sleep(200 * time.Microsecond)
		pc.EndFrame()
	}

	stats := pc.Stats()

	if stats.AvgFrameDuration <= 0 {
		t.Error("expected positive average frame duration")
	}
	if stats.MinFrameDuration > stats.AvgFrameDuration || stats.MaxFrameDuration < stats.AvgFrameDuration {
		t.Errorf("min/avg/max out of order: %v %v %v", stats.MinFrameDuration, stats.AvgFrameDuration, stats.MaxFrameDuration)
	}
	if _, ok := stats.PassAvg[PassBounds]; !ok {
		t.Error("expected bounds pass to be tracked")
	}
	if _, ok := stats.PassAvg[PassRender]; !ok {
		t.Error("expected render pass to be tracked")
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)

	for i := 0; i < 10; i++ {
		pc.StartFrame()
		pc.StartPass(PassInput)
		pc.EndFrame()
	}

	if pc.sampleCount != 5 {
		t.Errorf("sampleCount = %d, want 5", pc.sampleCount)
	}
	if _, ok := pc.Last(); !ok {
		t.Error("expected a last sample")
	}
}

func TestPerfCollector_PassPercentages(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartFrame()
		pc.StartPass("fast")
		time.Sleep(10 * time.Microsecond)
		pc.StartPass("slow")
		time.Sleep(2 * time.Millisecond)
		pc.EndFrame()
	}

	stats := pc.Stats()
	fastPct := stats.PassPct["fast"]
	slowPct := stats.PassPct["slow"]

	if slowPct <= fastPct {
		t.Errorf("expected slow pass (%v%%) > fast pass (%v%%)", slowPct, fastPct)
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(10)

	stats := pc.Stats()

	if stats.AvgFrameDuration != 0 {
		t.Error("expected zero avg frame duration for empty collector")
	}
	if stats.PassAvg == nil || stats.PassPct == nil {
		t.Error("expected non-nil pass maps")
	}
	if _, ok := pc.Last(); ok {
		t.Error("empty collector should have no last sample")
	}
}

func TestPerfCollector_FrameTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	pc.RecordFrame()
	time.Sleep(16 * time.Millisecond)
	pc.RecordFrame()

	stats := pc.Stats()

	if stats.FrameDuration < 15*time.Millisecond {
		t.Errorf("expected frame duration >= 15ms, got %v", stats.FrameDuration)
	}
	if stats.FPS <= 0 || stats.FPS > 67 {
		t.Errorf("expected FPS in (0, 67] with 16ms frame time, got %v", stats.FPS)
	}
}

func TestPerfStatsToCSV(t *testing.T) {
	s := PerfStats{
		AvgFrameDuration: 2 * time.Millisecond,
		PassPct:          map[string]float64{PassPick: 12.5, PassRender: 60},
	}
	row := s.ToCSV(42)
	if row.WindowEnd != 42 || row.AvgFrameUS != 2000 {
		t.Errorf("row = %+v", row)
	}
	if row.PickPct != 12.5 || row.RenderPct != 60 || row.BoundsPct != 0 {
		t.Errorf("pass columns = pick %v render %v bounds %v", row.PickPct, row.RenderPct, row.BoundsPct)
	}
}
