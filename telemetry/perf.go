package telemetry

import (
	"log/slog"
	"slices"
	"time"
)

// passOrder lists pass IDs in pipeline order for stable log output.
var passOrder = NewPassRegistry().IDs()

// PerfSample holds timing data for a single frame.
type PerfSample struct {
	FrameDuration time.Duration
	Passes        map[string]time.Duration
}

// PerfCollector tracks per-pass frame timing over a rolling window.
type PerfCollector struct {
	windowSize    int
	samples       []PerfSample
	writeIndex    int
	sampleCount   int
	currentPasses map[string]time.Duration
	frameStart    time.Time
	passStart     time.Time
	lastPass      string

	// Wall clock between RecordFrame calls, including vsync waits
	lastFrameTime time.Time
	frameDuration time.Duration
}

// NewPerfCollector creates a new performance collector.
// windowSize: number of frames to average over (e.g., 120 for 2 seconds at 60fps).
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		windowSize:    windowSize,
		samples:       make([]PerfSample, windowSize),
		currentPasses: make(map[string]time.Duration),
	}
}

// StartFrame begins timing a new frame.
func (p *PerfCollector) StartFrame() {
	p.frameStart = time.Now()
	p.currentPasses = make(map[string]time.Duration)
	p.lastPass = ""
}

// StartPass begins timing a specific pass, ending the previous one.
func (p *PerfCollector) StartPass(pass string) {
	now := time.Now()
	if p.lastPass != "" {
		p.currentPasses[p.lastPass] += now.Sub(p.passStart)
	}
	p.passStart = now
	p.lastPass = pass
}

// EndFrame finishes timing the current frame and records the sample.
func (p *PerfCollector) EndFrame() {
	now := time.Now()
	if p.lastPass != "" {
		p.currentPasses[p.lastPass] += now.Sub(p.passStart)
	}
	p.lastPass = ""

	p.samples[p.writeIndex] = PerfSample{
		FrameDuration: now.Sub(p.frameStart),
		Passes:        p.currentPasses,
	}
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
}

// RecordFrame records wall-clock frame timing.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastFrameTime.IsZero() {
		p.frameDuration = now.Sub(p.lastFrameTime)
	}
	p.lastFrameTime = now
}

// Last returns the most recent sample, if any.
func (p *PerfCollector) Last() (PerfSample, bool) {
	if p.sampleCount == 0 {
		return PerfSample{}, false
	}
	idx := (p.writeIndex - 1 + p.windowSize) % p.windowSize
	return p.samples[idx], true
}

// PerfStats holds aggregated performance statistics.
type PerfStats struct {
	// Work time per frame
	AvgFrameDuration time.Duration
	MinFrameDuration time.Duration
	MaxFrameDuration time.Duration
	StdFrameDuration time.Duration
	P95FrameDuration time.Duration

	// Pass breakdown (average durations)
	PassAvg map[string]time.Duration

	// Pass percentages of total frame work time
	PassPct map[string]float64

	// Frames of work that fit in a second
	FramesPerSecond float64

	// Wall clock frame timing
	FrameDuration time.Duration
	FPS           float64
}

// Stats computes aggregated statistics over the current window.
func (p *PerfCollector) Stats() PerfStats {
	var fps float64
	if p.frameDuration > 0 {
		fps = float64(time.Second) / float64(p.frameDuration)
	}

	if p.sampleCount == 0 {
		return PerfStats{
			PassAvg:       make(map[string]time.Duration),
			PassPct:       make(map[string]float64),
			FrameDuration: p.frameDuration,
			FPS:           fps,
		}
	}

	durations := make([]float64, p.sampleCount)
	passSum := make(map[string]time.Duration)
	for i := 0; i < p.sampleCount; i++ {
		s := p.samples[i]
		durations[i] = float64(s.FrameDuration)
		for pass, dur := range s.Passes {
			passSum[pass] += dur
		}
	}

	mean, std, _, p95 := ComputeDistribution(durations)
	avg := time.Duration(mean)

	passAvg := make(map[string]time.Duration)
	passPct := make(map[string]float64)
	for pass, sum := range passSum {
		passAvg[pass] = sum / time.Duration(p.sampleCount)
		if avg > 0 {
			passPct[pass] = float64(passAvg[pass]) / float64(avg) * 100
		}
	}

	var framesPerSec float64
	if avg > 0 {
		framesPerSec = float64(time.Second) / float64(avg)
	}

	return PerfStats{
		AvgFrameDuration: avg,
		MinFrameDuration: time.Duration(slices.Min(durations)),
		MaxFrameDuration: time.Duration(slices.Max(durations)),
		StdFrameDuration: time.Duration(std),
		P95FrameDuration: time.Duration(p95),
		PassAvg:          passAvg,
		PassPct:          passPct,
		FramesPerSecond:  framesPerSec,
		FrameDuration:    p.frameDuration,
		FPS:              fps,
	}
}

// LogStats logs performance statistics.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_frame_us", s.AvgFrameDuration.Microseconds(),
		"min_frame_us", s.MinFrameDuration.Microseconds(),
		"max_frame_us", s.MaxFrameDuration.Microseconds(),
		"p95_frame_us", s.P95FrameDuration.Microseconds(),
		"frames_per_sec", int(s.FramesPerSecond),
	}

	if s.FPS > 0 {
		attrs = append(attrs, "fps", int(s.FPS))
	}

	for _, pass := range passOrder {
		if pct, ok := s.PassPct[pass]; ok && pct > 0.1 {
			attrs = append(attrs, pass+"_pct", float64(int(pct*10))/10.0)
		}
	}

	slog.Info("perf", attrs...)
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_frame_us", s.AvgFrameDuration.Microseconds()),
		slog.Int64("std_frame_us", s.StdFrameDuration.Microseconds()),
		slog.Int64("p95_frame_us", s.P95FrameDuration.Microseconds()),
		slog.Float64("frames_per_sec", s.FramesPerSecond),
	}

	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}

	for _, pass := range passOrder {
		if pct, ok := s.PassPct[pass]; ok {
			attrs = append(attrs, slog.Float64(pass+"_pct", pct))
		}
	}

	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is a flat struct for CSV export of performance stats.
type PerfStatsCSV struct {
	WindowEnd    int32   `csv:"window_end"`
	AvgFrameUS   int64   `csv:"avg_frame_us"`
	MinFrameUS   int64   `csv:"min_frame_us"`
	MaxFrameUS   int64   `csv:"max_frame_us"`
	StdFrameUS   int64   `csv:"std_frame_us"`
	P95FrameUS   int64   `csv:"p95_frame_us"`
	FramesPerSec float64 `csv:"frames_per_sec"`
	FPS          float64 `csv:"fps"`
	InputPct     float64 `csv:"input_pct"`
	CleanupPct   float64 `csv:"cleanup_pct"`
	CameraPct    float64 `csv:"camera_pct"`
	CreationPct  float64 `csv:"creation_pct"`
	BoundsPct    float64 `csv:"bounds_pct"`
	GroupPct     float64 `csv:"group_pct"`
	PickPct      float64 `csv:"pick_pct"`
	DragBoxPct   float64 `csv:"dragbox_pct"`
	CapturePct   float64 `csv:"capture_pct"`
	MotionPct    float64 `csv:"motion_pct"`
	TransformPct float64 `csv:"transform_pct"`
	SelBoundsPct float64 `csv:"selbounds_pct"`
	LayoutPct    float64 `csv:"layout_pct"`
	RenderPct    float64 `csv:"render_pct"`
}

// ToCSV converts PerfStats to a flat CSV-friendly struct.
func (s PerfStats) ToCSV(windowEnd int32) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:    windowEnd,
		AvgFrameUS:   s.AvgFrameDuration.Microseconds(),
		MinFrameUS:   s.MinFrameDuration.Microseconds(),
		MaxFrameUS:   s.MaxFrameDuration.Microseconds(),
		StdFrameUS:   s.StdFrameDuration.Microseconds(),
		P95FrameUS:   s.P95FrameDuration.Microseconds(),
		FramesPerSec: s.FramesPerSecond,
		FPS:          s.FPS,
		InputPct:     s.PassPct[PassInput],
		CleanupPct:   s.PassPct[PassCleanup],
		CameraPct:    s.PassPct[PassCamera],
		CreationPct:  s.PassPct[PassCreation],
		BoundsPct:    s.PassPct[PassBounds],
		GroupPct:     s.PassPct[PassGroup],
		PickPct:      s.PassPct[PassPick],
		DragBoxPct:   s.PassPct[PassDragBox],
		CapturePct:   s.PassPct[PassCapture],
		MotionPct:    s.PassPct[PassMotion],
		TransformPct: s.PassPct[PassTransform],
		SelBoundsPct: s.PassPct[PassSelBounds],
		LayoutPct:    s.PassPct[PassLayout],
		RenderPct:    s.PassPct[PassRender],
	}
}
