package telemetry

import (
	"log/slog"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartFrame int32   `csv:"-"`
	WindowEndFrame   int32   `csv:"window_end"`
	TimeSec          float64 `csv:"time"`

	// Scene state at window end
	Particles int `csv:"particles"`
	Selected  int `csv:"selected"`

	// Events during window
	Picks         int `csv:"picks"`
	Deselects     int `csv:"deselects"`
	BoxSelects    int `csv:"box_selects"`
	BoxAdded      int `csv:"box_added"`
	Clears        int `csv:"clears"`
	Created       int `csv:"created"`
	Removed       int `csv:"removed"`
	PresetChanges int `csv:"preset_changes"`

	// Frame delta distribution in milliseconds
	FrameMeanMS float64 `csv:"frame_mean_ms"`
	FrameStdMS  float64 `csv:"frame_std_ms"`
	FrameP50MS  float64 `csv:"frame_p50_ms"`
	FrameP95MS  float64 `csv:"frame_p95_ms"`
}

// ComputeDistribution returns the mean, sample standard deviation and the
// empirical 50th and 95th percentiles of values. All zero for an empty
// slice; std is zero for fewer than two values.
func ComputeDistribution(values []float64) (mean, std, p50, p95 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0
	}

	mean = stat.Mean(values, nil)
	if n > 1 {
		std = stat.StdDev(values, nil)
		if math.IsNaN(std) {
			std = 0
		}
	}

	// Quantile requires sorted input
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p95 = stat.Quantile(0.95, stat.Empirical, sorted, nil)

	return mean, std, p50, p95
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartFrame)),
		slog.Int("window_end", int(s.WindowEndFrame)),
		slog.Float64("time", s.TimeSec),
		slog.Int("particles", s.Particles),
		slog.Int("selected", s.Selected),
		slog.Int("picks", s.Picks),
		slog.Int("deselects", s.Deselects),
		slog.Int("box_selects", s.BoxSelects),
		slog.Int("box_added", s.BoxAdded),
		slog.Int("clears", s.Clears),
		slog.Int("created", s.Created),
		slog.Int("removed", s.Removed),
		slog.Int("preset_changes", s.PresetChanges),
		slog.Float64("frame_mean_ms", s.FrameMeanMS),
		slog.Float64("frame_std_ms", s.FrameStdMS),
		slog.Float64("frame_p50_ms", s.FrameP50MS),
		slog.Float64("frame_p95_ms", s.FrameP95MS),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndFrame,
		"time", s.TimeSec,
		"particles", s.Particles,
		"selected", s.Selected,
		"picks", s.Picks,
		"deselects", s.Deselects,
		"box_selects", s.BoxSelects,
		"box_added", s.BoxAdded,
		"clears", s.Clears,
		"created", s.Created,
		"removed", s.Removed,
		"preset_changes", s.PresetChanges,
		"frame_mean_ms", s.FrameMeanMS,
		"frame_p95_ms", s.FrameP95MS,
	)
}
