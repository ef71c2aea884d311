package telemetry

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec float64

	// Current window tracking
	windowStartSec   float64
	windowStartFrame int32

	// Event counters for current window
	picks         int
	deselects     int
	boxSelects    int
	boxAdded      int
	clears        int
	created       int
	removed       int
	presetChanges int

	// Frame deltas for the current window, in milliseconds
	frameTimes []float64
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in wall-clock seconds.
func NewCollector(windowDurationSec float64) *Collector {
	if windowDurationSec <= 0 {
		windowDurationSec = 5
	}
	return &Collector{windowDurationSec: windowDurationSec}
}

// WindowDurationSec returns the configured window length.
func (c *Collector) WindowDurationSec() float64 {
	return c.windowDurationSec
}

// Record counts an event in the current window.
func (c *Collector) Record(e Event) {
	switch e.Type {
	case EventPick:
		c.picks++
	case EventDeselect:
		c.deselects++
	case EventBoxSelect:
		c.boxSelects++
		c.boxAdded += e.Count
	case EventClear:
		c.clears++
	case EventCreate:
		c.created += e.Count
	case EventRemove:
		c.removed += e.Count
	case EventPreset:
		c.presetChanges++
	}
}

// RecordFrameTime records one frame delta in seconds.
func (c *Collector) RecordFrameTime(dt float32) {
	c.frameTimes = append(c.frameTimes, float64(dt)*1000)
}

// ShouldFlush returns true if the window has elapsed at time nowSec.
func (c *Collector) ShouldFlush(nowSec float64) bool {
	return nowSec-c.windowStartSec >= c.windowDurationSec
}

// Flush produces a WindowStats and resets counters for the next window.
// particles and selected are the scene counts at the end of the window.
func (c *Collector) Flush(frame int32, nowSec float64, particles, selected int) WindowStats {
	mean, std, p50, p95 := ComputeDistribution(c.frameTimes)

	stats := WindowStats{
		WindowStartFrame: c.windowStartFrame,
		WindowEndFrame:   frame,
		TimeSec:          nowSec,

		Particles: particles,
		Selected:  selected,

		Picks:         c.picks,
		Deselects:     c.deselects,
		BoxSelects:    c.boxSelects,
		BoxAdded:      c.boxAdded,
		Clears:        c.clears,
		Created:       c.created,
		Removed:       c.removed,
		PresetChanges: c.presetChanges,

		FrameMeanMS: mean,
		FrameStdMS:  std,
		FrameP50MS:  p50,
		FrameP95MS:  p95,
	}

	c.reset(frame, nowSec)
	return stats
}

func (c *Collector) reset(frame int32, nowSec float64) {
	c.windowStartFrame = frame
	c.windowStartSec = nowSec
	c.picks = 0
	c.deselects = 0
	c.boxSelects = 0
	c.boxAdded = 0
	c.clears = 0
	c.created = 0
	c.removed = 0
	c.presetChanges = 0
	c.frameTimes = c.frameTimes[:0]
}
