// Package config provides configuration loading and access for the sandbox.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all sandbox configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Particles ParticlesConfig `yaml:"particles"`
	Bounds    BoundsConfig    `yaml:"bounds"`
	Group     GroupConfig     `yaml:"group"`
	Grid      GridConfig      `yaml:"grid"`
	Camera    CameraConfig    `yaml:"camera"`
	Selection SelectionConfig `yaml:"selection"`
	Layout    LayoutConfig    `yaml:"layout"`
	Motion    MotionConfig    `yaml:"motion"`
	Colors    ColorsConfig    `yaml:"colors"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
	HighDPI   bool   `yaml:"high_dpi"` // Request a physical-pixel framebuffer
}

// ParticlesConfig holds particle creation parameters.
type ParticlesConfig struct {
	Initial    int        `yaml:"initial"`     // Spawned at startup in random mode
	Radius     float32    `yaml:"radius"`      // Render and pick radius
	BatchCount int        `yaml:"batch_count"` // Default batch size for the create button
	MaxBatch   int        `yaml:"max_batch"`   // Upper bound of the batch slider
	Ball       BallConfig `yaml:"ball"`
	Cube       CubeConfig `yaml:"cube"`
	YMin       float32    `yaml:"y_min"` // Floor applied to ball/cube placements
}

// BallConfig holds defaults for spherical placement.
type BallConfig struct {
	Center [3]float32 `yaml:"center"`
	Radius float32    `yaml:"radius"`
}

// CubeConfig holds defaults for box placement.
type CubeConfig struct {
	Center [3]float32 `yaml:"center"`
	Size   [3]float32 `yaml:"size"`
}

// BoundsConfig holds the initial distribution volume.
type BoundsConfig struct {
	X       float32 `yaml:"x"`        // Full extent along X, centered on origin
	Z       float32 `yaml:"z"`        // Full extent along Z, centered on origin
	YHeight float32 `yaml:"y_height"` // Height above the fixed minimum Y
	Min     float32 `yaml:"min"`      // Write-site floor for every extent
	Max     float32 `yaml:"max"`      // Slider ceiling for X/Z
}

// GroupConfig holds group transform slider ranges.
type GroupConfig struct {
	OffsetRange float32 `yaml:"offset_range"` // Offsets slide in [-range, range]
	ScaleMin    float32 `yaml:"scale_min"`
	ScaleMax    float32 `yaml:"scale_max"`
}

// GridConfig holds floor grid parameters.
type GridConfig struct {
	SizeX      int     `yaml:"size_x"`
	SizeZ      int     `yaml:"size_z"`
	MaxSize    int     `yaml:"max_size"`
	Spacing    float32 `yaml:"spacing"`
	AxisLength float32 `yaml:"axis_length"`
}

// CameraConfig holds camera defaults and controller tuning.
type CameraConfig struct {
	Start          [3]float32 `yaml:"start"`
	Front          [3]float32 `yaml:"front"`
	Top            [3]float32 `yaml:"top"`
	FOV            float32    `yaml:"fov"` // Vertical, degrees
	MinFOV         float32    `yaml:"min_fov"`
	MaxFOV         float32    `yaml:"max_fov"`
	Near           float32    `yaml:"near"`
	Far            float32    `yaml:"far"`
	Sensitivity    float32    `yaml:"sensitivity"` // Radians per logical pixel
	Speed          float32    `yaml:"speed"`       // Units per second
	FastMultiplier float32    `yaml:"fast_multiplier"`
}

// SelectionConfig holds selection thresholds.
type SelectionConfig struct {
	MinDragDistance float32 `yaml:"min_drag_distance"` // Below this a box release is a deselect click
	VisualThreshold float32 `yaml:"visual_threshold"`  // Box visual shown once both sides exceed this
	ClickTravel     float32 `yaml:"click_travel"`      // Max left-button travel still counted as a pick
	BoundsPadding   float32 `yaml:"bounds_padding"`    // Padding around the selection AABB
	ScaleMin        float32 `yaml:"scale_min"`
	ScaleMax        float32 `yaml:"scale_max"`
	OffsetRange     float32 `yaml:"offset_range"`
}

// LayoutConfig holds panel measurements in logical pixels.
type LayoutConfig struct {
	TopBarHeight       float32 `yaml:"top_bar_height"`
	SecondBarHeight    float32 `yaml:"second_bar_height"`
	LeftPanelWidth     float32 `yaml:"left_panel_width"`
	PanelBorder        float32 `yaml:"panel_border"`
	BottomBarHeight    float32 `yaml:"bottom_bar_height"`
	InspectorCollapsed bool    `yaml:"inspector_collapsed"`
	SplitCollapsed     bool    `yaml:"split_collapsed"`
}

// MotionConfig holds the orbit motion parameters.
type MotionConfig struct {
	AngularSpeed float32 `yaml:"angular_speed"` // Radians per second
}

// ColorsConfig holds RGBA colors for scene elements.
type ColorsConfig struct {
	Background  [4]uint8 `yaml:"background"`
	Unselected  [4]uint8 `yaml:"unselected"`
	Picked      [4]uint8 `yaml:"picked"`
	BoxSelected [4]uint8 `yaml:"box_selected"`
	Grid        [4]uint8 `yaml:"grid"`
	SelectBox   [4]uint8 `yaml:"select_box"`
	Bounds      [4]uint8 `yaml:"bounds"`
	Trajectory  [4]uint8 `yaml:"trajectory"`
}

// TelemetryConfig holds frame timing parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // Seconds per aggregated window
	PerfWindow  int     `yaml:"perf_window"`  // Frames kept for rolling averages
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32      float32 // Screen.Width as float32
	ScreenH32      float32 // Screen.Height as float32
	TopBarsHeight  float32 // Layout.TopBarHeight + Layout.SecondBarHeight
	LeftPanelTotal float32 // Layout.LeftPanelWidth + 2*Layout.PanelBorder
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values that would make the scene unusable.
func (c *Config) validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Particles.Radius <= 0 {
		return fmt.Errorf("particles.radius must be positive, got %v", c.Particles.Radius)
	}
	if c.Camera.MinFOV <= 0 || c.Camera.MaxFOV < c.Camera.MinFOV {
		return fmt.Errorf("camera fov range invalid: [%v, %v]", c.Camera.MinFOV, c.Camera.MaxFOV)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera clip planes invalid: near=%v far=%v", c.Camera.Near, c.Camera.Far)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.TopBarsHeight = c.Layout.TopBarHeight + c.Layout.SecondBarHeight
	c.Derived.LeftPanelTotal = c.Layout.LeftPanelWidth + 2*c.Layout.PanelBorder

	if c.Bounds.Min <= 0 {
		c.Bounds.Min = 0.1
	}
	if c.Particles.MaxBatch < c.Particles.BatchCount {
		c.Particles.MaxBatch = c.Particles.BatchCount
	}
	if c.Camera.FastMultiplier == 0 {
		c.Camera.FastMultiplier = 1
	}
	if c.Telemetry.PerfWindow < 1 {
		c.Telemetry.PerfWindow = 60
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
