package ui

import (
	"github.com/pthm-cable/sandbox/camera"
	"github.com/pthm-cable/sandbox/config"
	"github.com/pthm-cable/sandbox/geom"
	"github.com/pthm-cable/sandbox/inspector"
	"github.com/pthm-cable/sandbox/layout"
	"github.com/pthm-cable/sandbox/systems"
	"github.com/pthm-cable/sandbox/telemetry"
)

// State is the scene configuration edited by the panels. The game reads it
// every frame; panels only write to it.
type State struct {
	Bounds systems.Bounds
	Group  systems.GroupTransform
	Spawn  systems.SpawnSettings
	GridX  int
	GridZ  int
	FOV    float32
	Flags  layout.Flags

	Overlays *OverlayRegistry

	requests Requests
}

// Requests are one-shot actions raised by buttons this frame.
type Requests struct {
	Create         bool
	RemoveAll      bool
	RemoveSelected bool
	ResetSelection bool
	ResetFOV       bool

	Preset    camera.Preset
	HasPreset bool
}

// TakeRequests returns and clears the pending requests.
func (s *State) TakeRequests() Requests {
	r := s.requests
	s.requests = Requests{}
	return r
}

// NewState builds the initial panel state from configuration.
func NewState(cfg *config.Config) State {
	return State{
		Bounds: systems.Bounds{X: cfg.Bounds.X, Z: cfg.Bounds.Z, YHeight: cfg.Bounds.YHeight}.Clamp(cfg.Bounds.Min),
		Group:  systems.IdentityGroup(),
		Spawn: systems.SpawnSettings{
			Mode:       systems.PlaceRandom,
			Count:      cfg.Particles.BatchCount,
			BallCenter: geom.FromArray(cfg.Particles.Ball.Center),
			BallRadius: cfg.Particles.Ball.Radius,
			CubeCenter: geom.FromArray(cfg.Particles.Cube.Center),
			CubeSize:   geom.FromArray(cfg.Particles.Cube.Size),
		},
		GridX: cfg.Grid.SizeX,
		GridZ: cfg.Grid.SizeZ,
		FOV:   cfg.Camera.FOV,
		Flags: layout.Flags{
			InspectorCollapsed: cfg.Layout.InspectorCollapsed,
			SplitCollapsed:     cfg.Layout.SplitCollapsed,
		},
		Overlays: NewOverlayRegistry(),
	}
}

// View is the read-only frame data the panels display. Transform and
// Motion are edited in place by the inspector panel.
type View struct {
	Particles int
	Selected  int
	Frame     int32

	Transform *systems.SelectionTransform
	Motion    *systems.Motion
	Details   []inspector.Section

	Camera   *camera.Camera
	Preset   camera.Preset
	Viewport geom.Rect // Physical pixels
	Scale    float32
	Cursor   geom.Vec2 // Logical pixels

	DragRect    geom.Rect // Window physical pixels
	DragVisible bool

	Perf   telemetry.PerfStats
	Passes *telemetry.PassRegistry
	FPS    int32
}

// UI owns the panel state and draws every panel.
type UI struct {
	State    State
	renderer *Renderer
	cfg      *config.Config
}

// New creates the UI and installs the raygui theme. Requires an open window.
func New(cfg *config.Config) *UI {
	theme := DefaultTheme(cfg)
	theme.Apply()
	return &UI{
		State:    NewState(cfg),
		renderer: NewRenderer(theme),
		cfg:      cfg,
	}
}

// Arrange measures the panels for a logical window size.
func (u *UI) Arrange(logicalW, logicalH float32) layout.Panels {
	return layout.Arrange(u.renderer.Theme.Chrome, u.State.Flags, logicalW, logicalH)
}

// Draw renders all panels and the drag box overlay. Values edited through
// sliders are clamped at the write site.
func (u *UI) Draw(p layout.Panels, v View) {
	u.drawDragBox(v)

	if p.StreamsVisible {
		u.drawStreams(p.Streams, v)
	}
	if p.SplitVisible {
		u.drawSplit(p.Split, v)
	}

	u.drawControls(p.Left)
	if p.RightVisible {
		u.drawInspector(p.Right, v)
	}
	u.drawBottomBar(p.Bottom, v)
	u.drawTopBar(p.TopBar)
	u.drawSecondBar(p.SecondBar, v)

	u.clampState()
}

// clampState enforces the configured ranges on every edited value.
func (u *UI) clampState() {
	s := &u.State
	s.Bounds = s.Bounds.Clamp(u.cfg.Bounds.Min)
	if s.Group.Scale < u.cfg.Group.ScaleMin {
		s.Group.Scale = u.cfg.Group.ScaleMin
	}
	if s.Spawn.Count < 1 {
		s.Spawn.Count = 1
	}
	maxSize := u.cfg.Grid.MaxSize
	s.GridX = min(max(s.GridX, 1), maxSize)
	s.GridZ = min(max(s.GridZ, 1), maxSize)
	s.FOV = min(max(s.FOV, u.cfg.Camera.MinFOV), u.cfg.Camera.MaxFOV)
}
