package inspector

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/sandbox/components"
	"github.com/pthm-cable/sandbox/geom"
	"github.com/pthm-cable/sandbox/systems"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		tag     string
		widget  Widget
		options map[string]string
	}{
		{"", WidgetAuto, map[string]string{}},
		{"bar", WidgetBar, map[string]string{}},
		{"bar,max:200", WidgetBar, map[string]string{"max": "200"}},
		{"label, fmt:%.1f", WidgetLabel, map[string]string{"fmt": "%.1f"}},
		{"skip", WidgetSkip, map[string]string{}},
		{"wheel", WidgetAuto, map[string]string{}},
	}
	for _, tt := range tests {
		w, opts := ParseTag(tt.tag)
		if w != tt.widget {
			t.Errorf("ParseTag(%q) widget = %v, want %v", tt.tag, w, tt.widget)
		}
		if len(opts) != len(tt.options) {
			t.Errorf("ParseTag(%q) options = %v, want %v", tt.tag, opts, tt.options)
		}
		for k, v := range tt.options {
			if opts[k] != v {
				t.Errorf("ParseTag(%q) option %s = %q, want %q", tt.tag, k, opts[k], v)
			}
		}
	}
}

type sample struct {
	Speed  float32 `inspect:"bar,max:10"`
	Hidden int     `inspect:"skip"`
	Count  int
	secret bool
}

func TestExtractFields(t *testing.T) {
	fields := ExtractFields(&sample{Speed: 2.5, Count: 3})
	if len(fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(fields))
	}
	if fields[0].Name != "Speed" || fields[0].Widget != WidgetBar || GetMax(fields[0].Options) != 10 {
		t.Errorf("field 0 = %+v", fields[0])
	}
	if fields[1].Name != "Count" || fields[1].Widget != WidgetLabel {
		t.Errorf("field 1 = %+v", fields[1])
	}
}

func TestExtractFieldsStringer(t *testing.T) {
	tint := components.TintBoxed
	fields := ExtractFields(&tint)
	if len(fields) != 1 {
		t.Fatalf("got %d fields, want 1", len(fields))
	}
	if got := FormatValue(fields[0].Value, ""); got != "Boxed" {
		t.Errorf("FormatValue = %q, want Boxed", got)
	}
}

func TestExtractFieldsNonStruct(t *testing.T) {
	if fields := ExtractFields(42); fields != nil {
		t.Errorf("expected nil, got %v", fields)
	}
	var nilPos *components.Position
	if fields := ExtractFields(nilPos); fields != nil {
		t.Errorf("expected nil for nil pointer, got %v", fields)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value any
		fmt   string
		want  string
	}{
		{float32(1.23456), "", "1.23"},
		{float64(2), "", "2.00"},
		{float32(0.5), "%.3f", "0.500"},
		{uint32(7), "", "7"},
		{components.TintPicked, "", "Picked"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.value, tt.fmt); got != tt.want {
			t.Errorf("FormatValue(%v, %q) = %q, want %q", tt.value, tt.fmt, got, tt.want)
		}
	}
}

func TestGetMaxDefault(t *testing.T) {
	if got := GetMax(map[string]string{"max": "abc"}); got != 1 {
		t.Errorf("GetMax invalid = %v, want 1", got)
	}
}

func TestInspectorSections(t *testing.T) {
	p := systems.NewParticles(ecs.NewWorld())
	e := p.Spawn(geom.V3(1, 2, 3), geom.V3(0.25, 0.5, 0.75), 0.1)

	ins := New()
	if ins.Sections(p) != nil {
		t.Error("nothing focused should give no sections")
	}

	ins.Focus(e)
	sections := ins.Sections(p)
	if len(sections) != 4 {
		t.Fatalf("got %d sections, want 4", len(sections))
	}
	pos := sections[1]
	if pos.Title != "Position" || len(pos.Fields) != 3 {
		t.Fatalf("position section = %+v", pos)
	}
	if got := FormatValue(pos.Fields[1].Value, pos.Fields[1].Options["fmt"]); got != "2.000" {
		t.Errorf("Y = %q, want 2.000", got)
	}
	if sections[2].Fields[0].Widget != WidgetBar {
		t.Error("normalized fields should render as bars")
	}
}

func TestInspectorClearsRemovedFocus(t *testing.T) {
	p := systems.NewParticles(ecs.NewWorld())
	e := p.Spawn(geom.V3(0, 1, 0), geom.V3(0.5, 0.5, 0.5), 0.1)

	ins := New()
	ins.Focus(e)
	p.Despawn(e)

	if _, ok := ins.Focused(p); ok {
		t.Error("removed particle should not stay focused")
	}
	if ins.Sections(p) != nil {
		t.Error("expected no sections after removal")
	}
}
