package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/sandbox/geom"
	"github.com/pthm-cable/sandbox/inspector"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with a theme.
func NewRenderer(theme Theme) *Renderer {
	return &Renderer{Theme: theme}
}

func rect(r geom.Rect) rl.Rectangle {
	return rl.Rectangle{X: r.X, Y: r.Y, Width: r.W, Height: r.H}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(area geom.Rect) {
	rl.DrawRectangleRec(rect(area), r.Theme.PanelBg)
	rl.DrawRectangleLinesEx(rect(area), 1, r.Theme.PanelBorder)
}

// DrawSectionHeader draws a section header and returns the new Y position.
func (r *Renderer) DrawSectionHeader(x, y float32, title string) float32 {
	rl.DrawText(title, int32(x), int32(y+3), r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	return y + r.Theme.LineHeight
}

// DrawLabel draws a text label.
func (r *Renderer) DrawLabel(x, y float32, text string) {
	rl.DrawText(text, int32(x), int32(y+4), r.Theme.FontSize, r.Theme.LabelColor)
}

// DrawLabelValue draws a label and value on the same line.
func (r *Renderer) DrawLabelValue(x, y float32, label, value string) float32 {
	rl.DrawText(label+":", int32(x), int32(y+4), r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawText(value, int32(x+r.Theme.LabelWidth), int32(y+4), r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

// SliderFloat draws a labeled slider with its value and returns the new value.
func (r *Renderer) SliderFloat(x, y, width float32, label string, value, min, max float32, format string) float32 {
	r.DrawLabel(x, y, label)
	bar := rl.Rectangle{
		X:      x + r.Theme.LabelWidth,
		Y:      y + 2,
		Width:  width - r.Theme.LabelWidth - r.Theme.ValueWidth,
		Height: r.Theme.LineHeight - 4,
	}
	next := gui.SliderBar(bar, "", "", value, min, max)
	rl.DrawText(fmt.Sprintf(format, next), int32(bar.X+bar.Width+4), int32(y+4), r.Theme.FontSize, r.Theme.ValueColor)
	return next
}

// SliderInt draws a labeled integer slider.
func (r *Renderer) SliderInt(x, y, width float32, label string, value, min, max int) int {
	v := r.SliderFloat(x, y, width, label, float32(value), float32(min), float32(max), "%.0f")
	return int(v + 0.5)
}

// SliderVec3 draws one slider per axis under a header. Returns the new
// vector and Y position.
func (r *Renderer) SliderVec3(x, y, width float32, title string, v geom.Vec3, min, max float32) (geom.Vec3, float32) {
	y = r.DrawSectionHeader(x, y, title)
	v.X = r.SliderFloat(x, y, width, "X", v.X, min, max, "%.2f")
	y += r.Theme.LineHeight
	v.Y = r.SliderFloat(x, y, width, "Y", v.Y, min, max, "%.2f")
	y += r.Theme.LineHeight
	v.Z = r.SliderFloat(x, y, width, "Z", v.Z, min, max, "%.2f")
	return v, y + r.Theme.LineHeight
}

// Check draws a checkbox and returns its state.
func (r *Renderer) Check(x, y float32, label string, checked bool) bool {
	box := rl.Rectangle{X: x, Y: y + 3, Width: r.Theme.LineHeight - 6, Height: r.Theme.LineHeight - 6}
	return gui.CheckBox(box, label, checked)
}

// Button draws a button across width.
func (r *Renderer) Button(x, y, width float32, label string) bool {
	return gui.Button(rl.Rectangle{X: x, Y: y + 1, Width: width, Height: r.Theme.LineHeight - 2}, label)
}

// Toggle draws a button that shows its active state. Returns whether it
// was clicked.
func (r *Renderer) Toggle(x, y, width float32, label string, active bool) bool {
	if active {
		rl.DrawRectangleRec(rl.Rectangle{X: x - 1, Y: y, Width: width + 2, Height: r.Theme.LineHeight}, r.Theme.SectionHeader)
	}
	return r.Button(x, y, width, label)
}

// DrawBar draws a horizontal bar scaled to max.
func (r *Renderer) DrawBar(x, y, width float32, label string, value, max float32) float32 {
	ratio := value / max
	if ratio > 1 {
		ratio = 1
	}
	if ratio < 0 {
		ratio = 0
	}

	r.DrawLabel(x, y, label)
	barX := x + r.Theme.LabelWidth
	barW := width - r.Theme.LabelWidth - r.Theme.ValueWidth
	barH := r.Theme.LineHeight - 8
	rl.DrawRectangleRec(rl.Rectangle{X: barX, Y: y + 4, Width: barW, Height: barH}, r.Theme.BarBg)
	rl.DrawRectangleRec(rl.Rectangle{X: barX, Y: y + 4, Width: barW * ratio, Height: barH}, r.Theme.BarFill)
	rl.DrawText(fmt.Sprintf("%.3f", value), int32(barX+barW+4), int32(y+4), r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

// DrawField renders an inspector field using its widget type.
func (r *Renderer) DrawField(x, y, width float32, f inspector.Field) float32 {
	if f.Widget == inspector.WidgetBar {
		if v, ok := inspector.GetFloatValue(f.Value); ok {
			return r.DrawBar(x, y, width, f.Name, v, inspector.GetMax(f.Options))
		}
	}
	return r.DrawLabelValue(x, y, f.Name, inspector.FormatValue(f.Value, f.Options["fmt"]))
}

// DrawSections renders inspector sections top to bottom.
func (r *Renderer) DrawSections(x, y, width float32, sections []inspector.Section) float32 {
	for _, s := range sections {
		y = r.DrawSectionHeader(x, y, s.Title)
		for _, f := range s.Fields {
			y = r.DrawField(x+4, y, width-4, f)
		}
	}
	return y
}
