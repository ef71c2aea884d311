// Package ui draws the sandbox panels with raygui and writes edits into a
// shared State that the game reads each frame.
package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/sandbox/config"
	"github.com/pthm-cable/sandbox/layout"
)

// textSize is the raygui and label font size.
const textSize = 12

// Theme holds UI styling constants.
type Theme struct {
	PanelBg       rl.Color
	PanelBorder   rl.Color
	SectionHeader rl.Color
	LabelColor    rl.Color
	ValueColor    rl.Color
	BarBg         rl.Color
	BarFill       rl.Color
	SelectBox     rl.Color
	SelectBoxLine rl.Color

	Padding        float32
	LineHeight     float32
	LabelWidth     float32
	ValueWidth     float32
	FontSize       int32
	HeaderFontSize int32

	Chrome layout.Chrome
}

// DefaultTheme returns the theme for a loaded configuration.
func DefaultTheme(cfg *config.Config) Theme {
	box := ColorFrom(cfg.Colors.SelectBox)
	return Theme{
		PanelBg:       rl.Color{R: 30, G: 30, B: 35, A: 240},
		PanelBorder:   rl.Color{R: 70, G: 70, B: 80, A: 255},
		SectionHeader: rl.Color{R: 255, G: 210, B: 120, A: 255},
		LabelColor:    rl.LightGray,
		ValueColor:    rl.White,
		BarBg:         rl.Color{R: 40, G: 40, B: 40, A: 255},
		BarFill:       rl.Color{R: 100, G: 150, B: 200, A: 255},
		SelectBox:     box,
		SelectBoxLine: rl.Color{R: box.R, G: box.G, B: box.B, A: 255},

		Padding:        8,
		LineHeight:     20,
		LabelWidth:     62,
		ValueWidth:     48,
		FontSize:       textSize,
		HeaderFontSize: 14,

		Chrome: layout.Chrome{
			TopBarHeight:    cfg.Layout.TopBarHeight,
			SecondBarHeight: cfg.Layout.SecondBarHeight,
			LeftPanelWidth:  cfg.Layout.LeftPanelWidth,
			PanelBorder:     cfg.Layout.PanelBorder,
			BottomBarHeight: cfg.Layout.BottomBarHeight,
		},
	}
}

// Apply installs the theme as the raygui default style.
func (t Theme) Apply() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(t.PanelBg))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(45, 45, 50, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(rl.NewColor(60, 60, 70, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(rl.NewColor(70, 80, 90, 255)))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(200, 200, 200, 255)))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(rl.White))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(rl.Yellow))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(t.PanelBorder))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(rl.NewColor(100, 100, 120, 255)))
	gui.SetStyle(gui.DEFAULT, gui.LINE_COLOR, gui.NewColorPropertyValue(rl.NewColor(60, 60, 60, 255)))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, textSize)
}

// ColorFrom converts a config RGBA quadruple.
func ColorFrom(c [4]uint8) rl.Color {
	return rl.Color{R: c[0], G: c[1], B: c[2], A: c[3]}
}
