package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// GutterView displays line numbers. It is a disabled multi-line entry so its
// rows share the document entry's text metrics and insets, which keeps every
// number level with its line. Being disabled it can be neither focused nor
// edited.
type GutterView struct {
	widget.Entry
}

func NewGutterView() *GutterView {
	g := &GutterView{}
	g.MultiLine = true
	g.Wrapping = fyne.TextWrapOff
	g.Scroll = container.ScrollNone
	g.ExtendBaseWidget(g)
	g.SetText("1")
	g.Disable()
	return g
}

// FitLines matches DocumentEntry.FitLines so both columns have equal height.
func (g *GutterView) FitLines(lines int) {
	if lines < 1 {
		lines = 1
	}
	g.SetMinRowsVisible(lines)
}
