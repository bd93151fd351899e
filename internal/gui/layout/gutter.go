package layout

import (
	"fyne.io/fyne/v2"
)

// GutterLayout places objects left to right: every object but the last gets
// its minimum width and the last one fills the remaining space. OnResize runs
// whenever the laid out size changes.
type GutterLayout struct {
	onResize func(fyne.Size)
	last     fyne.Size
}

func NewGutterLayout(onResize func(fyne.Size)) *GutterLayout {
	return &GutterLayout{onResize: onResize}
}

func (gl *GutterLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	if len(objects) == 0 {
		return
	}

	x := float32(0)
	for i, obj := range objects {
		width := obj.MinSize().Width
		if i == len(objects)-1 {
			width = containerSize.Width - x
			if width < 0 {
				width = 0
			}
		}

		obj.Resize(fyne.NewSize(width, containerSize.Height))
		obj.Move(fyne.NewPos(x, 0))
		x += width
	}

	if containerSize != gl.last {
		gl.last = containerSize
		if gl.onResize != nil {
			gl.onResize(containerSize)
		}
	}
}

func (gl *GutterLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	totalWidth := float32(0)
	maxHeight := float32(0)

	for _, obj := range objects {
		objMin := obj.MinSize()
		totalWidth += objMin.Width
		if objMin.Height > maxHeight {
			maxHeight = objMin.Height
		}
	}

	return fyne.NewSize(totalWidth, maxHeight)
}
