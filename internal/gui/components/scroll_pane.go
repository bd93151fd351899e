package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"notepad/internal/gutter"
)

// ScrollPane exposes a scroll container as a gutter.Pane. Fractions address
// the vertical axis only; the horizontal offset is left alone.
type ScrollPane struct {
	*container.Scroll
}

func NewScrollPane(content fyne.CanvasObject, direction container.ScrollDirection) *ScrollPane {
	scroll := container.NewScroll(content)
	scroll.Direction = direction
	return &ScrollPane{Scroll: scroll}
}

func (p *ScrollPane) contentHeight() float32 {
	height := p.Content.MinSize().Height
	if view := p.Size().Height; view > height {
		return view
	}
	return height
}

func (p *ScrollPane) maxOffset() float32 {
	limit := p.contentHeight() - p.Size().Height
	if limit < 0 {
		return 0
	}
	return limit
}

func (p *ScrollPane) ScrollFraction() float64 {
	limit := p.maxOffset()
	if limit <= 0 {
		return 0
	}
	return gutter.Clamp(float64(p.Offset.Y / limit))
}

func (p *ScrollPane) SetScrollFraction(fraction float64) {
	p.scrollTo(float32(gutter.Clamp(fraction)) * p.maxOffset())
}

// Reveal scrolls the least distance that brings [top, bottom] into view.
// A pane that has not been laid out yet is left alone.
func (p *ScrollPane) Reveal(top, bottom float32) {
	view := p.Size().Height
	if view <= 0 {
		return
	}
	y := p.Offset.Y
	switch {
	case top < y:
		y = top
	case bottom > y+view:
		y = bottom - view
	default:
		return
	}
	p.scrollTo(y)
}

// RowHeight estimates the height of one of lines rows of content.
func (p *ScrollPane) RowHeight(lines int) float32 {
	if lines < 1 {
		lines = 1
	}
	return p.Content.MinSize().Height / float32(lines)
}

func (p *ScrollPane) scrollTo(y float32) {
	if limit := p.maxOffset(); y > limit {
		y = limit
	}
	if y < 0 {
		y = 0
	}
	if p.Offset.Y == y {
		return
	}
	p.Offset = fyne.NewPos(p.Offset.X, y)
	p.Refresh()
}
