package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// DocumentEntry is the editable text surface. It offers every shortcut to
// OnShortcut first so application shortcuts keep working while it has focus.
// It never scrolls itself; the surrounding ScrollPane does.
type DocumentEntry struct {
	widget.Entry

	OnShortcut func(fyne.Shortcut) bool

	// OnCursorMoved runs after a key press was handled, so the view can keep
	// the cursor row visible.
	OnCursorMoved func()
}

func NewDocumentEntry() *DocumentEntry {
	e := &DocumentEntry{}
	e.MultiLine = true
	e.Wrapping = fyne.TextWrapOff
	e.Scroll = container.ScrollNone
	e.ExtendBaseWidget(e)
	return e
}

func (e *DocumentEntry) TypedShortcut(shortcut fyne.Shortcut) {
	if e.OnShortcut != nil && e.OnShortcut(shortcut) {
		return
	}
	e.Entry.TypedShortcut(shortcut)
}

func (e *DocumentEntry) TypedKey(key *fyne.KeyEvent) {
	e.Entry.TypedKey(key)
	if e.OnCursorMoved != nil {
		e.OnCursorMoved()
	}
}

// FitLines grows the entry to show lines rows.
func (e *DocumentEntry) FitLines(lines int) {
	if lines < 1 {
		lines = 1
	}
	e.SetMinRowsVisible(lines)
}
