package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"

	"notepad/internal/appearance"
	"notepad/internal/commands"
	"notepad/internal/gui/components"
	"notepad/internal/gui/layout"
	"notepad/internal/gutter"
	"notepad/internal/logger"
)

// Manager owns the editor view: document entry, line-number gutter, their
// scroll panes and the window chrome around them. It is the editor.Surface.
type Manager struct {
	window     fyne.Window
	logger     logger.Logger
	isShutdown bool

	entry       *components.DocumentEntry
	gutterView  *components.GutterView
	docPane     *components.ScrollPane
	gutterPane  *components.ScrollPane
	gutterBg    *canvas.Rectangle
	separator   *canvas.Rectangle
	docTheme    *container.ThemeOverride
	gutterTheme *container.ThemeOverride
	editorArea  *fyne.Container

	mirror    *gutter.Mirror
	sync      *gutter.Synchronizer
	digits    int
	revealing bool

	// replacing is set while the buffer is replaced programmatically so the
	// change is not reported as a user edit.
	replacing bool

	editHandler func()
	commands    *commands.Registry
}

func NewManager(window fyne.Window, log logger.Logger) (*Manager, error) {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	m := &Manager{
		window:     window,
		logger:     log,
		entry:      components.NewDocumentEntry(),
		gutterView: components.NewGutterView(),
		gutterBg:   canvas.NewRectangle(appearance.LightPalette.GutterBackground),
		separator:  canvas.NewRectangle(appearance.LightPalette.Separator),
	}

	m.docPane = components.NewScrollPane(m.entry, container.ScrollBoth)
	m.gutterPane = components.NewScrollPane(m.gutterView, container.ScrollVerticalOnly)
	m.separator.SetMinSize(fyne.NewSize(1, 0))

	m.mirror = gutter.NewMirror(m.gutterView)
	m.sync = gutter.NewSynchronizer(m.docPane, m.gutterPane, log)

	m.docTheme = container.NewThemeOverride(m.docPane.Scroll, theme.DefaultTheme())
	m.gutterTheme = container.NewThemeOverride(
		container.NewStack(m.gutterBg, m.gutterPane.Scroll),
		theme.DefaultTheme(),
	)
	m.editorArea = container.New(
		layout.NewGutterLayout(m.handleResize),
		m.gutterTheme, m.separator, m.docTheme,
	)

	m.wireEvents()
	m.refreshLines("")

	log.Info("GUIManager", "editor view initialized", nil)
	return m, nil
}

func (m *Manager) wireEvents() {
	m.entry.OnChanged = m.handleChanged
	m.entry.OnCursorMoved = m.revealCursor
	m.entry.OnShortcut = m.handleShortcut

	m.docPane.OnScrolled = func(fyne.Position) {
		m.sync.BufferScrolled()
	}
	m.gutterPane.OnScrolled = func(fyne.Position) {
		m.sync.MoveTo(m.gutterPane.ScrollFraction())
	}
}

func (m *Manager) GetMainContainer() fyne.CanvasObject {
	return m.editorArea
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

// Text returns the whole document buffer.
func (m *Manager) Text() string {
	return m.entry.Text
}

// SetText replaces the buffer without reporting an edit and scrolls to the top.
func (m *Manager) SetText(text string) {
	m.replacing = true
	m.entry.SetText(text)
	m.replacing = false

	m.refreshLines(text)
	m.sync.MoveTo(0)
}

func (m *Manager) SetTitle(title string) {
	m.window.SetTitle(title)
}

// SetEditHandler registers the callback for user edits of the buffer.
func (m *Manager) SetEditHandler(handler func()) {
	m.editHandler = handler
}

// LineCount is the number of lines currently shown in the gutter.
func (m *Manager) LineCount() int {
	return m.mirror.Lines()
}

// GutterText is the content of the line-number gutter.
func (m *Manager) GutterText() string {
	return m.gutterView.Text
}

// Focus gives the document keyboard focus.
func (m *Manager) Focus() {
	m.window.Canvas().Focus(m.entry)
}

// ApplyThemes restyles the window chrome, the document and the gutter, then
// recomputes the gutter for the new font metrics.
func (m *Manager) ApplyThemes(themes appearance.Themes) {
	if app := fyne.CurrentApp(); app != nil {
		app.Settings().SetTheme(themes.Chrome)
	}

	m.docTheme.Theme = themes.Document
	m.gutterTheme.Theme = themes.Gutter
	m.gutterBg.FillColor = themes.Palette.GutterBackground
	m.separator.FillColor = themes.Palette.Separator

	m.docTheme.Refresh()
	m.gutterTheme.Refresh()
	m.gutterBg.Refresh()
	m.separator.Refresh()

	m.mirror.Invalidate()
	m.digits = 0
	m.refreshLines(m.entry.Text)

	m.logger.Debug("GUIManager", "themes applied", map[string]interface{}{
		"variant": themes.Variant.String(),
	})
}

// WindowSize returns the current content size of the window in whole pixels.
func (m *Manager) WindowSize() (int, int) {
	size := m.window.Canvas().Size()
	return int(size.Width), int(size.Height)
}

func (m *Manager) handleChanged(text string) {
	m.refreshLines(text)
	if m.replacing {
		return
	}
	if m.editHandler != nil {
		m.editHandler()
	}
	m.revealCursor()
}

func (m *Manager) handleResize(fyne.Size) {
	m.refreshLines(m.entry.Text)
}

func (m *Manager) refreshLines(text string) {
	before := m.mirror.Lines()
	m.mirror.Sync(text)
	count := m.mirror.Lines()
	m.entry.FitLines(count)
	m.gutterView.FitLines(count)

	// Panes lay out their content again so offsets clamp to the new height.
	m.docPane.Refresh()
	if count != before {
		m.gutterPane.Refresh()
	}

	if digits := m.mirror.Width(); digits != m.digits {
		m.digits = digits
		m.editorArea.Refresh()
	}
	m.sync.BufferScrolled()
}

// revealCursor keeps the cursor row visible after typing or key navigation,
// since the entry grows to the full document height and never scrolls itself.
// It is not driven by OnCursorChanged, which also fires on every refresh.
func (m *Manager) revealCursor() {
	if m.revealing {
		return
	}
	m.revealing = true
	defer func() { m.revealing = false }()

	row := m.docPane.RowHeight(m.mirror.Lines())
	top := float32(m.entry.CursorRow) * row
	m.docPane.Reveal(top, top+row)
	m.sync.BufferScrolled()
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}
