package gui

import (
	"strconv"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notepad/internal/appearance"
	"notepad/internal/commands"
	"notepad/internal/preferences"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	test.NewTempApp(t)

	w := test.NewTempWindow(t, widget.NewLabel(""))
	m, err := NewManager(w, nil)
	require.NoError(t, err)

	w.SetContent(m.GetMainContainer())
	w.Resize(fyne.NewSize(400, 300))
	return m
}

func TestSetTextUpdatesGutterWithoutReportingEdit(t *testing.T) {
	m := newTestManager(t)
	edits := 0
	m.SetEditHandler(func() { edits++ })

	m.SetText("one\ntwo\nthree")

	assert.Equal(t, "one\ntwo\nthree", m.Text())
	assert.Equal(t, 3, m.LineCount())
	assert.Equal(t, "1\n2\n3", m.GutterText())
	assert.Equal(t, 0, edits)
}

func TestTypingReportsEditAndGrowsGutter(t *testing.T) {
	m := newTestManager(t)
	edits := 0
	m.SetEditHandler(func() { edits++ })

	test.Type(m.entry, "hello")
	m.entry.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	test.Type(m.entry, "world")

	assert.Positive(t, edits)
	assert.Equal(t, 2, m.LineCount())
	assert.Equal(t, "1\n2", m.GutterText())
}

func TestEmptyDocumentShowsOneLine(t *testing.T) {
	m := newTestManager(t)

	m.SetText("")

	assert.Equal(t, "1", m.GutterText())
}

func TestSetTitle(t *testing.T) {
	m := newTestManager(t)

	m.SetTitle("Notepad - notes.txt")

	assert.Equal(t, "Notepad - notes.txt", m.GetWindow().Title())
}

func TestEntryShortcutsDispatchCommands(t *testing.T) {
	m := newTestManager(t)
	registry := commands.NewRegistry(nil)
	var got []commands.ID
	for _, id := range []commands.ID{commands.Save, commands.SaveAs, commands.IncreaseFont, commands.DecreaseFont} {
		registry.Register(id, func(e commands.Event) { got = append(got, e.Command) })
	}
	m.BindCommands(registry)

	ctrl := fyne.KeyModifierShortcutDefault
	m.entry.TypedShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: ctrl})
	m.entry.TypedShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: ctrl | fyne.KeyModifierShift})
	m.entry.TypedShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyEqual, Modifier: ctrl})
	m.entry.TypedShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyMinus, Modifier: ctrl})

	assert.Equal(t, []commands.ID{
		commands.Save, commands.SaveAs, commands.IncreaseFont, commands.DecreaseFont,
	}, got)
}

func TestUnboundShortcutFallsThrough(t *testing.T) {
	m := newTestManager(t)
	m.BindCommands(commands.NewRegistry(nil))

	handled := m.handleShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyQ, Modifier: fyne.KeyModifierShortcutDefault})

	assert.False(t, handled)
}

func TestBindCommandsBuildsMenus(t *testing.T) {
	m := newTestManager(t)
	registry := commands.NewRegistry(nil)

	menu := m.buildMainMenu(registry)

	require.Len(t, menu.Items, 2)
	assert.Equal(t, "File", menu.Items[0].Label)
	assert.Equal(t, "View", menu.Items[1].Label)

	fileLabels := make([]string, 0)
	for _, item := range menu.Items[0].Items {
		fileLabels = append(fileLabels, item.Label)
	}
	assert.Contains(t, fileLabels, "Save As...")
	assert.Contains(t, fileLabels, "Quit")

	fontMenu := menu.Items[1].Items[0]
	require.NotNil(t, fontMenu.ChildMenu)
	assert.Len(t, fontMenu.ChildMenu.Items, len(appearance.CommonFamilies))
}

func TestApplyThemesColorsGutter(t *testing.T) {
	m := newTestManager(t)
	m.SetText("a\nb")
	prefs := preferences.Defaults()
	prefs.Theme = preferences.ThemeDark

	themes := appearance.NewBuilder(nil, nil, nil).Build(prefs)
	m.ApplyThemes(themes)

	assert.Equal(t, appearance.DarkPalette.GutterBackground, m.gutterBg.FillColor)
	assert.Equal(t, appearance.DarkPalette.Separator, m.separator.FillColor)
	assert.Equal(t, "1\n2", m.GutterText())
}

func TestShutdownIsIdempotent(t *testing.T) {
	m := newTestManager(t)

	m.Shutdown()
	m.Shutdown()

	assert.True(t, m.isShutdown)
}

func numberedLines(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = "line " + strconv.Itoa(i+1)
	}
	return strings.Join(lines, "\n")
}

func newLongDocument(t *testing.T) *Manager {
	t.Helper()
	m := newTestManager(t)
	m.SetText(numberedLines(200))
	return m
}

func pointInside(obj fyne.CanvasObject) fyne.Position {
	return fyne.CurrentApp().Driver().AbsolutePositionForObject(obj).Add(fyne.NewPos(10, 10))
}

func TestGutterRowsLineUpWithDocumentRows(t *testing.T) {
	m := newLongDocument(t)

	assert.InDelta(t, m.docPane.RowHeight(200), m.gutterPane.RowHeight(200), 0.5)
}

func TestWheelOverDocumentScrollsBothPanes(t *testing.T) {
	m := newLongDocument(t)

	test.Scroll(m.window.Canvas(), pointInside(m.docPane.Scroll), 0, -200)

	assert.Positive(t, m.docPane.Offset.Y)
	assert.Positive(t, m.gutterPane.Offset.Y)
	assert.InDelta(t, m.docPane.ScrollFraction(), m.gutterPane.ScrollFraction(), 0.001)
}

func TestWheelOverGutterScrollsBothPanes(t *testing.T) {
	m := newLongDocument(t)

	test.Scroll(m.window.Canvas(), pointInside(m.gutterPane.Scroll), 0, -200)

	assert.Positive(t, m.gutterPane.Offset.Y)
	assert.InDelta(t, m.gutterPane.ScrollFraction(), m.docPane.ScrollFraction(), 0.001)
}

func TestMoveToKeepsBothPanesAtFraction(t *testing.T) {
	m := newLongDocument(t)

	m.sync.MoveTo(0.5)

	assert.InDelta(t, 0.5, m.docPane.ScrollFraction(), 0.001)
	assert.InDelta(t, 0.5, m.gutterPane.ScrollFraction(), 0.001)

	m.sync.MoveTo(4)

	assert.InDelta(t, 1, m.docPane.ScrollFraction(), 0.001)
	assert.InDelta(t, 1, m.gutterPane.ScrollFraction(), 0.001)
}

func TestKeyNavigationRevealsCursor(t *testing.T) {
	m := newLongDocument(t)
	m.entry.CursorRow = 199

	m.entry.TypedKey(&fyne.KeyEvent{Name: fyne.KeyEnd})

	assert.InDelta(t, 1, m.docPane.ScrollFraction(), 0.001)
	assert.InDelta(t, 1, m.gutterPane.ScrollFraction(), 0.001)
}
