// Package handlers binds the command table to the document session and the
// formatting preferences.
package handlers

import (
	"notepad/internal/appearance"
	"notepad/internal/commands"
	"notepad/internal/editor"
	"notepad/internal/logger"
	"notepad/internal/preferences"
)

type Handlers struct {
	fileHandler   *FileHandler
	formatHandler *FormatHandler
	quit          func()
}

func NewHandlers(
	session *editor.Session,
	prefs *preferences.Preferences,
	builder *appearance.Builder,
	view ThemeView,
	quit func(),
	log logger.Logger,
) *Handlers {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Handlers{
		fileHandler:   NewFileHandler(session, log),
		formatHandler: NewFormatHandler(prefs, builder, view, log),
		quit:          quit,
	}
}

// Register binds every command in the table.
func (h *Handlers) Register(registry *commands.Registry) {
	registry.Register(commands.New, h.fileHandler.HandleNew)
	registry.Register(commands.Open, h.fileHandler.HandleOpen)
	registry.Register(commands.Save, h.fileHandler.HandleSave)
	registry.Register(commands.SaveAs, h.fileHandler.HandleSaveAs)

	registry.Register(commands.IncreaseFont, h.formatHandler.HandleIncreaseFont)
	registry.Register(commands.DecreaseFont, h.formatHandler.HandleDecreaseFont)
	registry.Register(commands.SetFont, h.formatHandler.HandleSetFont)
	registry.Register(commands.SetTheme, h.formatHandler.HandleSetTheme)

	registry.Register(commands.Quit, h.HandleQuit)
}

func (h *Handlers) HandleQuit(commands.Event) {
	if h.quit != nil {
		h.quit()
	}
}

// ApplyFormatting pushes the current font and theme to the view.
func (h *Handlers) ApplyFormatting() {
	h.formatHandler.Apply()
}
