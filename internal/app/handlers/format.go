package handlers

import (
	"notepad/internal/appearance"
	"notepad/internal/commands"
	"notepad/internal/logger"
	"notepad/internal/preferences"
)

// ThemeView is the part of the window that takes a rebuilt theme set.
type ThemeView interface {
	ApplyThemes(themes appearance.Themes)
}

// FormatHandler mutates the font and theme preferences and reapplies them.
// Preferences are persisted on shutdown, not here.
type FormatHandler struct {
	prefs   *preferences.Preferences
	builder *appearance.Builder
	view    ThemeView
	logger  logger.Logger
}

func NewFormatHandler(prefs *preferences.Preferences, builder *appearance.Builder, view ThemeView, log logger.Logger) *FormatHandler {
	return &FormatHandler{
		prefs:   prefs,
		builder: builder,
		view:    view,
		logger:  log,
	}
}

func (h *FormatHandler) HandleIncreaseFont(commands.Event) {
	h.prefs.IncreaseFont()
	h.Apply()
}

func (h *FormatHandler) HandleDecreaseFont(commands.Event) {
	if !h.prefs.DecreaseFont() {
		h.logger.Debug("Handlers", "font size already at minimum", map[string]interface{}{
			"font_size": h.prefs.FontSize,
		})
		return
	}
	h.Apply()
}

func (h *FormatHandler) HandleSetFont(event commands.Event) {
	if event.Arg == "" {
		return
	}
	h.prefs.SetFontFamily(event.Arg)
	h.Apply()
}

func (h *FormatHandler) HandleSetTheme(event commands.Event) {
	if err := h.prefs.SetTheme(event.Arg); err != nil {
		h.logger.Error("Handlers", err, map[string]interface{}{
			"theme": event.Arg,
		})
		return
	}
	h.Apply()
}

func (h *FormatHandler) Apply() {
	h.view.ApplyThemes(h.builder.Build(*h.prefs))
}
