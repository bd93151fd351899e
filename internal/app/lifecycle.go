package app

import (
	"notepad/internal/logger"
	"notepad/internal/preferences"
)

// Window is the part of the GUI the lifecycle needs at exit.
type Window interface {
	WindowSize() (width, height int)
	Shutdown()
}

// Lifecycle persists the preferences once when the program exits.
type Lifecycle struct {
	store      *preferences.Store
	prefs      *preferences.Preferences
	guiManager Window
	logger     logger.Logger
	isShutdown bool
}

func NewLifecycle(store *preferences.Store, prefs *preferences.Preferences, gm Window, log logger.Logger) *Lifecycle {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Lifecycle{
		store:      store,
		prefs:      prefs,
		guiManager: gm,
		logger:     log,
	}
}

func (l *Lifecycle) Shutdown() {
	if l.isShutdown {
		return
	}

	l.isShutdown = true
	l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

	if l.guiManager != nil {
		width, height := l.guiManager.WindowSize()
		l.prefs.SetWindowSize(width, height)
		l.guiManager.Shutdown()
		l.logger.Debug("Lifecycle", "GUI manager shutdown completed", map[string]interface{}{
			"width":  width,
			"height": height,
		})
	}

	if l.store != nil {
		l.store.Save(*l.prefs)
	}

	l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
}
