package app

import (
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"notepad/internal/app/handlers"
	"notepad/internal/appearance"
	"notepad/internal/commands"
	"notepad/internal/editor"
	"notepad/internal/gui"
	"notepad/internal/logger"
	"notepad/internal/preferences"
	"notepad/internal/shutdown"
)

const (
	AppID      = "io.github.notepad"
	AppVersion = "1.0.0"
	IconFile   = "icon.png"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	guiManager *gui.Manager
	session    *editor.Session
	registry   *commands.Registry
	handlers   *handlers.Handlers
	prefs      *preferences.Preferences
	lifecycle  *Lifecycle
	shutdown   *shutdown.Manager
	logger     logger.Logger
}

func NewApplication() (*Application, error) {
	log := logger.New(logger.DefaultConfig())

	store := preferences.NewStore(preferences.DefaultPath(), log)
	prefs := store.Load()

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(editor.BaseTitle)

	window.Resize(fyne.NewSize(float32(prefs.Width), float32(prefs.Height)))
	window.SetPadded(false)
	window.CenterOnScreen()
	window.SetMaster()
	loadIcon(window, log)

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  prefs.Width,
		"window_height": prefs.Height,
		"preferences":   store.Path(),
	})

	guiManager, err := gui.NewManager(window, log)
	if err != nil {
		return nil, err
	}

	dialogs := gui.NewDialogs(window, log)
	session := editor.NewSession(guiManager, dialogs, dialogs, log)
	lifecycle := NewLifecycle(store, &prefs, guiManager, log)

	shutdownMgr := shutdown.NewManager(log, fyne.Do)
	shutdownMgr.Register(shutdown.Func(window.Close))
	shutdownMgr.Register(lifecycle)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		guiManager: guiManager,
		session:    session,
		registry:   commands.NewRegistry(log),
		prefs:      &prefs,
		lifecycle:  lifecycle,
		shutdown:   shutdownMgr,
		logger:     log,
	}

	if err := application.setupHandlers(); err != nil {
		return nil, err
	}

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) setupHandlers() error {
	builder := appearance.NewBuilder(appearance.NewFontSource(a.logger), appearance.NativeSignal(), a.logger)

	a.handlers = handlers.NewHandlers(a.session, a.prefs, builder, a.guiManager, a.shutdown.Shutdown, a.logger)
	a.handlers.Register(a.registry)

	a.guiManager.SetEditHandler(a.session.MarkModified)
	a.guiManager.BindCommands(a.registry)
	a.session.OnTextReplaced = func(string) { a.guiManager.Focus() }

	return nil
}

func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.shutdown.Shutdown()
	})
	a.shutdown.Listen()

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.handlers.ApplyFormatting()
	a.window.Show()
	a.guiManager.Focus()

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	return nil
}

// loadIcon sets the window icon from icon.png beside the executable, or in
// the working directory. A missing icon is not an error.
func loadIcon(window fyne.Window, log logger.Logger) {
	candidates := []string{IconFile}
	if exe, err := os.Executable(); err == nil {
		candidates = append([]string{filepath.Join(filepath.Dir(exe), IconFile)}, candidates...)
	}

	for _, path := range candidates {
		icon, err := fyne.LoadResourceFromPath(path)
		if err != nil {
			continue
		}
		window.SetIcon(icon)
		log.Debug("Application", "window icon loaded", map[string]interface{}{
			"path": path,
		})
		return
	}

	log.Warning("Application", "window icon not found", map[string]interface{}{
		"file": IconFile,
	})
}
