package app

import (
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"inkwell/internal/config"
	"inkwell/internal/gui"
	"inkwell/internal/logger"
	"inkwell/internal/markup"
	"inkwell/internal/session"
)

const (
	AppName    = "Inkwell"
	AppID      = "com.inkwell.editor"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	logger     logger.Logger
	session    *session.Session
	guiManager *gui.Manager
	lifecycle  *Lifecycle
}

func New(cfg config.Config, log logger.Logger) (*Application, error) {
	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  cfg.WindowWidth,
		"window_height": cfg.WindowHeight,
	})

	sess := session.New()
	guiManager := gui.NewManager(window, log)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     log,
		session:    sess,
		guiManager: guiManager,
	}
	application.lifecycle = NewLifecycle(guiManager, log)

	guiManager.SetContentChangedHandler(application.handleContentChanged)
	guiManager.SetContent(sess.Content())
	application.setupMenus()
	application.setTitle(documentDisplayName(sess))

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.window.Show()
	a.guiManager.FocusEditor()

	a.fyneApp.Run()
	return nil
}

// setTitle mirrors the document name into the window title; an empty
// name shows as Untitled.
func (a *Application) setTitle(name string) {
	if name == "" {
		name = "Untitled"
	}
	a.window.SetTitle(name + " - " + AppName)
}

// documentDisplayName derives the window-title name for a session: the
// file basename once bound, otherwise whatever title the markup itself
// carries.
func documentDisplayName(sess *session.Session) string {
	if sess.Bound() {
		return filepath.Base(sess.Path())
	}
	return markup.DocumentTitle(sess.Content())
}
