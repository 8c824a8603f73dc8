package app

import (
	"inkwell/internal/gui"
	"inkwell/internal/logger"
)

type Lifecycle struct {
	guiManager *gui.Manager
	logger     logger.Logger
	isShutdown bool
}

func NewLifecycle(gm *gui.Manager, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		guiManager: gm,
		logger:     log,
		isShutdown: false,
	}
}

// Shutdown is idempotent: the close intercept and Quit can both land
// here.
func (l *Lifecycle) Shutdown() {
	if l.isShutdown {
		return
	}

	l.isShutdown = true
	l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

	if l.guiManager != nil {
		l.guiManager.Shutdown()
		l.logger.Debug("Lifecycle", "GUI manager shutdown completed", nil)
	}

	l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
}
