package main

import (
	"log"

	"inkwell/internal/app"
	"inkwell/internal/config"
	"inkwell/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration load failed: %v", err)
	}

	var appLogger logger.Logger
	if cfg.JSONLogs {
		appLogger = logger.NewJSONLogger(cfg.Level())
	} else {
		appLogger = logger.NewConsoleLogger(cfg.Level())
	}

	application, err := app.New(cfg, appLogger)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}
}
