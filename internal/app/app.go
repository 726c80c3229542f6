package app

import (
	"io"
	"log/slog"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle. Model identifiers go to outW; logs and diagnostics go to errW.
type App struct {
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger.
func NewApp(outW, errW io.Writer, config *Config) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		errW:   errW,
		logger: logger,
		config: config,
	}
}
