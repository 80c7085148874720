package app

import (
	"io"
	"log/slog"

	"github.com/vk/rtappgo/internal/config"
)

// App encapsulates the verifier pipeline's dependencies and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader
}

// New builds an App with its own isolated logger. Reports and progress
// markers go to outW; log records go to errW so machine-readable output
// stays separable from the human-facing report.
func New(outW, errW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: loader,
	}
}
