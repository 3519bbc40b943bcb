package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/vk/graphnode/internal/config"
	"github.com/vk/graphnode/internal/ctxlog"
	"github.com/vk/graphnode/internal/hcl"
	"github.com/vk/graphnode/internal/yaml"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	loaders []config.Loader
}

// NewApp is the constructor for the main application. The report is written
// to outW and logs to logW. Without explicit loaders both the HCL and YAML
// loaders are used.
func NewApp(outW, logW io.Writer, cfg *Config, loaders ...config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	if len(loaders) == 0 {
		loaders = defaultLoaders()
	}

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		loaders: loaders,
	}
}

func defaultLoaders() []config.Loader {
	return []config.Loader{hcl.NewLoader(), yaml.NewLoader()}
}

// Context returns ctx carrying the application's logger.
func (a *App) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
