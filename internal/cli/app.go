// Package cli holds the dependencies shared by hostd's commands.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/hostd/internal/cli/styles"
	"github.com/bnema/hostd/internal/domain/build"
	"github.com/bnema/hostd/internal/infrastructure/config"
	"github.com/bnema/hostd/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Configs   *config.Manager
	Theme     *styles.Theme
	Renderer  *styles.Renderer
	BuildInfo build.Info

	ctx     context.Context
	closers []io.Closer
}

// NewApp loads configuration and builds a logger for the CLI. Subcommands log
// to stderr at the configured level. The long-running serve command replaces
// the logger with the file-backed one.
func NewApp() (*App, error) {
	configs, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := configs.Load(); err != nil {
		return nil, err
	}
	cfg := configs.Get()

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	theme := styles.NewTheme()

	return &App{
		Config:   cfg,
		Configs:  configs,
		Theme:    theme,
		Renderer: styles.NewRenderer(theme),
		ctx:      logging.WithContext(context.Background(), logger),
	}, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// SetCtx replaces the application context.
func (a *App) SetCtx(ctx context.Context) {
	a.ctx = ctx
}

// AddCloser registers a resource released by Close.
func (a *App) AddCloser(c io.Closer) {
	a.closers = append(a.closers, c)
}

// Client returns a control client for the configured host address.
func (a *App) Client() *Client {
	return NewClient(a.Config.Server.Address)
}

// Close releases all resources.
func (a *App) Close() error {
	var firstErr error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}
