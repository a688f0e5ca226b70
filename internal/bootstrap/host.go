// Package bootstrap wires the host's components together from configuration.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/hostd/internal/application/port"
	"github.com/bnema/hostd/internal/application/usecase"
	"github.com/bnema/hostd/internal/infrastructure/config"
	"github.com/bnema/hostd/internal/infrastructure/dialog"
	"github.com/bnema/hostd/internal/infrastructure/opener"
	"github.com/bnema/hostd/internal/infrastructure/paths"
	"github.com/bnema/hostd/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/hostd/internal/infrastructure/persistence/yamlfile"
	"github.com/bnema/hostd/internal/infrastructure/transport"
	"github.com/bnema/hostd/internal/infrastructure/windowing"
	"github.com/bnema/hostd/internal/ipc"
	"github.com/bnema/hostd/internal/logging"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Host is a fully wired host process.
type Host struct {
	Config    *config.Config
	Windows   *windowing.Manager
	Lifecycle *usecase.WindowLifecycleUseCase
	Router    *ipc.Router
	Server    *transport.Server

	configs *config.Manager
	closers []io.Closer
	timer   *startupTimer
}

// Options override the default adapters, mostly for tests.
type Options struct {
	Dialogs  port.DialogPresenter
	Opener   port.URLOpener
	Settings port.SettingsStore
}

// NewLogger builds the process logger from cfg. The returned closer releases
// the rotating log file, if one was opened.
func NewLogger(cfg *config.Config) (zerolog.Logger, io.Closer, error) {
	logCfg := logging.DefaultConfig()
	logCfg.Format = cfg.Logging.Format
	// Filtering happens through the global level so reloads can change it.
	logCfg.Level = zerolog.TraceLevel
	zerolog.SetGlobalLevel(logging.ParseLevel(cfg.Logging.Level))

	if !cfg.Logging.EnableFileLog {
		return logging.New(logCfg), nopCloser{}, nil
	}

	file, err := logging.NewRotatingFile(cfg.Logging.LogDir, cfg.Logging.MaxSizeMB, cfg.Logging.MaxBackups)
	if err != nil {
		return logging.New(logCfg), nopCloser{}, fmt.Errorf("open log file: %w", err)
	}
	logCfg.File = file
	return logging.New(logCfg), file, nil
}

// SettingsStore is a settings store that can also list its keys.
type SettingsStore interface {
	port.SettingsStore
	Keys(ctx context.Context) ([]string, error)
}

// NewSettingsStore opens the backend selected in cfg.
func NewSettingsStore(cfg *config.Config) (SettingsStore, io.Closer, error) {
	switch cfg.Settings.Backend {
	case config.SettingsBackendFile:
		path := cfg.Settings.Path
		if path == "" {
			var err error
			if path, err = config.GetSettingsFile(); err != nil {
				return nil, nil, err
			}
		}
		return yamlfile.New(path), nopCloser{}, nil

	case config.SettingsBackendSQLite, "":
		path := cfg.Settings.Path
		if path == "" {
			var err error
			if path, err = config.GetDatabaseFile(); err != nil {
				return nil, nil, err
			}
		}
		db := sqlite.NewLazyDB(filepath.Clean(path))
		return sqlite.NewSettingsStore(db), db, nil

	default:
		return nil, nil, fmt.Errorf("unknown settings backend %q", cfg.Settings.Backend)
	}
}

// New builds every component of the host. Nothing listens until Run.
func New(ctx context.Context, configs *config.Manager, opts Options) (*Host, error) {
	timer := newStartupTimer()
	cfg := configs.Get()
	log := logging.FromContext(ctx)

	h := &Host{Config: cfg, configs: configs, timer: timer}

	settings := opts.Settings
	if settings == nil {
		store, closer, err := NewSettingsStore(cfg)
		if err != nil {
			return nil, err
		}
		settings = store
		h.closers = append(h.closers, closer)
	}
	dialogs := opts.Dialogs
	if dialogs == nil {
		dialogs = dialog.New()
	}
	urls := opts.Opener
	if urls == nil {
		urls = opener.New()
	}
	timer.Mark("adapters")

	var server *transport.Server
	var managerOpts []windowing.Option
	if cfg.Windows.LaunchCommand != "" {
		launcher, err := windowing.NewCommandLauncher(cfg.Windows.LaunchCommand, func(token string) string {
			return server.ConnectURL(token)
		})
		if err != nil {
			return nil, fmt.Errorf("windows.launch_command: %w", err)
		}
		managerOpts = append(managerOpts, windowing.WithLauncher(launcher))
	}
	h.Windows = windowing.NewManager(managerOpts...)

	usecase.NewNavigationInterceptor(h.Windows, urls).Install(ctx)
	h.Lifecycle = usecase.NewWindowLifecycleUseCase(h.Windows, usecase.NewResolveWindowUseCase(h.Windows))

	router, err := ipc.NewRouter(ipc.NewRoutes(ipc.Deps{
		Lifecycle: h.Lifecycle,
		Settings:  usecase.NewSettingsBridge(settings),
		Paths:     usecase.NewPathBridge(paths.New(cfg.App.Name)),
		Dialogs:   usecase.NewDialogBridge(dialogs),
	}))
	if err != nil {
		return nil, fmt.Errorf("build router: %w", err)
	}
	h.Router = router
	timer.Mark("router")

	server = transport.NewServer(ctx, transport.Config{
		Address:         cfg.Server.Address,
		AllowedOrigins:  cfg.Server.AllowedOrigins,
		ShutdownTimeout: time.Duration(cfg.Server.ShutdownTimeoutSec) * time.Second,
	}, h.Windows, h.Lifecycle)
	h.Server = server
	timer.Mark("transport")

	log.Debug().Strs("channels", channelNames(router)).Msg("host wired")
	return h, nil
}

func channelNames(router *ipc.Router) []string {
	channels := router.Channels()
	names := make([]string, 0, len(channels))
	for _, ch := range channels {
		names = append(names, string(ch))
	}
	return names
}

// Run listens for front-ends and serves requests until ctx is cancelled.
func (h *Host) Run(ctx context.Context) error {
	log := logging.FromContext(ctx)

	if err := h.Server.Listen(); err != nil {
		return err
	}
	h.timer.Mark("listen")

	h.configs.OnConfigChange(func(cfg *config.Config) {
		level := logging.ParseLevel(cfg.Logging.Level)
		if zerolog.GlobalLevel() != level {
			zerolog.SetGlobalLevel(level)
			log.Info().Str("level", level.String()).Msg("log level updated")
		}
	})
	if err := h.configs.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watching disabled")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return h.Server.Serve(gctx)
	})
	g.Go(func() error {
		return h.Router.Listen(gctx, h.Server)
	})

	if h.Config.Windows.OpenOnStart {
		if _, err := h.Lifecycle.NewWindow(gctx); err != nil {
			log.Error().Err(err).Msg("failed to open initial window")
		}
	}
	h.timer.Mark("first_window")
	h.timer.Log(ctx, len(h.Router.Channels()), h.Server.Addr())

	return g.Wait()
}

// Close releases the settings store and any other resources.
func (h *Host) Close() error {
	var errs []error
	for _, c := range h.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
