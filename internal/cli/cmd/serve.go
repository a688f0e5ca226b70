package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/hostd/internal/bootstrap"
	"github.com/bnema/hostd/internal/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the host",
	Long: `Run the host until interrupted.

The host listens on server.address for front-end connections and, unless
windows.open_on_start is false, opens the first window immediately. When
windows.launch_command is set, a front-end process is spawned for every new
top-level window with {url} replaced by the window's connection URL.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	logger, logFile, err := bootstrap.NewLogger(app.Config)
	if err != nil {
		// Keep running on stderr only.
		logger.Warn().Err(err).Msg("file logging disabled")
	}
	app.AddCloser(logFile)

	ctx, stop := signal.NotifyContext(logging.WithContext(app.Ctx(), logger), os.Interrupt, syscall.SIGTERM)
	defer stop()

	host, err := bootstrap.New(ctx, app.Configs, bootstrap.Options{})
	if err != nil {
		return fmt.Errorf("start host: %w", err)
	}
	app.AddCloser(host)

	logger.Info().
		Str("version", app.BuildInfo.Version).
		Str("config", app.Configs.GetConfigFile()).
		Msg("hostd starting")

	if err := host.Run(ctx); err != nil {
		return err
	}
	logger.Info().Msg("hostd stopped")
	return nil
}
