// Package cmd provides Cobra CLI commands for hostd.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/hostd/internal/cli"
	"github.com/bnema/hostd/internal/domain/build"
)

var errAppNotInitialized = errors.New("app not initialized")

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "hostd",
		Short: "IPC host for multi-window desktop front-ends",
		Long: `hostd - the host side of a multi-window desktop application.

Front-ends attach to windows over a local WebSocket and call into the host
for native capabilities: OS paths, persisted settings, message boxes and new
windows. Navigations to local files are turned into file-dropped events and
everything else is handed to the system browser.

Use 'hostd serve' to run the host, or explore the subcommands to talk to a
running one.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
