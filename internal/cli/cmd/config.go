package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/bnema/hostd/internal/infrastructure/config"
)

var configPathOnly bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Open the configuration file in your editor",
	Long: `Open config.toml in $VISUAL or $EDITOR, or print where hostd keeps its files.

The host watches the file and applies logging.level changes without a restart.`,
	RunE: runConfig,
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show config file and data directories",
	RunE:  runConfigInfo,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInfoCmd)
	configCmd.Flags().BoolVar(&configPathOnly, "path", false, "print the full path of the config file")
}

func runConfig(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}
	configPath := app.Configs.GetConfigFile()

	if configPathOnly {
		fmt.Println(configPath)
		return nil
	}

	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		return fmt.Errorf("no editor defined: set $VISUAL or $EDITOR environment variable")
	}

	// $EDITOR may carry flags, e.g. "code --wait".
	argv, err := shellquote.Split(editor)
	if err != nil {
		return fmt.Errorf("parse editor %q: %w", editor, err)
	}
	if len(argv) == 0 {
		return fmt.Errorf("editor %q is empty", editor)
	}

	editorCmd := exec.CommandContext(app.Ctx(), argv[0], append(argv[1:], configPath)...)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func runConfigInfo(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	dirs, err := config.GetXDGDirs()
	if err != nil {
		return err
	}
	order := []string{"config", "data", "state", "logs"}
	values := map[string]string{
		"config": dirs.ConfigHome,
		"data":   dirs.DataHome,
		"state":  dirs.StateHome,
		"logs":   app.Config.Logging.LogDir,
	}
	fmt.Print(app.Renderer.RenderConfigInfo(app.Configs.GetConfigFile(), values, order))
	return nil
}
