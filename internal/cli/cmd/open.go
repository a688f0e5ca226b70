package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open <file>",
	Short: "Open a file in the running host's current window",
	Long: `Send a file to the focused window of a running host, or its first window
when none is focused. The window receives it as a file-dropped event.

Examples:
  hostd open notes.md
  hostd open ~/Documents/report.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func init() {
	rootCmd.AddCommand(openCmd)
}

func runOpen(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve %s: %w", args[0], err)
	}

	if err := app.Client().OpenFile(app.Ctx(), path); err != nil {
		return err
	}
	fmt.Println(app.Renderer.RenderSuccess("opened " + path))
	return nil
}
