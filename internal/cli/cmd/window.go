package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Manage windows of the running host",
}

var windowParent uint64

var windowNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new window",
	Long: `Create a new window in the running host and print the URL a front-end
connects to. With windows.launch_command set, the host spawns the front-end
itself. Use --parent to open a child window, whose navigations are not
intercepted.`,
	Args: cobra.NoArgs,
	RunE: runWindowNew,
}

func init() {
	rootCmd.AddCommand(windowCmd)
	windowCmd.AddCommand(windowNewCmd)
	windowNewCmd.Flags().Uint64Var(&windowParent, "parent", 0, "ID of the window that owns the new one")
}

func runWindowNew(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	win, err := app.Client().NewWindow(app.Ctx(), windowParent)
	if err != nil {
		return err
	}
	fmt.Println(app.Renderer.RenderSuccess(fmt.Sprintf("window %d created", win.ID)))
	if win.ConnectURL != "" {
		fmt.Println(win.ConnectURL)
	}
	return nil
}
