package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/hostd/internal/cli/styles"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether a host is running",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	info := styles.StatusInfo{Address: app.Config.Server.Address}
	windows, err := app.Client().Health(app.Ctx())
	if err != nil {
		info.Err = err
	} else {
		info.Running = true
		info.Windows = windows
	}
	fmt.Print(app.Renderer.RenderStatus(info))
	return nil
}
