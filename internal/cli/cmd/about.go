package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/hostd/internal/cli/styles"
)

var aboutCmd = &cobra.Command{
	Use:     "about",
	Aliases: []string{"version"},
	Short:   "Show version and build information",
	RunE:    runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	fmt.Println(styles.NewAboutRenderer(app.Theme).Render(app.BuildInfo))
	return nil
}
