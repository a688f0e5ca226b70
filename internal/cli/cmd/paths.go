package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/hostd/internal/application/usecase"
	"github.com/bnema/hostd/internal/cli/styles"
	"github.com/bnema/hostd/internal/domain/entity"
	"github.com/bnema/hostd/internal/infrastructure/paths"
)

var pathsCmd = &cobra.Command{
	Use:   "paths [name]",
	Short: "Resolve the OS paths front-ends can ask for",
	Long: `Print the directory each get-path name resolves to on this machine, or just
the one given. A single name prints the bare path, for use in scripts.

Names: home, appData, userData, cache, temp, exe, module, desktop, documents,
downloads, music, pictures, videos, logs, pepperFlashSystemPlugin`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPaths,
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}

func runPaths(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	bridge := usecase.NewPathBridge(paths.New(app.Config.App.Name))

	if len(args) == 1 {
		path, err := bridge.Resolve(app.Ctx(), entity.PathName(args[0]))
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	}

	names := entity.AllPathNames()
	rows := make([]styles.PathRow, 0, len(names))
	for _, name := range names {
		path, err := bridge.Resolve(app.Ctx(), name)
		rows = append(rows, styles.PathRow{Name: name.String(), Path: path, Err: err})
	}
	fmt.Println(app.Renderer.RenderPaths(rows))
	return nil
}
