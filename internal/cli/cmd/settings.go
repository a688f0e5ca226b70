package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/hostd/internal/application/usecase"
	"github.com/bnema/hostd/internal/bootstrap"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Read and write persisted front-end settings",
	Long: `Read and write the settings front-ends store through get-settings and
set-settings. Values are JSON; a value that is not valid JSON is stored as a
plain string.`,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a setting as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store a setting",
	Long: `Store a setting.

Examples:
  hostd settings set theme dark
  hostd settings set zoom 1.25
  hostd settings set sidebar '{"open":true,"width":280}'`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every stored setting",
	Args:  cobra.NoArgs,
	RunE:  runSettingsList,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsListCmd)
}

func openSettings() (bootstrap.SettingsStore, error) {
	app := GetApp()
	if app == nil {
		return nil, errAppNotInitialized
	}
	store, closer, err := bootstrap.NewSettingsStore(app.Config)
	if err != nil {
		return nil, err
	}
	app.AddCloser(closer)
	return store, nil
}

func runSettingsGet(_ *cobra.Command, args []string) error {
	store, err := openSettings()
	if err != nil {
		return err
	}

	value, err := usecase.NewSettingsBridge(store).Get(app.Ctx(), args[0])
	if err != nil {
		return err
	}
	out, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", args[0], err)
	}
	fmt.Println(string(out))
	return nil
}

func runSettingsSet(_ *cobra.Command, args []string) error {
	store, err := openSettings()
	if err != nil {
		return err
	}

	if err := usecase.NewSettingsBridge(store).Set(app.Ctx(), args[0], parseValue(args[1])); err != nil {
		return err
	}
	fmt.Println(app.Renderer.RenderSuccess("saved " + args[0]))
	return nil
}

func runSettingsList(_ *cobra.Command, _ []string) error {
	store, err := openSettings()
	if err != nil {
		return err
	}

	ctx := app.Ctx()
	keys, err := store.Keys(ctx)
	if err != nil {
		return err
	}
	values := make(map[string]string, len(keys))
	for _, key := range keys {
		value, err := store.GetItem(ctx, key)
		if err != nil {
			return err
		}
		out, _ := json.Marshal(value)
		values[key] = string(out)
	}
	fmt.Println(app.Renderer.RenderSettings(keys, values))
	return nil
}

// parseValue decodes raw as JSON, falling back to the literal string.
func parseValue(raw string) any {
	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return raw
	}
	return value
}
