package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/hostd/internal/ipc"
)

var schemaCmd = &cobra.Command{
	Use:   "schema [name]",
	Short: "Print JSON Schemas of the front-end wire protocol",
	Long: fmt.Sprintf(`Print the JSON Schema of a wire frame or payload so front-ends can
validate what they send and receive. Without a name, list the available schemas.

Schemas: %s`, strings.Join(ipc.SchemaNames(), ", ")),
	Args: cobra.MaximumNArgs(1),
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		for _, name := range ipc.SchemaNames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	}

	schema, err := ipc.WireSchema(args[0])
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("encode schema: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
