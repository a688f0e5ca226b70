package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

const dirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:    "gen-docs",
	Short:  "Generate documentation from CLI commands",
	Hidden: true,
	Long: `Generate man pages or markdown from the command definitions.

By default, man pages are installed to ~/.local/share/man/man1/ so they are
immediately available via 'man hostd'.

Examples:
  hostd gen-docs                      # Install man pages
  hostd gen-docs --format markdown    # Generate markdown docs in ./docs`,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "Output directory for generated docs")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "Output format: man, markdown")
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	outputDir := genDocsOutputDir
	if outputDir == "" {
		switch genDocsFormat {
		case "man":
			outputDir = filepath.Join(xdg.DataHome, "man", "man1")
		case "markdown":
			outputDir = "./docs"
		}
	}

	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Reproducible output
	rootCmd.DisableAutoGenTag = true

	switch genDocsFormat {
	case "man":
		header := &doc.GenManHeader{
			Title:   "HOSTD",
			Section: "1",
			Source:  "hostd " + buildInfo.Version,
			Manual:  "hostd Manual",
			Date:    func() *time.Time { t := time.Now(); return &t }(),
		}
		if err := doc.GenManTree(rootCmd, header, outputDir); err != nil {
			return fmt.Errorf("generate man pages: %w", err)
		}
	case "markdown":
		if err := doc.GenMarkdownTree(rootCmd, outputDir); err != nil {
			return fmt.Errorf("generate markdown docs: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format %q (use: man, markdown)", genDocsFormat)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %s docs in %s\n", genDocsFormat, outputDir)
	return nil
}
