package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const logFileName = "hostd.log"

var logsLines int

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Print the end of the host's log file",
	Long: `Print the last lines of hostd.log. File logging must be enabled with
logging.enable_file_log for the host to write one.`,
	Args: cobra.NoArgs,
	RunE: runLogs,
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", 50, "number of lines to print")
}

func runLogs(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	path := filepath.Join(app.Config.Logging.LogDir, logFileName)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("no log file at %s (is logging.enable_file_log set?)", path)
	}
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	lines, err := tailLines(f, logsLines)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
	return nil
}

// tailLines returns the last n lines of r.
func tailLines(r io.Reader, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	ring := make([]string, 0, n)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		if len(ring) == n {
			ring = append(ring[:0], ring[1:]...)
		}
		ring = append(ring, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}
	return ring, nil
}
