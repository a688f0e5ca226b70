package windowing

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/bnema/hostd/internal/logging"
)

// URLPlaceholder is replaced in launch commands with the window's connection URL.
const URLPlaceholder = "{url}"

// CommandLauncher spawns a front-end process per window from a command template.
type CommandLauncher struct {
	template   string
	connectURL func(token string) string
	start      func(cmd *exec.Cmd) error
}

// NewCommandLauncher creates a launcher. connectURL builds the URL a
// front-end dials for a given window token.
func NewCommandLauncher(template string, connectURL func(token string) string) (*CommandLauncher, error) {
	if strings.TrimSpace(template) == "" {
		return nil, errors.New("launch command is empty")
	}
	if _, err := shellquote.Split(template); err != nil {
		return nil, fmt.Errorf("parse launch command: %w", err)
	}
	return &CommandLauncher{
		template:   template,
		connectURL: connectURL,
		start:      startDetached,
	}, nil
}

// Command returns the argv for window. Each argument is expanded after
// splitting, so the URL never needs quoting in the template.
func (l *CommandLauncher) Command(window *Window) ([]string, error) {
	args, err := shellquote.Split(l.template)
	if err != nil {
		return nil, fmt.Errorf("parse launch command: %w", err)
	}
	if len(args) == 0 {
		return nil, errors.New("launch command is empty")
	}

	url := l.connectURL(window.Token())
	for i, arg := range args {
		args[i] = strings.ReplaceAll(arg, URLPlaceholder, url)
	}
	return args, nil
}

// Launch starts the front-end process. It does not wait for it to exit.
func (l *CommandLauncher) Launch(ctx context.Context, window *Window) error {
	args, err := l.Command(window)
	if err != nil {
		return err
	}

	cmd := exec.Command(args[0], args[1:]...) //nolint:gosec // command comes from the user's own config
	if err := l.start(cmd); err != nil {
		return fmt.Errorf("start %s: %w", args[0], err)
	}

	logging.FromContext(ctx).Info().Str("command", args[0]).Msg("front-end launched")
	return nil
}

func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
