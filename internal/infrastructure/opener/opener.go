// Package opener hands URLs to the desktop's default handler.
package opener

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/browser"

	"github.com/bnema/hostd/internal/application/port"
	"github.com/bnema/hostd/internal/logging"
)

// Opener implements port.URLOpener with the system browser.
type Opener struct {
	open func(url string) error
}

var _ port.URLOpener = (*Opener)(nil)

// New creates an opener. Output of the spawned helper (xdg-open, open, ...) is discarded.
func New() *Opener {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return &Opener{open: browser.OpenURL}
}

// Open launches the default handler for url. The URL is passed through unchanged.
func (o *Opener) Open(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := o.open(url); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	logging.FromContext(ctx).Debug().Str("url", url).Msg("url handed to system opener")
	return nil
}
