package port

import "context"

// URLOpener hands URLs to the system's default external application.
type URLOpener interface {
	Open(ctx context.Context, url string) error
}
