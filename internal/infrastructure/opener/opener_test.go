package opener

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpener_PassesURLUnchanged(t *testing.T) {
	var got string
	o := &Opener{open: func(url string) error { got = url; return nil }}

	require.NoError(t, o.Open(context.Background(), "https://example.com/a?b=c#d"))
	assert.Equal(t, "https://example.com/a?b=c#d", got)
}

func TestOpener_Failure(t *testing.T) {
	o := &Opener{open: func(string) error { return errors.New("xdg-open: not found") }}

	err := o.Open(context.Background(), "mailto:someone@example.com")

	assert.ErrorContains(t, err, "xdg-open: not found")
}

func TestOpener_CancelledContext(t *testing.T) {
	called := false
	o := &Opener{open: func(string) error { called = true; return nil }}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, o.Open(ctx, "https://example.com"), context.Canceled)
	assert.False(t, called)
}
