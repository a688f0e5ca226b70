package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hostd/internal/application/port"
	portmocks "github.com/bnema/hostd/internal/application/port/mocks"
	"github.com/bnema/hostd/internal/application/usecase"
)

// attachTopLevel installs the interceptor on a mocked top-level window and
// returns the will-navigate handler it registered.
func attachTopLevel(t *testing.T, opener port.URLOpener) (*portmocks.MockWindow, port.NavigationHandler) {
	t.Helper()

	wm := portmocks.NewMockWindowManager(t)
	window := portmocks.NewMockWindow(t)
	window.EXPECT().ID().Return(port.WindowID(7)).Maybe()
	window.EXPECT().HasParent().Return(false)

	var handler port.NavigationHandler
	window.EXPECT().OnWillNavigate(mock.Anything).Run(func(h port.NavigationHandler) {
		handler = h
	}).Return()

	var created port.WindowCreatedHandler
	wm.EXPECT().OnWindowCreated(mock.Anything).Run(func(h port.WindowCreatedHandler) {
		created = h
	}).Return()

	interceptor := usecase.NewNavigationInterceptor(wm, opener)
	interceptor.Install(testContext())
	require.NotNil(t, created)

	created(testContext(), window)
	require.NotNil(t, handler)

	return window, handler
}

func TestNavigationInterceptor_LocalFileBecomesFileDropped(t *testing.T) {
	opener := portmocks.NewMockURLOpener(t)
	window, handler := attachTopLevel(t, opener)

	window.EXPECT().Send(mock.Anything, usecase.FileDroppedEvent, "/Users/a b/doc.txt").Return(nil).Once()

	event := &port.NavigationEvent{URL: "file:///Users/a%20b/doc.txt"}
	handler(testContext(), event)

	assert.True(t, event.DefaultPrevented())
	opener.AssertNotCalled(t, "Open", mock.Anything, mock.Anything)
}

func TestNavigationInterceptor_ExternalURLGoesToOpener(t *testing.T) {
	opener := portmocks.NewMockURLOpener(t)
	window, handler := attachTopLevel(t, opener)

	opened := make(chan string, 1)
	opener.EXPECT().Open(mock.Anything, "https://example.com").Run(func(_ context.Context, url string) {
		opened <- url
	}).Return(nil).Once()

	event := &port.NavigationEvent{URL: "https://example.com"}
	handler(testContext(), event)

	assert.True(t, event.DefaultPrevented())
	select {
	case url := <-opened:
		assert.Equal(t, "https://example.com", url)
	case <-time.After(2 * time.Second):
		t.Fatal("external opener was not invoked")
	}
	window.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestNavigationInterceptor_MalformedFileURLIsCancelledAndDropped(t *testing.T) {
	opener := portmocks.NewMockURLOpener(t)
	window, handler := attachTopLevel(t, opener)

	event := &port.NavigationEvent{URL: "file:///tmp/%zz"}
	handler(testContext(), event)

	assert.True(t, event.DefaultPrevented())
	window.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	opener.AssertNotCalled(t, "Open", mock.Anything, mock.Anything)
}

func TestNavigationInterceptor_ChildWindowIsExempt(t *testing.T) {
	wm := portmocks.NewMockWindowManager(t)
	opener := portmocks.NewMockURLOpener(t)
	child := portmocks.NewMockWindow(t)
	child.EXPECT().ID().Return(port.WindowID(3)).Maybe()
	child.EXPECT().HasParent().Return(true)

	usecase.NewNavigationInterceptor(wm, opener).Attach(testContext(), child)

	child.AssertNotCalled(t, "OnWillNavigate", mock.Anything)
}

func TestFilePathFromURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		isFile  bool
		wantErr bool
	}{
		{name: "encoded space", raw: "file:///Users/a%20b/doc.txt", want: "/Users/a b/doc.txt", isFile: true},
		{name: "plus is kept", raw: "file:///tmp/a+b.txt", want: "/tmp/a+b.txt", isFile: true},
		{name: "unicode", raw: "file:///home/%C3%A9t%C3%A9.md", want: "/home/été.md", isFile: true},
		{name: "two slashes is not local", raw: "file://host/share", isFile: false},
		{name: "https", raw: "https://example.com", isFile: false},
		{name: "bad escape", raw: "file:///tmp/%zz", isFile: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, isFile, err := usecase.FilePathFromURL(tt.raw)
			assert.Equal(t, tt.isFile, isFile)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
