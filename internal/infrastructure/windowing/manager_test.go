package windowing

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hostd/internal/application/port"
	"github.com/bnema/hostd/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type recordingSink struct {
	mu     sync.Mutex
	events []pendingEvent
	err    error
}

func (s *recordingSink) SendEvent(_ context.Context, channel string, payload any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, pendingEvent{channel: channel, payload: payload})
	return s.err
}

func (s *recordingSink) received() []pendingEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]pendingEvent(nil), s.events...)
}

type recordingLauncher struct {
	launched []port.WindowID
	err      error
}

func (l *recordingLauncher) Launch(_ context.Context, w *Window) error {
	l.launched = append(l.launched, w.ID())
	return l.err
}

func mustCreate(t *testing.T, m *Manager) *Window {
	t.Helper()
	w, err := m.CreateWindow(testContext())
	require.NoError(t, err)
	return w.(*Window)
}

func attach(t *testing.T, m *Manager, w *Window) (port.FrontendID, *recordingSink) {
	t.Helper()
	sink := &recordingSink{}
	frontend, bound, err := m.Attach(testContext(), w.Token(), sink)
	require.NoError(t, err)
	require.Same(t, w, bound)
	return frontend, sink
}

func TestManager_CreationOrderAndHandlers(t *testing.T) {
	m := NewManager()
	var seen []port.WindowID
	m.OnWindowCreated(func(_ context.Context, w port.Window) { seen = append(seen, w.ID()) })

	first := mustCreate(t, m)
	second := mustCreate(t, m)

	windows := m.Windows()
	require.Len(t, windows, 2)
	assert.Same(t, first, windows[0])
	assert.Same(t, second, windows[1])
	assert.Equal(t, []port.WindowID{first.ID(), second.ID()}, seen)
	assert.NotEqual(t, first.Token(), second.Token())
	assert.False(t, first.HasParent())
}

func TestManager_ChildWindows(t *testing.T) {
	launcher := &recordingLauncher{}
	m := NewManager(WithLauncher(launcher))
	parent := mustCreate(t, m)

	child, err := m.CreateChildWindow(testContext(), parent.ID())
	require.NoError(t, err)
	assert.True(t, child.HasParent())
	assert.Equal(t, []port.WindowID{parent.ID()}, launcher.launched)

	_, err = m.CreateChildWindow(testContext(), 999)
	assert.ErrorIs(t, err, ErrWindowNotFound)

	require.NoError(t, m.Close(testContext(), parent.ID()))
	assert.Zero(t, m.Count())
}

func TestManager_LaunchFailureKeepsWindow(t *testing.T) {
	m := NewManager(WithLauncher(&recordingLauncher{err: errors.New("no such binary")}))

	w, err := m.CreateWindow(testContext())

	require.NoError(t, err)
	assert.Equal(t, 1, m.Count())
	assert.NotNil(t, w)
}

func TestManager_FocusAndBlur(t *testing.T) {
	m := NewManager()
	a := mustCreate(t, m)
	b := mustCreate(t, m)
	feA, _ := attach(t, m, a)
	feB, _ := attach(t, m, b)

	_, ok := m.FocusedWindow()
	assert.False(t, ok)

	require.NoError(t, m.Focus(feB))
	focused, ok := m.FocusedWindow()
	require.True(t, ok)
	assert.Same(t, b, focused)

	require.NoError(t, m.Blur(feA))
	focused, ok = m.FocusedWindow()
	require.True(t, ok)
	assert.Same(t, b, focused)

	require.NoError(t, m.Blur(feB))
	_, ok = m.FocusedWindow()
	assert.False(t, ok)

	assert.ErrorIs(t, m.Focus("nobody"), ErrFrontendNotAttached)
}

func TestManager_AttachFlushesQueuedEvents(t *testing.T) {
	m := NewManager()
	w := mustCreate(t, m)

	require.NoError(t, w.Send(testContext(), "file-dropped", "/tmp/a.txt"))
	frontend, sink := attach(t, m, w)

	assert.Equal(t, []pendingEvent{{channel: "file-dropped", payload: "/tmp/a.txt"}}, sink.received())

	require.NoError(t, w.Send(testContext(), "file-dropped", "/tmp/b.txt"))
	assert.Len(t, sink.received(), 2)

	got, err := m.WindowForFrontend(frontend)
	require.NoError(t, err)
	assert.Same(t, w, got)
}

func TestManager_AttachErrors(t *testing.T) {
	m := NewManager()
	w := mustCreate(t, m)

	_, _, err := m.Attach(testContext(), "bogus", &recordingSink{})
	assert.ErrorIs(t, err, ErrUnknownToken)

	attach(t, m, w)
	_, _, err = m.Attach(testContext(), w.Token(), &recordingSink{})
	assert.ErrorIs(t, err, ErrAlreadyAttached)
}

func TestManager_DetachClosesWindow(t *testing.T) {
	m := NewManager()
	w := mustCreate(t, m)
	frontend, _ := attach(t, m, w)
	require.NoError(t, m.Focus(frontend))

	m.Detach(testContext(), frontend)

	assert.Zero(t, m.Count())
	_, ok := m.FocusedWindow()
	assert.False(t, ok)
	_, err := m.WindowForFrontend(frontend)
	assert.ErrorIs(t, err, ErrFrontendNotAttached)
	assert.ErrorIs(t, m.Close(testContext(), w.ID()), ErrWindowNotFound)
}

func TestManager_NavigateRunsHandlers(t *testing.T) {
	m := NewManager()
	w := mustCreate(t, m)
	frontend, _ := attach(t, m, w)

	cancelled, err := m.Navigate(testContext(), frontend, "https://example.com")
	require.NoError(t, err)
	assert.False(t, cancelled)

	var urls []string
	w.OnWillNavigate(func(_ context.Context, ev *port.NavigationEvent) {
		urls = append(urls, ev.URL)
		ev.PreventDefault()
	})

	cancelled, err = m.Navigate(testContext(), frontend, "https://example.com")
	require.NoError(t, err)
	assert.True(t, cancelled)
	assert.Equal(t, []string{"https://example.com"}, urls)
}

func TestWindow_Show(t *testing.T) {
	m := NewManager()
	w := mustCreate(t, m)

	assert.False(t, w.Visible())
	require.NoError(t, w.Show(testContext()))
	assert.True(t, w.Visible())
}
