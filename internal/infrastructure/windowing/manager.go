// Package windowing is an in-memory window manager. Windows are records of
// creation order, focus, parentage and the front-end connection bound to them.
package windowing

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/bnema/hostd/internal/application/port"
	"github.com/bnema/hostd/internal/logging"
)

var (
	// ErrWindowNotFound is returned for an id that is not open.
	ErrWindowNotFound = errors.New("window not found")
	// ErrUnknownToken is returned when a front-end presents a token no window owns.
	ErrUnknownToken = errors.New("unknown window token")
	// ErrAlreadyAttached is returned when a window already has a front-end.
	ErrAlreadyAttached = errors.New("window already has a front-end")
	// ErrFrontendNotAttached is returned for a front-end id bound to no window.
	ErrFrontendNotAttached = errors.New("front-end not attached")
)

// Launcher starts a front-end for a newly created window.
type Launcher interface {
	Launch(ctx context.Context, window *Window) error
}

// Option configures a Manager.
type Option func(*Manager)

// WithLauncher spawns a front-end for every top-level window created.
func WithLauncher(l Launcher) Option {
	return func(m *Manager) {
		m.launcher = l
	}
}

// Manager implements port.WindowManager.
type Manager struct {
	launcher Launcher

	mu         sync.RWMutex
	nextID     port.WindowID
	windows    []*Window
	byToken    map[string]*Window
	byFrontend map[port.FrontendID]*Window
	focused    port.WindowID
	onCreated  []port.WindowCreatedHandler
}

var _ port.WindowManager = (*Manager)(nil)

// NewManager creates an empty window manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		byToken:    make(map[string]*Window),
		byFrontend: make(map[port.FrontendID]*Window),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// CreateWindow creates a top-level window.
func (m *Manager) CreateWindow(ctx context.Context) (port.Window, error) {
	return m.create(ctx, 0)
}

// CreateChildWindow creates a window owned by parent.
func (m *Manager) CreateChildWindow(ctx context.Context, parent port.WindowID) (port.Window, error) {
	if _, ok := m.Lookup(parent); !ok {
		return nil, fmt.Errorf("%w: %d", ErrWindowNotFound, parent)
	}
	return m.create(ctx, parent)
}

func (m *Manager) create(ctx context.Context, parent port.WindowID) (*Window, error) {
	m.mu.Lock()
	m.nextID++
	w := &Window{
		id:     m.nextID,
		parent: parent,
		token:  uuid.NewString(),
	}
	m.windows = append(m.windows, w)
	m.byToken[w.token] = w
	handlers := make([]port.WindowCreatedHandler, len(m.onCreated))
	copy(handlers, m.onCreated)
	m.mu.Unlock()

	ctx = logging.WithWindowID(ctx, uint64(w.id))
	log := logging.FromContext(ctx)
	log.Debug().Uint64("parent", uint64(parent)).Msg("window registered")

	for _, handler := range handlers {
		handler(ctx, w)
	}

	if m.launcher != nil && parent == 0 {
		if err := m.launcher.Launch(ctx, w); err != nil {
			log.Warn().Err(err).Msg("failed to launch front-end")
		}
	}

	return w, nil
}

// Windows returns open windows in creation order.
func (m *Manager) Windows() []port.Window {
	m.mu.RLock()
	defer m.mu.RUnlock()

	windows := make([]port.Window, len(m.windows))
	for i, w := range m.windows {
		windows[i] = w
	}
	return windows
}

// Count returns the number of open windows.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.windows)
}

// Lookup returns the open window with id.
func (m *Manager) Lookup(id port.WindowID) (*Window, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, w := range m.windows {
		if w.id == id {
			return w, true
		}
	}
	return nil, false
}

func (m *Manager) FocusedWindow() (port.Window, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.focused == 0 {
		return nil, false
	}
	for _, w := range m.windows {
		if w.id == m.focused {
			return w, true
		}
	}
	return nil, false
}

func (m *Manager) WindowForFrontend(id port.FrontendID) (port.Window, error) {
	w, err := m.frontendWindow(id)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (m *Manager) frontendWindow(id port.FrontendID) (*Window, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	w, ok := m.byFrontend[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFrontendNotAttached, id)
	}
	return w, nil
}

func (m *Manager) OnWindowCreated(handler port.WindowCreatedHandler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onCreated = append(m.onCreated, handler)
}

// Attach binds a front-end connection to the window owning token and returns
// the front-end id requests from that connection carry.
func (m *Manager) Attach(ctx context.Context, token string, sink EventSink) (port.FrontendID, *Window, error) {
	m.mu.Lock()
	w, ok := m.byToken[token]
	if !ok {
		m.mu.Unlock()
		return "", nil, ErrUnknownToken
	}
	frontend := port.FrontendID(uuid.NewString())
	pending, bound := w.bind(frontend, sink)
	if !bound {
		m.mu.Unlock()
		return "", nil, fmt.Errorf("%w: %d", ErrAlreadyAttached, w.id)
	}
	m.byFrontend[frontend] = w
	m.mu.Unlock()

	w.flush(ctx, sink, pending)

	logging.FromContext(ctx).Info().
		Uint64("window_id", uint64(w.id)).
		Str("frontend", string(frontend)).
		Msg("front-end attached")
	return frontend, w, nil
}

// Detach unbinds a front-end. The window closes with it.
func (m *Manager) Detach(ctx context.Context, frontend port.FrontendID) {
	w, err := m.frontendWindow(frontend)
	if err != nil {
		return
	}
	w.detach()
	_ = m.Close(ctx, w.id)
}

// Close removes the window and any children it owns.
func (m *Manager) Close(ctx context.Context, id port.WindowID) error {
	m.mu.Lock()
	closed := m.removeLocked(id)
	m.mu.Unlock()

	if len(closed) == 0 {
		return fmt.Errorf("%w: %d", ErrWindowNotFound, id)
	}
	for _, w := range closed {
		w.detach()
		logging.FromContext(ctx).Info().Uint64("window_id", uint64(w.id)).Msg("window closed")
	}
	return nil
}

func (m *Manager) removeLocked(id port.WindowID) []*Window {
	var closed []*Window
	kept := m.windows[:0]
	for _, w := range m.windows {
		if w.id == id || w.parent == id {
			closed = append(closed, w)
			continue
		}
		kept = append(kept, w)
	}
	for i := len(kept); i < len(m.windows); i++ {
		m.windows[i] = nil
	}
	m.windows = kept

	for _, w := range closed {
		delete(m.byToken, w.token)
		for frontend, bound := range m.byFrontend {
			if bound == w {
				delete(m.byFrontend, frontend)
			}
		}
		if m.focused == w.id {
			m.focused = 0
		}
	}
	return closed
}

// Focus marks the window bound to frontend as focused.
func (m *Manager) Focus(frontend port.FrontendID) error {
	w, err := m.frontendWindow(frontend)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.focused = w.id
	m.mu.Unlock()
	return nil
}

// Blur clears focus if the window bound to frontend holds it.
func (m *Manager) Blur(frontend port.FrontendID) error {
	w, err := m.frontendWindow(frontend)
	if err != nil {
		return err
	}
	m.mu.Lock()
	if m.focused == w.id {
		m.focused = 0
	}
	m.mu.Unlock()
	return nil
}

// Navigate reports an attempted navigation in the front-end's window and
// returns whether it must be cancelled.
func (m *Manager) Navigate(ctx context.Context, frontend port.FrontendID, url string) (bool, error) {
	w, err := m.frontendWindow(frontend)
	if err != nil {
		return false, err
	}
	return w.Navigate(logging.WithWindowID(ctx, uint64(w.id)), url), nil
}
