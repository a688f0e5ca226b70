package windowing

import (
	"context"
	"sync"

	"github.com/bnema/hostd/internal/application/port"
	"github.com/bnema/hostd/internal/logging"
)

// EventSink delivers host -> front-end events over one connection.
type EventSink interface {
	SendEvent(ctx context.Context, channel string, payload any) error
}

type pendingEvent struct {
	channel string
	payload any
}

// Window is a host window whose content lives in a connected front-end.
type Window struct {
	id     port.WindowID
	parent port.WindowID
	token  string

	mu       sync.Mutex
	visible  bool
	frontend port.FrontendID
	sink     EventSink
	pending  []pendingEvent
	handlers []port.NavigationHandler
}

var _ port.Window = (*Window)(nil)

func (w *Window) ID() port.WindowID {
	return w.id
}

func (w *Window) HasParent() bool {
	return w.parent != 0
}

// Parent returns the owning window id, or 0 for top-level windows.
func (w *Window) Parent() port.WindowID {
	return w.parent
}

// Token is the secret a front-end presents to bind to this window.
func (w *Window) Token() string {
	return w.token
}

// Visible reports whether Show was called.
func (w *Window) Visible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visible
}

// Frontend returns the bound front-end id, empty when none is attached.
func (w *Window) Frontend() port.FrontendID {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.frontend
}

func (w *Window) Show(ctx context.Context) error {
	w.mu.Lock()
	w.visible = true
	w.mu.Unlock()

	logging.FromContext(ctx).Debug().Uint64("window_id", uint64(w.id)).Msg("window visible")
	return nil
}

// Send delivers an event to the front-end. Events sent before a front-end
// attaches are queued and flushed on attach.
func (w *Window) Send(ctx context.Context, channel string, payload any) error {
	w.mu.Lock()
	sink := w.sink
	if sink == nil {
		w.pending = append(w.pending, pendingEvent{channel: channel, payload: payload})
		w.mu.Unlock()
		logging.FromContext(ctx).Debug().
			Uint64("window_id", uint64(w.id)).
			Str("channel", channel).
			Msg("front-end not attached, event queued")
		return nil
	}
	w.mu.Unlock()

	return sink.SendEvent(ctx, channel, payload)
}

func (w *Window) OnWillNavigate(handler port.NavigationHandler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, handler)
}

// Navigate runs the will-navigate handlers for url and reports whether any cancelled it.
func (w *Window) Navigate(ctx context.Context, url string) bool {
	w.mu.Lock()
	handlers := make([]port.NavigationHandler, len(w.handlers))
	copy(handlers, w.handlers)
	w.mu.Unlock()

	event := &port.NavigationEvent{URL: url}
	for _, handler := range handlers {
		handler(ctx, event)
	}
	return event.DefaultPrevented()
}

// bind sets the front-end and returns events queued before it attached.
// It fails if another front-end is already bound.
func (w *Window) bind(frontend port.FrontendID, sink EventSink) ([]pendingEvent, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.sink != nil {
		return nil, false
	}
	w.frontend = frontend
	w.sink = sink
	pending := w.pending
	w.pending = nil
	return pending, true
}

func (w *Window) flush(ctx context.Context, sink EventSink, pending []pendingEvent) {
	for _, ev := range pending {
		if err := sink.SendEvent(ctx, ev.channel, ev.payload); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Str("channel", ev.channel).Msg("failed to flush queued event")
		}
	}
}

func (w *Window) detach() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.frontend = ""
	w.sink = nil
}
