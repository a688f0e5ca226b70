// Package port defines application-layer interfaces for external capabilities.
// Ports abstract the window manager, settings store, OS path lookup, native
// dialogs and the external opener so use cases stay independent of them.
package port

import "context"

// WindowID uniquely identifies a window for the lifetime of the process.
type WindowID uint64

// FrontendID identifies the front-end connection a message arrived on.
type FrontendID string

// NavigationEvent describes an attempted in-place navigation inside a window's content.
type NavigationEvent struct {
	URL       string
	prevented bool
}

// PreventDefault cancels the navigation.
func (e *NavigationEvent) PreventDefault() {
	e.prevented = true
}

// DefaultPrevented reports whether a handler cancelled the navigation.
func (e *NavigationEvent) DefaultPrevented() bool {
	return e.prevented
}

// NavigationHandler is invoked for every will-navigate event of a window.
type NavigationHandler func(ctx context.Context, event *NavigationEvent)

// Window is an opaque handle to a host window. Windows are created and
// destroyed by the WindowManager only.
type Window interface {
	// ID returns the unique identifier for this window.
	ID() WindowID

	// HasParent reports whether the window is owned by another window
	// (child windows, modal dialogs).
	HasParent() bool

	// Show makes the window visible.
	Show(ctx context.Context) error

	// Send delivers a host -> front-end event on the given channel.
	Send(ctx context.Context, channel string, payload any) error

	// OnWillNavigate registers a handler for attempted in-place navigations.
	OnWillNavigate(handler NavigationHandler)
}

// WindowCreatedHandler is invoked once for every window the manager creates.
type WindowCreatedHandler func(ctx context.Context, window Window)

// WindowManager owns window creation, focus and creation order.
type WindowManager interface {
	// CreateWindow creates a new top-level window.
	CreateWindow(ctx context.Context) (Window, error)

	// Windows returns all open windows in creation order.
	Windows() []Window

	// FocusedWindow returns the focused window, if any.
	FocusedWindow() (Window, bool)

	// WindowForFrontend returns the window owning the given front-end.
	WindowForFrontend(id FrontendID) (Window, error)

	// OnWindowCreated registers a handler for window creation events.
	OnWindowCreated(handler WindowCreatedHandler)
}
