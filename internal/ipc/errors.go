package ipc

import "errors"

var (
	// ErrUnknownChannel is returned for a channel with no route.
	ErrUnknownChannel = errors.New("unknown channel")
	// ErrRouteKind is returned when a request uses the wrong call style for its route.
	ErrRouteKind = errors.New("route kind mismatch")
	// ErrMissingArgument is returned when a request carries fewer arguments than its route needs.
	ErrMissingArgument = errors.New("missing argument")
	// ErrInvalidArgument is returned when an argument cannot be decoded.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrHandlerPanic wraps a panic recovered from a route handler.
	ErrHandlerPanic = errors.New("handler panicked")
)
