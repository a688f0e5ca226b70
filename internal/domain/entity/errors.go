package entity

import "errors"

var (
	// ErrNoWindowAvailable is returned when a current-window lookup runs with no open windows.
	ErrNoWindowAvailable = errors.New("no window available")

	// ErrWindowResolution is returned when a sender's window cannot be resolved.
	ErrWindowResolution = errors.New("window resolution failed")

	// ErrUnknownPathName is returned for path names outside the PathName set.
	ErrUnknownPathName = errors.New("unknown path name")

	// ErrPathUnavailable is returned when a known path cannot be determined on this system.
	ErrPathUnavailable = errors.New("path unavailable")
)
