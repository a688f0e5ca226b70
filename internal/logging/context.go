package logging

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context
// If no logger is found, returns a disabled logger (no-op)
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent creates a child logger with a component field
func WithComponent(ctx context.Context, component string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("component", component).Logger()
	return WithContext(ctx, childLogger)
}

// WithWindowID creates a child logger with a window_id field
func WithWindowID(ctx context.Context, id uint64) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("window_id", strconv.FormatUint(id, 10)).Logger()
	return WithContext(ctx, childLogger)
}

// WithChannel creates a child logger with a channel field
func WithChannel(ctx context.Context, channel string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("channel", channel).Logger()
	return WithContext(ctx, childLogger)
}
