package usecase_test

import (
	"bytes"
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/hostd/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// syncBuffer is a bytes.Buffer safe for concurrent log writes.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// capturingContext returns a context whose logger writes JSON lines to the returned buffer.
func capturingContext() (context.Context, *syncBuffer) {
	buf := &syncBuffer{}
	logger := zerolog.New(buf).Level(zerolog.DebugLevel)
	return logging.WithContext(context.Background(), logger), buf
}
