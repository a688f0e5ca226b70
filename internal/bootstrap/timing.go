package bootstrap

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/hostd/internal/logging"
)

type phase struct {
	name string
	took time.Duration
}

// startupTimer records how long each wiring phase of the host took.
type startupTimer struct {
	mu     sync.Mutex
	start  time.Time
	last   time.Time
	phases []phase
}

func newStartupTimer() *startupTimer {
	now := time.Now()
	return &startupTimer{start: now, last: now}
}

// Mark closes the current phase under name.
func (t *startupTimer) Mark(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	t.phases = append(t.phases, phase{name: name, took: now.Sub(t.last)})
	t.last = now
}

// Log reports the phases together with what the host ended up serving.
func (t *startupTimer) Log(ctx context.Context, routes int, addr string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	event := logging.FromContext(ctx).Info().
		Int("routes", routes).
		Str("address", addr).
		Dur("total", time.Since(t.start))
	for _, p := range t.phases {
		event = event.Dur(p.name, p.took)
	}
	event.Msg("host ready")
}
