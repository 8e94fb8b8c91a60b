package sink

import (
	"context"
	"sync"
)

// Timeline holds a simple local timeline
type Timeline struct {
	mu    sync.Mutex
	lines []string
}

func NewTimeline() *Timeline {
	return &Timeline{}
}

func (t *Timeline) Consume(_ context.Context, line string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines = append(t.lines, line)
	return nil
}

// Lines returns a copy of everything consumed so far.
func (t *Timeline) Lines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.lines...)
}
