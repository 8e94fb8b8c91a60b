package runtime

import (
	"context"
	"sync"
)

// InboundQueue hands display lines from a receive loop to a single consumer.
// It is unbounded and keeps FIFO order; Push never blocks.
type InboundQueue struct {
	mu    sync.Mutex
	lines []string
	ready chan struct{}
}

func NewInboundQueue() *InboundQueue {
	return &InboundQueue{ready: make(chan struct{}, 1)}
}

func (q *InboundQueue) Push(line string) {
	q.mu.Lock()
	q.lines = append(q.lines, line)
	q.mu.Unlock()

	// One pending wake-up is enough, the consumer empties the queue before waiting again
	select {
	case q.ready <- struct{}{}:
	default:
	}
}

// Next blocks until a line is available or ctx is done.
func (q *InboundQueue) Next(ctx context.Context) (string, error) {
	for {
		q.mu.Lock()
		if len(q.lines) > 0 {
			line := q.lines[0]
			q.lines[0] = ""
			q.lines = q.lines[1:]
			q.mu.Unlock()
			return line, nil
		}
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-q.ready:
		}
	}
}

// Drain returns every pending line without blocking.
func (q *InboundQueue) Drain() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	lines := q.lines
	q.lines = nil
	return lines
}

func (q *InboundQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.lines)
}
