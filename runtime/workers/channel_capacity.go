package workers

import (
	"chat-relay/runtime"
	"context"
	"log/slog"
	"time"
)

type NamedQueue struct {
	Name  string
	Queue *runtime.InboundQueue
}

// QueueBacklogWorker periodically samples the length of inbound queues.
// Queues are unbounded, so a consumer falling behind only shows up here:
// a length above the threshold is reported as a warning.
type QueueBacklogWorker struct {
	log            *slog.Logger
	queues         []NamedQueue
	threshold      int
	metricInterval time.Duration
}

func NewQueueBacklogWorker(log *slog.Logger, queues []NamedQueue,
	threshold int, metricInterval time.Duration) QueueBacklogWorker {
	return QueueBacklogWorker{
		log:            log,
		queues:         queues,
		threshold:      threshold,
		metricInterval: metricInterval,
	}
}

func (w QueueBacklogWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping backlog sampling")
			return nil
		case <-ticker.C:
			for _, nq := range w.queues {
				length := nq.Queue.Len()
				if length > w.threshold {
					w.log.Warn("Inbound queue backlog", "name", nq.Name, "length", length, "threshold", w.threshold)
					continue
				}
				w.log.Debug("Inbound queue length", "name", nq.Name, "length", length)
			}
		}
	}
}
