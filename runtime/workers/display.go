package workers

import (
	"chat-relay/contract"
	"chat-relay/runtime"
	"context"
	"log/slog"
)

// Display drains an inbound queue and hands every line to each sink, in order.
// Lines already queued when the context ends are still delivered before Run returns.
//
// Delivery is best-effort: a failing sink is logged and skipped, the other
// sinks still receive the line.
type Display struct {
	log   *slog.Logger
	queue *runtime.InboundQueue
	sinks []contract.LineSink
}

func NewDisplay(log *slog.Logger, queue *runtime.InboundQueue, sinks ...contract.LineSink) Display {
	return Display{log: log, queue: queue, sinks: sinks}
}

func (d Display) Run(ctx context.Context) error {
	for {
		line, err := d.queue.Next(ctx)
		if err != nil {
			d.log.Debug("Context done, stopping display")
			return nil
		}
		d.Fanout(ctx, line)
	}
}

// Fanout One sink after the other for each line
func (d Display) Fanout(ctx context.Context, line string) {
	for _, sink := range d.sinks {
		if err := sink.Consume(ctx, line); err != nil {
			d.log.Warn("Sink failed to consume line", "error", err)
		}
	}
}
