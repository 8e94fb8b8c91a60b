package workers

import (
	"chat-relay/contract"
	"context"
	"errors"
	"log/slog"
	"net"
	"os"
	"time"
)

// DatagramHandler is called once per received datagram.
// data is only valid until the handler returns.
type DatagramHandler func(data []byte, from net.Addr)

// Receiver reads datagrams from a socket until its context ends or the
// socket fails. The read deadline exists only to observe cancellation.
//
// A transport error ends the loop and Run returns nil: the socket is presumed
// unusable, so the supervisor must not restart it.
type Receiver struct {
	log          *slog.Logger
	conn         contract.DatagramConn
	handle       DatagramHandler
	pollInterval time.Duration
	bufferSize   int
}

func NewReceiver(log *slog.Logger, conn contract.DatagramConn, handle DatagramHandler,
	pollInterval time.Duration, bufferSize int) Receiver {
	return Receiver{
		log:          log,
		conn:         conn,
		handle:       handle,
		pollInterval: pollInterval,
		bufferSize:   bufferSize,
	}
}

func (r Receiver) Run(ctx context.Context) error {
	buf := make([]byte, r.bufferSize)
	for {
		if ctx.Err() != nil {
			r.log.Debug("Context done, stopping receive loop")
			return nil
		}
		if err := r.conn.SetReadDeadline(time.Now().Add(r.pollInterval)); err != nil {
			if ctx.Err() == nil {
				r.log.Warn("Socket unusable, stopping receive loop", "error", err)
			}
			return nil
		}
		n, from, err := r.conn.ReadFrom(buf)
		if err != nil {
			if isTimeout(err) {
				continue
			}
			if ctx.Err() == nil {
				r.log.Warn("Receive failed, stopping receive loop", "error", err)
			}
			return nil
		}
		r.handle(buf[:n], from)
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
