package main

import (
	"chat-relay/contract"
	"chat-relay/internal"
	"chat-relay/repositories"
	"chat-relay/runtime"
	"chat-relay/runtime/workers"
	"chat-relay/server"
	"chat-relay/sink"
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and owns their lifecycle, so deferred cleanup
// always happens before the process exits.
func run() error {
	// 1. Configuration & Logger
	var config Config
	if err := internal.LoadConfig(&config); err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Display sinks, with the optional transcript
	sinks := []contract.LineSink{sink.NewConsole(os.Stdout, config.Colours)}
	if config.TranscriptPath != "" {
		db, err := badger.Open(badger.DefaultOptions(config.TranscriptPath).
			WithLoggingLevel(badger.WARNING))
		if err != nil {
			return fmt.Errorf("transcript opening failed: %w", err)
		}
		defer func() {
			log.Info("Closing transcript...")
			_ = db.Close()
		}()
		sinks = append(sinks, sink.NewDiskSink(repositories.NewTranscriptRepository(db, log)))
	}

	// 3. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Relay server
	queue := runtime.NewInboundQueue()
	srv := server.NewServer(log, queue, server.Config{
		ListenAddr:      net.JoinHostPort(config.Host, strconv.Itoa(config.Port)),
		PollInterval:    config.PollInterval,
		RestartInterval: config.RestartInterval,
		BufferSize:      config.BufferSize,
	})
	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("server failed to start: %w", err)
	}
	defer srv.Stop()

	// 5. Display and backlog workers
	displayCtx, stopDisplay := context.WithCancel(context.Background())
	displayDone := make(chan struct{})
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(
		workers.NewDisplay(log, queue, sinks...),
		workers.NewQueueBacklogWorker(log,
			[]workers.NamedQueue{{Name: "server", Queue: queue}},
			config.BacklogLimit, config.BacklogInterval),
	)
	go func() {
		defer close(displayDone)
		sup.Run(displayCtx)
	}()

	// 6. Operator console
	operatorDone := make(chan struct{})
	go func() {
		defer close(operatorDone)
		operate(os.Stdin, os.Stdout, srv)
	}()

	// 7. Wait for a signal or /quit
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case <-operatorDone:
	}

	// 8. Final Cleanup
	srv.Stop()
	stopDisplay()
	<-displayDone
	log.Info("Program stopped cleanly")
	return nil
}
