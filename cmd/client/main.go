package main

import (
	"chat-relay/client"
	"chat-relay/internal"
	"chat-relay/runtime"
	"chat-relay/runtime/workers"
	"chat-relay/sink"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mama165/sdk-go/logs"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

// run handles the client lifecycle: configuration, connection, the input
// loop and the display of everything the server relays.
func run() (int, error) {
	// 1. Load configuration from environment variables.
	var config Config
	if err := internal.LoadConfig(&config); err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Setup context to handle termination signals (Ctrl+C).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Display of inbound lines.
	queue := runtime.NewInboundQueue()
	displayCtx, stopDisplay := context.WithCancel(context.Background())
	displayDone := make(chan struct{})
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(workers.NewDisplay(log, queue, sink.NewConsole(os.Stdout, config.Colours)))
	go func() {
		defer close(displayDone)
		sup.Run(displayCtx)
	}()
	defer func() {
		stopDisplay()
		<-displayDone
	}()

	// 4. Connect to the relay.
	c := client.NewClient(log, queue, client.Config{
		ServerHost:      config.ServerHost,
		ServerPort:      config.ServerPort,
		Nickname:        config.Nickname,
		PollInterval:    config.PollInterval,
		RestartInterval: config.RestartInterval,
		BufferSize:      config.BufferSize,
	})
	if err := c.Connect(ctx); err != nil {
		return exitRuntime, fmt.Errorf("could not connect to %s: %w", c.ServerAddress(), err)
	}
	queue.Push(fmt.Sprintf("[*] Connected to %s as %s", c.ServerAddress(), c.Nickname()))

	// 5. Input loop until /quit, end of input or a signal.
	inputDone := make(chan struct{})
	go func() {
		defer close(inputDone)
		chat(os.Stdin, c)
	}()
	select {
	case <-ctx.Done():
	case <-inputDone:
	}

	c.Disconnect()
	queue.Push("[*] Disconnected")
	return exitOK, nil
}
