package main

import (
	"chat-relay/internal"
	"chat-relay/repositories"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

type Config struct {
	TranscriptPath string `env:"TRANSCRIPT_PATH,required=true" validate:"required"`
	LimitLines     *int   `env:"LIMIT_LINES" validate:"omitempty,min=1"`
	LogLevel       string `env:"LOG_LEVEL,default=WARN"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config
	var config Config
	if err := internal.LoadConfig(&config); err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Open Badger in Read-Only mode
	// BypassLockGuard allows reading while a running server holds the lock
	db, err := badger.Open(badger.DefaultOptions(config.TranscriptPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("failed to open transcript: %w", err)
	}
	defer db.Close()

	// 3. Print the most recent lines
	lines, err := repositories.NewTranscriptRepository(db, log).GetLines(config.LimitLines)
	if err != nil {
		return fmt.Errorf("failed to read transcript: %w", err)
	}
	printTranscript(os.Stdout, lines)
	return nil
}

func printTranscript(out io.Writer, lines []repositories.TranscriptLine) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"At", "Line"})
	table.SetAutoWrapText(false)
	for _, line := range lines {
		table.Append([]string{line.At.Local().Format(time.DateTime), line.Line})
	}
	table.Render()
}
