package main

import "time"

type Config struct {
	Host            string        `env:"HOST,default=0.0.0.0" validate:"required"`
	Port            int           `env:"PORT,default=50000" validate:"min=1,max=65535"`
	PollInterval    time.Duration `env:"POLL_INTERVAL,default=500ms" validate:"gt=0"`
	BufferSize      int           `env:"BUFFER_SIZE,default=4096" validate:"min=1"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"gt=0"`
	LogLevel        string        `env:"LOG_LEVEL,default=INFO"`
	TranscriptPath  string        `env:"TRANSCRIPT_PATH"`
	Colours         bool          `env:"COLOURS,default=true"`
	BacklogInterval time.Duration `env:"BACKLOG_INTERVAL,default=5s" validate:"gt=0"`
	BacklogLimit    int           `env:"BACKLOG_LIMIT,default=1000" validate:"min=1"`
}
