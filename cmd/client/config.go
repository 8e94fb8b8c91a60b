package main

import "time"

// Config defines the client-side environment variables.
type Config struct {
	ServerHost      string        `env:"CHAT_SERVER_HOST,default=127.0.0.1" validate:"required"`
	ServerPort      int           `env:"CHAT_SERVER_PORT,default=50000" validate:"min=1,max=65535"`
	Nickname        string        `env:"NICKNAME,default=guest" validate:"required,max=32,excludesall=0x7C"`
	PollInterval    time.Duration `env:"POLL_INTERVAL,default=500ms" validate:"gt=0"`
	BufferSize      int           `env:"BUFFER_SIZE,default=4096" validate:"min=1"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"gt=0"`
	LogLevel        string        `env:"LOG_LEVEL,default=WARN"`
	Colours         bool          `env:"COLOURS,default=true"`
}
