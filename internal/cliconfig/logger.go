package cliconfig

import (
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Logger returns the process logger. Diagnostics go to stderr so they never
// mix with the invoked command's output; when stderr is a terminal the
// console writer is used, otherwise plain JSON. The level defaults to warn
// and can be lowered with XARGO_LOG_LEVEL.
func Logger() zerolog.Logger {
	var logger zerolog.Logger
	if isatty.IsTerminal(os.Stderr.Fd()) {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	level := zerolog.WarnLevel
	if v := os.Getenv("XARGO_LOG_LEVEL"); v != "" {
		if l, err := zerolog.ParseLevel(v); err == nil {
			level = l
		}
	}
	return logger.Level(level).With().Timestamp().Logger()
}
