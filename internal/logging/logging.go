// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds a console logger writing to w. Quiet raises the level so only
// errors surface, which keeps piped report output clean.
func New(w io.Writer, quiet bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if quiet {
		level = zerolog.ErrorLevel
	}

	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
	}

	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// Default returns the stderr logger used by the CLI.
func Default(quiet bool) zerolog.Logger {
	return New(os.Stderr, quiet)
}
