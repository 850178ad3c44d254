// Package logger holds the process-wide zerolog logger used by the commands.
// Library packages never log; they return errors.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	SetConsoleWriter(os.Stderr)
}

// Log returns the shared logger.
func Log() *zerolog.Logger {
	return &log
}

// SetConsoleWriter sends human-readable output to w.
func SetConsoleWriter(w io.Writer) {
	log = zerolog.New(zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = w
		cw.TimeFormat = "15:04:05.000"
	})).With().Timestamp().Logger()
}

// SetJSONWriter sends one JSON object per line to w.
func SetJSONWriter(w io.Writer) {
	log = zerolog.New(w).With().Timestamp().Logger()
}

// SetLevel sets the global level from one of debug, info, warn, error or
// silent.
func SetLevel(level string) error {
	switch strings.ToLower(level) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "", "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "silent":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	default:
		return fmt.Errorf("unknown log level %q", level)
	}
	return nil
}
