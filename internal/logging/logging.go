// Package logging configures the zerolog console logger shared by the
// cmds and the simulation's discrete session events.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger at the named level. Unknown level names
// fall back to info.
func New(level string) zerolog.Logger {
	zerolog.SetGlobalLevel(parseLevel(level))
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return zerolog.New(writer).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "trace":
		return zerolog.TraceLevel
	default:
		return zerolog.InfoLevel
	}
}
