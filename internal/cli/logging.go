package cli

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// LevelForVerbosity maps the -v counter to a log level.
func LevelForVerbosity(verbosity int) zerolog.Level {
	switch verbosity {
	case 0:
		return zerolog.WarnLevel
	case 1:
		return zerolog.InfoLevel
	case 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// NewLogger returns a console logger writing to w at the level selected by verbosity.
func NewLogger(w io.Writer, verbosity int) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    true,
	}

	logger := zerolog.New(consoleWriter).
		Level(LevelForVerbosity(verbosity)).
		With().
		Timestamp().
		Logger()

	// Add caller information for debug and trace levels
	if verbosity >= 2 {
		logger = logger.With().Caller().Logger()
	}

	return logger
}

// componentLogger returns a logger tagged with the given component name
func componentLogger(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}
