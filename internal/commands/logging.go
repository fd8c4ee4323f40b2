package commands

import (
	"os"

	"github.com/rs/zerolog"
)

// NewLogger returns a console logger on stderr. Verbose enables debug
// events; the default level keeps runs quiet except for warnings.
func NewLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
