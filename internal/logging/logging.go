// Package logging configures zerolog for the queens CLI.
package logging

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup sets the global level, installs a console logger on w as the global
// logger and returns it. Writes to w are serialized.
func Setup(w io.Writer, level zerolog.Level) zerolog.Logger {
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(zerolog.ConsoleWriter{Out: zerolog.SyncWriter(w), NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()
	log.Logger = logger
	zerolog.DefaultContextLogger = &logger
	logger.Debug().Str("level", level.String()).Msg("logging configured")
	return logger
}
