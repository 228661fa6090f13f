package png

import (
	"os"

	"github.com/rs/zerolog"
)

// log is the package-level structured logger, in the style of
// HandmadeNetwork-hmn/src/logging: a single shared zerolog.Logger that
// library code reads events through rather than constructing its own. The
// default level is Info; cmd/pngdump raises it to Debug when asked for
// verbose output. Library code never calls Fatal or Panic — only the CLI
// layer may terminate the process.
var log zerolog.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().Timestamp().Logger().
	Level(zerolog.InfoLevel)

// SetLogLevel adjusts the package logger's minimum level. Exported so
// cmd/pngdump (or any other caller) can opt into trace-level chunk/block
// tracing without this package depending on a CLI flag parser.
func SetLogLevel(level zerolog.Level) {
	log = log.Level(level)
}
