// Package logging builds the single process-wide zerolog.Logger used
// for debug diagnostics; cmd/eonsim writes its progress lines to stderr
// directly, not through this logger. It follows the console-writer-to-
// stderr construction the reference chaos-utils logger uses, trimmed to
// the one knob this simulator needs: a debug flag that raises the level
// to debug. The flag does not turn on netstate's sanity checks; the
// simulation loop never calls them.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New builds a logger that writes human-readable lines to w (typically
// os.Stderr), at debug level if debug is set, info level otherwise.
func New(w io.Writer, debug bool) zerolog.Logger {
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: false}
	logger := zerolog.New(console).With().Timestamp().Logger()
	if debug {
		return logger.Level(zerolog.DebugLevel)
	}
	return logger.Level(zerolog.InfoLevel)
}
