// Package logging configures the process-wide diagnostic logger.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init sets up the global logger on stderr. Info is the default level;
// debug adds path resolution and per-check events.
func Init(debug bool) {
	InitWithWriter(debug, os.Stderr)
}

// InitWithWriter is Init with an explicit destination.
func InitWithWriter(debug bool, w io.Writer) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	})
}
