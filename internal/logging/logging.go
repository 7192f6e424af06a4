package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global zerolog logger. When console is true, output is
// human readable; otherwise it is JSON on stderr.
func Setup(level string, console bool) {
	Configure(os.Stderr, level, console)
}

// Configure is Setup with an explicit writer.
func Configure(w io.Writer, level string, console bool) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339

	if console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.DateTime}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}
