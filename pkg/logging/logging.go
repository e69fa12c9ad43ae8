// Package logging builds the zerolog logger used by the CLI.
package logging

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// New returns a console logger writing to w at the given level. debug
// forces the debug level regardless of level. An unparsable level falls
// back to warn. Colors are used only when w is a terminal.
func New(w io.Writer, level string, debug bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}
	if debug {
		lvl = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !isTerminal(w),
		TimeFormat: "15:04:05",
	}).Level(lvl).With().
		Timestamp().
		Str("app", "toolbelt").
		Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
