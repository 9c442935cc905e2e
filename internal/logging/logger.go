// Package logging provides the shared zerolog logger used by all internal
// packages.
package logging

import (
	"io"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// L is the global logger. Packages log through L (or the printf-style helpers
// below) so that output format and level are controlled in one place.
var L = newConsoleLogger(os.Stderr)

func isTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// newConsoleLogger returns a logger that writes human-readable lines when
// stderr is a terminal, and JSON otherwise.
func newConsoleLogger(out io.Writer) zerolog.Logger {
	if !isTerminal() {
		return newLogger(out)
	}

	writer := zerolog.ConsoleWriter{
		Out:         out,
		TimeFormat:  time.Kitchen,
		FormatLevel: consoleFormatLevel,
	}
	return zerolog.New(writer).Level(zerolog.InfoLevel).With().Timestamp().Logger()
}

func newLogger(out io.Writer) zerolog.Logger {
	return zerolog.New(out).Level(zerolog.InfoLevel).With().Timestamp().Logger()
}

// SetLevel adjusts the level of the global logger. Accepts any name understood
// by zerolog ("debug", "info", "warn", ...).
func SetLevel(name string) error {
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return err
	}
	L = L.Level(level)
	return nil
}

// PatchLogger sets the global logger to write to w for the duration of a
// test, and restores the original when the test ends.
func PatchLogger(t *testing.T, w io.Writer) {
	t.Helper()
	orig := L
	L = newLogger(w).Level(zerolog.DebugLevel)
	t.Cleanup(func() {
		L = orig
	})
}

func Debugf(format string, v ...interface{}) {
	L.Debug().CallerSkipFrame(1).Msgf(format, v...)
}

func Infof(format string, v ...interface{}) {
	L.Info().CallerSkipFrame(1).Msgf(format, v...)
}

func Warnf(format string, v ...interface{}) {
	L.Warn().CallerSkipFrame(1).Msgf(format, v...)
}

func Errorf(format string, v ...interface{}) {
	L.Error().CallerSkipFrame(1).Msgf(format, v...)
}
