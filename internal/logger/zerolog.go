package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New builds a JSON logger with timestamps. Unknown level names fall
// back to info.
func New(writer io.Writer, level string) zerolog.Logger {
	return zerolog.New(writer).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// NewConsole writes human readable lines to stderr, keeping stdout free
// for program output.
func NewConsole(level string) zerolog.Logger {
	return New(zerolog.ConsoleWriter{Out: os.Stderr}, level)
}

func ParseLevel(level string) zerolog.Level {
	l, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return l
}
