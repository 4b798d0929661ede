package main

import (
	"errors"
	"io"
	"os"

	"Photon/internal/console"
	"Photon/internal/logger"

	"github.com/rs/zerolog"
)

// run returns the process exit status. A closed stdin is a normal exit.
func run(in io.Reader, out io.Writer, log zerolog.Logger) int {
	calc := console.New(in, out, log)
	if err := calc.Run(); err != nil && !errors.Is(err, console.ErrInputExhausted) {
		log.Error().Err(err).Msg("calculator stopped")
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Stdin, os.Stdout, logger.NewConsole(os.Getenv("LOG_LEVEL"))))
}
