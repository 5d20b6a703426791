// SPDX-License-Identifier: EPL-2.0

// Command q15 prints Q1.15 encodings of float values and decodes 16-bit
// codes back to floats.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	if err := NewCLI(logger).Execute(); err != nil {
		logger.Error().Err(err).Msg("q15 failed")
		os.Exit(1)
	}
}
