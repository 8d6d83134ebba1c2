// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// openLog returns a logger writing to path. The terminal belongs to the
// scratch pad, so logs never go to stdout. An empty path discards logs.
func openLog(path string, verbose bool) (zerolog.Logger, io.Closer, error) {
	if path == "" {
		return zerolog.Nop(), io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("opening log file: %w", err)
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        f,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	logger := zerolog.New(consoleWriter).Level(level).With().Timestamp().Int("pid", os.Getpid()).Logger()

	return logger, f, nil
}
