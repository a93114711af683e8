// Package cli implements the img2ascii command-line interface: a
// single cobra command that decodes an image, converts it to text via
// the img2ascii pipeline, and writes the result to stdout or a file.
// Logging goes to stderr through charmbracelet/log; --verbose (-v)
// enables debug-level pipeline diagnostics.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w, filtering at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
