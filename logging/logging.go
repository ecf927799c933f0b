// Package logging builds the run logger: structured JSON records with a
// run id attached, written to a durable log file when one is configured.
// A failure to open or write the log file falls back to stderr and is
// never allowed to fail the run.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// fallbackWriter writes to the primary sink and switches to stderr for
// any record the primary rejects.
type fallbackWriter struct {
	primary io.Writer
}

func (w *fallbackWriter) Write(p []byte) (int, error) {
	if w.primary != nil {
		if n, err := w.primary.Write(p); err == nil {
			return n, nil
		}
	}
	return os.Stderr.Write(p)
}

// NewRunLogger returns a logger for one batch run plus the run id it
// stamps on every record. logFile may be empty, in which case records
// go to stderr only.
func NewRunLogger(logFile string, debug bool) (*slog.Logger, string) {
	runID := uuid.NewString()

	var primary io.Writer
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err == nil {
			primary = f
		}
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(&fallbackWriter{primary: primary}, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(handler).With("run_id", runID), runID
}
