package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// NopLogger returns a logger that discards all output.
// Use this in tests to avoid log noise.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// LogRecorder collects JSON log records written at Debug and above
type LogRecorder struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// RecordingLogger returns a logger whose output is kept in the returned
// recorder
func RecordingLogger() (*slog.Logger, *LogRecorder) {
	rec := &LogRecorder{}
	return slog.New(slog.NewJSONHandler(rec, &slog.HandlerOptions{Level: slog.LevelDebug})), rec
}

func (r *LogRecorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.Write(p)
}

// Records returns every record logged with the given message, decoded
// into attribute maps
func (r *LogRecorder) Records(msg string) []map[string]any {
	r.mu.Lock()
	defer r.mu.Unlock()

	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(r.buf.String()), "\n") {
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			continue
		}
		if rec[slog.MessageKey] == msg {
			records = append(records, rec)
		}
	}
	return records
}
