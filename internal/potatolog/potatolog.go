// Package potatolog keeps zerolog output in memory, so that it can be shown
// inside the TUI while the terminal is taken.
package potatolog

import (
	"encoding/json"
	"fmt"
	"sync"
)

// LogEntry is a single log entry.
type LogEntry = map[string]any

// MemoryLogReaderWriter is a simple in-memory log reader and writer.
// It keeps at most its capacity of most recent entries.
type MemoryLogReaderWriter struct {
	mtx      sync.Mutex
	log      []LogEntry
	capacity int
}

// NewMemoryLogReaderWriter returns an empty MemoryLogReaderWriter keeping up
// to capacity entries.
func NewMemoryLogReaderWriter(capacity int) *MemoryLogReaderWriter {
	return &MemoryLogReaderWriter{
		log:      []LogEntry{},
		capacity: capacity,
	}
}

// Write appends a log entry to the log.
// p must be a single JSON-encoded entry, as written by zerolog.
func (w *MemoryLogReaderWriter) Write(p []byte) (int, error) {
	entry := LogEntry{}
	err := json.Unmarshal(p, &entry)
	if err != nil {
		return 0, fmt.Errorf("could not unmarshal log entry (err:%s) (input:'%s')", err.Error(), string(p))
	}

	w.mtx.Lock()
	defer w.mtx.Unlock()
	w.log = append(w.log, entry)
	if w.capacity > 0 && len(w.log) > w.capacity {
		w.log = w.log[len(w.log)-w.capacity:]
	}
	return len(p), nil
}

// Get returns a copy of the log.
func (w *MemoryLogReaderWriter) Get() []LogEntry {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	result := make([]LogEntry, len(w.log))
	copy(result, w.log)
	return result
}

// Last returns the level and message of the most recent entry at or above
// info level. ok is false if there is none.
func (w *MemoryLogReaderWriter) Last() (level, message string, ok bool) {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	for i := len(w.log) - 1; i >= 0; i-- {
		level, _ = w.log[i]["level"].(string)
		switch level {
		case "debug", "trace":
			continue
		}
		message, _ = w.log[i]["message"].(string)
		return level, message, true
	}
	return "", "", false
}

// LogReader allows reading access to a log.
type LogReader interface {
	Get() []LogEntry
	Last() (level, message string, ok bool)
}
