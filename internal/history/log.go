// Package history keeps the in-memory record of successful evaluations.
package history

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"physcalc/internal/model"
)

// Log is an append-only list of evaluations, oldest first. It is safe for
// concurrent use.
type Log struct {
	mu      sync.Mutex
	entries []model.HistoryEntry
	now     func() time.Time
}

// New returns an empty log.
func New() *Log {
	return &Log{now: time.Now}
}

// Append records a successful evaluation and returns the stored entry.
func (l *Log) Append(expr, result string, value float64) model.HistoryEntry {
	e := model.HistoryEntry{
		ID:         uuid.New(),
		Expression: expr,
		Result:     result,
		Value:      value,
		CreatedAt:  l.now(),
	}

	l.mu.Lock()
	l.entries = append(l.entries, e)
	l.mu.Unlock()
	return e
}

// Clear removes every entry.
func (l *Log) Clear() {
	l.mu.Lock()
	l.entries = nil
	l.mu.Unlock()
}

// List returns a copy of all entries in insertion order.
func (l *Log) List() []model.HistoryEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.HistoryEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// At returns entry i, or false when i is out of range.
func (l *Log) At(i int) (model.HistoryEntry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if i < 0 || i >= len(l.entries) {
		return model.HistoryEntry{}, false
	}
	return l.entries[i], true
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
