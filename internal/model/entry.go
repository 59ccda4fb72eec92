package model

import (
	"time"

	"github.com/google/uuid"
)

// DisplayMode selects how numeric results are rendered.
type DisplayMode int

const (
	Scientific DisplayMode = iota // mantissa×10^exponent for very large/small magnitudes
	Plain                         // shortest decimal representation
)

// String returns "scientific" or "plain".
func (m DisplayMode) String() string {
	if m == Plain {
		return "plain"
	}
	return "scientific"
}

// Toggle returns the other display mode.
func (m DisplayMode) Toggle() DisplayMode {
	if m == Plain {
		return Scientific
	}
	return Plain
}

// ParseDisplayMode converts "scientific" or "plain" into a DisplayMode.
func ParseDisplayMode(s string) (DisplayMode, bool) {
	switch s {
	case "scientific", "sci":
		return Scientific, true
	case "plain":
		return Plain, true
	}
	return Scientific, false
}

// HistoryEntry records one successful evaluation.
type HistoryEntry struct {
	ID         uuid.UUID
	Expression string  // raw input as typed
	Result     string  // formatted with the display mode active at evaluation time
	Value      float64 // unformatted result
	CreatedAt  time.Time
}

// Line renders the entry the way the history panel shows it.
func (e HistoryEntry) Line() string {
	return e.Expression + " = " + e.Result
}
