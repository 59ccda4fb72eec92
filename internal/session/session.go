// Package session ties the calculator core together: one Session owns the
// input buffer, the last result, the display mode and the history, and
// routes every user action through them.
package session

import (
	"fmt"

	"physcalc/internal/buffer"
	"physcalc/internal/calc"
	"physcalc/internal/constants"
	"physcalc/internal/format"
	"physcalc/internal/history"
	"physcalc/internal/logger"
	"physcalc/internal/model"
)

const logModule = "session"

// Session is the state behind one calculator window or REPL. It is not safe
// for concurrent use; front ends serialize user actions.
type Session struct {
	table *constants.Table
	eval  *calc.Evaluator
	log   logger.Logger

	buf     buffer.Buffer
	mode    model.DisplayMode
	history *history.Log

	last    float64
	hasLast bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger routes session events to l.
func WithLogger(l logger.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithDisplayMode sets the initial display mode.
func WithDisplayMode(m model.DisplayMode) Option {
	return func(s *Session) { s.mode = m }
}

// New returns a session with an empty buffer in scientific mode.
func New(table *constants.Table, ev *calc.Evaluator, opts ...Option) *Session {
	s := &Session{
		table:   table,
		eval:    ev,
		log:     logger.NewNop(),
		mode:    model.Scientific,
		history: history.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Table returns the constant/unit namespace the session evaluates against.
func (s *Session) Table() *constants.Table {
	return s.table
}

// Input returns the raw expression being edited.
func (s *Session) Input() string {
	return s.buf.String()
}

// SetInput replaces the expression, as when the user edits it directly.
func (s *Session) SetInput(text string) {
	s.buf.Set(text)
}

// Preview returns the live display for the current input.
func (s *Session) Preview() string {
	return format.Preview(s.buf.String(), s.mode)
}

func (s *Session) AppendToken(t string) {
	s.buf.AppendToken(t)
}

// AppendConstant inserts the value of a physical constant by symbol or alias.
func (s *Session) AppendConstant(symbol string) error {
	return s.appendEntry(symbol, constants.KindConstant)
}

// AppendUnit inserts the scale factor of a unit by symbol or alias.
func (s *Session) AppendUnit(symbol string) error {
	return s.appendEntry(symbol, constants.KindUnit)
}

func (s *Session) appendEntry(symbol string, kind constants.Kind) error {
	e, ok := s.table.Lookup(symbol)
	if !ok || e.Kind != kind {
		return fmt.Errorf("%s %q: %w", kind, symbol, constants.ErrNotFound)
	}
	s.buf.AppendNamedValue(e.Value)
	return nil
}

func (s *Session) AppendFunction(opener string) {
	s.buf.AppendFunction(opener)
}

func (s *Session) AppendPowerSuffix(suffix string) {
	s.buf.AppendPowerSuffix(suffix)
}

func (s *Session) Backspace() {
	s.buf.Backspace()
}

func (s *Session) Clear() {
	s.buf.Clear()
}

func (s *Session) ToggleSign() {
	s.buf.ToggleSign()
}

// AppendLastResult inserts the previous result. It does nothing before the
// first successful evaluation.
func (s *Session) AppendLastResult() {
	s.buf.AppendLastResult(s.last, s.hasLast)
}

// Submit evaluates the current input. On success the result is recorded in
// the history, remembered as the last result, and left in the buffer for
// chaining. On failure the buffer and history are untouched.
func (s *Session) Submit() (model.HistoryEntry, error) {
	raw := s.buf.String()
	v, err := s.eval.Evaluate(raw)
	if err != nil {
		s.log.Debug(logModule, "evaluation failed", map[string]interface{}{
			"expression": raw,
			"kind":       calc.KindOf(err).String(),
			"error":      err,
		})
		return model.HistoryEntry{}, err
	}

	entry := s.history.Append(raw, format.Number(v, s.mode), v)
	s.last, s.hasLast = v, true
	s.buf.Set(format.Decimal(v))

	s.log.Debug(logModule, "evaluated", map[string]interface{}{
		"expression": raw,
		"result":     entry.Result,
		"id":         entry.ID.String(),
	})
	return entry, nil
}

// LastResult returns the most recent successful result.
func (s *Session) LastResult() (float64, bool) {
	return s.last, s.hasLast
}

func (s *Session) DisplayMode() model.DisplayMode {
	return s.mode
}

// ToggleDisplayMode switches between scientific and plain output and returns
// the new mode. Existing history entries keep their formatting.
func (s *Session) ToggleDisplayMode() model.DisplayMode {
	s.mode = s.mode.Toggle()
	s.log.Debug(logModule, "display mode changed", map[string]interface{}{"mode": s.mode.String()})
	return s.mode
}

// SetDisplayMode selects a display mode explicitly.
func (s *Session) SetDisplayMode(m model.DisplayMode) {
	s.mode = m
}

// Format renders x with the current display mode.
func (s *Session) Format(x float64) string {
	return format.Number(x, s.mode)
}

// History returns the underlying log, for views that read it incrementally.
func (s *Session) History() *history.Log {
	return s.history
}

// ClearHistory empties the history log.
func (s *Session) ClearHistory() {
	n := s.history.Len()
	s.history.Clear()
	s.log.Info(logModule, "history cleared", map[string]interface{}{"entries": n})
}
