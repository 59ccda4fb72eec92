// Package buffer holds the expression being typed, with the insertion rules
// of a calculator keypad.
package buffer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"physcalc/internal/format"
)

// Buffer is the editable expression under construction. The zero value is an
// empty buffer ready to use.
type Buffer struct {
	text string
}

// New returns a buffer holding s.
func New(s string) *Buffer {
	return &Buffer{text: s}
}

// String returns the current expression.
func (b *Buffer) String() string {
	return b.text
}

// Empty reports whether nothing has been typed.
func (b *Buffer) Empty() bool {
	return b.text == ""
}

// Set replaces the whole expression.
func (b *Buffer) Set(s string) {
	b.text = s
}

// AppendToken appends t. A run of digits typed into an empty buffer or a
// lone "0" replaces it instead.
func (b *Buffer) AppendToken(t string) {
	if b.blank() && isDigits(t) {
		b.text = t
		return
	}
	b.text += t
}

// AppendNamedValue inserts the decimal form of a constant or unit value,
// multiplying implicitly when the buffer ends in an operand.
func (b *Buffer) AppendNamedValue(v float64) {
	b.insertOperand(format.Decimal(v))
}

// AppendFunction inserts a function opener such as "sqrt(" using the same
// implicit multiplication rule as AppendNamedValue.
func (b *Buffer) AppendFunction(name string) {
	b.insertOperand(name)
}

// AppendPowerSuffix applies a suffix such as "**2" to the expression. When
// the buffer does not end in an operand the whole buffer is parenthesized
// first, so "+" becomes "(+)**2" and "" becomes "()**2"; evaluation reports
// those as syntax errors.
func (b *Buffer) AppendPowerSuffix(suffix string) {
	if endsWithOperand(b.text) {
		b.text += suffix
		return
	}
	b.text = "(" + b.text + ")" + suffix
}

// Backspace removes the last character. It is a no-op on an empty buffer.
func (b *Buffer) Backspace() {
	if b.text == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(b.text)
	b.text = b.text[:len(b.text)-size]
}

// Clear empties the buffer.
func (b *Buffer) Clear() {
	b.text = ""
}

// ToggleSign strips a leading "-" or adds one.
func (b *Buffer) ToggleSign() {
	if strings.HasPrefix(b.text, "-") {
		b.text = b.text[1:]
		return
	}
	b.text = "-" + b.text
}

// AppendLastResult appends the decimal form of the previous result, following
// the AppendToken rules. It does nothing when ok is false.
func (b *Buffer) AppendLastResult(v float64, ok bool) {
	if !ok {
		return
	}
	b.AppendToken(format.Decimal(v))
}

func (b *Buffer) insertOperand(s string) {
	switch {
	case b.blank():
		b.text = s
	case endsWithOperand(b.text):
		b.text += "*" + s
	default:
		b.text += s
	}
}

func (b *Buffer) blank() bool {
	return b.text == "" || b.text == "0"
}

func endsWithOperand(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	return r == ')' || unicode.IsDigit(r)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
