package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// expressionEntry shows the expression being typed. It never edits its own
// text: typed characters and editing keys are handed to the calculator, which
// owns the buffer, and the entry is redrawn from there.
type expressionEntry struct {
	widget.Entry
	onRune  func(rune)
	onKey   func(*fyne.KeyEvent)
	onPaste func(string)
}

func newExpressionEntry(onRune func(rune), onKey func(*fyne.KeyEvent), onPaste func(string)) *expressionEntry {
	e := &expressionEntry{onRune: onRune, onKey: onKey, onPaste: onPaste}
	e.TextStyle = fyne.TextStyle{Monospace: true}
	e.Wrapping = fyne.TextWrapOff
	e.ExtendBaseWidget(e)
	return e
}

// TypedRune forwards character input to the calculator.
func (e *expressionEntry) TypedRune(r rune) {
	if e.onRune != nil {
		e.onRune(r)
	}
}

// TypedKey forwards editing keys and keeps navigation local.
func (e *expressionEntry) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyBackspace, fyne.KeyDelete, fyne.KeyReturn, fyne.KeyEnter, fyne.KeyEscape:
		if e.onKey != nil {
			e.onKey(ev)
		}
		return
	}
	e.Entry.TypedKey(ev)
}

// TypedShortcut allows copy and select-all. Pasted text goes to the
// calculator in one piece; cut is blocked.
func (e *expressionEntry) TypedShortcut(s fyne.Shortcut) {
	switch sc := s.(type) {
	case *fyne.ShortcutCopy, *fyne.ShortcutSelectAll:
		e.Entry.TypedShortcut(s)
	case *fyne.ShortcutPaste:
		if sc.Clipboard == nil || e.onPaste == nil {
			return
		}
		e.onPaste(sc.Clipboard.Content())
	case *desktop.CustomShortcut:
		e.Entry.TypedShortcut(s)
	}
}
