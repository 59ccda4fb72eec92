package ui

import (
	"strings"

	"fyne.io/fyne/v2"
)

// typedChars are the non-digit characters accepted from the keyboard.
const typedChars = "+-*/.()"

// acceptRune reports whether a typed character goes into the expression.
// Letters are not accepted; names are inserted with the panel buttons.
func acceptRune(r rune) bool {
	return (r >= '0' && r <= '9') || strings.ContainsRune(typedChars, r)
}

// pastedChars extend the typed set with the notation of formatted results
// (1.989×10^-25, 6.63e-34).
const pastedChars = "×^eE"

// acceptPaste reports whether every character of pasted text is one the
// keyboard accepts or part of a formatted number.
func acceptPaste(text string) bool {
	for _, r := range text {
		if !acceptRune(r) && !strings.ContainsRune(pastedChars, r) {
			return false
		}
	}
	return true
}

type keyAction int

const (
	keyIgnored keyAction = iota
	keyEvaluate
	keyBackspace
	keyClear
)

// actionForKey maps the editing keys the calculator handles.
func actionForKey(name fyne.KeyName) keyAction {
	switch name {
	case fyne.KeyReturn, fyne.KeyEnter:
		return keyEvaluate
	case fyne.KeyBackspace:
		return keyBackspace
	case fyne.KeyEscape:
		return keyClear
	}
	return keyIgnored
}
