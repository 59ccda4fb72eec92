package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
)

// DisplayView shows the formatted result above the expression being typed.
type DisplayView struct {
	result    *canvas.Text
	input     *expressionEntry
	container *fyne.Container
}

// NewDisplayView creates the display. Keys typed while the expression line
// has focus go to onRune and onKey, pasted text to onPaste.
func NewDisplayView(onRune func(rune), onKey func(*fyne.KeyEvent), onPaste func(string)) *DisplayView {
	dv := &DisplayView{}

	dv.result = canvas.NewText("0", colorDisplayText)
	dv.result.TextSize = ResultTextSize
	dv.result.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	dv.result.Alignment = fyne.TextAlignTrailing

	dv.input = newExpressionEntry(onRune, onKey, onPaste)

	bg := canvas.NewRectangle(colorDisplayBg)
	dv.container = container.NewStack(bg, container.NewPadded(container.NewVBox(
		container.New(layout.NewCustomPaddedLayout(8, 8, 0, 0), dv.result),
		dv.input,
	)))

	return dv
}

// Container returns the display's container.
func (dv *DisplayView) Container() *fyne.Container {
	return dv.container
}

// SetResult replaces the main display text.
func (dv *DisplayView) SetResult(s string) {
	dv.result.Text = s
	dv.result.Refresh()
}

// Result returns the main display text.
func (dv *DisplayView) Result() string {
	return dv.result.Text
}

// SetInput shows the expression, or "0" when it is empty.
func (dv *DisplayView) SetInput(s string) {
	if s == "" {
		s = "0"
	}
	dv.input.SetText(s)
	dv.input.CursorColumn = len([]rune(s))
}

// Input returns the expression line as displayed.
func (dv *DisplayView) Input() string {
	return dv.input.Text
}

// FocusTarget returns the widget that should hold keyboard focus.
func (dv *DisplayView) FocusTarget() fyne.Focusable {
	return dv.input
}
