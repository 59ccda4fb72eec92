package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"physcalc/internal/calc"
	"physcalc/internal/logger"
	"physcalc/internal/model"
	"physcalc/internal/session"
)

const logModule = "ui"

// Calculator routes window events to the session and redraws the views.
// All methods run on the fyne event goroutine.
type Calculator struct {
	sess    *session.Session
	log     logger.Logger
	display *DisplayView
	history *HistoryView
	win     fyne.Window
}

// NewCalculator creates the controller and its display and history views.
func NewCalculator(sess *session.Session, log logger.Logger) *Calculator {
	c := &Calculator{sess: sess, log: log}
	c.display = NewDisplayView(c.TypedRune, c.TypedKey, c.Paste)
	c.history = NewHistoryView(sess.History())
	return c
}

// SetWindow attaches the window used for dialogs.
func (c *Calculator) SetWindow(win fyne.Window) {
	c.win = win
}

// Display returns the display view.
func (c *Calculator) Display() *DisplayView {
	return c.display
}

// History returns the history view.
func (c *Calculator) History() *HistoryView {
	return c.history
}

// Session returns the session behind the window.
func (c *Calculator) Session() *session.Session {
	return c.sess
}

// Do applies an edit to the session and updates the live preview.
func (c *Calculator) Do(edit func(*session.Session)) {
	edit(c.sess)
	c.refresh()
}

func (c *Calculator) refresh() {
	c.display.SetInput(c.sess.Input())
	c.display.SetResult(c.sess.Preview())
}

// Evaluate submits the expression. Errors are shown in the display and in a
// dialog; the expression stays as typed.
func (c *Calculator) Evaluate() {
	entry, err := c.sess.Submit()
	if err != nil {
		if calc.KindOf(err) == calc.EmptyInput {
			return
		}
		c.display.SetResult("Error: " + err.Error())
		c.showError(err)
		return
	}

	c.display.SetResult(entry.Result)
	c.display.SetInput(c.sess.Input())
	c.history.Refresh()
}

// InsertConstant inserts a physical constant by symbol.
func (c *Calculator) InsertConstant(symbol string) {
	c.insert(symbol, c.sess.AppendConstant)
}

// InsertUnit inserts a unit scale factor by symbol.
func (c *Calculator) InsertUnit(symbol string) {
	c.insert(symbol, c.sess.AppendUnit)
}

func (c *Calculator) insert(symbol string, appendFn func(string) error) {
	if err := appendFn(symbol); err != nil {
		c.log.Error(logModule, "insert failed", map[string]interface{}{"symbol": symbol, "error": err})
		c.showError(err)
		return
	}
	c.refresh()
}

// ToggleMode switches the display mode and re-renders the preview.
func (c *Calculator) ToggleMode() model.DisplayMode {
	m := c.sess.ToggleDisplayMode()
	c.refresh()
	return m
}

// ClearHistory empties the history table.
func (c *Calculator) ClearHistory() {
	c.sess.ClearHistory()
	c.history.Refresh()
}

// TypedRune handles keyboard characters.
func (c *Calculator) TypedRune(r rune) {
	if !acceptRune(r) {
		return
	}
	c.Do(func(s *session.Session) { s.AppendToken(string(r)) })
}

// Paste inserts clipboard text as one token so display-formatted results
// such as 1.989×10^-25 are read back as numbers. Text containing anything
// else the keyboard would reject is ignored as a whole.
func (c *Calculator) Paste(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if !acceptPaste(text) {
		c.log.Debug(logModule, "paste rejected", map[string]interface{}{"text": text})
		return
	}
	c.Do(func(s *session.Session) {
		if in := s.Input(); in == "" || in == "0" {
			s.SetInput(text)
			return
		}
		s.AppendToken(text)
	})
}

// TypedKey handles Enter, Backspace and Escape.
func (c *Calculator) TypedKey(ev *fyne.KeyEvent) {
	switch actionForKey(ev.Name) {
	case keyEvaluate:
		c.Evaluate()
	case keyBackspace:
		c.Do((*session.Session).Backspace)
	case keyClear:
		c.Do((*session.Session).Clear)
	}
}

func (c *Calculator) showError(err error) {
	if c.win == nil {
		return
	}
	dialog.ShowError(err, c.win)
}
