package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"physcalc/internal/constants"
	"physcalc/internal/logger"
	"physcalc/internal/session"
)

// BuildMainWindow creates and configures the main application window.
func BuildMainWindow(app fyne.App, sess *session.Session, log logger.Logger) fyne.Window {
	win := app.NewWindow("Physics Calculator")
	win.Resize(NewWindowSize())

	calc := NewCalculator(sess, log)
	calc.SetWindow(win)

	controls := NewControls(calc)
	keypad := NewKeypad(calc)
	constantsPanel := NewNamesPanel(calc, constants.KindConstant)
	unitsPanel := NewNamesPanel(calc, constants.KindUnit)

	title := widget.NewLabelWithStyle("Physics Calculator", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	subtitle := widget.NewLabelWithStyle("Numbers with many zeros auto-format as powers of 10",
		fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	top := container.NewVBox(
		title,
		subtitle,
		calc.Display().Container(),
		controls.Container(),
	)

	historyCard := widget.NewCard("", "Calculation History", calc.History().Container())
	rightPanel := container.NewBorder(nil, unitsPanel.Container(), nil, nil, historyCard)

	center := container.NewVScroll(keypad.Container())

	body := container.NewHSplit(
		constantsPanel.Container(),
		container.NewHSplit(center, rightPanel),
	)
	body.SetOffset(0.25)

	win.SetContent(container.NewBorder(top, nil, nil, nil, body))

	// Keys typed while no widget has focus.
	win.Canvas().SetOnTypedRune(calc.TypedRune)
	win.Canvas().SetOnTypedKey(calc.TypedKey)
	win.Canvas().Focus(calc.Display().FocusTarget())

	calc.refresh()
	log.Info(logModule, "window ready", map[string]interface{}{
		"names": sess.Table().Len(),
		"mode":  sess.DisplayMode().String(),
	})

	return win
}
