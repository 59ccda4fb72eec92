package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"physcalc/internal/export"
	"physcalc/internal/model"
)

// Controls manages the mode toggle, history and clipboard buttons.
type Controls struct {
	calc *Calculator

	modeBtn   *widget.Button
	clearBtn  *widget.Button
	copyBtn   *widget.Button
	exportBtn *widget.Button

	container *fyne.Container
}

// NewControls creates the control buttons wired to c.
func NewControls(c *Calculator) *Controls {
	ctl := &Controls{calc: c}

	ctl.modeBtn = widget.NewButton(modeLabel(c.Session().DisplayMode()), ctl.onToggleMode)
	ctl.clearBtn = widget.NewButton("Clear History", ctl.onClearHistory)
	ctl.copyBtn = widget.NewButton("Copy Result", ctl.onCopy)
	ctl.exportBtn = widget.NewButton("Export History", ctl.onExport)

	ctl.container = container.NewHBox(ctl.modeBtn, ctl.clearBtn, ctl.copyBtn, ctl.exportBtn)
	return ctl
}

// Container returns the controls container.
func (ctl *Controls) Container() *fyne.Container {
	return ctl.container
}

func modeLabel(m model.DisplayMode) string {
	if m == model.Scientific {
		return "Scientific Notation: ON"
	}
	return "Scientific Notation: OFF"
}

func (ctl *Controls) onToggleMode() {
	m := ctl.calc.ToggleMode()
	ctl.modeBtn.SetText(modeLabel(m))
}

func (ctl *Controls) onClearHistory() {
	ctl.calc.ClearHistory()
	if ctl.calc.win != nil {
		dialog.ShowInformation("History", "Calculation history cleared!", ctl.calc.win)
	}
}

func (ctl *Controls) onCopy() {
	result := ctl.calc.Display().Result()
	app := fyne.CurrentApp()
	if app == nil {
		return
	}
	app.Clipboard().SetContent(result)
	if ctl.calc.win != nil {
		dialog.ShowInformation("Copied", fmt.Sprintf("Result copied to clipboard: %s", result), ctl.calc.win)
	}
}

func (ctl *Controls) onExport() {
	entries := ctl.calc.Session().History().List()
	win := ctl.calc.win
	if win == nil {
		return
	}
	if len(entries) == 0 {
		dialog.ShowInformation("Export", "No calculations to export.", win)
		return
	}

	save := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		write := export.WriteTXT
		if strings.EqualFold(writer.URI().Extension(), ".csv") {
			write = export.WriteCSV
		}
		if err := write(writer, entries); err != nil {
			dialog.ShowError(fmt.Errorf("export history: %w", err), win)
			return
		}
		ctl.calc.log.Info(logModule, "history exported", map[string]interface{}{
			"path":    writer.URI().Path(),
			"entries": len(entries),
		})
	}, win)
	save.SetFileName("history.csv")
	save.SetFilter(storage.NewExtensionFileFilter([]string{".csv", ".txt"}))
	save.Show()
}
