package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"physcalc/internal/history"
)

var historyColumns = []string{"Time", "Expression", "Result"}

// HistoryView displays the session's calculation history as a table.
type HistoryView struct {
	log   *history.Log
	table *widget.Table
}

// NewHistoryView creates a table reading from log.
func NewHistoryView(log *history.Log) *HistoryView {
	hv := &HistoryView{log: log}

	hv.table = widget.NewTable(
		hv.tableSize,
		hv.createCell,
		hv.updateCell,
	)

	hv.table.SetColumnWidth(0, 70)  // Time
	hv.table.SetColumnWidth(1, 150) // Expression
	hv.table.SetColumnWidth(2, 120) // Result

	return hv
}

// Container returns the table widget.
func (hv *HistoryView) Container() *widget.Table {
	return hv.table
}

// Refresh redraws the table and scrolls to the newest entry.
func (hv *HistoryView) Refresh() {
	hv.table.Refresh()
	if n := hv.log.Len(); n > 0 {
		hv.table.ScrollTo(widget.TableCellID{Row: n, Col: 0})
	}
}

func (hv *HistoryView) tableSize() (rows int, cols int) {
	return hv.log.Len() + 1, len(historyColumns) // +1 for header
}

func (hv *HistoryView) createCell() fyne.CanvasObject {
	return widget.NewLabel("")
}

func (hv *HistoryView) updateCell(id widget.TableCellID, obj fyne.CanvasObject) {
	label := obj.(*widget.Label)

	if id.Row == 0 {
		label.TextStyle = fyne.TextStyle{Bold: true}
		label.SetText(historyColumns[id.Col])
		return
	}

	e, ok := hv.log.At(id.Row - 1)
	if !ok {
		label.SetText("")
		return
	}

	label.TextStyle = fyne.TextStyle{Monospace: id.Col > 0}
	switch id.Col {
	case 0:
		label.SetText(e.CreatedAt.Format("15:04:05"))
	case 1:
		label.SetText(e.Expression)
	case 2:
		label.SetText(e.Result)
	}
}
