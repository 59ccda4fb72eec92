package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"physcalc/internal/constants"
	"physcalc/internal/format"
)

// NamesPanel lists constants or units as buttons that insert their value.
type NamesPanel struct {
	buttons   map[string]*widget.Button
	container *widget.Card
}

// NewNamesPanel builds a panel for the entries of one kind.
func NewNamesPanel(c *Calculator, kind constants.Kind) *NamesPanel {
	np := &NamesPanel{buttons: make(map[string]*widget.Button)}

	title := "Physics Constants (Click to Insert)"
	insert := c.InsertConstant
	if kind == constants.KindUnit {
		title = "Unit Conversions"
		insert = c.InsertUnit
	}

	list := container.NewVBox()
	for _, e := range c.Session().Table().Kind(kind) {
		symbol := e.Symbol
		btn := widget.NewButton(entryLabel(e), func() { insert(symbol) })
		btn.Alignment = widget.ButtonAlignLeading
		np.buttons[symbol] = btn
		list.Add(btn)
	}

	scroll := container.NewVScroll(list)
	scroll.SetMinSize(fyne.NewSize(NamesPanelWidth, 200))
	np.container = widget.NewCard("", title, scroll)
	return np
}

// entryLabel renders "symbol  description (value)" for a panel button.
func entryLabel(e constants.Entry) string {
	return fmt.Sprintf("%s  %s (%s)", e.Symbol, e.Description, format.Mantissa(e.Value))
}

// Container returns the panel.
func (np *NamesPanel) Container() *widget.Card {
	return np.container
}

// Button returns the button for symbol, or nil.
func (np *NamesPanel) Button(symbol string) *widget.Button {
	return np.buttons[symbol]
}
