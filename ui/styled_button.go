package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// keyStyle groups keypad keys by role; each role has its own color.
type keyStyle int

const (
	styleDigit keyStyle = iota
	styleOperator
	styleAction
	styleConstant
	styleFunction
	styleMisc
)

func (s keyStyle) color() color.Color {
	switch s {
	case styleOperator:
		return colorOperator
	case styleAction:
		return colorAction
	case styleConstant:
		return colorConstant
	case styleFunction:
		return colorFunction
	case styleMisc:
		return colorMisc
	}
	return colorDigit
}

// KeyButton is a keypad button drawn in its role color.
type KeyButton struct {
	widget.Button
	style keyStyle
	hover bool
}

// NewKeyButton creates a keypad button.
func NewKeyButton(label string, style keyStyle, tapped func()) *KeyButton {
	btn := &KeyButton{style: style}
	btn.Text = label
	btn.OnTapped = tapped
	btn.ExtendBaseWidget(btn)
	return btn
}

// MouseIn lightens the key while hovered.
func (b *KeyButton) MouseIn(ev *desktop.MouseEvent) {
	b.hover = true
	b.Button.MouseIn(ev)
}

// MouseOut restores the key color.
func (b *KeyButton) MouseOut() {
	b.hover = false
	b.Button.MouseOut()
}

// CreateRenderer returns a custom renderer.
func (b *KeyButton) CreateRenderer() fyne.WidgetRenderer {
	b.ExtendBaseWidget(b)

	bg := canvas.NewRectangle(b.style.color())
	bg.CornerRadius = theme.InputRadiusSize()

	label := canvas.NewText(b.Text, colorKeyText)
	label.Alignment = fyne.TextAlignCenter
	label.TextStyle = fyne.TextStyle{Bold: true}

	return &keyBtnRenderer{
		btn:     b,
		bg:      bg,
		label:   label,
		objects: []fyne.CanvasObject{bg, label},
	}
}

type keyBtnRenderer struct {
	btn     *KeyButton
	bg      *canvas.Rectangle
	label   *canvas.Text
	objects []fyne.CanvasObject
}

func (r *keyBtnRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	labelMin := r.label.MinSize()
	r.label.Move(fyne.NewPos(
		(size.Width-labelMin.Width)/2,
		(size.Height-labelMin.Height)/2,
	))
	r.label.Resize(labelMin)
}

func (r *keyBtnRenderer) MinSize() fyne.Size {
	labelMin := r.label.MinSize()
	pad := theme.InnerPadding()
	return fyne.NewSize(labelMin.Width+pad*4, labelMin.Height+pad*2)
}

func (r *keyBtnRenderer) Refresh() {
	r.label.Text = r.btn.Text

	fill := r.btn.style.color()
	if r.btn.hover {
		fill = lighten(fill)
	}
	r.bg.FillColor = fill

	r.bg.Refresh()
	r.label.Refresh()
}

func (r *keyBtnRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *keyBtnRenderer) Destroy()                     {}

// lighten mixes c a quarter of the way towards white.
func lighten(c color.Color) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	mix := func(v uint8) uint8 { return v + (255-v)/4 }
	return color.NRGBA{R: mix(n.R), G: mix(n.G), B: mix(n.B), A: n.A}
}
