package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
)

// Window dimensions
const (
	WindowWidth  = 1200
	WindowHeight = 800
)

// Width of the constants and units panels
const NamesPanelWidth = 300

// Main display text size
const ResultTextSize = 28

// Key colors
var (
	colorAction   = color.NRGBA{R: 0xff, G: 0x6b, B: 0x35, A: 0xff} // = C CE ←
	colorOperator = color.NRGBA{R: 0x35, G: 0xa7, B: 0xff, A: 0xff} // + - * / ( ) ±
	colorConstant = color.NRGBA{R: 0xff, G: 0x35, B: 0xa7, A: 0xff} // π e
	colorFunction = color.NRGBA{R: 0xa7, G: 0x35, B: 0xff, A: 0xff} // powers, roots, logs
	colorMisc     = color.NRGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff} // EXP ANS
	colorDigit    = color.NRGBA{R: 0x4a, G: 0x4a, B: 0x4a, A: 0xff}
	colorKeyText  = color.White

	colorDisplayBg   = color.Black
	colorDisplayText = color.NRGBA{R: 0x00, G: 0xff, B: 0x88, A: 0xff}
)

// NewWindowSize returns the default window size
func NewWindowSize() fyne.Size {
	return fyne.NewSize(WindowWidth, WindowHeight)
}
