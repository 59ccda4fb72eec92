package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"physcalc/internal/session"
)

// key is one keypad button: its label, color role and action.
type key struct {
	label string
	style keyStyle
	press func(c *Calculator)
}

func token(t string) func(*Calculator) {
	return func(c *Calculator) { c.Do(func(s *session.Session) { s.AppendToken(t) }) }
}

func function(opener string) func(*Calculator) {
	return func(c *Calculator) { c.Do(func(s *session.Session) { s.AppendFunction(opener) }) }
}

func powerSuffix(suffix string) func(*Calculator) {
	return func(c *Calculator) { c.Do(func(s *session.Session) { s.AppendPowerSuffix(suffix) }) }
}

func edit(fn func(*session.Session)) func(*Calculator) {
	return func(c *Calculator) { c.Do(fn) }
}

// powerKeys is the "Power & Scientific Functions" grid, six per row.
var powerKeys = []key{
	{"x²", styleFunction, powerSuffix("**2")},
	{"x³", styleFunction, powerSuffix("**3")},
	{"x^y", styleFunction, token("^")},
	{"√x", styleFunction, function("sqrt(")},
	{"∛x", styleFunction, function("cbrt(")},
	{"10^x", styleFunction, function("10**")},
	{"e^x", styleFunction, function("euler**")},
	{"ln(x)", styleFunction, function("ln(")},
	{"log(x)", styleFunction, function("log10(")},
	{"sin(x)", styleFunction, function("sin(")},
	{"cos(x)", styleFunction, function("cos(")},
	{"tan(x)", styleFunction, function("tan(")},
}

// standardKeys is the main keypad, six per row.
var standardKeys = []key{
	{"C", styleAction, edit((*session.Session).Clear)},
	{"CE", styleAction, edit((*session.Session).Clear)},
	{"←", styleAction, edit((*session.Session).Backspace)},
	{"/", styleOperator, token("/")},
	{"(", styleOperator, token("(")},
	{")", styleOperator, token(")")},

	{"7", styleDigit, token("7")},
	{"8", styleDigit, token("8")},
	{"9", styleDigit, token("9")},
	{"*", styleOperator, token("*")},
	{"π", styleConstant, func(c *Calculator) { c.InsertConstant("π") }},
	{"e", styleConstant, func(c *Calculator) { c.InsertConstant("euler") }},

	{"4", styleDigit, token("4")},
	{"5", styleDigit, token("5")},
	{"6", styleDigit, token("6")},
	{"-", styleOperator, token("-")},
	{"x²", styleFunction, powerSuffix("**2")},
	{"√", styleFunction, function("sqrt(")},

	{"1", styleDigit, token("1")},
	{"2", styleDigit, token("2")},
	{"3", styleDigit, token("3")},
	{"+", styleOperator, token("+")},
	{"^", styleFunction, token("^")},
	{"ln", styleFunction, function("ln(")},

	{"±", styleOperator, edit((*session.Session).ToggleSign)},
	{"0", styleDigit, token("0")},
	{".", styleDigit, token(".")},
	{"=", styleAction, (*Calculator).Evaluate},
	{"EXP", styleMisc, token("e")},
	{"ANS", styleMisc, edit((*session.Session).AppendLastResult)},
}

const keysPerRow = 6

// Keypad holds the function grid and the standard keypad.
type Keypad struct {
	buttons   map[string]*KeyButton
	container *fyne.Container
}

// NewKeypad builds both key grids wired to c.
func NewKeypad(c *Calculator) *Keypad {
	kp := &Keypad{buttons: make(map[string]*KeyButton)}

	power := widget.NewCard("", "Power & Scientific Functions", kp.grid(c, powerKeys, "fn:"))
	standard := kp.grid(c, standardKeys, "")

	kp.container = container.NewVBox(power, standard)
	return kp
}

func (kp *Keypad) grid(c *Calculator, keys []key, prefix string) *fyne.Container {
	objs := make([]fyne.CanvasObject, 0, len(keys))
	for _, k := range keys {
		k := k
		btn := NewKeyButton(k.label, k.style, func() { k.press(c) })
		kp.buttons[prefix+k.label] = btn
		objs = append(objs, btn)
	}
	return container.NewGridWithColumns(keysPerRow, objs...)
}

// Container returns the keypad container.
func (kp *Keypad) Container() *fyne.Container {
	return kp.container
}

// Button returns the standard key with the given label, or the function key
// when the label is prefixed with "fn:".
func (kp *Keypad) Button(label string) *KeyButton {
	return kp.buttons[label]
}
