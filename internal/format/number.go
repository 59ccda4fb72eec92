package format

import (
	"math"
	"strconv"
	"strings"

	"physcalc/internal/model"
)

// Scientific notation kicks in at or beyond these magnitudes.
const (
	upperThreshold = 1_000_000
	lowerThreshold = 0.000001
)

// integralTolerance decides when a value prints as an integer and when a
// 3-decimal mantissa is considered exact.
const integralTolerance = 1e-10

// Number renders x for display. Zero is always "0". In scientific mode values
// with magnitude >= 1e6 or <= 1e-6 render as mantissa×10^exponent; everything
// else renders as an integer when it is within 1e-10 of one, otherwise with
// 8 significant digits.
func Number(x float64, mode model.DisplayMode) string {
	if x == 0 {
		return "0"
	}
	if mode == model.Plain || math.IsNaN(x) || math.IsInf(x, 0) {
		return Decimal(x)
	}

	a := math.Abs(x)
	if a >= upperThreshold || a <= lowerThreshold {
		return Mantissa(x)
	}

	if r := math.RoundToEven(x); math.Abs(x-r) < integralTolerance {
		return strconv.FormatInt(int64(r), 10)
	}
	return strconv.FormatFloat(x, 'g', 8, 64)
}

// Mantissa renders a non-zero finite x as M×10^E with 1 <= |M| < 10. E and
// the digits of M come from the shortest decimal form of x. M keeps 3
// decimals when that loses less than 1e-10, otherwise 6.
func Mantissa(x float64) string {
	m, exp := splitDecimal(x)
	if r3 := roundTo(m, 3); math.Abs(m-r3) < integralTolerance {
		m = r3
	} else {
		m = roundTo(m, 6)
	}
	// Rounding can carry into the next power of ten: 9.9999996 -> 10.0.
	if math.Abs(m) >= 10 {
		m /= 10
		exp++
	}
	return Decimal(m) + "×10^" + strconv.Itoa(exp)
}

// splitDecimal returns the mantissa and exponent of the shortest round-trip
// form of x, so subnormals normalize like any other value.
func splitDecimal(x float64) (float64, int) {
	sci := strconv.FormatFloat(x, 'e', -1, 64)
	i := strings.IndexByte(sci, 'e')
	m, err := strconv.ParseFloat(sci[:i], 64)
	if err != nil {
		return x, 0
	}
	exp, err := strconv.Atoi(sci[i+1:])
	if err != nil {
		return x, 0
	}
	return m, exp
}

// roundTo rounds x to n decimal places using the exact decimal value of x,
// ties to even.
func roundTo(x float64, n int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', n, 64), 64)
	if err != nil {
		return x
	}
	return r
}

// Decimal returns the shortest string that parses back to x. Exponents in
// [-4, 16) use fixed notation with at least one fractional digit ("2.0",
// "300000000.0"); others use exponent form ("6.63e-34", "1e+16").
func Decimal(x float64) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	case x == 0:
		if math.Signbit(x) {
			return "-0.0"
		}
		return "0.0"
	}

	if _, exp := splitDecimal(x); exp < -4 || exp >= 16 {
		return strconv.FormatFloat(x, 'e', -1, 64)
	}

	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Preview renders the live display for a partially typed input. A bare
// numeric literal is formatted with Number; anything else is echoed as-is.
// An empty input previews as "0".
func Preview(input string, mode model.DisplayMode) string {
	if input == "" {
		return "0"
	}
	if !isNumericLiteral(input) {
		return input
	}
	v, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return input
	}
	return Number(v, mode)
}

// isNumericLiteral reports whether s consists of digits plus the characters
// of a float literal, with at least one digit.
func isNumericLiteral(s string) bool {
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.' || r == '-' || r == '+' || r == 'e':
		default:
			return false
		}
	}
	return digits > 0
}
