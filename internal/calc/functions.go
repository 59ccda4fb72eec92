package calc

import (
	"math"
	"sort"
	"strconv"
)

// function is an entry in the allow-list of callable names.
type function struct {
	arity int
	apply func(args []float64) (float64, error)
}

func unary(fn func(float64) (float64, error)) function {
	return function{arity: 1, apply: func(args []float64) (float64, error) { return fn(args[0]) }}
}

func total(fn func(float64) float64) function {
	return unary(func(x float64) (float64, error) { return fn(x), nil })
}

// builtins is the complete set of functions reachable from an expression.
var builtins = map[string]function{
	"sqrt": unary(func(x float64) (float64, error) {
		if x < 0 {
			return 0, newError(DomainError, -1, "sqrt of negative number %s", shortFloat(x))
		}
		return math.Sqrt(x), nil
	}),
	"cbrt":  unary(func(x float64) (float64, error) { return power(x, 1.0/3.0) }),
	"log10": unary(logarithm("log10", math.Log10)),
	"ln":    unary(logarithm("ln", math.Log)),
	"sin":   unary(trig("sin", math.Sin)),
	"cos":   unary(trig("cos", math.Cos)),
	"tan":   unary(trig("tan", math.Tan)),
	"exp":   total(math.Exp),
	"abs":   total(math.Abs),
	"pow": {arity: 2, apply: func(args []float64) (float64, error) {
		return power(args[0], args[1])
	}},
}

// Functions lists the callable names in alphabetical order.
func Functions() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func logarithm(name string, fn func(float64) float64) func(float64) (float64, error) {
	return func(x float64) (float64, error) {
		if x <= 0 {
			return 0, newError(DomainError, -1, "%s of non-positive number %s", name, shortFloat(x))
		}
		return fn(x), nil
	}
}

func trig(name string, fn func(float64) float64) func(float64) (float64, error) {
	return func(x float64) (float64, error) {
		if math.IsInf(x, 0) {
			return 0, newError(DomainError, -1, "%s of infinity", name)
		}
		return fn(x), nil
	}
}

// power is x**y over the reals. Zero to a negative power divides by zero, and
// a negative base needs an integral exponent.
func power(x, y float64) (float64, error) {
	if x == 0 && y < 0 {
		return 0, newError(DivisionByZero, -1, "0 cannot be raised to a negative power")
	}
	if x < 0 && y != math.Trunc(y) {
		return 0, newError(DomainError, -1, "negative base %s with fractional exponent %s", shortFloat(x), shortFloat(y))
	}
	return math.Pow(x, y), nil
}

func shortFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
