package calc

import (
	"math"

	"physcalc/internal/constants"
)

// env is the closed namespace an expression is evaluated against.
type env struct {
	table *constants.Table
	funcs map[string]function
}

type node interface {
	eval(env *env) (float64, error)
}

type nodeNumber struct {
	v float64
}

type nodeIdent struct {
	name string
	pos  int
}

type nodeUnary struct {
	op byte
	x  node
}

type nodeBinary struct {
	op          byte
	left, right node
}

type nodeCall struct {
	name string
	args []node
	pos  int
}

func (n nodeNumber) eval(*env) (float64, error) {
	return n.v, nil
}

func (n nodeIdent) eval(env *env) (float64, error) {
	if e, ok := env.table.Lookup(n.name); ok {
		return e.Value, nil
	}
	if _, ok := env.funcs[n.name]; ok {
		return 0, newError(SyntaxError, n.pos, "function %s used without arguments", n.name)
	}
	return 0, newError(UnknownIdentifier, n.pos, "%q", n.name)
}

func (n nodeUnary) eval(env *env) (float64, error) {
	x, err := n.x.eval(env)
	if err != nil {
		return 0, err
	}
	if n.op == '-' {
		return -x, nil
	}
	return x, nil
}

func (n nodeBinary) eval(env *env) (float64, error) {
	x, err := n.left.eval(env)
	if err != nil {
		return 0, err
	}
	y, err := n.right.eval(env)
	if err != nil {
		return 0, err
	}

	var r float64
	switch n.op {
	case '+':
		r = x + y
	case '-':
		r = x - y
	case '*':
		r = x * y
	case '/':
		if y == 0 {
			return 0, newError(DivisionByZero, -1, "%s / 0", shortFloat(x))
		}
		r = x / y
	case '^':
		if r, err = power(x, y); err != nil {
			return 0, err
		}
	default:
		return 0, newError(SyntaxError, -1, "unknown operator %q", n.op)
	}
	return checkFinite(r)
}

func (n nodeCall) eval(env *env) (float64, error) {
	fn, ok := env.funcs[n.name]
	if !ok {
		if _, isConst := env.table.Lookup(n.name); isConst {
			return 0, newError(SyntaxError, n.pos, "%s is not a function", n.name)
		}
		return 0, newError(UnknownIdentifier, n.pos, "%q", n.name)
	}
	if len(n.args) != fn.arity {
		return 0, newError(SyntaxError, n.pos, "%s takes %d argument(s), got %d", n.name, fn.arity, len(n.args))
	}

	args := make([]float64, len(n.args))
	for i, a := range n.args {
		v, err := a.eval(env)
		if err != nil {
			return 0, err
		}
		args[i] = v
	}

	r, err := fn.apply(args)
	if err != nil {
		return 0, err
	}
	return checkFinite(r)
}

// checkFinite rejects results that overflowed; operands are always finite.
func checkFinite(r float64) (float64, error) {
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return 0, newError(DomainError, -1, "math range error")
	}
	return r, nil
}
