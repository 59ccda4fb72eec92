package calc

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput        = errors.New("empty input")
	ErrSyntax            = errors.New("syntax error")
	ErrUnknownIdentifier = errors.New("unknown identifier")
	ErrDomain            = errors.New("math domain error")
	ErrDivisionByZero    = errors.New("division by zero")
)

// Kind classifies evaluation failures.
type Kind int

const (
	KindNone Kind = iota
	EmptyInput
	SyntaxError
	UnknownIdentifier
	DomainError
	DivisionByZero
)

func (k Kind) String() string {
	switch k {
	case EmptyInput:
		return "EmptyInput"
	case SyntaxError:
		return "SyntaxError"
	case UnknownIdentifier:
		return "UnknownIdentifier"
	case DomainError:
		return "DomainError"
	case DivisionByZero:
		return "DivisionByZero"
	}
	return "None"
}

func (k Kind) sentinel() error {
	switch k {
	case EmptyInput:
		return ErrEmptyInput
	case SyntaxError:
		return ErrSyntax
	case UnknownIdentifier:
		return ErrUnknownIdentifier
	case DomainError:
		return ErrDomain
	case DivisionByZero:
		return ErrDivisionByZero
	}
	return nil
}

// Error is returned by every failed evaluation.
type Error struct {
	Kind Kind
	Msg  string
	Pos  int // byte offset into the rewritten expression, -1 if not applicable
}

func (e *Error) Error() string {
	base := e.Kind.sentinel()
	if base == nil {
		return e.Msg
	}
	if e.Msg == "" {
		return base.Error()
	}
	return base.Error() + ": " + e.Msg
}

// Unwrap lets errors.Is match the package sentinels.
func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}

func newError(kind Kind, pos int, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Pos: pos}
}

// KindOf extracts the Kind from err, or KindNone if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindNone
}
