// Released under an MIT license. See LICENSE.

// Package errs defines the error kinds raised by the mel reader and evaluator.
//
// Every evaluation failure is one of the types below so that embedders can
// dispatch on the kind of failure with errors.As. An error is terminal for
// the evaluation that raised it; there is no partial result and no recovery.
package errs

import (
	"strconv"
)

// Arity is returned when a procedure is passed the wrong number of arguments.
// Max is -1 when the procedure accepts any number of arguments >= Min.
type Arity struct {
	Min  int
	Max  int
	Have int
}

// DivisionByZero is returned when a divisor evaluates to zero.
type DivisionByZero struct{}

// Malformed is returned when a special form has the wrong shape, for
// example a let with a binding that is not a name and value pair.
type Malformed struct {
	Form   string
	Reason string
}

// Overflow is returned when evaluation exceeds the nesting limit.
// Without tail call elimination, deep recursion has nowhere else to go.
type Overflow struct {
	Limit int
}

// Parse is returned by the reader when the source text is not a
// well-formed expression.
type Parse struct {
	Where  string
	Reason string
}

// Type is returned when a value of the wrong kind is passed to a
// procedure or special form.
type Type struct {
	Want string
	Have string
}

// Unbound is returned when a symbol has no binding in any reachable frame.
type Unbound struct {
	Name string
}

func (e *Arity) Error() string {
	s := "expected "

	switch {
	case e.Max < 0:
		s += "at least " + count(e.Min, "argument")
	case e.Min == e.Max:
		s += count(e.Min, "argument")
	default:
		s += strconv.Itoa(e.Min) + " to " + count(e.Max, "argument")
	}

	return s + ", passed " + strconv.Itoa(e.Have)
}

func (e *DivisionByZero) Error() string {
	return "division by zero"
}

func (e *Malformed) Error() string {
	return "malformed " + e.Form + ": " + e.Reason
}

func (e *Overflow) Error() string {
	return "exceeded evaluation depth limit (" + strconv.Itoa(e.Limit) + ")"
}

func (e *Parse) Error() string {
	if e.Where == "" {
		return e.Reason
	}

	return e.Where + ": " + e.Reason
}

func (e *Type) Error() string {
	return "expected " + e.Want + ", passed " + e.Have
}

func (e *Unbound) Error() string {
	return "'" + e.Name + "' is not defined"
}

func count(n int, label string) string {
	s := strconv.Itoa(n) + " " + label
	if n != 1 {
		s += "s"
	}

	return s
}
