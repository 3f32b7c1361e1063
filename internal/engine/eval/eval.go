// Released under an MIT license. See LICENSE.

// Package eval provides the recursive evaluator for parsed mel code.
//
// Evaluation is direct recursion: the Go call stack is the Lisp call
// stack. There is no tail call elimination, so recursion depth is
// bounded to surface runaway recursion as an error instead of killing
// the process.
package eval

import (
	"github.com/mel-lang/mel/internal/common/interface/cell"
	"github.com/mel-lang/mel/internal/common/interface/scope"
	"github.com/mel-lang/mel/internal/common/struct/errs"
	"github.com/mel-lang/mel/internal/common/type/builtin"
	"github.com/mel-lang/mel/internal/common/type/closure"
	"github.com/mel-lang/mel/internal/common/type/env"
	"github.com/mel-lang/mel/internal/common/type/list"
	"github.com/mel-lang/mel/internal/common/type/pair"
	"github.com/mel-lang/mel/internal/common/type/sym"
)

// Limit is the maximum evaluation nesting depth.
const Limit = 10000

// Eval evaluates the expression c in the scope sc.
func Eval(c cell.I, sc scope.I) (cell.I, error) {
	e := evaluator{}

	return e.eval(c, sc)
}

type evaluator struct {
	depth int
}

func (e *evaluator) eval(c cell.I, sc scope.I) (cell.I, error) {
	e.depth++
	defer func() { e.depth-- }()

	if e.depth > Limit {
		return nil, &errs.Overflow{Limit: Limit}
	}

	switch {
	case sym.Is(c):
		return lookup(c, sc)
	case pair.Is(c):
		if c == pair.Null {
			return nil, &errs.Malformed{
				Form:   "()",
				Reason: "empty combination",
			}
		}

		return e.combination(c, sc)
	}

	// Numbers, booleans, strings, and procedure values are themselves.
	return c, nil
}

// body evaluates the expressions in seq in order and returns the value
// of the last one.
func (e *evaluator) body(seq cell.I, sc scope.I) (cell.I, error) {
	var v cell.I
	var err error

	for ; seq != pair.Null; seq = pair.Cdr(seq) {
		v, err = e.eval(pair.Car(seq), sc)
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

// combination evaluates a non-empty list: a special form when the head
// is a known keyword, a procedure application otherwise. Keywords are
// matched before application so that a local binding can shadow the
// value of a name like if or let without changing what it means in
// head position.
func (e *evaluator) combination(c cell.I, sc scope.I) (cell.I, error) {
	head := pair.Car(c)

	if sym.Is(head) {
		if form, ok := forms[sym.To(head).String()]; ok {
			return form(e, pair.Cdr(c), sc)
		}
	}

	return e.apply(c, sc)
}

// apply evaluates the head of c to a procedure, evaluates the arguments
// left to right, and invokes the procedure. Calling a closure forks the
// scope the closure captured, never the scope at the call site.
func (e *evaluator) apply(c cell.I, sc scope.I) (cell.I, error) {
	v, err := e.eval(pair.Car(c), sc)
	if err != nil {
		return nil, err
	}

	exprs := list.Slice(pair.Cdr(c))

	args := make([]cell.I, len(exprs))
	for i, x := range exprs {
		args[i], err = e.eval(x, sc)
		if err != nil {
			return nil, err
		}
	}

	switch {
	case builtin.Is(v):
		return builtin.To(v).Apply(list.New(args...))

	case closure.Is(v):
		l := closure.To(v)

		params := l.Params()
		if len(args) != len(params) {
			return nil, &errs.Arity{
				Min:  len(params),
				Max:  len(params),
				Have: len(args),
			}
		}

		ne := env.New(l.Scope())
		for i, param := range params {
			ne.Bind(param, args[i])
		}

		return e.body(l.Body(), ne)
	}

	return nil, &errs.Type{Want: "procedure", Have: v.Name()}
}

func lookup(c cell.I, sc scope.I) (cell.I, error) {
	k := sym.To(c).String()

	r := sc.Lookup(k)
	if r == nil {
		return nil, &errs.Unbound{Name: k}
	}

	v := r.Get()
	if v == unassigned {
		// A letrec name referenced before its value was evaluated.
		return nil, &errs.Unbound{Name: k}
	}

	return v, nil
}
