// Released under an MIT license. See LICENSE.

package eval

import (
	"github.com/mel-lang/mel/internal/common/interface/cell"
	"github.com/mel-lang/mel/internal/common/interface/scope"
	"github.com/mel-lang/mel/internal/common/interface/truth"
	"github.com/mel-lang/mel/internal/common/struct/errs"
	"github.com/mel-lang/mel/internal/common/type/closure"
	"github.com/mel-lang/mel/internal/common/type/create"
	"github.com/mel-lang/mel/internal/common/type/env"
	"github.com/mel-lang/mel/internal/common/type/list"
	"github.com/mel-lang/mel/internal/common/type/pair"
	"github.com/mel-lang/mel/internal/common/type/sym"
)

// form is the signature shared by all special forms. Unlike a procedure,
// a form receives its operands unevaluated.
type form func(e *evaluator, args cell.I, sc scope.I) (cell.I, error)

// The set of special forms is fixed.
//
//nolint:gochecknoglobals
var forms map[string]form

//nolint:gochecknoinits
func init() {
	forms = map[string]form{
		"begin":  evalBegin,
		"define": evalDefine,
		"if":     evalIf,
		"lambda": evalLambda,
		"let":    evalLet,
		"let*":   evalLetStar,
		"letrec": evalLetrec,
	}
}

// unassigned marks a letrec binding whose value is not yet evaluated.
// Observing it through lookup is an unbound variable error; a lambda
// body may mention the name as long as the closure is not called until
// every sibling binding has its value.
var unassigned cell.I = &marker{} //nolint:gochecknoglobals

type marker struct{}

func (m *marker) Equal(c cell.I) bool { return c == cell.I(m) }
func (m *marker) Name() string        { return "unassigned" }

func evalBegin(e *evaluator, args cell.I, sc scope.I) (cell.I, error) {
	if args == pair.Null {
		return nil, &errs.Malformed{Form: "begin", Reason: "empty sequence"}
	}

	return e.body(args, sc)
}

// evalDefine handles (define name value) and the procedure shorthand
// (define (name params...) body...), which binds name to the equivalent
// lambda.
func evalDefine(e *evaluator, args cell.I, sc scope.I) (cell.I, error) {
	if args == pair.Null {
		return nil, &errs.Malformed{Form: "define", Reason: "missing name"}
	}

	target := pair.Car(args)

	if sym.Is(target) {
		if list.Length(args) != 2 {
			return nil, &errs.Malformed{
				Form:   "define",
				Reason: "expected a name and a single value expression",
			}
		}

		v, err := e.eval(pair.Cadr(args), sc)
		if err != nil {
			return nil, err
		}

		sc.Define(sym.To(target).String(), v)

		return create.Unit(), nil
	}

	if !pair.Is(target) || target == pair.Null || !sym.Is(pair.Car(target)) {
		return nil, &errs.Malformed{
			Form:   "define",
			Reason: "expected a name or a (name params...) list",
		}
	}

	params, err := paramNames("define", pair.Cdr(target))
	if err != nil {
		return nil, err
	}

	body := pair.Cdr(args)
	if body == pair.Null {
		return nil, &errs.Malformed{Form: "define", Reason: "empty body"}
	}

	sc.Define(sym.To(pair.Car(target)).String(), closure.New(params, body, sc))

	return create.Unit(), nil
}

func evalIf(e *evaluator, args cell.I, sc scope.I) (cell.I, error) {
	n := list.Length(args)
	if n < 2 || n > 3 {
		return nil, &errs.Malformed{
			Form:   "if",
			Reason: "expected a condition, a consequent, and an optional alternative",
		}
	}

	v, err := e.eval(pair.Car(args), sc)
	if err != nil {
		return nil, err
	}

	if truth.Value(v) {
		return e.eval(pair.Cadr(args), sc)
	}

	if n == 3 {
		return e.eval(pair.Car(pair.Cddr(args)), sc)
	}

	return create.Unit(), nil
}

// evalLambda builds a closure. The scope sc is captured by reference:
// a define that later mutates a frame of sc is visible to the closure.
func evalLambda(e *evaluator, args cell.I, sc scope.I) (cell.I, error) {
	if args == pair.Null {
		return nil, &errs.Malformed{Form: "lambda", Reason: "missing parameter list"}
	}

	params, err := paramNames("lambda", pair.Car(args))
	if err != nil {
		return nil, err
	}

	body := pair.Cdr(args)
	if body == pair.Null {
		return nil, &errs.Malformed{Form: "lambda", Reason: "empty body"}
	}

	return closure.New(params, body, sc), nil
}

// evalLet binds in parallel: every value expression is evaluated in the
// enclosing scope, so no binding can observe a sibling, then all names
// are bound in one new frame.
func evalLet(e *evaluator, args cell.I, sc scope.I) (cell.I, error) {
	names, inits, body, err := letParts("let", args)
	if err != nil {
		return nil, err
	}

	vals := make([]cell.I, len(inits))

	for i, init := range inits {
		v, err := e.eval(init, sc)
		if err != nil {
			return nil, err
		}

		vals[i] = v
	}

	ne := env.New(sc)
	for i, name := range names {
		ne.Bind(name, vals[i])
	}

	return e.body(body, ne)
}

// evalLetStar binds sequentially: each value expression is evaluated in
// the new frame as extended by the bindings before it.
func evalLetStar(e *evaluator, args cell.I, sc scope.I) (cell.I, error) {
	names, inits, body, err := letParts("let*", args)
	if err != nil {
		return nil, err
	}

	ne := env.New(sc)

	for i, init := range inits {
		v, err := e.eval(init, ne)
		if err != nil {
			return nil, err
		}

		ne.Bind(names[i], v)
	}

	return e.body(body, ne)
}

// evalLetrec makes every name visible, but unassigned, before any value
// expression is evaluated, so that lambda values can refer to each
// other for mutual recursion.
func evalLetrec(e *evaluator, args cell.I, sc scope.I) (cell.I, error) {
	names, inits, body, err := letParts("letrec", args)
	if err != nil {
		return nil, err
	}

	ne := env.New(sc)

	for _, name := range names {
		ne.Bind(name, unassigned)
	}

	for i, init := range inits {
		v, err := e.eval(init, ne)
		if err != nil {
			return nil, err
		}

		ne.Define(names[i], v)
	}

	return e.body(body, ne)
}

// letParts splits a let form into binding names, binding value
// expressions, and body, validating the shape of each binding.
func letParts(f string, args cell.I) ([]string, []cell.I, cell.I, error) {
	if args == pair.Null {
		return nil, nil, nil, &errs.Malformed{
			Form:   f,
			Reason: "expected a binding list and a body",
		}
	}

	var names []string
	var inits []cell.I

	l := pair.Car(args)
	if !pair.Is(l) {
		return nil, nil, nil, &errs.Malformed{
			Form:   f,
			Reason: "expected a binding list",
		}
	}

	for ; l != pair.Null; l = pair.Cdr(l) {
		b := pair.Car(l)

		if !pair.Is(b) || b == pair.Null ||
			list.Length(b) != 2 || !sym.Is(pair.Car(b)) {
			return nil, nil, nil, &errs.Malformed{
				Form:   f,
				Reason: "binding must be a (name value) pair",
			}
		}

		names = append(names, sym.To(pair.Car(b)).String())
		inits = append(inits, pair.Cadr(b))
	}

	body := pair.Cdr(args)
	if body == pair.Null {
		return nil, nil, nil, &errs.Malformed{Form: f, Reason: "empty body"}
	}

	return names, inits, body, nil
}

// paramNames validates a parameter list and extracts its names.
func paramNames(f string, l cell.I) ([]string, error) {
	if !pair.Is(l) {
		return nil, &errs.Malformed{
			Form:   f,
			Reason: "parameters must be a list of names",
		}
	}

	var names []string

	for ; l != pair.Null; l = pair.Cdr(l) {
		p := pair.Car(l)
		if !sym.Is(p) {
			return nil, &errs.Malformed{
				Form:   f,
				Reason: "parameter is not a name",
			}
		}

		names = append(names, sym.To(p).String())
	}

	return names, nil
}
