// Released under an MIT license. See LICENSE.

package eval_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mel-lang/mel/internal/common"
	"github.com/mel-lang/mel/internal/common/interface/cell"
	"github.com/mel-lang/mel/internal/common/struct/errs"
	"github.com/mel-lang/mel/internal/common/type/boolean"
	"github.com/mel-lang/mel/internal/common/type/num"
	"github.com/mel-lang/mel/internal/common/type/sym"
	"github.com/mel-lang/mel/internal/engine"
	"github.com/mel-lang/mel/internal/reader"
)

// evaluate parses src and evaluates each expression in a fresh root
// environment, returning the value of the last one.
func evaluate(t *testing.T, src string) (cell.I, error) {
	t.Helper()

	cs, err := reader.Parse("test", src)
	require.NoError(t, err)

	root := engine.Boot()

	var v cell.I

	for _, c := range cs {
		v, err = engine.Evaluate(root, c)
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

func number(t *testing.T, src string, want int) {
	t.Helper()

	v, err := evaluate(t, src)
	require.NoError(t, err)
	require.True(t, num.Is(v), "expected a number, got %s", v.Name())
	assert.True(t, v.Equal(num.Int(want)), "expected %d, got %s", want, v)
}

func TestSelfEvaluating(t *testing.T) {
	number(t, "42", 42)

	v, err := evaluate(t, "#t")
	require.NoError(t, err)
	assert.Equal(t, boolean.True, v)

	v, err = evaluate(t, `"hello"`)
	require.NoError(t, err)
	assert.Equal(t, "hello", common.String(v))
}

func TestArithmetic(t *testing.T) {
	number(t, "(+ 1 2 3)", 6)
	number(t, "(- 10 1 2)", 7)
	number(t, "(- 5)", -5)
	number(t, "(* 2 3 4)", 24)
	number(t, "(/ 12 3 2)", 2)

	v, err := evaluate(t, "(/ 1 3)")
	require.NoError(t, err)
	assert.True(t, v.Equal(num.New("1/3")), "expected 1/3, got %s", common.String(v))
}

func TestComparisons(t *testing.T) {
	for src, want := range map[string]cell.I{
		"(= 1 1)":  boolean.True,
		"(= 1 2)":  boolean.False,
		"(< 1 2)":  boolean.True,
		"(> 1 2)":  boolean.False,
		"(<= 2 2)": boolean.True,
		"(>= 1 2)": boolean.False,
	} {
		v, err := evaluate(t, src)
		require.NoError(t, err, src)
		assert.Equal(t, want, v, src)
	}
}

func TestBootedProcedures(t *testing.T) {
	number(t, "(abs -5)", 5)
	number(t, "(abs 5)", 5)
	number(t, "(min 3 2)", 2)
	number(t, "(max 3 2)", 3)

	for src, want := range map[string]cell.I{
		"(zero? 0)":     boolean.True,
		"(positive? 2)": boolean.True,
		"(negative? 2)": boolean.False,
		"(!= 1 2)":      boolean.True,
		"(!= 1 1)":      boolean.False,
	} {
		v, err := evaluate(t, src)
		require.NoError(t, err, src)
		assert.Equal(t, want, v, src)
	}
}

func TestNot(t *testing.T) {
	for src, want := range map[string]cell.I{
		"(not #f)":      boolean.True,
		"(not #t)":      boolean.False,
		"(not 0)":       boolean.False,
		"(not nil)":     boolean.False,
		`(not "")`:      boolean.False,
		"(not (= 1 2))": boolean.True,
	} {
		v, err := evaluate(t, src)
		require.NoError(t, err, src)
		assert.Equal(t, want, v, src)
	}
}

func TestIf(t *testing.T) {
	number(t, "(if #t 1 2)", 1)
	number(t, "(if #f 1 2)", 2)

	// Only #f is false. Zero is true.
	number(t, "(if 0 1 2)", 1)
	number(t, "(if nil 1 2)", 1)

	// A false condition with no alternative yields the unit value.
	v, err := evaluate(t, "(if #f 1)")
	require.NoError(t, err)
	assert.Equal(t, sym.Unit, v)
}

func TestBegin(t *testing.T) {
	number(t, "(begin 1 2 3)", 3)

	_, err := evaluate(t, "(begin)")

	var malformed *errs.Malformed

	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "begin", malformed.Form)
}

func TestDefineAndLookup(t *testing.T) {
	number(t, "(define x 5) x", 5)
	number(t, "(define x 5) (define x 6) x", 6)
}

func TestDefineProcedureShorthand(t *testing.T) {
	number(t, "(define (square x) (* x x)) (square 7)", 49)
}

func TestLambdaAndApplication(t *testing.T) {
	number(t, "((lambda (x y) (+ x y)) 3 4)", 7)

	// Higher order: closures capture their defining scope.
	number(t, `
		(define (make-adder n) (lambda (m) (+ m n)))
		((make-adder 10) 5)
	`, 15)
}

func TestRecursion(t *testing.T) {
	number(t, `
		(define (fact n) (if (= n 0) 1 (* n (fact (- n 1)))))
		(fact 10)
	`, 3628800)
}

// A closure over a let binding is immune to later shadowing.
func TestClosureIgnoresLaterShadow(t *testing.T) {
	number(t, "(let ((x 10)) (let ((f (lambda () x))) (let ((x 20)) (f))))", 10)
}

// let binds in parallel: y sees the x from before the let.
func TestLetBindsInParallel(t *testing.T) {
	number(t, "(begin (define x 5) (let ((x 10) (y x)) (+ x y)))", 15)
}

// let* binds sequentially: y sees the x just introduced.
func TestLetStarBindsSequentially(t *testing.T) {
	number(t, "(let* ((x 10) (y x)) (+ x y))", 20)
}

// define mutates the enclosing call frame in place, so a closure created
// before the define observes the new value.
func TestDefineMutatesCallFrame(t *testing.T) {
	number(t, "((lambda (x) (define f (lambda () x)) (define x 20) (f)) 10)", 20)
}

// A define evaluated after a closure was created is visible to the
// closure on its next call.
func TestClosureSeesLaterDefine(t *testing.T) {
	number(t, "(define f (lambda () x)) (define x 42) (f)", 42)
}

func TestLetrecMutualRecursion(t *testing.T) {
	v, err := evaluate(t, `
		(letrec ((even? (lambda (n) (if (= n 0) #t (odd? (- n 1)))))
		         (odd?  (lambda (n) (if (= n 0) #f (even? (- n 1))))))
		  (even? 6))
	`)
	require.NoError(t, err)
	assert.Equal(t, boolean.True, v)
}

// Referencing a letrec name before its value is evaluated is an unbound
// variable error unless the reference is delayed inside a lambda.
func TestLetrecEarlyReference(t *testing.T) {
	_, err := evaluate(t, "(letrec ((a b) (b 1)) a)")

	var unbound *errs.Unbound

	require.ErrorAs(t, err, &unbound)
	assert.Equal(t, "b", unbound.Name)
}

func TestUnboundVariable(t *testing.T) {
	_, err := evaluate(t, "nope")

	var unbound *errs.Unbound

	require.ErrorAs(t, err, &unbound)
	assert.Equal(t, "nope", unbound.Name)
}

// Keywords win in head position even when the name is locally bound.
func TestKeywordsPrecedeBindings(t *testing.T) {
	number(t, "(let ((if 1)) (if #f 2 3))", 3)
}

// expectError checks that evaluating src fails with an error of kind E.
func expectError[E error](t *testing.T, src string) {
	t.Helper()

	_, err := evaluate(t, src)
	require.Error(t, err, src)

	var want E

	assert.True(t, errors.As(err, &want), "%s: got %v", src, err)
}

func TestArityErrors(t *testing.T) {
	expectError[*errs.Arity](t, "((lambda (x) x))")
	expectError[*errs.Arity](t, "((lambda (x) x) 1 2)")
	expectError[*errs.Arity](t, "(+)")
	expectError[*errs.Arity](t, "(< 1 2 3)")
}

func TestDivisionByZero(t *testing.T) {
	expectError[*errs.DivisionByZero](t, "(/ 1 0)")
	expectError[*errs.DivisionByZero](t, "(/ 0)")
}

func TestTypeErrors(t *testing.T) {
	expectError[*errs.Type](t, "(+ 1 #t)")
	expectError[*errs.Type](t, "(< 1 #t)")
	expectError[*errs.Type](t, "(1 2)")
}

func TestMalformedForms(t *testing.T) {
	expectError[*errs.Malformed](t, "()")
	expectError[*errs.Malformed](t, "(define)")
	expectError[*errs.Malformed](t, "(define x 1 2)")
	expectError[*errs.Malformed](t, "(lambda (x))")
	expectError[*errs.Malformed](t, "(lambda 3 x)")
	expectError[*errs.Malformed](t, "(let (x) x)")
	expectError[*errs.Malformed](t, "(let ((x 1)))")
	expectError[*errs.Malformed](t, "(if #t)")
}

func TestRunawayRecursionOverflows(t *testing.T) {
	_, err := evaluate(t, "(define (loop n) (loop (+ n 1))) (loop 0)")

	var overflow *errs.Overflow

	require.ErrorAs(t, err, &overflow)
}

// Evaluation is deterministic: the same expression yields the same value.
func TestDeterministic(t *testing.T) {
	cs, err := reader.Parse("test", "(+ 1 (* 2 3))")
	require.NoError(t, err)

	root := engine.Boot()

	a, err := engine.Evaluate(root, cs[0])
	require.NoError(t, err)

	b, err := engine.Evaluate(root, cs[0])
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
}

// Independent sessions do not share bindings.
func TestSessionsAreIsolated(t *testing.T) {
	cs, err := reader.Parse("test", "(define x 1)")
	require.NoError(t, err)

	first := engine.Boot()
	_, err = engine.Evaluate(first, cs[0])
	require.NoError(t, err)

	second := engine.Boot()
	assert.Nil(t, second.Lookup("x"))
}
