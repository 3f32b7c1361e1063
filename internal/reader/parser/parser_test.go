// Released under an MIT license. See LICENSE.

package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mel-lang/mel/internal/common/interface/literal"
	"github.com/mel-lang/mel/internal/common/struct/errs"
	"github.com/mel-lang/mel/internal/common/type/boolean"
	"github.com/mel-lang/mel/internal/common/type/num"
	"github.com/mel-lang/mel/internal/common/type/pair"
	"github.com/mel-lang/mel/internal/common/type/str"
	"github.com/mel-lang/mel/internal/common/type/sym"
	"github.com/mel-lang/mel/internal/reader"
)

func TestAtomClassification(t *testing.T) {
	cs, err := reader.Parse("test", `42 -7 1/2 3.25 #t #f "hi" x 12monkeys`)
	require.NoError(t, err)
	require.Len(t, cs, 9)

	assert.True(t, cs[0].Equal(num.Int(42)))
	assert.True(t, cs[1].Equal(num.Int(-7)))
	assert.True(t, cs[2].Equal(num.New("1/2")))
	assert.True(t, cs[3].Equal(num.New("13/4")))
	assert.Equal(t, boolean.True, cs[4])
	assert.Equal(t, boolean.False, cs[5])
	assert.True(t, str.Is(cs[6]))
	assert.True(t, sym.Is(cs[7]))

	// Not a number, so a symbol.
	assert.True(t, sym.Is(cs[8]))
}

func TestLists(t *testing.T) {
	cs, err := reader.Parse("test", "(+ 1 (* 2 3))")
	require.NoError(t, err)
	require.Len(t, cs, 1)

	c := cs[0]
	require.True(t, pair.Is(c))
	assert.True(t, pair.Car(c).Equal(sym.New("+")))

	inner := pair.Car(pair.Cddr(c))
	require.True(t, pair.Is(inner))
	assert.True(t, pair.Car(inner).Equal(sym.New("*")))
}

func TestEmptyList(t *testing.T) {
	cs, err := reader.Parse("test", "()")
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.True(t, pair.IsNull(cs[0]))
}

func TestStringEscapes(t *testing.T) {
	cs, err := reader.Parse("test", `"a\tb\nc"`)
	require.NoError(t, err)

	s := str.To(cs[0])
	assert.Equal(t, "a\tb\nc", s.String())
}

// Printing a parsed expression and parsing the result yields an equal
// tree.
func TestRoundTrip(t *testing.T) {
	for _, src := range []string{
		"42",
		"#t",
		"(+ 1 2)",
		"(lambda (x) (* x x))",
		"(let ((x 10) (y 1/2)) (if #f x y))",
		`"a\nb"`,
		"(define (迎接 name) name)",
		"()",
		"(() (()))",
	} {
		cs, err := reader.Parse("test", src)
		require.NoError(t, err, src)
		require.Len(t, cs, 1, src)

		printed := literal.String(cs[0])

		again, err := reader.Parse("test", printed)
		require.NoError(t, err, printed)
		require.Len(t, again, 1, printed)

		assert.True(t, cs[0].Equal(again[0]),
			"%s -> %s did not round trip", src, printed)
	}
}

func TestUnexpectedClose(t *testing.T) {
	_, err := reader.Parse("test", "(+ 1 2))")

	var parse *errs.Parse

	require.ErrorAs(t, err, &parse)
	assert.Contains(t, parse.Reason, "unexpected ')'")
}

func TestUnmatchedOpen(t *testing.T) {
	_, err := reader.Parse("test", "(define x (")

	var parse *errs.Parse

	require.ErrorAs(t, err, &parse)
	assert.Contains(t, parse.Reason, "unmatched '('")
}

func TestEmptyInput(t *testing.T) {
	for _, src := range []string{"", "   \n", "; just a comment\n"} {
		_, err := reader.Parse("test", src)

		var parse *errs.Parse

		require.ErrorAs(t, err, &parse, "%q", src)
	}
}
