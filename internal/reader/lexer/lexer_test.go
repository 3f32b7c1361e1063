// Released under an MIT license. See LICENSE.

package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mel-lang/mel/internal/common/struct/token"
	"github.com/mel-lang/mel/internal/reader/lexer"
)

func scan(t *testing.T, text string) []*token.T {
	t.Helper()

	l := lexer.New("test")
	l.Scan(text)

	var ts []*token.T

	for tok := l.Token(); tok != nil; tok = l.Token() {
		ts = append(ts, tok)
	}

	return ts
}

func values(ts []*token.T) []string {
	vs := make([]string, 0, len(ts))
	for _, t := range ts {
		vs = append(vs, t.Value())
	}

	return vs
}

func TestTokens(t *testing.T) {
	ts := scan(t, "(+ 1 (* 2 30))\n")

	assert.Equal(t,
		[]string{"(", "+", "1", "(", "*", "2", "30", ")", ")"},
		values(ts))
}

func TestUnicodeAtoms(t *testing.T) {
	ts := scan(t, "(定義 λ 🚀x)\n")

	require.Len(t, ts, 5)
	assert.Equal(t, []string{"(", "定義", "λ", "🚀x", ")"}, values(ts))
	assert.True(t, ts[1].Is(token.Atom))
}

func TestComments(t *testing.T) {
	ts := scan(t, "1 ; the rest is ignored (even parens\n2\n")

	assert.Equal(t, []string{"1", "2"}, values(ts))
}

func TestStrings(t *testing.T) {
	ts := scan(t, `"hello world" "say \"hi\""`+"\n")

	require.Len(t, ts, 2)
	assert.True(t, ts[0].Is(token.String))
	assert.Equal(t, "hello world", ts[0].Value())
	assert.Equal(t, `say \"hi\"`, ts[1].Value())
}

// A string interrupted by the end of a buffer resumes with the next one.
func TestStringAcrossBuffers(t *testing.T) {
	l := lexer.New("test")

	l.Scan(`"ab`)
	assert.Nil(t, l.Token())

	l.Scan("cd\"\n")

	tok := l.Token()
	require.NotNil(t, tok)
	assert.True(t, tok.Is(token.String))
	assert.Equal(t, "abcd", tok.Value())
}

func TestLocations(t *testing.T) {
	ts := scan(t, "a\nbc\n")

	require.Len(t, ts, 2)
	assert.Equal(t, 1, ts[0].Source().Line)
	assert.Equal(t, 2, ts[1].Source().Line)
}
