// Released under an MIT license. See LICENSE.

package reader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mel-lang/mel/internal/common/struct/errs"
	"github.com/mel-lang/mel/internal/common/type/num"
	"github.com/mel-lang/mel/internal/common/type/pair"
	"github.com/mel-lang/mel/internal/common/type/str"
	"github.com/mel-lang/mel/internal/reader"
)

func TestScanAcrossLines(t *testing.T) {
	r := reader.New("test")

	cs, err := r.Scan("(+ 1\n")
	require.NoError(t, err)
	assert.Empty(t, cs)
	assert.Equal(t, 1, r.Depth())

	cs, err = r.Scan("   2)\n")
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, 0, r.Depth())

	c := cs[0]
	require.True(t, pair.Is(c))
	assert.True(t, pair.Cadr(c).Equal(num.Int(1)))
}

func TestScanMultipleExpressions(t *testing.T) {
	r := reader.New("test")

	cs, err := r.Scan("1 2 (3)\n")
	require.NoError(t, err)
	assert.Len(t, cs, 3)
}

func TestCloseCompletesTrailingAtom(t *testing.T) {
	r := reader.New("test")

	cs, err := r.Scan("42")
	require.NoError(t, err)
	assert.Empty(t, cs)

	cs, err = r.Close()
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.True(t, cs[0].Equal(num.Int(42)))
}

func TestCloseReportsUnmatchedOpen(t *testing.T) {
	r := reader.New("test")

	_, err := r.Scan("(1 (2\n")
	require.NoError(t, err)
	assert.Equal(t, 2, r.Depth())

	_, err = r.Close()

	var parse *errs.Parse

	require.ErrorAs(t, err, &parse)
}

func TestStringSpansScans(t *testing.T) {
	r := reader.New("test")

	cs, err := r.Scan("\"one\n")
	require.NoError(t, err)
	assert.Empty(t, cs)

	cs, err = r.Scan("two\"\n")
	require.NoError(t, err)
	require.Len(t, cs, 1)
}

// An escape sequence interrupted by the end of a buffer resumes with
// the next one. The escaped character must not be read as a delimiter:
// here the quote after the backslash belongs inside the string.
func TestEscapeSpansScans(t *testing.T) {
	r := reader.New("test")

	cs, err := r.Scan(`"a\`)
	require.NoError(t, err)
	assert.Empty(t, cs)

	cs, err = r.Scan(`"b"`)
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, `a"b`, str.To(cs[0]).String())
}
