// Released under an MIT license. See LICENSE.

package env_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mel-lang/mel/internal/common/type/env"
	"github.com/mel-lang/mel/internal/common/type/num"
)

func TestLookupWalksChain(t *testing.T) {
	outer := env.New(nil)
	outer.Bind("x", num.Int(1))

	inner := env.New(outer)

	r := inner.Lookup("x")
	require.NotNil(t, r)
	assert.True(t, r.Get().Equal(num.Int(1)))

	assert.Nil(t, inner.Lookup("y"))
}

func TestBindShadows(t *testing.T) {
	outer := env.New(nil)
	outer.Bind("x", num.Int(1))

	inner := env.New(outer)
	inner.Bind("x", num.Int(2))

	assert.True(t, inner.Lookup("x").Get().Equal(num.Int(2)))
	assert.True(t, outer.Lookup("x").Get().Equal(num.Int(1)))
}

// A define for a name bound in the current frame overwrites that slot in
// place: a reference obtained before the define observes the new value.
func TestDefineOverwritesInPlace(t *testing.T) {
	e := env.New(nil)
	e.Bind("x", num.Int(1))

	before := e.Lookup("x")

	e.Define("x", num.Int(2))

	assert.True(t, before.Get().Equal(num.Int(2)))
}

// A define never reaches past the current frame: a name bound only in an
// enclosing frame is shadowed by a new slot, and the enclosing binding
// keeps its value. This pins define to frame-local redefinition.
func TestDefineIsFrameLocal(t *testing.T) {
	outer := env.New(nil)
	outer.Bind("x", num.Int(1))

	inner := env.New(outer)
	inner.Define("x", num.Int(2))

	assert.True(t, inner.Lookup("x").Get().Equal(num.Int(2)))
	assert.True(t, outer.Lookup("x").Get().Equal(num.Int(1)))
}

func TestBindReplacesSlot(t *testing.T) {
	e := env.New(nil)
	e.Bind("x", num.Int(1))

	before := e.Lookup("x")

	e.Bind("x", num.Int(2))

	// The old slot is detached; only the new one is visible.
	assert.True(t, before.Get().Equal(num.Int(1)))
	assert.True(t, e.Lookup("x").Get().Equal(num.Int(2)))
}
