// Released under an MIT license. See LICENSE.

// Package closure provides mel's function value type.
package closure

import (
	"strings"

	"github.com/mel-lang/mel/internal/common"
	"github.com/mel-lang/mel/internal/common/interface/cell"
	"github.com/mel-lang/mel/internal/common/interface/literal"
	"github.com/mel-lang/mel/internal/common/interface/scope"
)

const name = "closure"

// T (closure) is a user-defined function: parameter names, an unevaluated
// body, and the scope that was current when the lambda was evaluated.
// The scope is captured by reference, not copied, so changes made to its
// frames after capture are visible on later calls.
type T struct {
	body   cell.I   // A list of body expressions, evaluated in order.
	params []string // Parameter names, in binding order.
	scope  scope.I
}

type closure = T

// New creates a new closure.
func New(params []string, body cell.I, sc scope.I) cell.I {
	return &closure{body: body, params: params, scope: sc}
}

// The closure type is a cell.

// Equal returns true if the cell c is the same closure as l.
func (l *closure) Equal(c cell.I) bool {
	return Is(c) && l == To(c)
}

// Name returns the name of the closure type.
func (l *closure) Name() string {
	return name
}

// The closure type has a literal representation.

// Literal returns the literal representation of the closure l.
func (l *closure) Literal() string {
	return "(|" + name + " (" + strings.Join(l.params, " ") + ")|)"
}

// The closure type is a stringer.

// String returns the text of the closure l.
func (l *closure) String() string {
	return l.Literal()
}

// Methods specific to closure.

// Body returns the closure l's body expressions.
func (l *closure) Body() cell.I {
	return l.body
}

// Params returns the closure l's parameter names.
func (l *closure) Params() []string {
	return l.params
}

// Scope returns the scope captured by the closure l.
func (l *closure) Scope() scope.I {
	return l.scope
}

// The two functions below could be generated for each type.

// Is returns true if c is a closure.
func Is(c cell.I) bool {
	_, ok := c.(*closure)

	return ok
}

// To returns a *T if c is a closure; Otherwise it panics.
func To(c cell.I) *closure {
	if t, ok := c.(*closure); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t closure

	// The closure type is a cell.
	_ = cell.I(&t)

	// The closure type has a literal representation.
	_ = literal.I(&t)

	// The closure type is a stringer.
	_ = common.Stringer(&t)
}
