// Released under an MIT license. See LICENSE.

package sym

import (
	"github.com/mel-lang/mel/internal/common/interface/cell"
	"github.com/mel-lang/mel/internal/common/struct/loc"
	"github.com/mel-lang/mel/internal/common/struct/token"
)

// Plus is a symbol plus its lexical location.
type Plus struct {
	*sym
	source loc.T
}

// Token creates a Plus from a token.T.
func Token(t *token.T) cell.I {
	return &Plus{symnew(t.Value()), t.Source()}
}

// Source returns the lexical location for a sym that has it.
func (p *Plus) Source() loc.T {
	return p.source
}
