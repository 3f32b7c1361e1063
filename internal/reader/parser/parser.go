// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the mel language.
//
// The grammar is small: an expression is an atom or a parenthesized
// sequence of expressions. The parser is push-driven so that a partial
// expression can wait, open lists intact, for more input to arrive.
package parser

import (
	"github.com/michaelmacinnis/adapted"

	"github.com/mel-lang/mel/internal/common/interface/cell"
	"github.com/mel-lang/mel/internal/common/struct/errs"
	"github.com/mel-lang/mel/internal/common/struct/loc"
	"github.com/mel-lang/mel/internal/common/struct/token"
	"github.com/mel-lang/mel/internal/common/type/boolean"
	"github.com/mel-lang/mel/internal/common/type/list"
	"github.com/mel-lang/mel/internal/common/type/num"
	"github.com/mel-lang/mel/internal/common/type/str"
	"github.com/mel-lang/mel/internal/common/type/sym"
)

// T (parser) builds expression trees from a stream of tokens.
type T struct {
	emit func(cell.I)       // Called with each complete expression.
	next func() *token.T    // Token source; nil means no token available.

	open  [][]cell.I // Elements of each open list, innermost last.
	where []loc.T    // Location of each open list's parenthesis.
}

type parser = T

// New creates a new parser. Each complete top-level expression is passed
// to emit. Tokens are pulled from next; a nil token suspends parsing
// until more input is available.
func New(emit func(cell.I), next func() *token.T) *parser {
	return &parser{emit: emit, next: next}
}

// Depth returns the number of unclosed lists.
func (p *parser) Depth() int {
	return len(p.open)
}

// Parse consumes tokens until none are available. It returns an error
// for text that can never become a well-formed expression. Running out
// of tokens inside an open list is not an error; parsing resumes when
// more tokens are available.
func (p *parser) Parse() error {
	for {
		t := p.next()
		if t == nil {
			return nil
		}

		switch {
		case t.Is('('):
			p.open = append(p.open, []cell.I{})
			p.where = append(p.where, t.Source())

		case t.Is(')'):
			if len(p.open) == 0 {
				source := t.Source()

				return &errs.Parse{
					Where:  source.String(),
					Reason: "unexpected ')'",
				}
			}

			last := len(p.open) - 1
			l := list.New(p.open[last]...)

			p.open = p.open[:last]
			p.where = p.where[:last]

			p.add(l)

		case t.Is(token.String):
			v, err := adapted.ActualBytes(t.Value())
			if err != nil {
				source := t.Source()

				return &errs.Parse{
					Where:  source.String(),
					Reason: "invalid string literal: " + err.Error(),
				}
			}

			p.add(str.New(v))

		case t.Is(token.Atom):
			p.add(atom(t))
		}
	}
}

// Unclosed returns the location of the innermost unclosed list.
// It must only be called when Depth is non-zero.
func (p *parser) Unclosed() loc.T {
	return p.where[len(p.where)-1]
}

func (p *parser) add(c cell.I) {
	if len(p.open) == 0 {
		p.emit(c)

		return
	}

	last := len(p.open) - 1
	p.open[last] = append(p.open[last], c)
}

// atom classifies the text of t: a boolean, a number, or a symbol.
func atom(t *token.T) cell.I {
	if b, ok := boolean.Spelled(t.Value()); ok {
		return b
	}

	if n, ok := num.Parse(t.Value()); ok {
		return n
	}

	return sym.Token(t)
}
