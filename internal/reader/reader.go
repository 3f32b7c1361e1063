// Released under an MIT license. See LICENSE.

// Package reader turns source text into expression trees.
package reader

import (
	"github.com/mel-lang/mel/internal/common/interface/cell"
	"github.com/mel-lang/mel/internal/common/struct/errs"
	"github.com/mel-lang/mel/internal/reader/lexer"
	"github.com/mel-lang/mel/internal/reader/parser"
)

// T (reader) encapsulates the mel lexer and parser.
type T struct {
	complete []cell.I
	p        *parser.T
	s        *lexer.T
}

type reader = T

// New creates a new reader for the source labelled label.
func New(label string) *reader {
	r := &reader{}

	r.s = lexer.New(label)
	r.p = parser.New(func(c cell.I) {
		r.complete = append(r.complete, c)
	}, r.s.Token)

	return r
}

// Parse reads all of text and returns the expressions it contains.
// Text with an unterminated expression, or no expression at all, is an
// error: use a reader directly when input arrives a piece at a time.
func Parse(label, text string) ([]cell.I, error) {
	r := New(label)

	cs, err := r.Scan(text)
	if err != nil {
		return nil, err
	}

	rest, err := r.Close()
	if err != nil {
		return nil, err
	}

	cs = append(cs, rest...)

	if len(cs) == 0 {
		return nil, &errs.Parse{Reason: "empty input"}
	}

	return cs, nil
}

// Close marks the end of the input and returns any remaining complete
// expressions. An expression still missing its closing parenthesis
// becomes an error here.
func (r *reader) Close() ([]cell.I, error) {
	r.s.Scan("\n")

	if err := r.p.Parse(); err != nil {
		return nil, err
	}

	if r.p.Depth() > 0 {
		where := r.p.Unclosed()

		return nil, &errs.Parse{
			Where:  where.String(),
			Reason: "unmatched '('",
		}
	}

	return r.drain(), nil
}

// Depth returns the number of unclosed lists. The interactive prompt
// uses this to show that more input is expected.
func (r *reader) Depth() int {
	return r.p.Depth()
}

// Scan passes text to the lexer and returns the expressions completed
// by that text. An empty slice with a nil error means the input so far
// is the prefix of a well-formed expression.
func (r *reader) Scan(text string) ([]cell.I, error) {
	r.s.Scan(text)

	if err := r.p.Parse(); err != nil {
		return nil, err
	}

	return r.drain(), nil
}

func (r *reader) drain() []cell.I {
	cs := r.complete
	r.complete = nil

	return cs
}
