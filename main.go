/*
Mel is a small lexically scoped Lisp.

Expressions are read from a script, from text passed with -c, from
stdin, or interactively:

    $ mel
    > (define (square x) (* x x))
    > (square 7)
    49

Mel is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mel-lang/mel/internal/common/interface/cell"
	"github.com/mel-lang/mel/internal/common/interface/literal"
	"github.com/mel-lang/mel/internal/common/interface/scope"
	"github.com/mel-lang/mel/internal/common/type/sym"
	"github.com/mel-lang/mel/internal/engine"
	"github.com/mel-lang/mel/internal/reader"
	"github.com/mel-lang/mel/internal/system/options"
	"github.com/mel-lang/mel/internal/ui"
)

type session struct {
	root scope.I
}

// Evaluate evaluates c, printing the result or the error. Used by the
// interactive UI, where an error ends one expression, not the session.
func (s *session) Evaluate(c cell.I) {
	v, err := engine.Evaluate(s.root, c)
	if err != nil {
		fmt.Fprintln(os.Stderr, "mel:", err.Error())

		return
	}

	if v != sym.Unit {
		fmt.Println(literal.String(v))
	}
}

func main() {
	options.Parse()

	s := &session{root: engine.Boot()}

	switch {
	case options.Command() != "":
		os.Exit(run(s, "-c", options.Command()))
	case options.Script() != "":
		b, err := os.ReadFile(options.Script())
		if err != nil {
			fmt.Fprintln(os.Stderr, "mel:", err.Error())
			os.Exit(1)
		}

		os.Exit(run(s, options.Script(), string(b)))
	case options.Interactive():
		ui.Run("mel", s)
	default:
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, "mel:", err.Error())
			os.Exit(1)
		}

		os.Exit(run(s, "stdin", string(b)))
	}
}

// run evaluates every expression in text, printing the value of each.
// The first error stops evaluation.
func run(s *session, label, text string) int {
	cs, err := reader.Parse(label, text)
	if err != nil {
		fmt.Fprintln(os.Stderr, "mel:", err.Error())

		return 1
	}

	for _, c := range cs {
		v, err := engine.Evaluate(s.root, c)
		if err != nil {
			fmt.Fprintln(os.Stderr, "mel:", err.Error())

			return 1
		}

		if v != sym.Unit {
			fmt.Println(literal.String(v))
		}
	}

	return 0
}
