// Released under an MIT license. See LICENSE.

// Package engine is a facade in front of the machinery for evaluating
// parsed mel code.
package engine

import (
	"github.com/mel-lang/mel/internal/common/interface/cell"
	"github.com/mel-lang/mel/internal/common/interface/scope"
	"github.com/mel-lang/mel/internal/common/type/builtin"
	"github.com/mel-lang/mel/internal/common/type/create"
	"github.com/mel-lang/mel/internal/common/type/env"
	"github.com/mel-lang/mel/internal/engine/boot"
	"github.com/mel-lang/mel/internal/engine/commands"
	"github.com/mel-lang/mel/internal/engine/eval"
	"github.com/mel-lang/mel/internal/reader"
)

// Boot creates a root environment populated with mel's builtin
// procedures. The root is an explicit value, not shared state: each call
// returns an independent environment, and a caller may Bind additional
// names before evaluating.
func Boot() scope.I {
	root := env.New(nil)

	for label, do := range commands.Functions() {
		root.Bind(label, builtin.New(label, do))
	}

	root.Bind("nil", create.Unit())

	// The boot script only fails if the build is broken.
	cs, err := reader.Parse("boot", boot.Script())
	if err != nil {
		panic("boot: " + err.Error())
	}

	for _, c := range cs {
		_, err = eval.Eval(c, root)
		if err != nil {
			panic("boot: " + err.Error())
		}
	}

	return root
}

// Evaluate evaluates the expression c in the scope sc.
func Evaluate(sc scope.I, c cell.I) (cell.I, error) {
	return eval.Eval(c, sc)
}
