// Released under an MIT license. See LICENSE.

// Package commands provides the procedures bound in the root environment.
package commands

import (
	"github.com/mel-lang/mel/internal/common/type/builtin"
)

// Functions returns mel's builtin procedures.
func Functions() map[string]builtin.Do {
	return map[string]builtin.Do{
		"*":  mul,
		"+":  add,
		"-":  sub,
		"/":  div,
		"<":  lt,
		"<=": le,
		"=":  eq,
		">":  gt,
		">=": ge,

		"not": not,
	}
}
