// Released under an MIT license. See LICENSE.

// Package options parses mel's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	command     string
	interactive bool
	script      string
	usage       = `mel - a small lexically scoped lisp

Usage:
  mel [SCRIPT]
  mel -c COMMAND
  mel [-i]
  mel -h | --help

Arguments:
  SCRIPT  Path to a mel program.

Options:
  -c, --command=COMMAND  Evaluate the specified command.
  -i, --interactive      Force interactive mode.
  -h, --help             Display this help.

If mel's stdin is a TTY and mel was invoked with no script and no command,
or interactive mode was forced, mel reads expressions interactively.
Otherwise expressions are read from the script, command, or stdin.
`
)

// Command returns the text passed with -c, if any.
func Command() string {
	return command
}

// Interactive returns true if mel should prompt for input.
func Interactive() bool {
	return interactive
}

// Parse parses the command line.
func Parse() {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	command, _ = opts.String("--command")
	script, _ = opts.String("SCRIPT")

	if command == "" && script == "" && isatty.IsTerminal(os.Stdin.Fd()) {
		interactive = true
	}

	force, _ := opts.Bool("--interactive")
	interactive = interactive || force
}

// Script returns the script path, if any.
func Script() string {
	return script
}
