// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the mel language.
package ui

import (
	"github.com/peterh/liner"

	"github.com/mel-lang/mel/internal/common/interface/cell"
	"github.com/mel-lang/mel/internal/reader"
	"github.com/mel-lang/mel/internal/system/history"
)

// Evaluator is the interface for things that want to process parsed
// expressions.
type Evaluator interface {
	Evaluate(c cell.I)
}

// Run prompts for expressions and sends each complete expression to the
// Evaluator. It returns when the input ends or the prompt is aborted.
func Run(label string, e Evaluator) {
	cli := liner.NewLiner()
	defer cli.Close()

	// Missing history is not an error worth reporting.
	_ = history.Load(cli.ReadHistory)

	defer func() {
		err := history.Save(cli.WriteHistory)
		if err != nil {
			println("error writing history: " + err.Error())
		}
	}()

	cli.SetCtrlCAborts(true)

	r := reader.New(label)
	prompt := "> "

	for {
		line, err := cli.Prompt(prompt)

		switch err {
		case nil:
			if line != "" {
				cli.AppendHistory(line)
			}
		case liner.ErrPromptAborted:
			// Abandon the current expression.
			r = reader.New(label)
			prompt = "> "

			continue
		default:
			return
		}

		cs, err := r.Scan(line + "\n")
		if err != nil {
			println(err.Error())

			r = reader.New(label)
			prompt = "> "

			continue
		}

		for _, c := range cs {
			e.Evaluate(c)
		}

		if r.Depth() > 0 {
			prompt = ". "
		} else {
			prompt = "> "
		}
	}
}
