// Released under an MIT license. See LICENSE.

// Package history saves and restores interactive input history.
package history

import (
	"io"
	"os"
	"path"
)

// Load reads saved history using read, typically liner's ReadHistory.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := file(os.Open)
	if err != nil {
		return err
	}

	_, err = read(f)
	if err != nil {
		return err
	}

	return f.Close()
}

// Save writes current history using write, typically liner's WriteHistory.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := file(os.Create)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		return err
	}

	return f.Close()
}

func file(op func(string) (*os.File, error)) (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return op(path.Join(home, ".mel_history"))
}
