// Released under an MIT license. See LICENSE.

// Package history persists the REPL's line history between sessions.
package history

import (
	"io"
	"os"
	"path"
)

// Path returns the default history file, ~/.minilisp_history.
func Path() string {
	return path.Join(os.Getenv("HOME"), ".minilisp_history")
}

// Load passes the history file at p to read. A missing file is not an error.
func Load(p string, read func(r io.Reader) (int, error)) error {
	f, err := os.Open(p)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}

	if err = lock(f, false); err != nil {
		f.Close()

		return err
	}

	_, err = read(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// Save replaces the history file at p with what write produces. The file
// is locked while it is written so that concurrent sessions do not
// interleave their histories.
func Save(p string, write func(w io.Writer) (int, error)) error {
	f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE, 0o600)
	if err != nil {
		return err
	}

	if err = lock(f, true); err != nil {
		f.Close()

		return err
	}

	if err = f.Truncate(0); err != nil {
		f.Close()

		return err
	}

	_, err = write(f)
	if err != nil {
		f.Close()

		return err
	}

	// Closing the file releases the lock.
	return f.Close()
}
