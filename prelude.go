// Released under an MIT license. See LICENSE.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Dentosal/minilisp/internal/engine/boot"
	"github.com/Dentosal/minilisp/internal/system/options"
	"github.com/michaelmacinnis/adapted"
)

// Files in the glob's directory whose names match its last element are
// loaded in name order.
func glob(pattern string) ([]boot.Unit, error) {
	dir, base := filepath.Split(pattern)
	if dir == "" {
		dir = "."
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	units := []boot.Unit{}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		matched, err := adapted.Match(base, entry.Name())
		if err != nil {
			return nil, err
		}

		if !matched {
			continue
		}

		path := filepath.Join(dir, entry.Name())

		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		units = append(units, boot.Unit{Name: path, Text: string(b)})
	}

	if len(units) == 0 {
		return nil, fmt.Errorf("no prelude files match %s", pattern)
	}

	return units, nil
}

func prelude(o *options.T) ([]boot.Unit, error) {
	switch {
	case o.NoPrelude:
		return nil, nil
	case o.Prelude != "":
		return glob(o.Prelude)
	}

	return boot.Prelude(), nil
}
