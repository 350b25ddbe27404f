// Released under an MIT license. See LICENSE.

package history

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissing(t *testing.T) {
	p := filepath.Join(t.TempDir(), "missing")

	err := Load(p, func(r io.Reader) (int, error) {
		t.Fatal("read called for a missing file")

		return 0, nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestPath(t *testing.T) {
	t.Setenv("HOME", "/home/someone")

	if p := Path(); p != "/home/someone/.minilisp_history" {
		t.Fatalf("unexpected history path %s", p)
	}
}

func TestSaveReplaces(t *testing.T) {
	p := filepath.Join(t.TempDir(), "history")

	for _, lines := range []string{"(a very long first line)\n", "(b)\n"} {
		err := Save(p, func(w io.Writer) (int, error) {
			return io.WriteString(w, lines)
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	var b bytes.Buffer

	err := Load(p, func(r io.Reader) (int, error) {
		n, err := b.ReadFrom(r)

		return int(n), err
	})
	if err != nil {
		t.Fatal(err)
	}

	if got := b.String(); got != "(b)\n" {
		t.Fatalf("expected only the last history, got %q", strings.TrimSpace(got))
	}
}
