// Released under an MIT license. See LICENSE.

package history

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"
)

func TestSaveLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("USERPROFILE", t.TempDir())

	err := Save(func(w io.Writer) (int, error) {
		return w.Write([]byte("(+ 1 2)\n"))
	})
	if err != nil {
		t.Fatal(err)
	}

	var b bytes.Buffer

	err = Load(func(r io.Reader) (int, error) {
		n, err := b.ReadFrom(r)

		return int(n), err
	})
	if err != nil {
		t.Fatal(err)
	}

	if b.String() != "(+ 1 2)\n" {
		t.Fatalf("unexpected history %q", b.String())
	}
}

func TestLoadMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("USERPROFILE", t.TempDir())

	err := Load(func(r io.Reader) (int, error) {
		return 0, nil
	})
	if err == nil {
		t.Fatal("expected an error for a missing history file")
	}
}

func TestPathIsAbsolute(t *testing.T) {
	t.Setenv("HOME", "")

	p, err := Path()
	if err != nil {
		// No user database entry either; nothing is written.
		return
	}

	if !filepath.IsAbs(p) {
		t.Fatalf("expected an absolute history path; got %q", p)
	}
}
