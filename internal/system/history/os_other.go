// Released under an MIT license. See LICENSE.

//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package history

import (
	"os"
	"path/filepath"
)

func file(op func(string) (*os.File, error)) (*os.File, error) {
	p, err := Path()
	if err != nil {
		return nil, err
	}

	return op(p)
}

// Path returns the location of the history file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".lazarus_history"), nil
}
