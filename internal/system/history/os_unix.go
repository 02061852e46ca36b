// Released under an MIT license. See LICENSE.

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package history

import (
	"errors"
	"os"
	"os/user"
	"path"
)

func file(op func(string) (*os.File, error)) (*os.File, error) {
	p, err := Path()
	if err != nil {
		return nil, err
	}

	return op(p)
}

// Path returns the location of the history file. When HOME is not set the
// home directory comes from the user database.
func Path() (string, error) {
	home := os.Getenv("HOME")
	if home == "" {
		u, err := user.Current()
		if err != nil || u.HomeDir == "" {
			return "", errors.New("history: no home directory")
		}

		home = u.HomeDir
	}

	return path.Join(home, ".lazarus_history"), nil
}
