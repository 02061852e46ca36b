// Released under an MIT license. See LICENSE.

package options

import "testing"

func TestScript(t *testing.T) {
	parse([]string{"-d", "prog.scm"}, true)

	if Script() != "prog.scm" || !Debug() || Interactive() {
		t.Fatalf("unexpected options: script=%q debug=%v interactive=%v",
			Script(), Debug(), Interactive())
	}
}

func TestExpression(t *testing.T) {
	parse([]string{"-e", "(+ 1 2)"}, true)

	if Expression() != "(+ 1 2)" || Script() != "" || Interactive() {
		t.Fatalf("unexpected options: expression=%q script=%q interactive=%v",
			Expression(), Script(), Interactive())
	}
}

func TestInteractive(t *testing.T) {
	for _, tc := range []struct {
		argv        []string
		terminal    bool
		interactive bool
	}{
		{[]string{}, true, true},
		{[]string{}, false, false},
		{[]string{"-i"}, true, false},
		{[]string{"-i"}, false, true},
	} {
		parse(tc.argv, tc.terminal)

		if Interactive() != tc.interactive {
			t.Fatalf("%v (terminal=%v): expected interactive=%v",
				tc.argv, tc.terminal, tc.interactive)
		}
	}
}

func TestVersion(t *testing.T) {
	parse([]string{"-v"}, false)

	if !Version() {
		t.Fatal("expected version to be requested")
	}
}
