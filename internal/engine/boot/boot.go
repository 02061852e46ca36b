// Released under an MIT license. See LICENSE.

// Package boot provides what is necessary for bootstrapping a global
// environment.
package boot

import _ "embed" // Blank import required by embed.

//go:embed boot.scm
var script string //nolint:gochecknoglobals

// Label is the file name reported for locations in the boot script.
const Label = "boot.scm"

// Script returns the prelude evaluated into every global environment.
func Script() string {
	return script
}
