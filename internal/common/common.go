// Released under an MIT license. See LICENSE.

// Package common defines common interfaces
package common

import (
	"fmt"
)

// Stringer is implemented by every value type.
type Stringer = fmt.Stringer
