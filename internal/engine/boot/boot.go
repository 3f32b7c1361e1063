// Released under an MIT license. See LICENSE.

// Package boot provides the procedures that are defined in mel itself.
package boot

import _ "embed" // Blank import required by embed.

//go:embed boot.mel
var script string //nolint:gochecknoglobals

// Script returns the boot script for mel.
func Script() string {
	return script
}
