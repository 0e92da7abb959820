//go:build !windows

package console

import (
	"os"
	"strings"
)

// IsBlueBackground reports whether the terminal background is blue, based on
// the COLORFGBG convention some terminal emulators export.
func IsBlueBackground() bool {
	raw := os.Getenv("COLORFGBG")
	if raw == "" {
		return false
	}

	fields := strings.Split(raw, ";")
	bg := strings.TrimSpace(fields[len(fields)-1])

	// 4 is ANSI blue, 12 is bright blue.
	return bg == "4" || bg == "12"
}
