//go:build windows

package console

import (
	"os"

	"golang.org/x/sys/windows"
)

const backgroundBlue = 0x0010

// IsBlueBackground reports whether the console screen buffer has a blue
// background attribute set.
func IsBlueBackground() bool {
	stdout := windows.Handle(os.Stdout.Fd())

	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(stdout, &info); err != nil {
		return false
	}
	return info.Attributes&backgroundBlue != 0
}
