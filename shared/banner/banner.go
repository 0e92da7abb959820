// Package banner prints the application startup banner.
package banner

import (
	"fmt"
	"os"
	"strings"

	"github.com/thirukguru/boundary-scan/shared/ansi"
	"github.com/thirukguru/boundary-scan/shared/console"
	"golang.org/x/term"
)

const (
	amber = "\x1b[38;2;255;153;0m"
	cyan  = "\x1b[38;2;0;175;240m"
	reset = "\x1b[0m"

	bannerColorEnv = "BOUNDARY_SCAN_BANNER_COLOR"
)

var titleLines = []string{
	"██████╗  ██████╗ ██╗   ██╗███╗   ██╗██████╗  █████╗ ██████╗ ██╗   ██╗   ███████╗ ██████╗ █████╗ ███╗   ██╗",
	"██╔══██╗██╔═══██╗██║   ██║████╗  ██║██╔══██╗██╔══██╗██╔══██╗╚██╗ ██╔╝   ██╔════╝██╔════╝██╔══██╗████╗  ██║",
	"██████╔╝██║   ██║██║   ██║██╔██╗ ██║██║  ██║███████║██████╔╝ ╚████╔╝    ███████╗██║     ███████║██╔██╗ ██║",
	"██╔══██╗██║   ██║██║   ██║██║╚██╗██║██║  ██║██╔══██║██╔══██╗  ╚██╔╝     ╚════██║██║     ██╔══██║██║╚██╗██║",
	"██████╔╝╚██████╔╝╚██████╔╝██║ ╚████║██████╔╝██║  ██║██║  ██║   ██║      ███████║╚██████╗██║  ██║██║ ╚████║",
	"╚═════╝  ╚═════╝  ╚═════╝ ╚═╝  ╚═══╝╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝      ╚══════╝ ╚═════╝╚═╝  ╚═╝╚═╝  ╚═══╝",
	"",
	"AWS Permission Boundary Scanner",
}

// DrawBannerTitle prints the application title banner to stdout.
func DrawBannerTitle() {
	ansi.EnableANSI()

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}

	fmt.Print(titleColor())
	printCenteredLines(titleLines, width)
	fmt.Print(reset)
}

func printCenteredLines(lines []string, width int) {
	for _, line := range lines {
		pad := 0
		if width > len(line) {
			pad = (width - len(line)) / 2
		}
		if pad > 0 {
			fmt.Print(strings.Repeat(" ", pad))
		}
		fmt.Println(line)
	}
}

func titleColor() string {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(bannerColorEnv))) {
	case "cyan":
		return cyan
	case "amber":
		return amber
	}

	if console.IsBlueBackground() {
		return cyan
	}
	return amber
}
