// Package terminal is the CLI's page surface: it prints notices, campaign
// tables and account boxes with pterm, exposes admin-only regions as printed
// hints, and handles hidden prompt input.
package terminal

import (
	"fmt"
	"math"
	"os"

	"golang.org/x/term"
)

// ClearPreviousLines erases the last textLength characters of prompt output,
// accounting for wrapping at the current terminal width, plus the line left
// behind by the user's Enter.
func ClearPreviousLines(textLength int) {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	lines := int(math.Ceil(float64(textLength)/float64(width))) + 1
	if lines < 2 {
		lines = 2
	}
	for i := 0; i < lines; i++ {
		fmt.Print("\r\x1b[2K")
		if i < lines-1 {
			fmt.Print("\x1b[1A")
		}
	}
}
