// Package terminal provides prompt helpers: hidden password input and
// clearing prompt lines once they have been answered.
package terminal

import (
	"fmt"
	"math"
	"os"

	"golang.org/x/term"
)

// ClearPreviousLines clears textLength characters of previously printed text,
// counting wrapped lines at the current terminal width (80 when unknown) plus
// the empty line left by Enter.
func ClearPreviousLines(textLength int) {
	fmt.Print(clearSequence(textLength, width()))
}

func width() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

func clearSequence(textLength, termWidth int) string {
	lines := int(math.Ceil(float64(textLength) / float64(termWidth)))
	if lines < 1 {
		lines = 1
	}
	lines++ // cursor sits on the line below the input

	var out string
	for i := 0; i < lines; i++ {
		out += "\r\x1b[2K"
		if i < lines-1 {
			out += "\x1b[1A"
		}
	}
	return out
}
