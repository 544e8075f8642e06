package menu

import (
	"fmt"
	"strings"
)

const headerTitle = "MEDIACONV"

// clearScreen wipes the terminal between menu states. Suppressed when the
// output is not a TTY so piped output stays readable.
func (s *Session) clearScreen() {
	if !s.tty {
		return
	}
	fmt.Fprint(s.out, "\x1b[2J\x1b[H")
}

func (s *Session) printHeader() {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(s.out, rule)
	fmt.Fprintf(s.out, "%*s\n", (60+len(headerTitle))/2, headerTitle)
	fmt.Fprintln(s.out, "        Interactive batch media converter")
	fmt.Fprintln(s.out, rule)
	fmt.Fprintln(s.out)
}
