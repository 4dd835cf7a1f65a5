package tui

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// clearSequence resets the terminal (RIS)
const clearSequence = "\033c"

// IsTTY returns true if stdin and stdout are both terminals
func IsTTY() bool {
	return isTerminalFile(os.Stdin) && isTerminalFile(os.Stdout)
}

// IsTerminal reports whether w is a terminal file
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminalFile(f)
}

func isTerminalFile(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ClearScreen resets the terminal behind w. Non-terminals are left untouched
// so piped output and logs stay readable.
func ClearScreen(w io.Writer) {
	if !IsTerminal(w) {
		return
	}
	_, _ = io.WriteString(w, clearSequence)
}
