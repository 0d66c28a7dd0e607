package pretty

import (
	"io"
	"os"

	"fortio.org/safecast"
	"golang.org/x/term"
)

// TerminalWidth returns the width of w when it is a terminal, 0 otherwise.
func TerminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	fd, err := safecast.Conv[int](f.Fd())
	if err != nil || !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}
