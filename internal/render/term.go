package render

import (
	"os"

	"golang.org/x/sys/unix"
)

const fallbackWidth = 100

// terminalWidth reports the current terminal width, falling back to a
// fixed width when stdout is not a terminal or the ioctl fails.
func terminalWidth() int {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return fallbackWidth
	}
	return int(ws.Col)
}
