//go:build windows

package termctl

import (
	"os"

	"golang.org/x/sys/windows"
)

// restoreCookedMode re-enables line-buffered, echoed console input. Runs in
// crash context; errors are ignored.
func restoreCookedMode() {
	h := windows.Handle(os.Stdin.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return
	}
	mode |= windows.ENABLE_ECHO_INPUT | windows.ENABLE_LINE_INPUT | windows.ENABLE_PROCESSED_INPUT
	mode &^= windows.ENABLE_VIRTUAL_TERMINAL_INPUT
	windows.SetConsoleMode(h, mode)
}
