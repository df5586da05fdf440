//go:build windows

package termctl

import (
	"github.com/mattn/go-isatty"
	"golang.org/x/sys/windows"
)

// selectAltScreenCommand resolves the backend for one mode switch.
// Resolution happens per call, never cached: an input-decoding component
// may enable virtual terminal processing on the console after this library
// is loaded, flipping the answer.
//
// Consoles with virtual terminal processing enabled understand the same
// escape sequences as unix terminals. Legacy consoles do not, and require
// switching the active screen buffer object through the console API.
func selectAltScreenCommand(out *Output) (command, error) {
	f := out.File()
	if f == nil {
		// Non-console sink; escape sequences are all that can be emitted.
		return escCommand{}, nil
	}
	fd := f.Fd()

	// Cygwin/MSYS ptys are not console handles but interpret sequences.
	if isatty.IsCygwinTerminal(fd) {
		return escCommand{}, nil
	}

	var mode uint32
	if err := windows.GetConsoleMode(windows.Handle(fd), &mode); err != nil {
		if isatty.IsTerminal(fd) {
			return escCommand{}, nil
		}
		return nil, ErrBackendUnavailable
	}
	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return escCommand{}, nil
	}
	return newConsoleCommand(windows.Handle(fd)), nil
}
