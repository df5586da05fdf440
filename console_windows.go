//go:build windows

package termctl

import (
	"golang.org/x/sys/windows"
)

var (
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procCreateConsoleScreenBuffer    = kernel32.NewProc("CreateConsoleScreenBuffer")
	procSetConsoleActiveScreenBuffer = kernel32.NewProc("SetConsoleActiveScreenBuffer")
)

const consoleTextmodeBuffer = 0x1

// consoleCommand switches screen buffers through the legacy console API for
// hosts without virtual terminal processing. apply allocates a secondary
// buffer object and makes it active; revert re-activates the original.
type consoleCommand struct {
	original windows.Handle
	alt      windows.Handle
}

func newConsoleCommand(original windows.Handle) *consoleCommand {
	return &consoleCommand{original: original}
}

func (c *consoleCommand) apply(out *Output) error {
	h, _, err := procCreateConsoleScreenBuffer.Call(
		uintptr(windows.GENERIC_READ|windows.GENERIC_WRITE),
		uintptr(windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE),
		0,
		consoleTextmodeBuffer,
		0,
	)
	if windows.Handle(h) == windows.InvalidHandle {
		return err
	}
	if r, _, err := procSetConsoleActiveScreenBuffer.Call(h); r == 0 {
		windows.CloseHandle(windows.Handle(h))
		return err
	}
	c.alt = windows.Handle(h)
	return nil
}

func (c *consoleCommand) revert(out *Output) error {
	if c.alt == 0 {
		// apply never ran or already failed
		return nil
	}
	r, _, err := procSetConsoleActiveScreenBuffer.Call(uintptr(c.original))
	windows.CloseHandle(c.alt)
	c.alt = 0
	if r == 0 {
		return err
	}
	return nil
}
