//go:build !windows

package termctl

import (
	"os"

	"golang.org/x/term"
)

// platformRawController drives the unix line discipline through termios.
// State is package-level; raw.go serializes all access under rawMu.
type platformRawController struct{}

var (
	rawFd    = -1
	rawTTY   *os.File
	rawState *term.State
)

func (platformRawController) enable() error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		// Stdin redirected; fall back to the controlling terminal.
		tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
		if err != nil {
			return ErrBackendUnavailable
		}
		rawTTY = tty
		fd = int(tty.Fd())
	}

	st, err := term.MakeRaw(fd)
	if err != nil {
		if rawTTY != nil {
			rawTTY.Close()
			rawTTY = nil
		}
		return err
	}
	rawFd = fd
	rawState = st
	return nil
}

func (platformRawController) disable() error {
	if rawState == nil {
		return nil
	}
	err := term.Restore(rawFd, rawState)
	rawState = nil
	rawFd = -1
	if rawTTY != nil {
		rawTTY.Close()
		rawTTY = nil
	}
	return err
}
