//go:build windows

package termctl

import (
	"os"

	"golang.org/x/sys/windows"
)

// platformRawController drives the console input mode. State is
// package-level; raw.go serializes all access under rawMu.
type platformRawController struct{}

var (
	rawInHandle windows.Handle
	rawInMode   uint32
	rawSaved    bool
)

func (platformRawController) enable() error {
	h := windows.Handle(os.Stdin.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return ErrBackendUnavailable
	}

	raw := mode &^ (windows.ENABLE_ECHO_INPUT | windows.ENABLE_PROCESSED_INPUT | windows.ENABLE_LINE_INPUT)
	raw |= windows.ENABLE_VIRTUAL_TERMINAL_INPUT

	if err := windows.SetConsoleMode(h, raw); err != nil {
		return err
	}
	rawInHandle, rawInMode, rawSaved = h, mode, true
	return nil
}

func (platformRawController) disable() error {
	if !rawSaved {
		return nil
	}
	err := windows.SetConsoleMode(rawInHandle, rawInMode)
	rawSaved = false
	return err
}
