//go:build !windows

package termctl

import (
	"github.com/mattn/go-isatty"
)

// selectAltScreenCommand resolves the backend for one mode switch.
// Resolution happens per call, never cached: console capability can change
// underneath us when another component reconfigures the host terminal.
//
// Non-Windows hosts always use the escape-sequence backend. When the output
// is a file that is not a terminal there is nothing that can interpret the
// sequences, so the switch is refused rather than written blind.
func selectAltScreenCommand(out *Output) (command, error) {
	if f := out.File(); f != nil && !isatty.IsTerminal(f.Fd()) {
		return nil, ErrBackendUnavailable
	}
	return escCommand{}, nil
}
