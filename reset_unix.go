//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package termctl

import (
	"os"

	"golang.org/x/sys/unix"
)

// restoreCookedMode re-enables canonical input on the controlling terminal.
// Goes through /dev/tty so it works even when stdin was redirected. Runs in
// crash context; errors are ignored.
func restoreCookedMode() {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()

	fd := int(tty.Fd())
	termios, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return
	}
	termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	termios.Iflag |= unix.ICRNL
	unix.IoctlSetTermios(fd, ioctlWriteTermios, termios)
}
