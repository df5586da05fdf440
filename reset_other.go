//go:build !windows && !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package termctl

// No termios access on this platform; escape sequences from Reset are the
// best that can be done.
func restoreCookedMode() {}
