package termctl

import "sync"

// rawController is the platform line-discipline switch. A package var so
// tests can substitute a recorder.
type rawController interface {
	enable() error
	disable() error
}

var (
	rawMu     sync.Mutex
	rawActive bool
	rawCtl    rawController = platformRawController{}
)

// EnableRawMode switches the process terminal to raw input: keystrokes are
// delivered individually, unbuffered, without line editing, echo, or signal
// generation. Idempotent; enabling twice is a no-op.
func EnableRawMode() error {
	rawMu.Lock()
	defer rawMu.Unlock()
	if rawActive {
		return nil
	}
	if err := rawCtl.enable(); err != nil {
		return err
	}
	rawActive = true
	return nil
}

// DisableRawMode restores cooked (canonical) input. No-op when raw mode is
// not active.
func DisableRawMode() error {
	rawMu.Lock()
	defer rawMu.Unlock()
	if !rawActive {
		return nil
	}
	if err := rawCtl.disable(); err != nil {
		return err
	}
	rawActive = false
	return nil
}

// IsRawMode reports whether the process terminal is currently raw.
func IsRawMode() bool {
	rawMu.Lock()
	defer rawMu.Unlock()
	return rawActive
}
