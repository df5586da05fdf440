package termctl

import "sync"

// Screen represents the terminal once a buffer switch has been applied. It
// records which backend performed the switch, so teardown never has to
// re-resolve the platform.
type Screen struct {
	mu      sync.Mutex
	out     *Output
	cmd     command
	alt     bool
	rawHeld bool
	closed  bool
}

// EnterAlternate switches out to the alternate screen buffer. With raw set
// it also switches the process input to raw mode, after the buffer switch;
// if raw enabling fails the buffer switch is reverted before the error is
// returned, so a failed call leaves the terminal untouched.
//
// At most one alternate-screen handle may be outstanding per Output;
// entering again before Leave returns ErrAlreadyAlternate.
func EnterAlternate(out *Output, raw bool) (*Screen, error) {
	if !out.tryAcquireAlt() {
		return nil, ErrAlreadyAlternate
	}

	cmd, err := selectAltScreenCommand(out)
	if err != nil {
		out.releaseAlt()
		return nil, err
	}

	if err := cmd.apply(out); err != nil {
		out.releaseAlt()
		return nil, &ApplyError{Op: "enter alternate screen", Err: err}
	}

	s := &Screen{out: out, cmd: cmd, alt: true}

	if raw {
		if err := EnableRawMode(); err != nil {
			if rerr := cmd.revert(out); rerr != nil {
				diag("revert after failed raw enable", rerr)
			}
			out.releaseAlt()
			return nil, &ApplyError{Op: "enable raw mode", Err: err}
		}
		s.rawHeld = true
	}
	return s, nil
}

// Leave restores the main screen. Raw mode, when this handle enabled it, is
// disabled first: the main buffer must never reappear with a raw line
// discipline still active. Calling Leave while already on the main screen
// is a no-op and emits nothing.
func (s *Screen) Leave() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.leaveLocked()
}

func (s *Screen) leaveLocked() error {
	if !s.alt {
		return nil
	}
	if s.rawHeld {
		if err := DisableRawMode(); err != nil {
			return err
		}
		s.rawHeld = false
	}
	if err := s.cmd.revert(s.out); err != nil {
		return &RevertError{Op: "leave alternate screen", Err: err}
	}
	s.alt = false
	s.out.releaseAlt()
	return nil
}

// IsAlternate reports whether this handle currently holds the alternate
// buffer.
func (s *Screen) IsAlternate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alt
}

// Close is the implicit teardown path: it invokes Leave if the caller has
// not, swallows any error into the diagnostics hook, and is safe to call
// multiple times.
func (s *Screen) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if err := s.leaveLocked(); err != nil {
		diag("implicit leave alternate screen", err)
	}
}
