package termctl

// Guard applies a screen transition on acquisition and unconditionally
// reverts it on Release. Go has no destructors, so the contract is a
// deferred Release:
//
//	g, err := termctl.Acquire(out, true)
//	if err != nil {
//		return err
//	}
//	defer g.Release()
//
// Skipping the defer leaks terminal state when the scope exits abnormally.
type Guard struct {
	screen *Screen
}

// Acquire enters the alternate screen (optionally with raw mode) and
// returns the guard that restores it.
func Acquire(out *Output, raw bool) (*Guard, error) {
	s, err := EnterAlternate(out, raw)
	if err != nil {
		return nil, err
	}
	return &Guard{screen: s}, nil
}

// Screen returns the held handle.
func (g *Guard) Screen() *Screen { return g.screen }

// Release restores the terminal. It never fails: errors go to the
// diagnostics hook. Releasing twice is a no-op.
func (g *Guard) Release() {
	if g == nil || g.screen == nil {
		return
	}
	g.screen.Close()
}

// WithAlternate runs fn on the alternate screen and restores the main
// screen afterwards, whether fn returns normally, returns an error, or
// panics.
func WithAlternate(out *Output, raw bool, fn func(*Screen) error) error {
	g, err := Acquire(out, raw)
	if err != nil {
		return err
	}
	defer g.Release()
	return fn(g.screen)
}
