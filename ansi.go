package termctl

// Pre-allocated control sequences (avoid allocations on the switch path)
var (
	// DEC private mode 1049: alternate screen buffer with cursor save
	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")

	// Recovery sequences used by Reset
	csiCursorShow = []byte("\x1b[?25h")
	csiSGR0       = []byte("\x1b[0m")
)

// escCommand switches screen buffers by emitting DEC private mode 1049
// sequences to the output stream. Works on any VT/xterm-compatible
// terminal and is the only backend used on non-Windows hosts.
type escCommand struct{}

func (escCommand) apply(out *Output) error {
	if _, err := out.Write(csiAltScreenEnter); err != nil {
		return err
	}
	return out.Flush()
}

func (escCommand) revert(out *Output) error {
	if _, err := out.Write(csiAltScreenExit); err != nil {
		return err
	}
	return out.Flush()
}
