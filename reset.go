package termctl

import (
	"io"
	"os"
)

// Reset force-restores a sane terminal: cursor visible, main screen,
// attributes cleared, cooked input. For panic-recovery paths where the
// Screen handle is unreachable; normal teardown is Leave or Close.
// Best-effort, errors are ignored.
func Reset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone cannot restore the line discipline.
	restoreCookedMode()
}
