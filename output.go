package termctl

import (
	"bufio"
	"io"
	"os"
	"sync"
)

const writerBufSize = 4096

// Output wraps a terminal output sink with buffering and tracks whether the
// alternate buffer is currently held through it. The library never opens or
// closes the underlying writer.
type Output struct {
	dst    io.Writer
	writer *bufio.Writer

	mu    sync.Mutex
	inAlt bool
}

// NewOutput wraps w as a terminal output target.
func NewOutput(w io.Writer) *Output {
	return &Output{
		dst:    w,
		writer: bufio.NewWriterSize(w, writerBufSize),
	}
}

// Stdout returns an Output bound to os.Stdout.
func Stdout() *Output {
	return NewOutput(os.Stdout)
}

// Write buffers p for the terminal. Bytes reach the sink on Flush.
func (o *Output) Write(p []byte) (int, error) {
	return o.writer.Write(p)
}

// Flush pushes buffered bytes to the sink. On failure the unwritten
// remainder is dropped; a failed mode switch must not replay its bytes on
// a later flush.
func (o *Output) Flush() error {
	if err := o.writer.Flush(); err != nil {
		o.writer.Reset(o.dst)
		return err
	}
	return nil
}

// File returns the underlying *os.File when the sink is a file, else nil.
// Backends use this to probe console handles and tty-ness.
func (o *Output) File() *os.File {
	if f, ok := o.dst.(*os.File); ok {
		return f
	}
	return nil
}

// tryAcquireAlt marks this output as holding the alternate buffer.
// Returns false when it is already held; at most one alternate-screen
// handle may be outstanding per output.
func (o *Output) tryAcquireAlt() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.inAlt {
		return false
	}
	o.inAlt = true
	return true
}

func (o *Output) releaseAlt() {
	o.mu.Lock()
	o.inAlt = false
	o.mu.Unlock()
}
