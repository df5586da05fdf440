package termctl

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// DiagnosticFunc receives errors from teardown paths that are not allowed
// to propagate (Screen.Close, Guard.Release). Failures there are reported,
// never retried.
type DiagnosticFunc func(op string, err error)

var diagHook atomic.Value

func init() {
	diagHook.Store(DiagnosticFunc(func(op string, err error) {
		logrus.WithError(err).WithField("op", op).Warn("terminal restore failed")
	}))
}

// SetDiagnostics replaces the teardown diagnostics hook. Passing nil
// silences diagnostics entirely.
func SetDiagnostics(fn DiagnosticFunc) {
	if fn == nil {
		fn = func(string, error) {}
	}
	diagHook.Store(fn)
}

func diag(op string, err error) {
	if err == nil {
		return
	}
	diagHook.Load().(DiagnosticFunc)(op, err)
}
