package termctl

import (
	"bytes"
	"strings"
	"testing"
)

func TestResetEmitsRecoverySequences(t *testing.T) {
	var buf bytes.Buffer
	Reset(&buf)

	got := buf.String()
	for _, seq := range []string{"\x1b[?25h", "\x1b[?1049l", "\x1b[0m"} {
		if !strings.Contains(got, seq) {
			t.Errorf("Reset output %q missing %q", got, seq)
		}
	}
}
