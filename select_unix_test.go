//go:build !windows

package termctl

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSelectorPicksEscapeBackend(t *testing.T) {
	out := NewOutput(&bytes.Buffer{})
	cmd, err := selectAltScreenCommand(out)
	if err != nil {
		t.Fatalf("selectAltScreenCommand: %v", err)
	}
	if _, ok := cmd.(escCommand); !ok {
		t.Errorf("selected %T, want escCommand", cmd)
	}
}

func TestSelectorRefusesNonTerminalFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "not-a-tty"))
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	defer f.Close()

	_, err = selectAltScreenCommand(NewOutput(f))
	if !errors.Is(err, ErrBackendUnavailable) {
		t.Errorf("selector on plain file: %v, want ErrBackendUnavailable", err)
	}

	if _, err := EnterAlternate(NewOutput(f), false); !errors.Is(err, ErrBackendUnavailable) {
		t.Errorf("EnterAlternate on plain file: %v, want ErrBackendUnavailable", err)
	}
}
