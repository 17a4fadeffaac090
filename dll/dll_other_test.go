//go:build !windows && !darwin && !freebsd && !linux

package dll

import (
	"errors"
	"testing"
)

func TestOpenNotSupported(t *testing.T) {
	if _, err := Open(""); !errors.Is(err, ErrNotSupported) {
		t.Errorf("expected ErrNotSupported, got %v", err)
	}
}

func TestStubsFail(t *testing.T) {
	var l Library
	// Inverted entry points succeed with nonzero.
	if code := l.DispClose(1); code != 0 {
		t.Errorf("%s: expected 0, got %d", ProcClose, code)
	}
	if code := l.DispDataSingle(1, 0, 0, 1<<8, nil); code != 0 {
		t.Errorf("%s: expected 0, got %d", ProcDataSingle, code)
	}
	if code := l.DispOpen(1); code == 0 {
		t.Errorf("%s: expected nonzero, got 0", ProcOpen)
	}
	if code := l.DispGrayScale(1, 1<<8, 0); code == 0 {
		t.Errorf("%s: expected nonzero, got 0", ProcGrayScale)
	}
}
