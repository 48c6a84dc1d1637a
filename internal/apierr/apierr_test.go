package apierr

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodeOfUnwrapsChain(t *testing.T) {
	base := New(SocketReadFailed, "192.168.1.5:6053", errors.New("eof"))
	wrapped := fmt.Errorf("read packet: %w", base)

	if got := CodeOf(wrapped); got != SocketReadFailed {
		t.Fatalf("CodeOf = %v, want %v", got, SocketReadFailed)
	}
}

func TestCodeOfNilAndPlainError(t *testing.T) {
	if got := CodeOf(nil); got != OK {
		t.Fatalf("CodeOf(nil) = %v, want OK", got)
	}
	if got := CodeOf(errors.New("plain")); got != BadState {
		t.Fatalf("CodeOf(plain error) = %v, want BadState", got)
	}
}

func TestIsWouldBlock(t *testing.T) {
	err := fmt.Errorf("write: %w", New(WouldBlock, "peer", nil))
	if !IsWouldBlock(err) {
		t.Fatalf("expected IsWouldBlock to be true")
	}
	if IsWouldBlock(New(BadIndicator, "peer", nil)) {
		t.Fatalf("expected IsWouldBlock to be false for BadIndicator")
	}
}

func TestErrorStringIncludesPeer(t *testing.T) {
	err := New(BadIndicator, "10.0.0.4:6053", errors.New("got 0x42"))
	want := "10.0.0.4:6053: bad indicator byte: got 0x42"
	if got := err.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}
