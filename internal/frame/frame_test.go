package frame

import (
	"net"
	"testing"
)

func TestPlaintextHelperHeaderPaddingAndFooter(t *testing.T) {
	serverConn, _ := net.Pipe()
	defer serverConn.Close()
	h := NewPlaintextHelper(serverConn)
	if h.HeaderPadding() <= 0 {
		t.Fatalf("expected positive header padding")
	}
	if h.FooterSize() != 0 {
		t.Fatalf("plaintext framing has no footer, got %d", h.FooterSize())
	}
}

func TestNoiseHelperFooterIsMACSize(t *testing.T) {
	serverConn, _ := net.Pipe()
	defer serverConn.Close()
	h := NewNoiseHelper(serverConn, make([]byte, 32), "test-device", "AA:BB:CC:DD:EE:FF")
	if h.FooterSize() != 16 {
		t.Fatalf("expected 16-byte MAC footer, got %d", h.FooterSize())
	}
	if h.State() != StateInitialize {
		t.Fatalf("expected StateInitialize before Init, got %v", h.State())
	}
}
