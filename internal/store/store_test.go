package store

import (
	"bytes"
	"testing"
)

func TestSavePSKThenLoadRoundTrips(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	key := bytes.Repeat([]byte{0x42}, 32)
	if err := s.SavePSK(key); err != nil {
		t.Fatalf("SavePSK() failed: %v", err)
	}

	got, err := s.LoadPSK()
	if err != nil {
		t.Fatalf("LoadPSK() failed: %v", err)
	}
	if !bytes.Equal(got, key) {
		t.Errorf("expected %x, got %x", key, got)
	}
}

func TestLoadPSKMissingFileReturnsNil(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	got, err := s.LoadPSK()
	if err != nil {
		t.Fatalf("LoadPSK() failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for unset psk, got %x", got)
	}
}

func TestSavePSKOverwritesPreviousValue(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	first := bytes.Repeat([]byte{0x01}, 32)
	second := bytes.Repeat([]byte{0x02}, 32)
	if err := s.SavePSK(first); err != nil {
		t.Fatalf("SavePSK(first) failed: %v", err)
	}
	if err := s.SavePSK(second); err != nil {
		t.Fatalf("SavePSK(second) failed: %v", err)
	}

	got, err := s.LoadPSK()
	if err != nil {
		t.Fatalf("LoadPSK() failed: %v", err)
	}
	if !bytes.Equal(got, second) {
		t.Errorf("expected overwritten value %x, got %x", second, got)
	}
}

func TestSnapshotRoundTrips(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	entities := []EntitySnapshot{
		{Key: 1, Kind: 0, State: true},
		{Key: 2, Kind: 1, State: float32(21.5)},
	}
	if err := s.SaveSnapshot(entities); err != nil {
		t.Fatalf("SaveSnapshot() failed: %v", err)
	}

	got, err := s.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot() failed: %v", err)
	}
	if len(got) != 2 || got[0].Key != 1 || got[1].Key != 2 {
		t.Fatalf("unexpected snapshot round-trip: %+v", got)
	}
}

func TestLoadSnapshotMissingFileReturnsNil(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	got, err := s.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot() failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil snapshot, got %+v", got)
	}
}
