// Package store persists the two pieces of state that must survive a
// process restart: the active Noise PSK and a best-effort snapshot of
// every entity's last-known value for the admin dashboard. Both are
// msgpack-encoded; the wire codec itself needs an exact protobuf-compatible
// encoding and cannot use msgpack.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// pskRecord is the on-disk shape of the PSK file.
type pskRecord struct {
	Key []byte `msgpack:"key"`
}

// Store reads and atomically rewrites the PSK file and the entity-state
// snapshot file, both under dir.
type Store struct {
	dir string
	mu  sync.Mutex
}

// New returns a Store rooted at dir. dir is created if missing.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) pskPath() string     { return filepath.Join(s.dir, "psk.msgpack") }
func (s *Store) snapshotPath() string { return filepath.Join(s.dir, "snapshot.msgpack") }

// LoadPSK returns the persisted PSK, or nil if none has been saved yet.
func (s *Store) LoadPSK() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.pskPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading persisted psk: %w", err)
	}
	var rec pskRecord
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decoding persisted psk: %w", err)
	}
	return rec.Key, nil
}

// SavePSK atomically replaces the persisted PSK, matching the spec's
// "atomically, with a rollback path if the flash write fails" requirement:
// the new file is written to a temp path first and only renamed over the
// live one once it is fully flushed, so a crash mid-write leaves the old
// PSK in place rather than a truncated one.
func (s *Store) SavePSK(key []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := msgpack.Marshal(pskRecord{Key: key})
	if err != nil {
		return fmt.Errorf("encoding psk: %w", err)
	}
	return atomicWrite(s.pskPath(), data)
}

// EntitySnapshot is one entity's last-known value, keyed by its wire key.
type EntitySnapshot struct {
	Key     uint32      `msgpack:"key"`
	Kind    int         `msgpack:"kind"`
	State   interface{} `msgpack:"state"`
}

// SaveSnapshot overwrites the entity-state snapshot file used by the admin
// dashboard's last-known-values view. Snapshot writes are best-effort: a
// failure here never affects the live connection, so callers typically log
// and continue rather than propagate the error.
func (s *Store) SaveSnapshot(entities []EntitySnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := msgpack.Marshal(entities)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return atomicWrite(s.snapshotPath(), data)
}

// LoadSnapshot returns the last saved entity snapshot, or nil if none exists.
func (s *Store) LoadSnapshot() ([]EntitySnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.snapshotPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	var entities []EntitySnapshot
	if err := msgpack.Unmarshal(data, &entities); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return entities, nil
}

// atomicWrite writes data to a temp file in the same directory as path and
// renames it into place, so a reader never observes a partially-written
// file and a crash mid-write never corrupts the previous version.
func atomicWrite(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op once the rename below succeeds

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming into place: %w", err)
	}
	return nil
}
