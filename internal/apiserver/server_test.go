package apiserver

import (
	"bytes"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/zqrup/esphome-sub000/internal/config"
	"github.com/zqrup/esphome-sub000/internal/entity"
	"github.com/zqrup/esphome-sub000/internal/store"
	"github.com/zqrup/esphome-sub000/internal/wire"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.Device.Name = "test-device"
	st, err := store.New(t.TempDir())
	if err != nil {
		t.Fatalf("store.New() failed: %v", err)
	}
	s, err := New(cfg, entity.NewRegistry(), st, testLogger())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return s
}

func TestDeviceInfoReflectsConfig(t *testing.T) {
	s := newTestServer(t)
	info := s.DeviceInfo()
	if info.Name != "test-device" {
		t.Errorf("expected device name test-device, got %s", info.Name)
	}
	if info.UsesPassword {
		t.Errorf("expected UsesPassword false with no password configured")
	}
}

func TestPasswordMatchesConfig(t *testing.T) {
	s := newTestServer(t)
	s.cfg.API.Password = "hunter2"
	if s.Password() != "hunter2" {
		t.Errorf("expected password hunter2, got %s", s.Password())
	}
}

func TestRegisterServiceAndExecute(t *testing.T) {
	s := newTestServer(t)
	var called []wire.ExecuteServiceArgument
	key := s.RegisterService("turn_on_porch_light", nil, func(args []wire.ExecuteServiceArgument) error {
		called = args
		return nil
	})

	services := s.Services()
	if len(services) != 1 || services[0].Key != key || services[0].Name != "turn_on_porch_light" {
		t.Fatalf("unexpected services list: %+v", services)
	}

	args := []wire.ExecuteServiceArgument{{Bool: true}}
	if err := s.ExecuteService(key, args); err != nil {
		t.Fatalf("ExecuteService() failed: %v", err)
	}
	if len(called) != 1 || !called[0].Bool {
		t.Fatalf("expected handler to receive args, got %+v", called)
	}
}

func TestExecuteServiceUnknownKeyReturnsError(t *testing.T) {
	s := newTestServer(t)
	if err := s.ExecuteService(12345, nil); err == nil {
		t.Error("expected error for unregistered service key")
	}
}

func TestSetNoiseKeyRejectsWrongLength(t *testing.T) {
	s := newTestServer(t)
	if err := s.SetNoiseKey([]byte{1, 2, 3}); err == nil {
		t.Error("expected error for a non-32-byte psk")
	}
}

func TestSetNoiseKeyPersistsAcrossServerRestart(t *testing.T) {
	cfg := config.Default()
	cfg.Device.Name = "test-device"
	dir := t.TempDir()
	st, err := store.New(dir)
	if err != nil {
		t.Fatalf("store.New() failed: %v", err)
	}
	s, err := New(cfg, entity.NewRegistry(), st, testLogger())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	key := bytes.Repeat([]byte{0x07}, 32)
	if err := s.SetNoiseKey(key); err != nil {
		t.Fatalf("SetNoiseKey() failed: %v", err)
	}
	if !bytes.Equal(s.NoiseKey(), key) {
		t.Fatalf("expected live key to update immediately")
	}

	st2, err := store.New(dir)
	if err != nil {
		t.Fatalf("store.New() (reopen) failed: %v", err)
	}
	restarted, err := New(cfg, entity.NewRegistry(), st2, testLogger())
	if err != nil {
		t.Fatalf("New() (restart) failed: %v", err)
	}
	if !bytes.Equal(restarted.NoiseKey(), key) {
		t.Fatalf("expected restarted server to load persisted psk, got %x", restarted.NoiseKey())
	}
}

func TestBatchDelayReturnsConfiguredValue(t *testing.T) {
	s := newTestServer(t)
	s.cfg.API.BatchDelay = config.Duration(250 * time.Millisecond)
	if s.BatchDelay() != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %s", s.BatchDelay())
	}
}

func TestEpochSecondsIsCloseToNow(t *testing.T) {
	s := newTestServer(t)
	got := s.EpochSeconds()
	want := uint32(time.Now().Unix())
	if got < want-2 || got > want+2 {
		t.Errorf("expected epoch close to %d, got %d", want, got)
	}
}

func TestSubscribeAndUnsubscribeHAState(t *testing.T) {
	s := newTestServer(t)
	s.SubscribeHAState(nil, "sensor.kitchen", "temperature")
	s.mu.RLock()
	n := len(s.haSubs)
	s.mu.RUnlock()
	if n != 1 {
		t.Fatalf("expected 1 ha subscription, got %d", n)
	}

	s.Unsubscribe(nil)
	s.mu.RLock()
	n = len(s.haSubs)
	s.mu.RUnlock()
	if n != 0 {
		t.Fatalf("expected subscription removed, got %d remaining", n)
	}
}
