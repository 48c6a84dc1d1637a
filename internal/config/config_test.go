package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.API.Address != "0.0.0.0:6053" {
		t.Errorf("expected default api address 0.0.0.0:6053, got %s", cfg.API.Address)
	}
	if cfg.API.MaxPingRetries != 60 {
		t.Errorf("expected max_ping_retries 60, got %d", cfg.API.MaxPingRetries)
	}
	if cfg.API.KeepaliveTimeout.Duration() != 60*time.Second {
		t.Errorf("expected keepalive_timeout 60s, got %s", cfg.API.KeepaliveTimeout.Duration())
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level info, got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected default config to validate, got %v", err)
	}
}

func TestLoadValidConfig(t *testing.T) {
	yaml := `
api:
  address: "0.0.0.0:6054"
  password: "hunter2"
  batch_delay: "50ms"
device:
  name: "kitchen-esp"
  friendly_name: "Kitchen"
admin:
  address: "0.0.0.0:9090"
logging:
  level: "debug"
`
	dir := t.TempDir()
	path := filepath.Join(dir, "esphome-sub000.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.API.Address != "0.0.0.0:6054" {
		t.Errorf("expected api address 0.0.0.0:6054, got %s", cfg.API.Address)
	}
	if cfg.API.Password != "hunter2" {
		t.Errorf("expected password hunter2, got %s", cfg.API.Password)
	}
	if cfg.API.BatchDelay.Duration() != 50*time.Millisecond {
		t.Errorf("expected batch_delay 50ms, got %s", cfg.API.BatchDelay.Duration())
	}
	if cfg.Device.Name != "kitchen-esp" {
		t.Errorf("expected device name kitchen-esp, got %s", cfg.Device.Name)
	}
	if cfg.Admin.Address != "0.0.0.0:9090" {
		t.Errorf("expected admin address 0.0.0.0:9090, got %s", cfg.Admin.Address)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/esphome-sub000.yaml")
	if err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestValidateMissingDeviceName(t *testing.T) {
	cfg := Default()
	cfg.Device.Name = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for missing device.name")
	}
}

func TestValidateInvalidNoisePSK(t *testing.T) {
	cfg := Default()
	cfg.API.NoisePSK = "not-base64!!"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for invalid base64 noise_psk")
	}
}

func TestValidateNoisePSKWrongLength(t *testing.T) {
	cfg := Default()
	cfg.API.NoisePSK = "c2hvcnQ=" // "short", not 32 bytes
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for noise_psk not decoding to 32 bytes")
	}
}

func TestValidateACMERequiresDomains(t *testing.T) {
	cfg := Default()
	cfg.Admin.TLS.Auto = true
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for auto TLS without ACME domains")
	}
}

func TestNoiseKeyDecodesValidPSK(t *testing.T) {
	cfg := Default()
	cfg.API.NoisePSK = "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA="
	key := cfg.NoiseKey()
	if len(key) != 32 {
		t.Fatalf("expected a 32-byte key, got %d bytes", len(key))
	}
}

func TestNoiseKeyNilWhenUnset(t *testing.T) {
	cfg := Default()
	if cfg.NoiseKey() != nil {
		t.Error("expected nil key when noise_psk is unset")
	}
}
