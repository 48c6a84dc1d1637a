package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the complete device-API server configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Device  DeviceConfig  `yaml:"device"`
	Admin   AdminConfig   `yaml:"admin"`
	Logging LogConfig     `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// APIConfig configures the native device-control socket.
type APIConfig struct {
	Address           string   `yaml:"address"`
	Password          string   `yaml:"password"`
	NoisePSK          string   `yaml:"noise_psk"` // base64, 32 raw bytes; empty disables Noise
	BatchDelay        Duration `yaml:"batch_delay"`
	KeepaliveTimeout  Duration `yaml:"keepalive_timeout"`
	MaxPingRetries    int      `yaml:"max_ping_retries"`
	PingRetryInterval Duration `yaml:"ping_retry_interval"`
}

// DeviceConfig describes the device this server presents to clients via
// DeviceInfoResponse/HelloResponse.
type DeviceConfig struct {
	Name                       string `yaml:"name"`
	FriendlyName               string `yaml:"friendly_name"`
	MacAddress                 string `yaml:"mac_address"`
	Model                      string `yaml:"model"`
	Manufacturer               string `yaml:"manufacturer"`
	EsphomeVersion             string `yaml:"esphome_version"`
	CompilationTime            string `yaml:"compilation_time"`
	ProjectName                string `yaml:"project_name"`
	ProjectVersion             string `yaml:"project_version"`
	SuggestedArea              string `yaml:"suggested_area"`
	HasDeepSleep               bool   `yaml:"has_deep_sleep"`
	BluetoothProxyFeatureFlags uint32 `yaml:"bluetooth_proxy_feature_flags"`
	VoiceAssistantFeatureFlags uint32 `yaml:"voice_assistant_feature_flags"`
}

// AdminConfig is the separate HTTP surface used for health checks,
// Prometheus scraping, and the read-only event-stream dashboard — never
// the device-control protocol itself.
type AdminConfig struct {
	Address      string    `yaml:"address"`
	HTTP2        bool      `yaml:"http2"`
	HTTP3        bool      `yaml:"http3"`
	HTTPRedirect bool      `yaml:"http_redirect"`
	TLS          TLSConfig `yaml:"tls"`
	StaticDir    string    `yaml:"static_dir"`
	CacheControl string    `yaml:"cache_control"`
}

type TLSConfig struct {
	Auto bool       `yaml:"auto"`
	Cert string     `yaml:"cert"`
	Key  string     `yaml:"key"`
	ACME ACMEConfig `yaml:"acme"`
}

type ACMEConfig struct {
	Email    string   `yaml:"email"`
	Domains  []string `yaml:"domains"`
	CacheDir string   `yaml:"cache_dir"`
	Staging  bool     `yaml:"staging"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Duration is a time.Duration that supports YAML string unmarshaling.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Load reads config from a YAML file, applying defaults for missing values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks the config for invalid values.
func (c *Config) Validate() error {
	if c.API.Address == "" {
		return fmt.Errorf("api.address is required")
	}
	if c.Device.Name == "" {
		return fmt.Errorf("device.name is required")
	}
	if c.API.NoisePSK != "" {
		key, err := base64.StdEncoding.DecodeString(c.API.NoisePSK)
		if err != nil {
			return fmt.Errorf("api.noise_psk must be valid base64: %w", err)
		}
		if len(key) != 32 {
			return fmt.Errorf("api.noise_psk must decode to 32 bytes, got %d", len(key))
		}
	}
	if c.API.BatchDelay.Duration() < 0 {
		return fmt.Errorf("api.batch_delay must be >= 0")
	}
	if c.API.MaxPingRetries < 1 {
		return fmt.Errorf("api.max_ping_retries must be >= 1, got %d", c.API.MaxPingRetries)
	}
	if c.Admin.Address == "" {
		return fmt.Errorf("admin.address is required")
	}
	if c.Admin.TLS.Auto && len(c.Admin.TLS.ACME.Domains) == 0 {
		return fmt.Errorf("admin.tls.acme.domains is required when admin.tls.auto is enabled")
	}
	return nil
}

// NoiseKey returns the decoded 32-byte PSK, or nil if Noise is disabled.
func (c *Config) NoiseKey() []byte {
	if c.API.NoisePSK == "" {
		return nil
	}
	key, err := base64.StdEncoding.DecodeString(c.API.NoisePSK)
	if err != nil {
		return nil
	}
	return key
}
