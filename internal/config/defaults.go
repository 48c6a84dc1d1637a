package config

import "time"

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		API: APIConfig{
			Address:           "0.0.0.0:6053",
			BatchDelay:        Duration(100 * time.Millisecond),
			KeepaliveTimeout:  Duration(60 * time.Second),
			MaxPingRetries:    60,
			PingRetryInterval: Duration(1 * time.Second),
		},
		Device: DeviceConfig{
			Name:           "esphome-sub000",
			Manufacturer:   "esphome-sub000",
			EsphomeVersion: "2026.1.0",
		},
		Admin: AdminConfig{
			Address: "0.0.0.0:8080",
			TLS:     TLSConfig{Auto: false},
			HTTP3:   false,
		},
		Logging: LogConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}
