package config

import "time"

// ServerConfig is the root configuration for rodent-server.
type ServerConfig struct {
	Server ServerSection `koanf:"server"`
	Admin  AdminSection  `koanf:"admin"`
	Log    LogSection    `koanf:"log"`
}

// ServerSection configures the RESP listener.
type ServerSection struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`

	// KeepAlive is the TCP keep-alive period of client connections.
	KeepAlive time.Duration `koanf:"keepalive"`

	// RateLimit is the per-client-IP command rate (per second). 0 disables it.
	RateLimit int `koanf:"rate_limit"`

	// MaxLineBytes caps one protocol line. 0 means unlimited.
	MaxLineBytes int `koanf:"max_line_bytes"`
}

// AdminSection configures the admin HTTP endpoint.
type AdminSection struct {
	Enabled bool   `koanf:"enabled"`
	Addr    string `koanf:"addr"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
