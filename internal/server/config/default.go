package config

import "time"

// Default configuration values.
const (
	DefaultHost         = "127.0.0.1"
	DefaultPort         = 6380
	DefaultKeepAlive    = 300 * time.Second
	DefaultMaxLineBytes = 64 << 20

	DefaultAdminAddr = "127.0.0.1:9380"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Default returns the default server configuration.
func Default() *ServerConfig {
	return &ServerConfig{
		Server: ServerSection{
			Host:         DefaultHost,
			Port:         DefaultPort,
			KeepAlive:    DefaultKeepAlive,
			MaxLineBytes: DefaultMaxLineBytes,
		},
		Admin: AdminSection{
			Enabled: false,
			Addr:    DefaultAdminAddr,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
