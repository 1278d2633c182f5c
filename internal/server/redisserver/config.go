package redisserver

import "time"

// Config holds the RESP listener configuration.
type Config struct {
	// Address is the host:port to listen on.
	Address string
	// KeepAlive is the TCP keep-alive period of accepted connections.
	// Zero or negative disables keep-alive probes.
	KeepAlive time.Duration
	// RateLimit is the number of commands per second allowed per client IP,
	// with an equal burst. Zero disables rate limiting.
	RateLimit int
	// MaxLineBytes caps a single protocol line. Zero means unlimited.
	MaxLineBytes int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Address:      "127.0.0.1:6380",
		KeepAlive:    300 * time.Second,
		RateLimit:    0,
		MaxLineBytes: 64 << 20,
	}
}
