package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/yndnr/rodent-go/internal/server/redisserver"
	"github.com/yndnr/rodent-go/internal/telemetry/logger"
)

// Verify validates the configuration.
func Verify(cfg *ServerConfig) error {
	if err := verifyServer(&cfg.Server); err != nil {
		return err
	}
	if err := verifyAdmin(&cfg.Admin); err != nil {
		return err
	}
	return verifyLog(&cfg.Log)
}

func verifyServer(cfg *ServerSection) error {
	if cfg.Host == "" {
		return errors.New("server.host is required")
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return fmt.Errorf("server.port %d out of range 0-65535", cfg.Port)
	}
	if cfg.KeepAlive < 0 {
		return errors.New("server.keepalive must not be negative")
	}
	if cfg.RateLimit < 0 {
		return errors.New("server.rate_limit must not be negative")
	}
	if cfg.MaxLineBytes < 0 {
		return errors.New("server.max_line_bytes must not be negative")
	}
	return nil
}

func verifyAdmin(cfg *AdminSection) error {
	if !cfg.Enabled {
		return nil
	}
	if cfg.Addr == "" {
		return errors.New("admin.addr is required when admin is enabled")
	}
	if _, _, err := net.SplitHostPort(cfg.Addr); err != nil {
		return fmt.Errorf("admin.addr %q: %w", cfg.Addr, err)
	}
	return nil
}

func verifyLog(cfg *LogSection) error {
	if !logger.ValidLevel(cfg.Level) {
		return fmt.Errorf("log.level %q: want debug, info, warn or error", cfg.Level)
	}
	if !logger.ValidFormat(cfg.Format) {
		return fmt.Errorf("log.format %q: want json or text", cfg.Format)
	}
	return nil
}

// Address joins server.host and server.port.
func (c *ServerConfig) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// ToRedisConfig maps the server section onto the listener configuration.
func (c *ServerConfig) ToRedisConfig() *redisserver.Config {
	return &redisserver.Config{
		Address:      c.Address(),
		KeepAlive:    c.Server.KeepAlive,
		RateLimit:    c.Server.RateLimit,
		MaxLineBytes: c.Server.MaxLineBytes,
	}
}

// ToLoggerConfig maps the log section onto the logger configuration.
func (c *ServerConfig) ToLoggerConfig() logger.Config {
	lc := logger.DefaultConfig()
	lc.Level = c.Log.Level
	lc.Format = c.Log.Format
	return lc
}
