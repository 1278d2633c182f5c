package confloader

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

type testConfig struct {
	Server struct {
		Host      string        `koanf:"host"`
		Port      int           `koanf:"port"`
		RateLimit int           `koanf:"rate_limit"`
		KeepAlive time.Duration `koanf:"keepalive"`
	} `koanf:"server"`
	Log struct {
		Level string `koanf:"level"`
	} `koanf:"log"`
}

func defaults() *testConfig {
	cfg := &testConfig{}
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 6380
	cfg.Server.KeepAlive = 300 * time.Second
	cfg.Log.Level = "info"
	return cfg
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rodent.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestNewLoader_WithOptions(t *testing.T) {
	l := NewLoader()
	if l.envPrefix != DefaultEnvPrefix {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, DefaultEnvPrefix)
	}

	l = NewLoader(WithEnvPrefix("TEST_"), WithConfigFile("/etc/rodent.yaml"))
	if l.envPrefix != "TEST_" || l.filePath != "/etc/rodent.yaml" {
		t.Errorf("options not applied: %+v", l)
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"RODENT_SERVER_PORT", "server.port"},
		{"RODENT_SERVER_RATE_LIMIT", "server.rate_limit"},
		{"RODENT_SERVER_MAX_LINE_BYTES", "server.max_line_bytes"},
		{"RODENT_LOG_LEVEL", "log.level"},
		{"RODENT_ADMIN_ENABLED", "admin.enabled"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := envKey("RODENT_", tt.in); got != tt.want {
				t.Errorf("envKey(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLoader_LoadFile(t *testing.T) {
	path := writeConfig(t, `
server:
  host: 0.0.0.0
  port: 7000
  keepalive: 60s
`)
	cfg := defaults()
	if err := NewLoader(WithConfigFile(path), WithEnvPrefix("RODENT_TEST_FILE_")).Load(cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Host != "0.0.0.0" || cfg.Server.Port != 7000 {
		t.Errorf("server = %s:%d", cfg.Server.Host, cfg.Server.Port)
	}
	if cfg.Server.KeepAlive != time.Minute {
		t.Errorf("KeepAlive = %v, want 1m", cfg.Server.KeepAlive)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("absent key should keep its default, Log.Level = %q", cfg.Log.Level)
	}
}

func TestLoader_LoadFile_NotFound(t *testing.T) {
	l := NewLoader(WithConfigFile("/nonexistent/rodent.yaml"))
	if err := l.Load(defaults()); err == nil {
		t.Error("Load() should fail for a missing file")
	}
}

func TestLoader_LoadFile_Invalid(t *testing.T) {
	path := writeConfig(t, "server: [unclosed")
	if err := NewLoader(WithConfigFile(path)).Load(defaults()); err == nil {
		t.Error("Load() should fail for malformed YAML")
	}
}

func TestLoader_LoadEnv(t *testing.T) {
	t.Setenv("RODENT_SERVER_PORT", "7100")
	t.Setenv("RODENT_SERVER_RATE_LIMIT", "25")
	t.Setenv("RODENT_LOG_LEVEL", "debug")

	cfg := defaults()
	if err := NewLoader().Load(cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 7100 {
		t.Errorf("Port = %d, want 7100", cfg.Server.Port)
	}
	if cfg.Server.RateLimit != 25 {
		t.Errorf("RateLimit = %d, want 25", cfg.Server.RateLimit)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoader_Priority(t *testing.T) {
	path := writeConfig(t, `
server:
  host: file-host
  port: 7000
  rate_limit: 5
`)
	t.Setenv("RODENT_SERVER_PORT", "7200")
	t.Setenv("RODENT_SERVER_RATE_LIMIT", "10")

	cfg := defaults()
	l := NewLoader(
		WithConfigFile(path),
		WithFlags(map[string]any{"server.rate_limit": 99}),
	)
	if err := l.Load(cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Host != "file-host" {
		t.Errorf("Host = %q, want file value", cfg.Server.Host)
	}
	if cfg.Server.Port != 7200 {
		t.Errorf("Port = %d, env should override file", cfg.Server.Port)
	}
	if cfg.Server.RateLimit != 99 {
		t.Errorf("RateLimit = %d, flags should override env", cfg.Server.RateLimit)
	}
}

func TestLoader_LoadMap(t *testing.T) {
	l := NewLoader(WithEnvPrefix("RODENT_TEST_MAP_"))
	if err := l.LoadMap(map[string]any{"server.host": "10.0.0.1", "log.level": "warn"}); err != nil {
		t.Fatalf("LoadMap: %v", err)
	}

	if got := l.String("server.host"); got != "10.0.0.1" {
		t.Errorf("server.host = %q", got)
	}
	cfg := defaults()
	if err := l.Unmarshal(cfg); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
	if len(l.Keys()) != 2 {
		t.Errorf("Keys() = %v", l.Keys())
	}
}

func TestMapProvider_ReadBytes(t *testing.T) {
	if _, err := (mapProvider{}).ReadBytes(); err != ErrReadBytesNotSupported {
		t.Errorf("ReadBytes() error = %v", err)
	}
}
