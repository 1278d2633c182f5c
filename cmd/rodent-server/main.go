package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/rodent-go/internal/infra/buildinfo"
	"github.com/yndnr/rodent-go/internal/infra/confloader"
	"github.com/yndnr/rodent-go/internal/infra/shutdown"
	"github.com/yndnr/rodent-go/internal/server/config"
	"github.com/yndnr/rodent-go/internal/server/httpserver"
	"github.com/yndnr/rodent-go/internal/server/redisserver"
	"github.com/yndnr/rodent-go/internal/storage/memory"
	"github.com/yndnr/rodent-go/internal/telemetry/logger"
	"github.com/yndnr/rodent-go/internal/telemetry/metric"
)

const shutdownTimeout = 30 * time.Second

func main() {
	app := &cli.App{
		Name:    "rodent-server",
		Usage:   "in-memory key-value server speaking a Redis protocol subset",
		Version: buildinfo.String(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to configuration file",
			},
			&cli.StringFlag{
				Name:  "host",
				Usage: "listen host",
				Value: config.DefaultHost,
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "listen port",
				Value: config.DefaultPort,
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// flagOverrides returns the flags that were set explicitly, keyed by
// config path, so they take priority over env and file values.
func flagOverrides(c *cli.Context) map[string]any {
	values := make(map[string]any)
	if c.IsSet("host") {
		values["server.host"] = c.String("host")
	}
	if c.IsSet("port") {
		values["server.port"] = c.Int("port")
	}
	return values
}

func run(c *cli.Context) error {
	configFile := c.String("config")
	flags := flagOverrides(c)

	cfg, err := loadConfig(configFile, flags)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.ToLoggerConfig())
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger.SetDefault(log)

	info := buildinfo.Get()
	log.Info("starting rodent-server",
		"version", info.Version,
		"commit", info.Commit,
		"config", configFile)

	store := memory.New()
	metrics := metric.NewRegistry(metric.BuildInfo{
		Version:   info.Version,
		Commit:    info.Commit,
		GoVersion: info.GoVersion,
	})
	metrics.MustRegister(metric.NewKeyspaceCollector(store))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := redisserver.New(cfg.ToRedisConfig(), store, metrics, log)
	if err := srv.Listen(ctx); err != nil {
		return err
	}

	h := shutdown.NewHandler(shutdownTimeout)

	go func() {
		if err := srv.Serve(ctx); err != nil {
			log.Error("redis server error", "error", err)
			h.Fail(err)
		}
	}()
	h.OnShutdown(func(ctx context.Context) error {
		log.Info("shutting down redis server", "connections", srv.ConnCount())
		return srv.Shutdown(ctx)
	})

	if cfg.Admin.Enabled {
		if err := startAdmin(cfg, h, store, metrics, log); err != nil {
			return err
		}
	}

	if configFile != "" {
		if err := watchConfig(configFile, flags, h, log); err != nil {
			log.Warn("config hot reload disabled", "error", err)
		}
	}

	log.Info("server started, press Ctrl+C to stop")
	if err := h.Wait(); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

// loadConfig layers file, environment and flags over the defaults.
func loadConfig(configFile string, flags map[string]any) (*config.ServerConfig, error) {
	cfg := config.Default()

	opts := []confloader.Option{confloader.WithFlags(flags)}
	if configFile != "" {
		opts = append(opts, confloader.WithConfigFile(configFile))
	}

	if err := confloader.NewLoader(opts...).Load(cfg); err != nil {
		return nil, err
	}
	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func startAdmin(cfg *config.ServerConfig, h *shutdown.Handler, store *memory.Store, metrics *metric.Registry, log logger.Logger) error {
	ln, err := net.Listen("tcp", cfg.Admin.Addr)
	if err != nil {
		return fmt.Errorf("admin listen %s: %w", cfg.Admin.Addr, err)
	}

	admin := httpserver.New(cfg.Admin.Addr, httpserver.NewRouter(&httpserver.RouterConfig{
		Metrics: metrics,
		Store:   store,
		Logger:  log,
		Version: buildinfo.Get().Version,
	}))

	go func() {
		log.Info("admin server listening", "addr", ln.Addr().String())
		if err := admin.Serve(ln); err != nil {
			log.Error("admin server error", "error", err)
			h.Fail(err)
		}
	}()
	h.OnShutdown(func(ctx context.Context) error {
		log.Info("shutting down admin server")
		return admin.Shutdown(ctx)
	})
	return nil
}

// watchConfig reloads the config file on change and applies a new log level.
// Listener settings need a restart.
func watchConfig(configFile string, flags map[string]any, h *shutdown.Handler, log logger.Logger) error {
	w, err := confloader.NewWatcher(confloader.WithWatcherLogger(log))
	if err != nil {
		return err
	}
	if err := w.Watch(configFile); err != nil {
		_ = w.Stop()
		return err
	}

	w.OnChange(func(path string) {
		next, err := loadConfig(configFile, flags)
		if err != nil {
			log.Warn("config reload failed", "path", path, "error", err)
			return
		}
		if next.Log.Level != logger.GetLevel() {
			logger.SetLevel(next.Log.Level)
			log.Info("log level changed", "level", next.Log.Level)
		}
	})
	w.StartAsync()

	h.OnShutdown(func(context.Context) error {
		return w.Stop()
	})
	return nil
}
