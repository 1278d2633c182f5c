package httpserver

import (
	"net/http"
	"time"

	"github.com/yndnr/rodent-go/internal/telemetry/logger"
	"github.com/yndnr/rodent-go/internal/telemetry/metric"
)

// KeyCounter reports the number of keys in the store.
type KeyCounter interface {
	Len() int
}

// RouterConfig holds the dependencies of the admin routes.
type RouterConfig struct {
	Metrics *metric.Registry
	Store   KeyCounter
	Logger  logger.Logger
	Version string
}

// NewRouter builds the admin mux with RequestID and Recover applied to every route.
func NewRouter(cfg *RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", cfg.Metrics.Handler())
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "healthy",
			"version": cfg.Version,
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})
	mux.HandleFunc("GET /ready", func(w http.ResponseWriter, _ *http.Request) {
		if cfg.Store == nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"status": "ready",
			"keys":   cfg.Store.Len(),
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	return Chain(mux, Recover(log), RequestID())
}
