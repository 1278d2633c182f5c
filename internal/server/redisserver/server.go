package redisserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/yndnr/rodent-go/internal/core/command"
	"github.com/yndnr/rodent-go/internal/core/domain"
	"github.com/yndnr/rodent-go/internal/telemetry/logger"
	"github.com/yndnr/rodent-go/internal/telemetry/metric"
	"github.com/yndnr/rodent-go/pkg/resp"
)

// Executor runs a validated command and returns its reply.
// *memory.Store is the production implementation.
type Executor interface {
	Execute(cmd *domain.Command) resp.Value
}

// ErrNotListening is returned by Serve when Listen has not been called.
var ErrNotListening = errors.New("redisserver: not listening")

// Server accepts RESP clients and runs their commands against one Executor.
type Server struct {
	cfg      *Config
	store    Executor
	metrics  *metric.Registry
	logger   logger.Logger
	limiters *limiterSet

	ln      net.Listener
	running atomic.Bool
	wg      sync.WaitGroup

	connsMu sync.Mutex
	conns   map[*Conn]struct{}
}

// New creates a server. A nil cfg selects DefaultConfig, a nil metrics
// registry disables metrics and a nil log selects logger.Default.
func New(cfg *Config, store Executor, metrics *metric.Registry, log logger.Logger) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if log == nil {
		log = logger.Default()
	}
	return &Server{
		cfg:      cfg,
		store:    store,
		metrics:  metrics,
		logger:   log.With("component", "redisserver"),
		limiters: newLimiterSet(cfg.RateLimit),
		conns:    make(map[*Conn]struct{}),
	}
}

// Listen binds the configured address.
func (s *Server) Listen(ctx context.Context) error {
	keepAlive := s.cfg.KeepAlive
	if keepAlive <= 0 {
		keepAlive = -1
	}
	lc := net.ListenConfig{KeepAlive: keepAlive}

	ln, err := lc.Listen(ctx, "tcp", s.cfg.Address)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Address, err)
	}
	s.ln = ln
	s.logger.Info("listening", "address", ln.Addr().String())
	return nil
}

// Addr returns the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// ListenAndServe combines Listen and Serve.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if err := s.Listen(ctx); err != nil {
		return err
	}
	return s.Serve(ctx)
}

// Serve runs the accept loop until ctx is cancelled, Shutdown is called or
// Accept fails. Only the last case returns a non-nil error.
func (s *Server) Serve(ctx context.Context) error {
	if s.ln == nil {
		return ErrNotListening
	}
	s.running.Store(true)

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			s.running.Store(false)
			_ = s.ln.Close()
		case <-stop:
		}
	}()

	if s.limiters != nil {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.pruneLoop(stop)
		}()
	}

	for {
		c, err := s.ln.Accept()
		if err != nil {
			if !s.running.Load() || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}

		conn := newConn(c, s.cfg.MaxLineBytes)
		s.track(conn)
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer s.untrack(conn)
			s.serveConn(ctx, conn)
		}()
	}
}

// Shutdown stops accepting, closes live connections and waits for their
// goroutines or for ctx to expire.
func (s *Server) Shutdown(ctx context.Context) error {
	s.running.Store(false)

	var firstErr error
	if s.ln != nil {
		if err := s.ln.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			firstErr = err
		}
	}

	s.connsMu.Lock()
	for c := range s.conns {
		_ = c.Close()
	}
	s.connsMu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return firstErr
}

// ConnCount returns the number of live connections.
func (s *Server) ConnCount() int {
	s.connsMu.Lock()
	defer s.connsMu.Unlock()
	return len(s.conns)
}

func (s *Server) track(c *Conn) {
	s.connsMu.Lock()
	s.conns[c] = struct{}{}
	s.connsMu.Unlock()
	s.metrics.ConnOpened()
}

func (s *Server) untrack(c *Conn) {
	_ = c.Close()
	s.connsMu.Lock()
	delete(s.conns, c)
	s.connsMu.Unlock()
	s.metrics.ConnClosed()
}

func (s *Server) pruneLoop(stop <-chan struct{}) {
	ticker := time.NewTicker(limiterIdle / 2)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			if n := s.limiters.prune(now.Add(-limiterIdle)); n > 0 {
				s.logger.Debug("pruned idle rate limiters", "count", n)
			}
		}
	}
}

func (s *Server) serveConn(ctx context.Context, c *Conn) {
	ctx = logger.WithConnID(logger.WithLogger(ctx, s.logger), c.ID())
	log := logger.L(ctx)
	log.Debug("connection opened", "remote", c.RemoteAddr().String())

	for {
		req, err := c.reader.Parse()
		if err != nil {
			s.readFailed(c, log, err)
			return
		}

		if err := c.reply(s.handle(c, req)); err != nil {
			log.Debug("write failed", "error", err)
			return
		}
	}
}

func (s *Server) readFailed(c *Conn, log logger.Logger, err error) {
	switch {
	case errors.Is(err, resp.ErrLineTooLong):
		s.metrics.Rejected("line_too_long")
		log.Warn("protocol line too long", "remote", c.RemoteAddr().String(), "limit", s.cfg.MaxLineBytes)
		_ = c.reply(resp.ErrorValue(domain.ErrProtocol.Error()))
	case errors.Is(err, io.EOF), errors.Is(err, net.ErrClosed):
		log.Debug("connection closed")
	default:
		log.Debug("connection read error", "error", err)
	}
}

// handle turns one parsed request into the reply to send.
func (s *Server) handle(c *Conn, req resp.Value) resp.Value {
	cmd, err := command.Validate(req)
	if err != nil {
		s.metrics.Rejected(domain.ErrorCode(err))
		return resp.ErrorValue(err.Error())
	}

	if !s.limiters.allow(c.ip, time.Now()) {
		s.metrics.Rejected(domain.CodeRateLimited)
		return resp.ErrorValue(domain.ErrRateLimited.Error())
	}

	start := time.Now()
	reply := s.store.Execute(cmd)
	s.metrics.ObserveCommand(cmd.Name, reply.Kind.String(), time.Since(start))
	return reply
}
