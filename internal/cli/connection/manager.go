package connection

import (
	"context"
	"errors"

	"github.com/yndnr/rodent-go/pkg/resp"
)

// ErrNotConnected is returned by Manager.Do when no connection is open.
var ErrNotConnected = errors.New("not connected")

// Manager owns the CLI's current connection.
type Manager struct {
	opts    Options
	current *Client
}

// NewManager creates a Manager that dials with opts.
func NewManager(opts Options) *Manager {
	return &Manager{opts: opts}
}

// Connect dials addr and makes it the current connection. The previous
// connection is closed only after the new one succeeds.
func (m *Manager) Connect(ctx context.Context, addr string) error {
	c, err := Dial(ctx, addr, m.opts)
	if err != nil {
		return err
	}
	m.Disconnect()
	m.current = c
	return nil
}

// Disconnect closes the current connection, if any.
func (m *Manager) Disconnect() {
	if m.current != nil {
		_ = m.current.Close()
		m.current = nil
	}
}

// Current returns the current connection or nil.
func (m *Manager) Current() *Client {
	return m.current
}

// IsConnected returns true if a connection is open.
func (m *Manager) IsConnected() bool {
	return m.current != nil
}

// Peer returns the remote address of the current connection, or "".
func (m *Manager) Peer() string {
	if m.current == nil {
		return ""
	}
	return m.current.RemoteAddr()
}

// Do runs args on the current connection. If the server has closed the
// connection, the manager drops it so the next call reports ErrNotConnected.
func (m *Manager) Do(args ...string) (resp.Value, error) {
	if m.current == nil {
		return resp.NullValue(), ErrNotConnected
	}
	v, err := m.current.Do(args...)
	if errors.Is(err, ErrClosed) {
		m.Disconnect()
	}
	return v, err
}
