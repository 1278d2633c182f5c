package connection

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	tresp "github.com/tidwall/resp"

	"github.com/yndnr/rodent-go/pkg/resp"
)

// DefaultKeepAlive is the TCP keep-alive period of client connections.
const DefaultKeepAlive = 15 * time.Second

// ErrClosed is returned when the server closed the connection before a
// full reply arrived.
var ErrClosed = errors.New("connection closed by server")

// Options configures Dial.
type Options struct {
	// DialTimeout bounds connection establishment. Zero means no timeout.
	DialTimeout time.Duration

	// KeepAlive is the TCP keep-alive period. Zero selects DefaultKeepAlive;
	// a negative value disables keep-alive.
	KeepAlive time.Duration
}

// Client is a single connection to a rodent server. It is not safe for
// concurrent use.
type Client struct {
	conn net.Conn
	bw   *bufio.Writer
	w    *tresp.Writer
	r    *resp.Reader
}

// Dial connects to addr.
func Dial(ctx context.Context, addr string, opts Options) (*Client, error) {
	keepAlive := opts.KeepAlive
	if keepAlive == 0 {
		keepAlive = DefaultKeepAlive
	}

	d := net.Dialer{Timeout: opts.DialTimeout, KeepAlive: keepAlive}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", addr, err)
	}
	return newClient(conn), nil
}

func newClient(conn net.Conn) *Client {
	bw := bufio.NewWriter(conn)
	return &Client{
		conn: conn,
		bw:   bw,
		w:    tresp.NewWriter(bw),
		r:    resp.NewReader(conn, resp.ReaderOptions{}),
	}
}

// Do sends args as one multi-bulk request and waits for the reply.
// An Error reply from the server is returned as a value, not as err.
func (c *Client) Do(args ...string) (resp.Value, error) {
	if len(args) == 0 {
		return resp.NullValue(), errors.New("empty command")
	}

	rest := make([]interface{}, len(args)-1)
	for i, a := range args[1:] {
		rest[i] = a
	}
	if err := c.w.WriteMultiBulk(args[0], rest...); err != nil {
		return resp.NullValue(), fmt.Errorf("send: %w", err)
	}
	if err := c.bw.Flush(); err != nil {
		return resp.NullValue(), fmt.Errorf("send: %w", err)
	}

	v, err := c.r.Parse()
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return resp.NullValue(), ErrClosed
	}
	if err != nil {
		return resp.NullValue(), fmt.Errorf("receive: %w", err)
	}
	return v, nil
}

// RemoteAddr returns the server address as seen by the socket.
func (c *Client) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}

// Close closes the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
