package redisserver

import (
	"bufio"
	"net"
	"sync/atomic"

	"github.com/oklog/ulid/v2"

	"github.com/yndnr/rodent-go/pkg/resp"
)

// Conn is one client connection.
type Conn struct {
	id      string
	ip      string
	netConn net.Conn
	reader  *resp.Reader
	bw      *bufio.Writer

	closed atomic.Bool
}

func newConn(c net.Conn, maxLine int) *Conn {
	return &Conn{
		id:      ulid.Make().String(),
		ip:      clientIP(c.RemoteAddr()),
		netConn: c,
		reader:  resp.NewReader(c, resp.ReaderOptions{MaxLineBytes: maxLine}),
		bw:      bufio.NewWriter(c),
	}
}

// ID returns the connection's ULID.
func (c *Conn) ID() string { return c.id }

// RemoteAddr returns the peer address.
func (c *Conn) RemoteAddr() net.Addr { return c.netConn.RemoteAddr() }

// Close closes the connection once; later calls are no-ops.
func (c *Conn) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	return c.netConn.Close()
}

func (c *Conn) reply(v resp.Value) error {
	if err := resp.Write(c.bw, v); err != nil {
		return err
	}
	return c.bw.Flush()
}

// clientIP strips the port from a peer address.
func clientIP(addr net.Addr) string {
	if addr == nil {
		return ""
	}
	if tcp, ok := addr.(*net.TCPAddr); ok {
		return tcp.IP.String()
	}
	host, _, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}
	return host
}
