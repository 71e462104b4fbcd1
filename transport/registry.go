package transport

import (
	"context"
	"errors"
	"net"
	"sync"

	"github.com/dchest/uniuri"
	"github.com/minihttp/minihttp/http"
)

var ErrRegistryFull = errors.New("too many connections")

// Conn is a live connection along with the request and response objects bound to it
// for its whole lifetime.
type Conn struct {
	ID string
	net.Conn
	Request  *http.Request
	Response *http.Response
	cancel   context.CancelFunc
}

// NewConn assigns the connection a random identifier. Cancel stops the worker serving
// the connection and may be nil.
func NewConn(conn net.Conn, request *http.Request, response *http.Response, cancel context.CancelFunc) *Conn {
	id := uniuri.New()
	request.ConnID = id
	request.Remote = conn.RemoteAddr()

	return &Conn{
		ID:       id,
		Conn:     conn,
		Request:  request,
		Response: response,
		cancel:   cancel,
	}
}

// Registry tracks live connections. It's safe for concurrent use, as every connection
// registers and unregisters itself from its own goroutine.
type Registry struct {
	mu     sync.Mutex
	conns  map[string]*Conn
	max    int
	closed bool
}

// NewRegistry returns a registry holding at most max connections. Non-positive max
// means no limit.
func NewRegistry(max int) *Registry {
	return &Registry{
		conns: make(map[string]*Conn),
		max:   max,
	}
}

// Add registers the connection, unless the registry is full or already closed.
func (r *Registry) Add(conn *Conn) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return net.ErrClosed
	}

	if r.max > 0 && len(r.conns) >= r.max {
		return ErrRegistryFull
	}

	r.conns[conn.ID] = conn
	return nil
}

// Remove unregisters the connection and releases its request and response. Removing
// an unknown id is no-op.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	conn, found := r.conns[id]
	delete(r.conns, id)
	r.mu.Unlock()

	if !found {
		return
	}

	conn.Request.Reset()
	conn.Response.Reset()
}

// Get returns the connection by its id.
func (r *Registry) Get(id string) (*Conn, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	conn, found := r.conns[id]
	return conn, found
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.conns)
}

// Range calls cb for every connection, until it returns false. The registry is locked
// for the whole iteration, so cb must not call other registry methods.
func (r *Registry) Range(cb func(conn *Conn) bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, conn := range r.conns {
		if !cb(conn) {
			return
		}
	}
}

// CloseAll cancels every worker and closes every socket, which unblocks pending reads.
// No connections are accepted afterwards.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true

	for _, conn := range r.conns {
		if conn.cancel != nil {
			conn.cancel()
		}

		_ = conn.Close()
	}
}
