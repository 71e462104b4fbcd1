package dummy

import (
	"io"
	"net"

	"github.com/minihttp/minihttp/transport"
)

var _ transport.Client = new(Client)

// Client returns the chunks it was initialised with one by one, and io.EOF afterwards,
// unless set to loop. It also tracks all the written data, making it thereby a universal
// mock suitable for most of the tests.
type Client struct {
	closed     bool
	loop       bool
	journaling bool
	pointer    int
	written    []byte
	data       [][]byte
	writeErr   error
	remote     net.Addr
}

func NewMockClient(data ...[]byte) *Client {
	return &Client{
		data:       data,
		journaling: true,
		remote:     &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 12345},
	}
}

func (c *Client) Read() (data []byte, err error) {
	if c.closed {
		return nil, io.EOF
	}

	if c.pointer >= len(c.data) {
		if !c.loop || len(c.data) == 0 {
			c.closed = true
			return nil, io.EOF
		}

		c.pointer = 0
	}

	piece := c.data[c.pointer]
	c.pointer++

	return piece, nil
}

func (c *Client) Write(p []byte) (int, error) {
	if c.writeErr != nil {
		return 0, c.writeErr
	}

	if c.journaling {
		c.written = append(c.written, p...)
	}

	return len(p), nil
}

func (c *Client) Remote() net.Addr {
	return c.remote
}

func (c *Client) Close() error {
	c.closed = true
	return nil
}

func (c *Client) Closed() bool {
	return c.closed
}

// LoopReads makes the client start over once all the chunks are read.
func (c *Client) LoopReads() *Client {
	c.loop = true
	return c
}

// FailWrites makes every write fail with the error.
func (c *Client) FailWrites(err error) *Client {
	c.writeErr = err
	return c
}

func (c *Client) Journaling(flag bool) *Client {
	c.journaling = flag
	return c
}

func (c *Client) Written() string {
	if !c.journaling {
		panic("mock client: cannot access written data: journaling is disabled!")
	}

	return string(c.written)
}
