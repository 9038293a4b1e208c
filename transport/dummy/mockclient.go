package dummy

import (
	"io"
	"net"

	"github.com/indigo-web/snip/transport"
)

var _ transport.Client = new(Client)

// Client returns the chunks it was initialised with, one per read, and io.EOF afterward
// unless set to loop. It also tracks all the written data, making it thereby a universal mock
// suitable for most of the tests.
type Client struct {
	closed  bool
	loop    bool
	pointer int
	tmp     []byte
	written []byte
	data    [][]byte
	readErr error
}

func NewMockClient(data ...[]byte) *Client {
	return &Client{
		data:    data,
		pointer: 0,
		readErr: io.EOF,
	}
}

func (c *Client) Read() (data []byte, err error) {
	if c.closed {
		return nil, io.EOF
	}

	if len(c.tmp) > 0 {
		data, c.tmp = c.tmp, nil

		return data, nil
	}

	if c.pointer >= len(c.data) {
		if !c.loop || len(c.data) == 0 {
			return nil, c.readErr
		}

		c.pointer = 0
	}

	piece := c.data[c.pointer]
	c.pointer++

	return piece, nil
}

func (c *Client) Pushback(takeback []byte) {
	c.tmp = takeback
}

func (c *Client) Write(p []byte) (int, error) {
	c.written = append(c.written, p...)

	return len(p), nil
}

func (*Client) Remote() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 1337}
}

func (c *Client) Close() error {
	c.closed = true
	return nil
}

func (c *Client) Closed() bool {
	return c.closed
}

// LoopReads starts returning the data from the beginning instead of io.EOF.
func (c *Client) LoopReads() *Client {
	c.loop = true
	return c
}

// FailWith replaces io.EOF returned once the data is exhausted.
func (c *Client) FailWith(err error) *Client {
	c.readErr = err
	return c
}

// Written returns everything written so far.
func (c *Client) Written() string {
	return string(c.written)
}
