package dummy

import (
	"io"
	"net"
)

// NopClient discards everything written and reports io.EOF on read.
type NopClient struct{}

func NewNopClient() NopClient {
	return NopClient{}
}

func (n NopClient) Read() ([]byte, error) {
	return nil, io.EOF
}

func (n NopClient) Write(b []byte) (int, error) {
	return len(b), nil
}

func (n NopClient) Remote() net.Addr {
	return nil
}

func (n NopClient) Close() error {
	return nil
}
