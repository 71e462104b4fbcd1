package address

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// DefaultHost is used when only the port is given, making the server listen on all the
// interfaces.
const DefaultHost = "0.0.0.0"

var ErrNoPort = errors.New("no port given")

type Address struct {
	Host string
	Port uint16
}

// Parse parses the address of form [host]:port.
func Parse(addr string) (Address, error) {
	if strings.LastIndexByte(addr, ':') == -1 {
		return Address{}, ErrNoPort
	}

	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return Address{}, err
	}

	if len(port) == 0 {
		return Address{}, ErrNoPort
	}

	portNum, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return Address{}, fmt.Errorf("invalid port: %s", port)
	}

	if len(host) == 0 {
		host = DefaultHost
	}

	return Address{
		Host: host,
		Port: uint16(portNum),
	}, nil
}

func (a Address) String() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(int(a.Port)))
}
