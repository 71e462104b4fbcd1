package config

import (
	"time"
)

type (
	Headers struct {
		// MaxCount is the maximal number of header lines a single request may carry.
		MaxCount int
		// Prealloc is the initial capacity of both request and response header storages.
		Prealloc int
	}

	Params struct {
		// Prealloc is the initial capacity of the request params storage.
		Prealloc int
	}

	Body struct {
		// MaxExchangeSize limits the amount of bytes a single exchange may occupy, including
		// the request line and headers. Exceeding it results in 413 Payload Too Large.
		MaxExchangeSize int
	}

	NET struct {
		// ReadBufferSize is a size of buffer in bytes which will be used to read from
		// socket
		ReadBufferSize int
		// ReadTimeout controls the maximal lifetime of IDLE connections. If no data was
		// received in this period of time, it'll be closed. Zero disables the timeout.
		ReadTimeout time.Duration
		// AcceptLoopInterruptPeriod controls how often will the Accept() call be interrupted
		// in order to check whether it's time to stop. Defaults to 1 second.
		AcceptLoopInterruptPeriod time.Duration
		// MaxConnections limits the number of simultaneously served connections. Sockets
		// accepted above the limit are closed right away.
		MaxConnections int
		// WriteBufferSize is the initial capacity of the buffer responses are rendered into.
		WriteBufferSize int
	}

	Static struct {
		// Root is the directory containing the static/ folder. Empty means the current
		// working directory.
		Root string `test:"nullable"`
	}
)

// Config holds settings used across various parts of the server, mainly restrictions, limitations
// and pre-allocations.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	Headers Headers
	Params  Params
	Body    Body
	NET     NET
	Static  Static
}

// Default returns default config. Those are initially well-balanced, however maximal defaults
// are pretty permitting.
func Default() *Config {
	return &Config{
		Headers: Headers{
			MaxCount: 100,
			Prealloc: 10,
		},
		Params: Params{
			Prealloc: 5,
		},
		Body: Body{
			MaxExchangeSize: 1024 * 1024, // 1 megabyte
		},
		NET: NET{
			ReadBufferSize:            2000,
			ReadTimeout:               90 * time.Second,
			AcceptLoopInterruptPeriod: 1 * time.Second,
			MaxConnections:            1024,
			WriteBufferSize:           2 * 1024,
		},
	}
}
