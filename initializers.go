package minihttp

import (
	"net"

	"github.com/minihttp/minihttp/config"
	"github.com/minihttp/minihttp/http"
	"github.com/minihttp/minihttp/kv"
	"github.com/minihttp/minihttp/transport"
)

func newClient(cfg config.NET, conn net.Conn) transport.Client {
	readBuff := make([]byte, cfg.ReadBufferSize)

	return transport.NewClient(conn, cfg.ReadTimeout, readBuff)
}

func newRequest(cfg *config.Config) *http.Request {
	return http.NewRequest(
		kv.NewPrealloc(cfg.Headers.Prealloc, true),
		kv.NewPrealloc(cfg.Params.Prealloc, false),
	)
}

func newResponse(cfg *config.Config) *http.Response {
	return http.NewResponse(kv.NewPrealloc(cfg.Headers.Prealloc, true))
}
