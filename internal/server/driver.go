package server

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/minihttp/minihttp/config"
	"github.com/minihttp/minihttp/http"
	"github.com/minihttp/minihttp/http/status"
	"github.com/minihttp/minihttp/internal/buffer"
	"github.com/minihttp/minihttp/internal/protocol/http1"
	"github.com/rs/zerolog"
)

// Resolver looks up the handler for the request.
type Resolver interface {
	Resolve(method, path string) http.Handler
}

// Driver advances a single connection through a request-response exchange. It's fed
// by raw chunks in the order they were received and writes responses back as soon as
// an exchange is complete. Exactly one response is written per exchange, be it the
// handler's or an error one.
type Driver struct {
	state      state
	bodyLength int

	buff       *buffer.Buffer
	parser     *http1.Parser
	serializer *http1.Serializer
	router     Resolver
	request    *http.Request
	response   *http.Response
	w          io.Writer
	log        zerolog.Logger
}

func NewDriver(
	cfg *config.Config,
	router Resolver,
	request *http.Request,
	response *http.Response,
	w io.Writer,
	log zerolog.Logger,
) *Driver {
	return &Driver{
		state:      eAwaitLine,
		buff:       buffer.New(cfg.NET.ReadBufferSize, cfg.Body.MaxExchangeSize),
		parser:     http1.NewParser(cfg),
		serializer: http1.NewSerializer(make([]byte, 0, cfg.NET.WriteBufferSize)),
		router:     router,
		request:    request,
		response:   response,
		w:          w,
		log:        log,
	}
}

// Feed appends the chunk to the exchange and processes as much of it as possible. The
// returned error means the connection can't be used anymore, i.e. a response couldn't
// be written.
func (d *Driver) Feed(chunk []byte) error {
	if !d.buff.Append(chunk) {
		return d.fail(status.ErrPayloadTooLarge)
	}

	for {
		switch d.state {
		case eAwaitLine:
			data := d.buff.Preview()
			lf := bytes.IndexByte(data, '\n')
			if lf == -1 {
				return nil
			}

			if err := d.parser.ParseLine(d.request, data[:lf+1]); err != nil {
				return d.fail(err)
			}

			d.buff.Consume(lf + 1)
			d.state = eAwaitHeaders
		case eAwaitHeaders:
			data := d.buff.Preview()
			block, total := headersBlock(data)
			if total == -1 {
				return nil
			}

			if err := d.parser.ParseHeaders(d.request, data[:block]); err != nil {
				return d.fail(err)
			}

			d.buff.Consume(total)

			next, err := d.onHeaders()
			if err != nil {
				return d.fail(err)
			}

			d.state = next
		case eAwaitBody:
			data := d.buff.Preview()
			switch {
			case len(data) < d.bodyLength:
				return nil
			case len(data) > d.bodyLength:
				return d.fail(status.ErrBodyLengthMismatch)
			}

			if err := d.parser.ParseBody(d.request, data); err != nil {
				return d.fail(err)
			}

			d.buff.Consume(len(data))
			d.state = eDispatch
		case eDispatch:
			return d.dispatch()
		default:
			panic(fmt.Sprintf("BUG: unexpected driver state: %s", d.state))
		}
	}
}

func (d *Driver) onHeaders() (state, error) {
	if d.request.Headers.Has("Transfer-Encoding") {
		return eAwaitLine, status.ErrTransferEncoding
	}

	value, found := d.request.Headers.Get("Content-Length")
	if !found {
		return eDispatch, nil
	}

	length, err := strconv.ParseUint(value, 10, 63)
	if err != nil {
		return eAwaitLine, status.ErrBadContentLength
	}

	if length > uint64(d.buff.Free()) {
		return eAwaitLine, status.ErrPayloadTooLarge
	}

	d.bodyLength = int(length)

	return eAwaitBody, nil
}

func (d *Driver) dispatch() error {
	handler := d.router.Resolve(d.request.Method, d.request.Path)
	if handler == nil {
		return d.fail(status.ErrNotFound)
	}

	if err := d.invoke(handler); err != nil {
		d.log.Error().Err(err).
			Str("method", d.request.Method).
			Str("path", d.request.Path).
			Msg("handler panicked")

		return d.fail(status.ErrInternalServerError)
	}

	data, err := d.serializer.Render(d.response)
	if err != nil {
		return d.fail(err)
	}

	d.log.Debug().
		Str("method", d.request.Method).
		Str("path", d.request.Path).
		Uint16("code", uint16(d.response.Code)).
		Msg("exchange completed")

	return d.write(data)
}

func (d *Driver) invoke(handler http.Handler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	handler(d.request, d.response)

	return nil
}

// fail responds with the error's code and resets the exchange. Failures of rendering
// itself are reported as internal errors.
func (d *Driver) fail(err error) error {
	code := status.CodeOf(err)
	d.log.Warn().Err(err).
		Uint16("code", uint16(code)).
		Stringer("state", d.state).
		Msg("responding with error")

	data, rerr := d.serializer.Render(d.response.Error(code))
	if rerr != nil {
		data, rerr = d.serializer.Render(d.response.Error(status.InternalServerError))
		if rerr != nil {
			d.reset()
			return rerr
		}
	}

	return d.write(data)
}

func (d *Driver) write(data []byte) error {
	_, err := d.w.Write(data)
	d.reset()

	return err
}

func (d *Driver) reset() {
	d.request.Reset()
	d.response.Reset()
	d.buff.Clear()
	d.bodyLength = 0
	d.state = eAwaitLine
}

// headersBlock finds the empty line terminating the header block. It returns the length
// of the block without the empty line and the length including it, or -1 if the empty
// line wasn't received yet.
func headersBlock(data []byte) (block, total int) {
	for offset := 0; offset < len(data); {
		lf := bytes.IndexByte(data[offset:], '\n')
		if lf == -1 {
			break
		}

		line := data[offset : offset+lf]
		if len(line) == 0 || (len(line) == 1 && line[0] == '\r') {
			return offset, offset + lf + 1
		}

		offset += lf + 1
	}

	return -1, -1
}
