package http1

import (
	"io"
	"strconv"

	"github.com/minihttp/minihttp/http"
	"github.com/minihttp/minihttp/http/status"
)

const (
	defaultVersion = "1.1"
	defaultCode    = status.OK
)

var (
	ErrNoHeaders     = status.NewError(status.InternalServerError, "response has no headers")
	ErrNoContentType = status.NewError(status.InternalServerError, "response has no Content-Type header")
)

// Validate fills in the defaults and checks the response to be renderable. Content-Length
// is computed from the body, unless set explicitly.
func Validate(response *http.Response) error {
	if response.Headers.Empty() {
		return ErrNoHeaders
	}

	if len(response.Version) == 0 {
		response.Version = defaultVersion
	}

	if response.Code == 0 {
		response.Code = defaultCode
	}

	if !response.Headers.Has("Content-Type") {
		return ErrNoContentType
	}

	if !response.Headers.Has("Content-Length") {
		response.Headers.Add("Content-Length", strconv.Itoa(len(response.Body)))
	}

	return nil
}

// Serialize renders the response into dst. The response must already be validated.
// Codes without a known reason phrase are refused, leaving dst untouched.
func Serialize(dst []byte, response *http.Response) ([]byte, error) {
	reason := status.Text(response.Code)
	if reason == status.Unknown {
		return dst, status.ErrUnknownStatus
	}

	dst = append(dst, "HTTP/"...)
	dst = append(dst, response.Version...)
	dst = append(dst, ' ')
	dst = strconv.AppendUint(dst, uint64(response.Code), 10)
	dst = append(dst, ' ')
	dst = append(dst, reason...)
	dst = crlf(dst)

	for key, value := range response.Headers.Pairs() {
		dst = append(dst, key...)
		dst = append(dst, ": "...)
		dst = append(dst, value...)
		dst = crlf(dst)
	}

	dst = crlf(dst)

	return append(dst, response.Body...), nil
}

// Serializer owns a buffer reused across responses of a single connection.
type Serializer struct {
	buff []byte
}

func NewSerializer(buff []byte) *Serializer {
	return &Serializer{buff: buff}
}

// Render validates the response and renders it into the internal buffer. The returned
// slice is valid until the next call.
func (s *Serializer) Render(response *http.Response) ([]byte, error) {
	if err := Validate(response); err != nil {
		return nil, err
	}

	buff, err := Serialize(s.buff[:0], response)
	if err != nil {
		return nil, err
	}

	s.buff = buff

	return buff, nil
}

// Write renders the response and writes it out at once. Nothing is written if the
// response can't be rendered.
func (s *Serializer) Write(w io.Writer, response *http.Response) error {
	data, err := s.Render(response)
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}

func crlf(b []byte) []byte {
	return append(b, '\r', '\n')
}
