package http

import (
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
	"github.com/minihttp/minihttp/http/mime"
	"github.com/minihttp/minihttp/http/status"
	"github.com/minihttp/minihttp/kv"
)

// FileLoader reads a file by its name, relative to some root.
type FileLoader interface {
	Load(name string) ([]byte, error)
}

// Response is populated by a handler in any order. Zero Version and Code are defaulted
// right before the response is serialized.
type Response struct {
	Version string
	Code    status.Code
	Headers Headers
	Body    []byte
}

func NewResponse(headers Headers) *Response {
	return &Response{
		Headers: headers,
	}
}

// Status sets the response code.
func (r *Response) Status(code status.Code) *Response {
	r.Code = code
	return r
}

// Header adds a header pair. Multiple values of the same key are all rendered.
func (r *Response) Header(key, value string) *Response {
	r.Headers.Add(key, value)
	return r
}

// ContentType sets the Content-Type header, replacing the previous value if any.
func (r *Response) ContentType(value mime.MIME) *Response {
	r.Headers.Delete("Content-Type").Add("Content-Type", value)
	return r
}

// String sets the response's body to the passed string
func (r *Response) String(body string) *Response {
	return r.Bytes(uf.S2B(body))
}

// Bytes sets the response's body to passed slice WITHOUT COPYING. Changing
// the passed slice later will affect the response by itself
func (r *Response) Bytes(body []byte) *Response {
	r.Body = body
	return r
}

// Write implements io.Writer interface. It always returns n=len(b) and err=nil
func (r *Response) Write(b []byte) (n int, err error) {
	r.Body = append(r.Body, b...)
	return len(b), nil
}

// JSON serializes the model into the body and sets the corresponding Content-Type.
// In case of an error, the response isn't modified.
func (r *Response) JSON(model any) error {
	data, err := json.Marshal(model)
	if err != nil {
		return err
	}

	r.ContentType(mime.JSON).Body = data
	return nil
}

// File loads the file into the body and sets the Content-Type judging by its extension.
// In case of an error, the response isn't modified and the error is returned back to
// the handler.
func (r *Response) File(loader FileLoader, name string) error {
	data, err := loader.Load(name)
	if err != nil {
		return err
	}

	r.ContentType(mime.Guess(name)).Body = data
	return nil
}

// Error fills the response with a plain-text description of the HTTP code, discarding
// everything that was set before.
func (r *Response) Error(code status.Code) *Response {
	r.Reset()

	return r.
		Status(code).
		ContentType(mime.Plain).
		String(string(status.Text(code)))
}

// Reset brings the response back to the empty state.
func (r *Response) Reset() {
	r.Version = ""
	r.Code = 0
	r.Headers.Clear()
	r.Body = nil
}
