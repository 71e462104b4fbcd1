package http

import (
	"net"

	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
	"github.com/minihttp/minihttp/kv"
)

type (
	Headers = *kv.Storage
	Header  = kv.Pair
	Params  = *kv.Storage
)

// Body holds the request payload. Raw is always the verbatim payload, while Params are
// filled by content-type specific decoders and by the URI query.
type Body struct {
	Raw        []byte
	Params     Params
	ParamCount int
}

// Request represents HTTP request
type Request struct {
	// Method is the request method token exactly as it was received.
	Method string
	// Path holds only the path component. The query, if any, is already decoded into Body.Params.
	Path string
	// Version is the protocol version without the HTTP/ prefix, e.g. 1.1.
	Version string
	// Headers holds non-normalized header pairs, even though lookup is case-insensitive.
	Headers Headers
	Body    Body
	// Remote holds the remote address.
	Remote net.Addr
	// ConnID identifies the connection the request came from.
	ConnID string
}

func NewRequest(headers Headers, params Params) *Request {
	return &Request{
		Headers: headers,
		Body: Body{
			Params: params,
		},
	}
}

// JSON decodes the raw body into the model.
func (r *Request) JSON(model any) error {
	return json.Unmarshal(r.Body.Raw, model)
}

// String returns the raw body as a string.
func (r *Request) String() string {
	return uf.B2S(r.Body.Raw)
}

// Reset brings the request back to the empty state, so it can be reused for the next
// exchange. Connection-bound fields (Remote and ConnID) are preserved.
func (r *Request) Reset() {
	r.Method = ""
	r.Path = ""
	r.Version = ""
	r.Headers.Clear()
	r.Body.Raw = nil
	r.Body.Params.Clear()
	r.Body.ParamCount = 0
}
