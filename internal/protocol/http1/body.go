package http1

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
	"github.com/minihttp/minihttp/http"
	"github.com/minihttp/minihttp/http/mime"
	"github.com/minihttp/minihttp/http/status"
	"github.com/minihttp/minihttp/internal/urlencoded"
)

// ParseBody stores the body verbatim and, depending on the Content-Type, decodes it
// into request params. The raw body is stored even if decoding fails.
func (p *Parser) ParseBody(request *http.Request, body []byte) error {
	request.Body.Raw = bytes.Clone(body)

	contentType, found := request.Headers.Get("Content-Type")
	if !found {
		return nil
	}

	switch mime.Strip(contentType) {
	case mime.JSON:
		return p.parseJSON(request, body)
	case mime.FormUrlencoded:
		return p.parseParams(request, body, urlencoded.Form)
	default:
		return nil
	}
}

// parseJSON extracts members of a top-level JSON object. String values are stored
// unquoted, any other value is stored as its literal JSON text.
func (p *Parser) parseJSON(request *http.Request, body []byte) error {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil
	}

	iter := jsoniter.ParseBytes(jsoniter.ConfigDefault, body)
	if iter.WhatIsNext() != jsoniter.ObjectValue {
		return status.ErrBadJSON
	}

	object := iter.SkipAndReturnBytes()
	if iter.Error != nil || len(object) != len(body) {
		return status.ErrBadJSON
	}

	iter = jsoniter.ParseBytes(jsoniter.ConfigDefault, body)
	iter.ReadObjectCB(func(iter *jsoniter.Iterator, key string) bool {
		var value string

		switch iter.WhatIsNext() {
		case jsoniter.StringValue:
			value = iter.ReadString()
		default:
			value = string(iter.SkipAndReturnBytes())
		}

		if iter.Error != nil {
			return false
		}

		request.Body.Params.Add(key, value)
		request.Body.ParamCount++

		return true
	})

	if iter.Error != nil {
		return status.ErrBadJSON
	}

	return nil
}
