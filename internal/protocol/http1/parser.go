package http1

import (
	"bytes"

	"github.com/minihttp/minihttp/config"
	"github.com/minihttp/minihttp/http"
	"github.com/minihttp/minihttp/http/status"
	"github.com/minihttp/minihttp/internal/urlencoded"
)

// Parser turns delimited byte ranges into request fields. It holds no state between
// calls, so each stage can be invoked independently. Every string it stores into the
// request is an owned copy, so the source bytes may be reused right after the call.
type Parser struct {
	cfg *config.Config
}

func NewParser(cfg *config.Config) *Parser {
	return &Parser{cfg: cfg}
}

// ParseLine parses the request line of the form METHOD SP PATH SP HTTP/D.D. The
// line terminator may be present, but isn't required.
func (p *Parser) ParseLine(request *http.Request, line []byte) error {
	line = stripCRLF(line)

	sp := bytes.IndexByte(line, ' ')
	if sp <= 0 || !isMethod(line[:sp]) {
		return status.ErrBadRequestLine
	}

	methodValue, rest := line[:sp], line[sp+1:]

	sp = bytes.IndexByte(rest, ' ')
	if sp <= 0 {
		return status.ErrBadRequestLine
	}

	path, protocol := rest[:sp], rest[sp+1:]
	version, ok := parseProtocol(protocol)
	if !ok {
		return status.ErrBadRequestLine
	}

	if query := bytes.IndexByte(path, '?'); query != -1 {
		if err := p.parseParams(request, path[query+1:], urlencoded.Query); err != nil {
			return err
		}

		path = path[:query]
	}

	request.Method = string(methodValue)
	request.Path = string(path)
	request.Version = string(version)

	return nil
}

// ParseHeaders parses the header block, i.e. every line between the request line and
// the empty line. In case of any malformed line, no header is retained.
func (p *Parser) ParseHeaders(request *http.Request, block []byte) error {
	headers := request.Headers
	maxHeaders := p.cfg.Headers.MaxCount

	for len(block) > 0 {
		var line []byte
		if lf := bytes.IndexByte(block, '\n'); lf == -1 {
			line, block = block, nil
		} else {
			line, block = block[:lf], block[lf+1:]
		}

		line = stripCRLF(line)
		if len(line) == 0 {
			continue
		}

		key, value, ok := splitHeader(line)
		if !ok {
			headers.Clear()
			return status.ErrBadHeader
		}

		if headers.Len() >= maxHeaders {
			headers.Clear()
			return status.ErrTooManyHeaders
		}

		headers.Add(string(key), string(value))
	}

	return nil
}

func (p *Parser) parseParams(request *http.Request, data []byte, mode urlencoded.Mode) error {
	return urlencoded.Walk(data, mode, func(key, value string) error {
		request.Body.Params.Add(key, value)
		request.Body.ParamCount++
		return nil
	})
}

// splitHeader splits the line of form KEY: VALUE. The key is everything up to the
// first colon, the value is everything after a single space following it.
func splitHeader(line []byte) (key, value []byte, ok bool) {
	colon := bytes.IndexByte(line, ':')
	if colon <= 0 || len(line) < colon+3 || line[colon+1] != ' ' {
		return nil, nil, false
	}

	return line[:colon], line[colon+2:], true
}

func isMethod(token []byte) bool {
	for _, c := range token {
		if c < 'A' || c > 'Z' {
			return false
		}
	}

	return true
}

// parseProtocol validates the HTTP/D.D token, returning D.D.
func parseProtocol(token []byte) (version []byte, ok bool) {
	const prefix = "HTTP/"

	if len(token) != len(prefix)+3 || string(token[:len(prefix)]) != prefix {
		return nil, false
	}

	version = token[len(prefix):]
	if !isDigit(version[0]) || version[1] != '.' || !isDigit(version[2]) {
		return nil, false
	}

	return version, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func stripCRLF(line []byte) []byte {
	if len(line) > 0 && line[len(line)-1] == '\n' {
		line = line[:len(line)-1]
	}

	if len(line) > 0 && line[len(line)-1] == '\r' {
		line = line[:len(line)-1]
	}

	return line
}
