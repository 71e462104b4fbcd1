package mime

import "strings"

type MIME = string

const (
	OctetStream    MIME = "application/octet-stream"
	Plain          MIME = "text/plain"
	HTML           MIME = "text/html"
	XML            MIME = "text/xml"
	CSS            MIME = "text/css"
	JS             MIME = "text/javascript"
	JSON           MIME = "application/json"
	PDF            MIME = "application/pdf"
	FormUrlencoded MIME = "application/x-www-form-urlencoded"
	ZIP            MIME = "application/zip"
	WASM           MIME = "application/wasm"
	GIF            MIME = "image/gif"
	JPEG           MIME = "image/jpeg"
	PNG            MIME = "image/png"
	SVG            MIME = "image/svg+xml"
	ICO            MIME = "image/vnd.microsoft.icon"
	WEBP           MIME = "image/webp"
)

// Complies returns whether the header value carries the given MIME, ignoring
// parameters such as charset and surrounding whitespace.
func Complies(mime MIME, with string) bool {
	return Strip(with) == mime
}

// Strip cuts off parameters of the content type.
func Strip(value string) MIME {
	if semicolon := strings.IndexByte(value, ';'); semicolon != -1 {
		value = value[:semicolon]
	}

	return strings.TrimSpace(value)
}
