package status

type (
	Code   uint16
	Status string
)

// HTTP status codes as registered with IANA. Only the subset the server is able to
// render is listed.
// See: https://www.iana.org/assignments/http-status-codes/http-status-codes.xhtml
const (
	Continue           Code = 100 // RFC 9110, 15.2.1
	SwitchingProtocols Code = 101 // RFC 9110, 15.2.2

	OK        Code = 200 // RFC 9110, 15.3.1
	Created   Code = 201 // RFC 9110, 15.3.2
	Accepted  Code = 202 // RFC 9110, 15.3.3
	NoContent Code = 204 // RFC 9110, 15.3.5

	MovedPermanently Code = 301 // RFC 9110, 15.4.2
	Found            Code = 302 // RFC 9110, 15.4.3
	NotModified      Code = 304 // RFC 9110, 15.4.5

	BadRequest           Code = 400 // RFC 9110, 15.5.1
	Unauthorized         Code = 401 // RFC 9110, 15.5.2
	Forbidden            Code = 403 // RFC 9110, 15.5.4
	NotFound             Code = 404 // RFC 9110, 15.5.5
	PayloadTooLarge      Code = 413 // RFC 9110, 15.5.14
	UnsupportedMediaType Code = 415 // RFC 9110, 15.5.16

	InternalServerError Code = 500 // RFC 9110, 15.6.1
	NotImplemented      Code = 501 // RFC 9110, 15.6.2
	BadGateway          Code = 502 // RFC 9110, 15.6.3
	ServiceUnavailable  Code = 503 // RFC 9110, 15.6.4
)

// Unknown is returned by Text for every code missing in the table.
const Unknown Status = "Unknown"

// KnownCodes lists every code having a reason phrase.
var KnownCodes = []Code{
	Continue, SwitchingProtocols,
	OK, Created, Accepted, NoContent,
	MovedPermanently, Found, NotModified,
	BadRequest, Unauthorized, Forbidden, NotFound, PayloadTooLarge, UnsupportedMediaType,
	InternalServerError, NotImplemented, BadGateway, ServiceUnavailable,
}

// Text returns a reason phrase for the HTTP status code. It returns Unknown if the code
// isn't in the table.
func Text(code Code) Status {
	switch code {
	case Continue:
		return "Continue"
	case SwitchingProtocols:
		return "Switching Protocols"
	case OK:
		return "OK"
	case Created:
		return "Created"
	case Accepted:
		return "Accepted"
	case NoContent:
		return "No Content"
	case MovedPermanently:
		return "Moved Permanently"
	case Found:
		return "Found"
	case NotModified:
		return "Not Modified"
	case BadRequest:
		return "Bad Request"
	case Unauthorized:
		return "Unauthorized"
	case Forbidden:
		return "Forbidden"
	case NotFound:
		return "Not Found"
	case PayloadTooLarge:
		return "Payload Too Large"
	case UnsupportedMediaType:
		return "Unsupported Media Type"
	case InternalServerError:
		return "Internal Server Error"
	case NotImplemented:
		return "Not Implemented"
	case BadGateway:
		return "Bad Gateway"
	case ServiceUnavailable:
		return "Service Unavailable"
	default:
		return Unknown
	}
}

// IsKnown reports whether the code has a reason phrase and therefore can be rendered.
func IsKnown(code Code) bool {
	return Text(code) != Unknown
}
