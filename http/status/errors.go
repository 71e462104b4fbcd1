package status

import (
	"errors"
	"fmt"
)

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

// Wrap annotates the error with a context, keeping it matchable by errors.As and errors.Is.
func Wrap(err error, context string) error {
	return fmt.Errorf("%s: %w", context, err)
}

// CodeOf extracts the HTTP code out of the error chain. Errors carrying no code are
// considered internal.
func CodeOf(err error) Code {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return InternalServerError
}

var (
	ErrBadRequestLine      = NewError(BadRequest, "malformed request line")
	ErrBadHeader           = NewError(BadRequest, "malformed header line")
	ErrBadParams           = NewError(BadRequest, "bad URI params")
	ErrURLDecoding         = NewError(BadRequest, "invalid urlencoded sequence")
	ErrBadContentLength    = NewError(BadRequest, "invalid Content-Length value")
	ErrBodyLengthMismatch  = NewError(BadRequest, "body is longer than declared")
	ErrBadJSON             = NewError(BadRequest, "malformed json body")
	ErrBadForm             = NewError(BadRequest, "malformed urlencoded body")
	ErrNotFound            = NewError(NotFound, "not found")
	ErrPayloadTooLarge     = NewError(PayloadTooLarge, "request entity too large")
	ErrTooManyHeaders      = NewError(PayloadTooLarge, "too many headers")
	ErrInternalServerError = NewError(InternalServerError, "internal server error")
	ErrUnknownStatus       = NewError(InternalServerError, "response status code has no reason phrase")
	ErrTransferEncoding    = NewError(NotImplemented, "transfer encodings are not supported")
)
