package router

import (
	"errors"
	"fmt"

	"github.com/minihttp/minihttp/http"
	"github.com/minihttp/minihttp/http/method"
)

var (
	ErrUnsupportedMethod = errors.New("method is not supported")
	ErrNilHandler        = errors.New("handler must not be nil")
	ErrFrozen            = errors.New("routes cannot be registered after the server has started")
)

type Route struct {
	Path    string
	Method  method.Method
	Handler http.Handler
}

// Register binds the handler to the method and path. The path is matched exactly, no
// normalization is done.
func (r *Router) Register(methodToken, path string, handler http.Handler) error {
	m := method.Parse(methodToken)
	if m == method.Unknown {
		return fmt.Errorf("%w: %q", ErrUnsupportedMethod, methodToken)
	}

	return r.Route(m, path, handler)
}

// Route is the same as Register, but accepts an already parsed method.
func (r *Router) Route(m method.Method, path string, handler http.Handler) error {
	switch {
	case r.frozen:
		return ErrFrozen
	case m == method.Unknown || m > method.Count:
		return ErrUnsupportedMethod
	case handler == nil:
		return ErrNilHandler
	}

	r.routes[m] = append(r.routes[m], Route{
		Path:    path,
		Method:  m,
		Handler: handler,
	})

	return nil
}
