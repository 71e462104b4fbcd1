package router

import (
	"github.com/minihttp/minihttp/http"
	"github.com/minihttp/minihttp/http/method"
)

// Router holds a separate route list per supported method. Routes are registered before
// the server starts, after which the router is only read, concurrently.
type Router struct {
	routes [method.Count + 1][]Route
	frozen bool
}

func New() *Router {
	return new(Router)
}

// Resolve returns the handler bound to exactly the method and path, or nil. Routes
// registered later take precedence over earlier ones with the same path.
func (r *Router) Resolve(methodToken, path string) http.Handler {
	m := method.Parse(methodToken)
	if m == method.Unknown {
		return nil
	}

	routes := r.routes[m]
	for i := len(routes) - 1; i >= 0; i-- {
		if routes[i].Path == path {
			return routes[i].Handler
		}
	}

	return nil
}

// Freeze forbids any further registration. Called once the server begins accepting
// connections.
func (r *Router) Freeze() {
	r.frozen = true
}

// Len returns the total number of registered routes.
func (r *Router) Len() (n int) {
	for _, routes := range r.routes {
		n += len(routes)
	}

	return n
}
