package router

import (
	"github.com/minihttp/minihttp/http"
	"github.com/minihttp/minihttp/http/method"
)

/*
This file is responsible for methods predicates - shortcuts for Route method
with already set method taken from name of the method. They panic on a failed
registration, as it's always a programming mistake.
*/

func (r *Router) Get(path string, handler http.Handler) *Router {
	return r.must(method.GET, path, handler)
}

func (r *Router) Post(path string, handler http.Handler) *Router {
	return r.must(method.POST, path, handler)
}

func (r *Router) Put(path string, handler http.Handler) *Router {
	return r.must(method.PUT, path, handler)
}

func (r *Router) Delete(path string, handler http.Handler) *Router {
	return r.must(method.DELETE, path, handler)
}

func (r *Router) Patch(path string, handler http.Handler) *Router {
	return r.must(method.PATCH, path, handler)
}

func (r *Router) must(m method.Method, path string, handler http.Handler) *Router {
	if err := r.Route(m, path, handler); err != nil {
		panic(err)
	}

	return r
}
