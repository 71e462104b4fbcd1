package router

import (
	"testing"

	"github.com/minihttp/minihttp/http"
	"github.com/minihttp/minihttp/http/status"
	"github.com/minihttp/minihttp/kv"
	"github.com/stretchr/testify/require"
)

func coded(code status.Code) http.Handler {
	return func(_ *http.Request, response *http.Response) {
		response.Status(code)
	}
}

func codeOf(t *testing.T, handler http.Handler) status.Code {
	require.NotNil(t, handler)
	response := http.NewResponse(kv.NewFolded())
	handler(http.NewRequest(kv.NewFolded(), kv.New()), response)

	return response.Code
}

func TestRouter(t *testing.T) {
	t.Run("shadowing", func(t *testing.T) {
		r := New()
		require.NoError(t, r.Register("GET", "/a", coded(status.OK)))
		require.NoError(t, r.Register("GET", "/a", coded(status.Created)))
		require.Equal(t, status.Created, codeOf(t, r.Resolve("GET", "/a")))
		require.Equal(t, 2, r.Len())
	})

	t.Run("methods are separated", func(t *testing.T) {
		r := New().
			Get("/", coded(status.OK)).
			Post("/", coded(status.Created)).
			Put("/", coded(status.Accepted)).
			Delete("/", coded(status.NoContent)).
			Patch("/", coded(status.Found))

		require.Equal(t, status.OK, codeOf(t, r.Resolve("GET", "/")))
		require.Equal(t, status.Created, codeOf(t, r.Resolve("POST", "/")))
		require.Equal(t, status.Accepted, codeOf(t, r.Resolve("PUT", "/")))
		require.Equal(t, status.NoContent, codeOf(t, r.Resolve("DELETE", "/")))
		require.Equal(t, status.Found, codeOf(t, r.Resolve("PATCH", "/")))
	})

	t.Run("exact match only", func(t *testing.T) {
		r := New().Get("/hello", coded(status.OK))
		require.Nil(t, r.Resolve("GET", "/hello/"))
		require.Nil(t, r.Resolve("GET", "/Hello"))
		require.Nil(t, r.Resolve("GET", "/hell"))
		require.Nil(t, r.Resolve("POST", "/hello"))
	})

	t.Run("unsupported method", func(t *testing.T) {
		r := New()
		require.ErrorIs(t, r.Register("HEAD", "/", coded(status.OK)), ErrUnsupportedMethod)
		require.ErrorIs(t, r.Register("get", "/", coded(status.OK)), ErrUnsupportedMethod)
		require.Nil(t, r.Resolve("HEAD", "/"))
		require.Zero(t, r.Len())
	})

	t.Run("nil handler", func(t *testing.T) {
		require.ErrorIs(t, New().Register("GET", "/", nil), ErrNilHandler)
	})

	t.Run("frozen", func(t *testing.T) {
		r := New().Get("/", coded(status.OK))
		r.Freeze()
		require.ErrorIs(t, r.Register("GET", "/b", coded(status.OK)), ErrFrozen)
		require.Panics(t, func() {
			r.Get("/c", coded(status.OK))
		})
		require.NotNil(t, r.Resolve("GET", "/"))
	})
}
