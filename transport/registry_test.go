package transport

import (
	"context"
	"net"
	"sync"
	"testing"

	"github.com/minihttp/minihttp/http"
	"github.com/minihttp/minihttp/kv"
	"github.com/stretchr/testify/require"
)

func newConn(conn net.Conn) *Conn {
	return NewConn(conn, http.NewRequest(kv.NewFolded(), kv.New()), http.NewResponse(kv.NewFolded()), nil)
}

func TestRegistry(t *testing.T) {
	t.Run("add and remove", func(t *testing.T) {
		registry := NewRegistry(0)
		a, _ := net.Pipe()
		b, _ := net.Pipe()
		connA, connB := newConn(a), newConn(b)
		require.NotEqual(t, connA.ID, connB.ID)
		require.Equal(t, connA.ID, connA.Request.ConnID)

		require.NoError(t, registry.Add(connA))
		require.NoError(t, registry.Add(connB))
		require.Equal(t, 2, registry.Len())

		got, found := registry.Get(connA.ID)
		require.True(t, found)
		require.Same(t, connA, got)

		registry.Remove(connA.ID)
		registry.Remove("unknown")
		require.Equal(t, 1, registry.Len())
		_, found = registry.Get(connA.ID)
		require.False(t, found)
	})

	t.Run("remove releases request and response", func(t *testing.T) {
		registry := NewRegistry(0)
		pipe, _ := net.Pipe()
		conn := newConn(pipe)
		conn.Request.Method = "GET"
		conn.Request.Headers.Add("Host", "localhost")
		conn.Response.Header("Server", "test").String("body")

		require.NoError(t, registry.Add(conn))
		registry.Remove(conn.ID)
		require.Empty(t, conn.Request.Method)
		require.True(t, conn.Request.Headers.Empty())
		require.True(t, conn.Response.Headers.Empty())
		require.Empty(t, conn.Response.Body)
	})

	t.Run("limit", func(t *testing.T) {
		registry := NewRegistry(1)
		a, _ := net.Pipe()
		b, _ := net.Pipe()
		connA := newConn(a)
		require.NoError(t, registry.Add(connA))
		require.ErrorIs(t, registry.Add(newConn(b)), ErrRegistryFull)

		registry.Remove(connA.ID)
		require.NoError(t, registry.Add(newConn(b)))
	})

	t.Run("range", func(t *testing.T) {
		registry := NewRegistry(0)
		for range 3 {
			pipe, _ := net.Pipe()
			require.NoError(t, registry.Add(newConn(pipe)))
		}

		var visited int
		registry.Range(func(*Conn) bool {
			visited++
			return visited < 2
		})
		require.Equal(t, 2, visited)
	})

	t.Run("close all", func(t *testing.T) {
		registry := NewRegistry(0)
		server, peer := net.Pipe()
		ctx, cancel := context.WithCancel(context.Background())
		conn := NewConn(server, http.NewRequest(kv.NewFolded(), kv.New()), http.NewResponse(kv.NewFolded()), cancel)
		require.NoError(t, registry.Add(conn))

		registry.CloseAll()
		require.ErrorIs(t, ctx.Err(), context.Canceled)
		_, err := peer.Read(make([]byte, 1))
		require.Error(t, err)
	})

	t.Run("concurrent access", func(t *testing.T) {
		registry := NewRegistry(0)
		wg := new(sync.WaitGroup)

		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				pipe, _ := net.Pipe()
				conn := newConn(pipe)
				require.NoError(t, registry.Add(conn))
				_ = registry.Len()
				registry.Remove(conn.ID)
			}()
		}

		wg.Wait()
		require.Zero(t, registry.Len())
	})
}
