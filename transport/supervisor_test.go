package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/minihttp/minihttp/config"
	"github.com/stretchr/testify/require"
)

type transportMock struct {
	stopped     *atomic.Bool
	closed      *atomic.Bool
	bound       bool
	once        bool
	loop        time.Duration
	returnError error
}

func newMock(loop time.Duration, returnError error, once bool) *transportMock {
	return &transportMock{
		stopped:     new(atomic.Bool),
		closed:      new(atomic.Bool),
		once:        once,
		loop:        loop,
		returnError: returnError,
	}
}

func (t *transportMock) Bind(string) error {
	t.bound = true
	return nil
}

func (t *transportMock) Listen(config.NET, func(conn net.Conn)) error {
	if t.once {
		time.Sleep(t.loop)
		return t.returnError
	}

	for !t.stopped.Load() {
		time.Sleep(t.loop)
	}

	return t.returnError
}

func (t *transportMock) Stop() {
	t.stopped.Store(true)
}

func (t *transportMock) Close() {
	t.closed.Store(true)
}

func (t *transportMock) Wait() {}

func runParallel(fn func() error) chan error {
	c := make(chan error, 1)

	go func() {
		c <- fn()
	}()

	return c
}

func runAtMost(sup *Supervisor, timeout time.Duration) error {
	select {
	case err := <-runParallel(func() error {
		return sup.Run(context.Background(), config.Default().NET)
	}):
		return err
	case <-time.After(timeout):
		return fmt.Errorf("supervisor timeouted")
	}
}

func TestSupervisor(t *testing.T) {
	newSupervisor := func(ts ...*transportMock) *Supervisor {
		sup := NewSupervisor(NewRegistry(0))
		for _, transport := range ts {
			require.NoError(t, sup.Add("", transport, nil))
			require.True(t, transport.bound)
		}

		return sup
	}

	t.Run("die without error", func(t *testing.T) {
		a, b := newMock(10*time.Millisecond, nil, false), newMock(100*time.Millisecond, nil, true)
		sup := newSupervisor(a, b)
		require.NoError(t, runAtMost(sup, 300*time.Millisecond))
		require.True(t, a.stopped.Load())
		require.True(t, a.closed.Load())
		require.True(t, b.closed.Load())
	})

	t.Run("die with error", func(t *testing.T) {
		listenErr := errors.New("listener failed")
		sup := newSupervisor(
			newMock(10*time.Millisecond, nil, false),
			newMock(100*time.Millisecond, listenErr, true),
		)
		require.ErrorIs(t, runAtMost(sup, 300*time.Millisecond), listenErr)
	})

	t.Run("stop", func(t *testing.T) {
		sup := newSupervisor(
			newMock(10*time.Millisecond, nil, false),
			newMock(20*time.Millisecond, nil, false),
		)
		c := runParallel(func() error {
			return sup.Run(context.Background(), config.Default().NET)
		})
		time.Sleep(100 * time.Millisecond)
		c2 := runParallel(func() error {
			sup.Stop()
			return nil
		})

		select {
		case err := <-c2:
			require.NoError(t, err)
		case <-time.After(300 * time.Millisecond):
			require.Fail(t, "supervisor did not stop on time")
		}

		select {
		case err := <-c:
			require.NoError(t, err)
		case <-time.After(50 * time.Millisecond):
			require.Fail(t, "supervisor did not stop running on time")
		}
	})

	t.Run("context cancellation", func(t *testing.T) {
		sup := newSupervisor(newMock(10*time.Millisecond, nil, false))
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		select {
		case err := <-runParallel(func() error {
			return sup.Run(ctx, config.Default().NET)
		}):
			require.NoError(t, err)
		case <-time.After(300 * time.Millisecond):
			require.Fail(t, "supervisor ignored the context")
		}
	})

	t.Run("stop before run", func(t *testing.T) {
		mock := newMock(10*time.Millisecond, nil, false)
		sup := newSupervisor(mock)
		sup.Stop()
		require.NoError(t, runAtMost(sup, 50*time.Millisecond))
		require.False(t, mock.stopped.Load())
		require.True(t, mock.closed.Load())
	})

	t.Run("no transports", func(t *testing.T) {
		require.NoError(t, runAtMost(newSupervisor(), 50*time.Millisecond))
	})

	t.Run("connections are closed on shutdown", func(t *testing.T) {
		registry := NewRegistry(0)
		sup := NewSupervisor(registry)
		require.NoError(t, sup.Add("", newMock(10*time.Millisecond, nil, false), nil))

		server, peer := net.Pipe()
		defer peer.Close()
		require.NoError(t, registry.Add(newConn(server)))

		c := runParallel(func() error {
			return sup.Run(context.Background(), config.Default().NET)
		})
		time.Sleep(20 * time.Millisecond)
		sup.Stop()
		require.NoError(t, <-c)

		_, err := server.Write([]byte("x"))
		require.ErrorIs(t, err, io.ErrClosedPipe)
		require.ErrorIs(t, registry.Add(newConn(server)), net.ErrClosed)
	})
}
