package transport

import (
	"context"
	"net"
	"sync"

	"github.com/minihttp/minihttp/config"
)

// Supervisor runs bound transports together. Once any of them fails or the supervisor
// is stopped, all of them are stopped, every live connection is closed and the
// supervisor waits for every connection worker to return.
type Supervisor struct {
	registry *Registry
	ts       []boundTransport

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	stopped bool
}

func NewSupervisor(registry *Registry) *Supervisor {
	return &Supervisor{
		registry: registry,
	}
}

func (s *Supervisor) Add(addr string, transport Transport, cb func(net.Conn)) error {
	err := transport.Bind(addr)
	if err != nil {
		s.close()
		return err
	}

	s.ts = append(s.ts, boundTransport{
		cb: cb,
		t:  transport,
	})

	return nil
}

// Run blocks until the context is done, Stop is called or any transport fails. In the
// latter case, the error is returned.
func (s *Supervisor) Run(ctx context.Context, cfg config.NET) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if !s.start(cancel) {
		return nil
	}

	defer close(s.done)

	errch := make(chan error, len(s.ts))

	for _, t := range s.ts {
		go func(t boundTransport) {
			errch <- t.t.Listen(cfg, t.cb)
		}(t)
	}

	var err error
	pending := len(s.ts)

	select {
	case err = <-errch:
		pending--
	case <-ctx.Done():
	}

	s.shutdown(errch, pending)

	return err
}

// Stop initiates the shutdown and waits for it to complete. Stopping a supervisor
// that isn't running prevents it from being run.
func (s *Supervisor) Stop() {
	s.mu.Lock()
	s.stopped = true
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
}

func (s *Supervisor) start(cancel context.CancelFunc) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped || len(s.ts) == 0 {
		s.close()
		return false
	}

	s.cancel = cancel
	s.done = make(chan struct{})

	return true
}

func (s *Supervisor) shutdown(errch <-chan error, pending int) {
	for _, t := range s.ts {
		t.t.Stop()
	}

	s.registry.CloseAll()
	drain(errch, pending)

	for _, t := range s.ts {
		t.t.Wait()
		t.t.Close()
	}
}

func (s *Supervisor) close() {
	for _, t := range s.ts {
		t.t.Close()
	}
}

type boundTransport struct {
	cb func(conn net.Conn)
	t  Transport
}

func drain(ch <-chan error, n int) {
	for range n {
		<-ch
	}
}
