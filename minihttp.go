package minihttp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"sync"

	"github.com/minihttp/minihttp/config"
	"github.com/minihttp/minihttp/http"
	"github.com/minihttp/minihttp/internal/address"
	"github.com/minihttp/minihttp/internal/server"
	"github.com/minihttp/minihttp/router"
	"github.com/minihttp/minihttp/static"
	"github.com/minihttp/minihttp/transport"
	"github.com/rs/zerolog"
)

var ErrAlreadyRunning = errors.New("the application is already running")

// App is the web-application: it owns the routes, the configuration and the live
// connections.
type App struct {
	addr   string
	cfg    *config.Config
	router *router.Router
	log    zerolog.Logger
	hooks  hooks

	mu         sync.Mutex
	supervisor *transport.Supervisor
	registry   *transport.Registry
	bound      net.Addr
	stopped    bool
}

// New returns a new App instance, serving on the addr of form [host]:port. Empty host
// means all the interfaces. The address is validated once the application starts.
func New(addr string) *App {
	return &App{
		addr:   addr,
		cfg:    config.Default(),
		router: router.New(),
		log: zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Logger().
			Level(zerolog.InfoLevel),
	}
}

// Tune replaces default config.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = cfg
	return a
}

// Logger replaces the default logger, writing human-readable lines to stderr.
func (a *App) Logger(log zerolog.Logger) *App {
	a.log = log
	return a
}

// Static sets the directory, whose static/ subdirectory is served by Files.
func (a *App) Static(root string) *App {
	a.cfg.Static.Root = root
	return a
}

// Files returns the loader of static files, suitable for http.Response.File.
func (a *App) Files() static.Loader {
	return static.New(a.cfg.Static.Root)
}

// Route registers the handler. Routes can't be registered after the application
// started.
func (a *App) Route(method, path string, handler http.Handler) error {
	return a.router.Register(method, path, handler)
}

func (a *App) Get(path string, handler http.Handler) *App {
	a.router.Get(path, handler)
	return a
}

func (a *App) Post(path string, handler http.Handler) *App {
	a.router.Post(path, handler)
	return a
}

func (a *App) Put(path string, handler http.Handler) *App {
	a.router.Put(path, handler)
	return a
}

func (a *App) Delete(path string, handler http.Handler) *App {
	a.router.Delete(path, handler)
	return a
}

func (a *App) Patch(path string, handler http.Handler) *App {
	a.router.Patch(path, handler)
	return a
}

// NotifyOnStart calls the callback at the moment, when the listener is bound and the
// connections are about to be accepted.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback at the moment, when the server is down. It's guaranteed,
// that at the moment as the callback is called, the server isn't able to accept any new connections
// and all the clients are already disconnected
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Addr returns the address the application is bound to, or nil if it isn't running.
func (a *App) Addr() net.Addr {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.bound
}

// Connections returns the number of currently served connections.
func (a *App) Connections() int {
	a.mu.Lock()
	registry := a.registry
	a.mu.Unlock()

	if registry == nil {
		return 0
	}

	return registry.Len()
}

// Serve starts the web-application and blocks until it's stopped or the listener fails.
func (a *App) Serve() error {
	return a.ServeContext(context.Background())
}

// ServeContext is the same as Serve, but also stops once the context is done.
func (a *App) ServeContext(ctx context.Context) error {
	tcp, supervisor, err := a.prepare(ctx)
	if err != nil || supervisor == nil {
		return err
	}

	a.log.Info().Str("addr", tcp.Addr().String()).Msg("listening")
	callIfNotNil(a.hooks.OnStart)

	err = supervisor.Run(ctx, a.cfg.NET)

	a.mu.Lock()
	a.supervisor, a.registry, a.bound = nil, nil, nil
	a.mu.Unlock()

	if err != nil {
		a.log.Error().Err(err).Msg("stopped on error")
	} else {
		a.log.Info().Msg("stopped")
	}

	callIfNotNil(a.hooks.OnStop)

	return err
}

// Stop stops accepting new connections, closes the live ones and waits until every
// one of them is released. Calling it before Serve prevents the application from
// starting.
func (a *App) Stop() {
	a.mu.Lock()
	a.stopped = true
	supervisor := a.supervisor
	a.mu.Unlock()

	if supervisor != nil {
		supervisor.Stop()
	}
}

// prepare binds the listener. Nil supervisor without an error means the application
// was stopped before it started.
func (a *App) prepare(ctx context.Context) (*transport.TCP, *transport.Supervisor, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch {
	case a.stopped:
		return nil, nil, nil
	case a.supervisor != nil:
		return nil, nil, ErrAlreadyRunning
	}

	addr, err := address.Parse(a.addr)
	if err != nil {
		return nil, nil, fmt.Errorf("bad address %q: %w", a.addr, err)
	}

	a.router.Freeze()
	registry := transport.NewRegistry(a.cfg.NET.MaxConnections)
	supervisor := transport.NewSupervisor(registry)
	tcp := transport.NewTCP()

	if err := supervisor.Add(addr.String(), tcp, func(conn net.Conn) {
		a.serveConn(ctx, registry, conn)
	}); err != nil {
		return nil, nil, err
	}

	a.supervisor, a.registry, a.bound = supervisor, registry, tcp.Addr()

	return tcp, supervisor, nil
}

func (a *App) serveConn(ctx context.Context, registry *transport.Registry, conn net.Conn) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	request, response := newRequest(a.cfg), newResponse(a.cfg)
	c := transport.NewConn(conn, request, response, cancel)
	log := a.log.With().
		Str("conn", c.ID).
		Stringer("remote", conn.RemoteAddr()).
		Logger()

	if err := registry.Add(c); err != nil {
		log.Warn().Err(err).Msg("connection refused")
		return
	}

	defer registry.Remove(c.ID)
	log.Debug().Msg("connection opened")

	client := newClient(a.cfg.NET, conn)
	driver := server.NewDriver(a.cfg, a.router, request, response, client, log)
	err := server.Serve(ctx, client, driver)

	log.Debug().Err(err).Msg("connection closed")
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
