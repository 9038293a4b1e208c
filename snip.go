package snip

import (
	"errors"
	"fmt"
	"net"

	"github.com/indigo-web/snip/config"
	"github.com/indigo-web/snip/http/status"
	"github.com/indigo-web/snip/internal/protocol/http1"
	"github.com/indigo-web/snip/router"
	"github.com/indigo-web/snip/transport"
	"github.com/rs/zerolog"
)

// App owns the listener and serves every accepted connection with a single request.
type App struct {
	addr  string
	cfg   *config.Config
	log   zerolog.Logger
	hooks hooks
	tcp   *transport.TCP
	errCh chan error
}

// New returns a new App instance. Nothing is bound until Serve is called.
func New(addr string) *App {
	return &App{
		addr:  addr,
		cfg:   config.Default(),
		log:   zerolog.Nop(),
		errCh: make(chan error, 1),
	}
}

// Tune replaces the default config.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = cfg
	return a
}

// Logger sets the root logger. Every connection logs through a child of it. Logs are
// discarded by default.
func (a *App) Logger(log zerolog.Logger) *App {
	a.log = log
	return a
}

// NotifyOnStart calls the callback as soon as the listener is bound. Connections are
// accepted from this moment on, even though the accept loop may not be running yet.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback when the listener is closed and every connection
// is served.
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Addr returns the address the app is bound to. It's valid only after the app started,
// which is mostly useful for binding to the port 0.
func (a *App) Addr() net.Addr {
	return a.tcp.Addr()
}

// Serve binds the address and serves connections until Stop is called or the listener
// fails. Stopping is not an error.
func (a *App) Serve(r router.Router) error {
	tcp := transport.NewTCP()
	if err := tcp.Bind(a.addr); err != nil {
		return fmt.Errorf("snip: bind %s: %w", a.addr, err)
	}

	a.tcp = tcp
	a.log.Info().Str("addr", tcp.Addr().String()).Msg("listening")

	return a.run(tcp, r)
}

func (a *App) run(tcp *transport.TCP, r router.Router) error {
	listenErr := make(chan error, 1)
	go func() {
		listenErr <- tcp.Listen(a.cfg.NET, a.newTCPCallback(r))
	}()

	callIfNotNil(a.hooks.OnStart)

	var err error
	select {
	case err = <-a.errCh:
		tcp.Stop()
		tcp.Close()
		if lerr := <-listenErr; lerr != nil {
			a.log.Warn().Err(lerr).Msg("accept loop quit with an error")
		}

		if errors.Is(err, status.ErrShutdown) {
			err = nil
		}
	case err = <-listenErr:
		tcp.Close()
	}

	// connections in progress are served till the end
	tcp.Wait()
	a.log.Info().Msg("stopped")
	callIfNotNil(a.hooks.OnStop)

	return err
}

// Stop makes Serve stop accepting connections and return once all the connections in
// progress are served.
//
// NOTE: the call isn't blocking. After the method returned, the server may still be working
func (a *App) Stop() {
	select {
	case a.errCh <- status.ErrShutdown:
	default:
	}
}

func (a *App) newTCPCallback(r router.Router) func(net.Conn) {
	return func(conn net.Conn) {
		client := newClient(a.cfg.NET, conn)
		request := newRequest(conn, newConnLogger(a.log, conn))
		http1.New(a.cfg, r, client, request).ServeOnce()
	}
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
