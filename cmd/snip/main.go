package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/indigo-web/snip"
	"github.com/indigo-web/snip/auth"
	"github.com/indigo-web/snip/config"
	"github.com/indigo-web/snip/router"
	"github.com/indigo-web/snip/router/echo"
	"github.com/indigo-web/snip/router/links"
	"github.com/indigo-web/snip/shorten"
	"github.com/indigo-web/snip/store"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	if err := run(log); err != nil {
		log.Fatal().Err(err).Msg("snip")
	}
}

func run(log zerolog.Logger) error {
	cfg, addr, err := config.FromEnv(os.LookupEnv)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	r, err := newRouter(ctx, g, cfg, log)
	if err != nil {
		return err
	}

	app := snip.New(addr).
		Tune(cfg).
		Logger(log).
		NotifyOnStop(func() {
			log.Info().Msg("all connections are served")
		})

	g.Go(func() error {
		return app.Serve(r)
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		app.Stop()
		return nil
	})

	return g.Wait()
}

func newRouter(ctx context.Context, g *errgroup.Group, cfg *config.Config, log zerolog.Logger) (router.Router, error) {
	if cfg.Mode == config.Echo {
		log.Info().Msg("echo mode")
		return echo.New(), nil
	}

	hash, err := shorten.Lookup(cfg.Shortener.Hash)
	if err != nil {
		return nil, err
	}

	secret, err := newSecret(ctx, g, cfg.Auth, log)
	if err != nil {
		return nil, err
	}

	if len(secret.Secret()) == 0 {
		log.Warn().Msg("no secret configured, shortening is disabled")
	}

	encoder := shorten.New(hash, cfg.Shortener.CodeLength)

	return links.New(cfg, store.NewMemory(), encoder, secret), nil
}

func newSecret(ctx context.Context, g *errgroup.Group, cfg config.Auth, log zerolog.Logger) (auth.Secret, error) {
	if len(cfg.SecretFile) == 0 {
		return auth.Static(cfg.Secret), nil
	}

	secret, err := auth.NewFileSecret(cfg.SecretFile, log)
	if err != nil {
		return nil, fmt.Errorf("read secret file: %w", err)
	}

	g.Go(func() error {
		return secret.Watch(ctx)
	})

	return secret, nil
}
