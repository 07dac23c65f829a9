package app

import (
	"context"

	"log/slog"

	"github.com/ezz105/ecommerce-analytics/config"
	httpapi "github.com/ezz105/ecommerce-analytics/internal/api/http"
	"github.com/ezz105/ecommerce-analytics/internal/apisrv/analytics"
	"github.com/ezz105/ecommerce-analytics/internal/apisrv/auth"
	"github.com/ezz105/ecommerce-analytics/internal/dependency"
	"github.com/ezz105/ecommerce-analytics/internal/store"
)

// App is the main application
type App struct {
	hs   *httpapi.Server
	db   dependency.Repository
	c    *config.Config
	done chan struct{}
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting analytics service")

	a.db, err = store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to mysql",
			slog.String("err", err.Error()),
		)
		return err
	}

	authS, err := auth.New(&a.c.Auth)
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed to create auth server",
			slog.String("err", err.Error()),
		)
		return err
	}

	analyticsS := analytics.New(a.db, &a.c.Analytics)

	a.hs = httpapi.New(&a.c.HTTP)
	if err = a.hs.Start(ctx, analyticsS, authS, a.db); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server",
			slog.String("err", err.Error()),
		)
		return err
	}

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "http server shutdown failed",
				slog.String("err", err.Error()),
			)
		}
	}
	if a.db != nil {
		a.db.Close()
	}
	close(a.done)
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}
