package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"log/slog"

	"github.com/ezz105/ecommerce-analytics/internal/apisrv/analytics"
	"github.com/ezz105/ecommerce-analytics/internal/apisrv/auth"
	"github.com/ezz105/ecommerce-analytics/internal/dependency"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// Config is the configuration for the http server
type Config struct {
	Port           string   `mapstructure:"port"`
	Address        string   `mapstructure:"address"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Server is the http server
type Server struct {
	hs        *http.Server
	c         *Config
	analytics *analytics.Server
	auth      *auth.Server
	repo      dependency.Repository
	done      chan struct{}
}

// New creates a new server
func New(config *Config) *Server {
	return &Server{
		c:    config,
		done: make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

func (s *Server) router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.c.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))
	r.Use(metricsMiddleware)

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/api/auth/login", s.handleLogin)

	r.Route("/api/analytics", func(r chi.Router) {
		r.Use(s.auth.WithAuth)
		r.Get("/sales", s.handleSalesAnalytics)
		r.Get("/orders", s.handleOrderAnalytics)
		r.Get("/products", s.handleProductAnalytics)
		r.Get("/reviews", s.handleReviewAnalytics)
		r.Get("/dashboard", s.handleDashboardOverview)
	})

	return r
}

// Start starts the http server serving the analytics API.
func (s *Server) Start(ctx context.Context, analyticsSrv *analytics.Server, authSrv *auth.Server, repo dependency.Repository) error {
	s.analytics = analyticsSrv
	s.auth = authSrv
	s.repo = repo

	addr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:    addr,
		Handler: h2c.NewHandler(s.router(), &http2.Server{}),
	}

	slog.Default().InfoContext(ctx, "http server listening", slog.String("addr", addr))
	go func() {
		if err := s.hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Default().ErrorContext(ctx, "http server exited",
				slog.String("err", err.Error()),
			)
		}
		close(s.done)
	}()

	return nil
}

// Stop gracefully shuts the http server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.hs.Shutdown(ctx)
}
