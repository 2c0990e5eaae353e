package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/metrics"
	"github.com/vancomm/minefield/internal/middleware"
	"github.com/vancomm/minefield/internal/session"
)

const shutdownTimeout = 30 * time.Second

type App struct {
	log      *logrus.Logger
	cfg      *config.Config
	router   *http.ServeMux
	registry *prometheus.Registry
	metrics  *metrics.Metrics
	store    *session.Store
	jwt      *config.JWT
	ws       *config.WebSocket
}

func New(log *logrus.Logger, cfg *config.Config) (*App, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	jwt, err := config.NewJWT(cfg.Session)
	if err != nil {
		return nil, err
	}

	ws, err := config.NewWebSocket(cfg)
	if err != nil {
		return nil, err
	}

	store := session.NewStore(
		log,
		cfg.Session.TTL.Duration,
		session.WithObserver(func(active int) {
			m.ActiveSessions.Set(float64(active))
		}),
	)

	app := &App{
		log:      log,
		cfg:      cfg,
		router:   http.NewServeMux(),
		registry: registry,
		metrics:  m,
		store:    store,
		jwt:      jwt,
		ws:       ws,
	}

	app.loadRoutes()

	return app, nil
}

func (a *App) Handler() http.Handler {
	return middleware.Wrap(
		a.router,
		middleware.Auth(),
		middleware.Logging(a.log, a.metrics),
		middleware.Cors(a.cfg.Development()),
	)
}

// Start serves until ctx is done, then drains the server. The session sweeper
// runs alongside the listener and stops with it.
func (a *App) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:    a.cfg.Addr,
		Handler: a.Handler(),
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.WithField("addr", a.cfg.Addr).Info("server listening")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("unable to listen and serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.log.Info("shutting down")
		return server.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		return a.store.Run(ctx, a.cfg.Session.SweepInterval.Duration)
	})

	return g.Wait()
}
