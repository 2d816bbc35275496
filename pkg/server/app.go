package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	handler "BrentDash/internal/handler/web"
	webrender "BrentDash/internal/render/web"
	"BrentDash/internal/usecase"
	"BrentDash/pkg/config"
	xhttp "BrentDash/pkg/http"
	applogger "BrentDash/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
)

// App encapsulates the dashboard lifecycle: one load, then serve until interrupted.
type App struct {
	cfg        *config.Config
	loader     *usecase.Loader
	renderer   *webrender.Renderer
	log        *applogger.Logger
	registry   *prometheus.Registry
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	loader *usecase.Loader,
	renderer *webrender.Renderer,
	l *applogger.Logger,
	registry *prometheus.Registry,
) *App {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	return &App{
		cfg:      cfg,
		loader:   loader,
		renderer: renderer,
		log:      l,
		registry: registry,
	}
}

// Prepare loads every dataset and builds the HTTP server around the result.
// Nothing is served before the load completes.
func (a *App) Prepare(ctx context.Context) *xhttp.Server {
	snap := a.loader.Load(ctx)
	dash := usecase.NewDashboard(snap)

	metricsPath := ""
	if a.cfg.Metrics.Enabled {
		metricsPath = a.cfg.Metrics.Path
	}

	a.httpServer = xhttp.NewServer(
		handler.NewDashboardHandler(a.log, dash, a.renderer),
		a.log,
		xhttp.WithHost(a.cfg.Server.Host),
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithSlowThreshold(a.cfg.Server.SlowThreshold),
		xhttp.WithCORS(a.cfg.Server.CORS),
		xhttp.WithMetrics(metricsPath, a.registry, a.registry),
	)
	return a.httpServer
}

// Run starts the application and blocks until ctx is done or a signal arrives.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := a.Prepare(ctx)
	if err := srv.Start(); err != nil {
		return fmt.Errorf("http server start: %w", err)
	}

	<-ctx.Done()
	a.log.Info("shutdown signal received")
	return a.shutdown()
}

func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.httpServer.ShutdownTimeout())
	defer cancel()
	if err := a.httpServer.Stop(ctx); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
		return err
	}
	a.log.Info("shutdown complete")
	return nil
}
