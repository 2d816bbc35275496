package di

import (
	"fmt"

	"BrentDash/internal/domain/repository"
	webrender "BrentDash/internal/render/web"
	internalrepo "BrentDash/internal/repository"
	"BrentDash/internal/usecase"
	"BrentDash/pkg/config"
	xhttp "BrentDash/pkg/http"
	applogger "BrentDash/pkg/logger"
	"BrentDash/pkg/metrics"
	"BrentDash/pkg/server"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// ProvideLogger builds the zerolog-backed logger from the log section.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l.With(applogger.String("env", cfg.Environment)), nil
}

// ProvideRegistry creates the registry shared by the loader and HTTP metrics.
func ProvideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics(reg *prometheus.Registry) repository.Metrics {
	return metrics.New(reg)
}

// ProvideHTTPClient creates the outbound client with the per-request timeout.
func ProvideHTTPClient(cfg *config.Config) *xhttp.Client {
	return xhttp.NewClient(xhttp.WithTimeout(cfg.API.Timeout))
}

// ProvideDatasetSource reads datasets from the analysis API.
func ProvideDatasetSource(cfg *config.Config, client *xhttp.Client) repository.DatasetSource {
	return internalrepo.NewAPISource(cfg.API.BaseURL, client)
}

// ProvideLoader creates the dataset loader use case.
func ProvideLoader(
	src repository.DatasetSource,
	m repository.Metrics,
	l *applogger.Logger,
	cfg *config.Config,
) *usecase.Loader {
	return usecase.NewLoader(src, m, l, usecase.WithParallel(cfg.Loader.Parallel))
}

// ProvideRenderer parses the dashboard templates.
func ProvideRenderer() (*webrender.Renderer, error) {
	r, err := webrender.New()
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}
	return r, nil
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	loader *usecase.Loader,
	renderer *webrender.Renderer,
	l *applogger.Logger,
	reg *prometheus.Registry,
) *server.App {
	return server.New(cfg, loader, renderer, l, reg)
}
