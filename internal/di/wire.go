//go:build wireinject
// +build wireinject

package di

import (
	"BrentDash/internal/usecase"
	"BrentDash/pkg/config"
	"BrentDash/pkg/server"

	"github.com/google/wire"
)

var loaderSet = wire.NewSet(
	ProvideLogger,
	ProvideRegistry,
	ProvideMetrics,
	ProvideHTTPClient,
	ProvideDatasetSource,
	ProvideLoader,
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		loaderSet,
		ProvideRenderer,
		ProvideApp,
	)
	return &server.App{}, nil
}

// InitializeLoader wires a standalone loader for one-shot commands.
func InitializeLoader(cfg *config.Config) (*usecase.Loader, error) {
	wire.Build(loaderSet)
	return &usecase.Loader{}, nil
}
