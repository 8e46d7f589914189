//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"pidash/internal"
	"pidash/internal/controllers"
	"pidash/internal/pihole"
	"pidash/internal/providers"
	"pidash/internal/refresh"
	"pidash/internal/services"
	"pidash/internal/structures"
	"pidash/internal/widgets"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		pihole.NewClient,
		widgets.NewAdapter,
		services.NewWidgetService,
		refresh.NewScheduler,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
